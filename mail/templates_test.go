package mail

import (
	"strings"
	"testing"
	"time"

	"github.com/gotx/contact-service/model"
	"github.com/stretchr/testify/require"
)

func TestRenderInquiry(t *testing.T) {
	body, err := RenderInquiry("GOTX-AB12C", model.FormFields{
		UserType:    "Home",
		FullName:    "Jo",
		Email:       "a@b.com",
		Phone:       "07700900000",
		Postcode:    "RG2 6UB",
		Description: "Need help with network setup",
		ContactTime: "ASAP",
	})

	require.NoError(t, err)
	require.Contains(t, body, "GOTX-AB12C")
	require.Contains(t, body, "Jo")
	require.Contains(t, body, "a@b.com")
	require.Contains(t, body, "07700900000")
	require.Contains(t, body, "Need help with network setup")
}

func TestRenderInquiryNoPhone(t *testing.T) {
	body, err := RenderInquiry("GOTX-AB12C", model.FormFields{
		FullName:    "Jo",
		Email:       "a@b.com",
		Description: "Need help",
	})

	require.NoError(t, err)
	require.Contains(t, body, "N/A")
}

func TestRenderInquiryEscapesHtml(t *testing.T) {
	body, err := RenderInquiry("GOTX-AB12C", model.FormFields{
		FullName:    "Jo",
		Email:       "a@b.com",
		Description: "<script>alert(1)</script>",
	})

	require.NoError(t, err)
	require.False(t, strings.Contains(body, "<script>alert(1)</script>"))
}

func TestRenderVerification(t *testing.T) {
	at := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

	body, err := RenderVerification("a@b.com", "GOTX-AB12C", model.CONFIRMED, at)

	require.NoError(t, err)
	require.Contains(t, body, "a@b.com")
	require.Contains(t, body, "GOTX-AB12C")
	require.Contains(t, body, model.CONFIRMED)
	require.Contains(t, body, "#00ff00")

	body, err = RenderVerification("a@b.com", "GOTX-AB12C", model.DENIED, at)

	require.NoError(t, err)
	require.Contains(t, body, "#ff0000")
}

func TestRenderSubscriberAlert(t *testing.T) {
	body, err := RenderSubscriberAlert("sub@b.com", time.Now().UTC())

	require.NoError(t, err)
	require.Contains(t, body, "sub@b.com")
	require.Contains(t, body, "New Subscriber Logged")
}

func TestWelcomeBody(t *testing.T) {
	require.Contains(t, WelcomeBody(), "Mission Acknowledged")
}
