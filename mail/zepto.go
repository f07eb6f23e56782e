package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/gotx/contact-service/util"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

//ErrNotConfigured is returned by Send when no api token is set
var ErrNotConfigured = errors.New("mail: api token is not configured")

type Recipient struct {
	Address string
	Name    string
}

type Mail struct {
	FromAddress string
	FromName    string
	To          []Recipient
	Subject     string
	HtmlBody    string
}

//Notifier dispatches a single email and reports success or failure
type Notifier interface {
	Send(mail Mail) error
}

//ZeptoMail transactional email api, see https://www.zoho.com/zeptomail/help/api/email-sending.html
type emailAddress struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

type toEntry struct {
	EmailAddress emailAddress `json:"email_address"`
}

type zeptoPayload struct {
	From     emailAddress `json:"from"`
	To       []toEntry    `json:"to"`
	Subject  string       `json:"subject"`
	HtmlBody string       `json:"htmlbody"`
}

type client struct {
	url        string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

//NewClient returns a Notifier backed by the ZeptoMail HTTP api.
//Outbound dispatches are throttled to mailPerSec requests per second.
func NewClient(url, token string, mailPerSec int) Notifier {
	return &client{
		url:        url,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(mailPerSec), 1),
	}
}

func (c *client) Send(mail Mail) error {
	if util.IsBlank(c.token) {
		return ErrNotConfigured
	}

	err := c.limiter.Wait(context.Background())
	if err != nil {
		return err
	}

	payload := zeptoPayload{
		From:     emailAddress{Address: mail.FromAddress, Name: mail.FromName},
		Subject:  mail.Subject,
		HtmlBody: mail.HtmlBody,
	}
	for _, to := range mail.To {
		payload.To = append(payload.To, toEntry{EmailAddress: emailAddress{Address: to.Address, Name: to.Name}})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", c.url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := ioutil.ReadAll(resp.Body)
		zap.L().Error("Mail api returned error",
			zap.String("status", resp.Status),
			zap.ByteString("body", respBody))
		return errors.New("mail: dispatch failed with status " + resp.Status)
	}

	return nil
}
