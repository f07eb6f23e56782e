package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gotx/contact-service/model"
	"github.com/gotx/contact-service/service"
	"github.com/gotx/contact-service/service/dto"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

//-----------mocks--------

type mockService struct {
	submitErr    error
	verifyErr    error
	subscribeErr error
	logsErr      error
	records      []model.SubmissionRecord
}

func (m mockService) SubmitInquiry(inquiry dto.Inquiry) (dto.SubmitResult, error) {
	return dto.SubmitResult{Message: "Mission Received", TaskId: "GOTX-AB12C"}, m.submitErr
}

func (m mockService) VerifyReceipt(verification dto.Verification) (dto.VerifyResult, error) {
	return dto.VerifyResult{Success: true}, m.verifyErr
}

func (m mockService) Subscribe(subscription dto.Subscription) (dto.SubscribeResult, error) {
	return dto.SubscribeResult{Message: "Subscription Successful"}, m.subscribeErr
}

func (m mockService) FetchLogs(token string) ([]model.SubmissionRecord, error) {
	return m.records, m.logsErr
}

func doJSON(t *testing.T, handler echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))

	return rec
}

//-----------submit--------

func TestGetSubmitFunc(t *testing.T) {
	rec := doJSON(t, GetSubmitFunc(mockService{}), http.MethodPost, "/api/submit",
		`{"email":"a@b.com","fullName":"Jo","description":"Need help with network setup"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"Mission Received","taskId":"GOTX-AB12C"}`, rec.Body.String())
}

func TestGetSubmitFuncInvalidPayload(t *testing.T) {
	srv := mockService{submitErr: service.NewInvalidPayloadError("Missing required fields")}
	rec := doJSON(t, GetSubmitFunc(srv), http.MethodPost, "/api/submit", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"Missing required fields"}`, rec.Body.String())
}

func TestGetSubmitFuncNotifyFailure(t *testing.T) {
	srv := mockService{submitErr: service.NewNotifyError("Failed to send email")}
	rec := doJSON(t, GetSubmitFunc(srv), http.MethodPost, "/api/submit", `{"email":"a@b.com"}`)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.JSONEq(t, `{"error":"Failed to send email"}`, rec.Body.String())
}

func TestGetSubmitFuncConfigError(t *testing.T) {
	srv := mockService{submitErr: service.NewConfigError("no token")}
	rec := doJSON(t, GetSubmitFunc(srv), http.MethodPost, "/api/submit", `{"email":"a@b.com"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Server configuration error"}`, rec.Body.String())
}

func TestGetSubmitFuncUnexpectedError(t *testing.T) {
	srv := mockService{submitErr: http.ErrServerClosed}
	rec := doJSON(t, GetSubmitFunc(srv), http.MethodPost, "/api/submit", `{"email":"a@b.com"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
}

//-----------verify--------

func TestGetVerifyFunc(t *testing.T) {
	rec := doJSON(t, GetVerifyFunc(mockService{}), http.MethodPost, "/api/verify",
		`{"taskId":"GOTX-AB12C","status":"CONFIRMED","email":"a@b.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestGetVerifyFuncConfigError(t *testing.T) {
	srv := mockService{verifyErr: service.NewConfigError("no token")}
	rec := doJSON(t, GetVerifyFunc(srv), http.MethodPost, "/api/verify", `{"taskId":"GOTX-AB12C"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

//-----------subscribe--------

func TestGetSubscribeFunc(t *testing.T) {
	rec := doJSON(t, GetSubscribeFunc(mockService{}), http.MethodPost, "/api/subscribe",
		`{"email":"sub@b.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"Subscription Successful"}`, rec.Body.String())
}

func TestGetSubscribeFuncMissingEmail(t *testing.T) {
	srv := mockService{subscribeErr: service.NewInvalidPayloadError("Missing email address")}
	rec := doJSON(t, GetSubscribeFunc(srv), http.MethodPost, "/api/subscribe", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSubscribeFuncNotifyFailure(t *testing.T) {
	srv := mockService{subscribeErr: service.NewNotifyError("Failed to process subscription")}
	rec := doJSON(t, GetSubscribeFunc(srv), http.MethodPost, "/api/subscribe", `{"email":"sub@b.com"}`)

	require.Equal(t, http.StatusBadGateway, rec.Code)
}

//-----------logs--------

func TestGetLogsFunc(t *testing.T) {
	srv := mockService{records: []model.SubmissionRecord{
		{TaskID: "GOTX-AB12C", Status: model.DENIED, Timestamp: "2026-02-01T10:00:00Z"},
	}}
	rec := doJSON(t, GetLogsFunc(srv), http.MethodGet, "/api/logs?token=SECRET-42", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, `inline; filename="mission_logs.json"`, rec.Header().Get(echo.HeaderContentDisposition))
	require.Contains(t, rec.Body.String(), "GOTX-AB12C")
	require.Contains(t, rec.Body.String(), model.DENIED)
}

func TestGetLogsFuncUnauthorized(t *testing.T) {
	srv := mockService{logsErr: service.NewUnauthorizedError("Unauthorized access")}
	rec := doJSON(t, GetLogsFunc(srv), http.MethodGet, "/api/logs?token=WRONG", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"Unauthorized access"}`, rec.Body.String())
}

func TestGetLogsFuncTokenNotConfigured(t *testing.T) {
	srv := mockService{logsErr: service.NewConfigError("Log access token is not configured")}
	rec := doJSON(t, GetLogsFunc(srv), http.MethodGet, "/api/logs?token=SECRET-42", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetLogsFuncStoreNotBound(t *testing.T) {
	srv := mockService{logsErr: service.NewStorageError("Submission store is not bound")}
	rec := doJSON(t, GetLogsFunc(srv), http.MethodGet, "/api/logs?token=SECRET-42", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Submission store is not bound"}`, rec.Body.String())
}
