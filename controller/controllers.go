package controller

import (
	"net/http"

	"github.com/gotx/contact-service/service"
	"github.com/gotx/contact-service/service/dto"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func errorJSON(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]string{"error": msg})
}

//toHTTPError maps service errors to plain JSON error objects
func toHTTPError(c echo.Context, err error) error {
	switch err.(type) {
	case *service.InvalidPayloadErr:
		return errorJSON(c, http.StatusBadRequest, err.Error())
	case *service.UnauthorizedErr:
		return errorJSON(c, http.StatusUnauthorized, err.Error())
	case *service.NotifyErr:
		return errorJSON(c, http.StatusBadGateway, err.Error())
	case *service.ConfigErr:
		return errorJSON(c, http.StatusInternalServerError, "Server configuration error")
	case *service.StorageErr:
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	default:
		zap.L().Error("Unexpected error", zap.Error(err))
		return errorJSON(c, http.StatusInternalServerError, "Internal Server Error")
	}
}

// SubmitInquiry godoc
// @Summary Submit contact inquiry
// @Description Validates the inquiry, emails it to the operator and the submitter and logs it
// @Accept json
// @Produce json
// @Param inquiry body dto.Inquiry true "Inquiry"
// @Success 200 {object} dto.SubmitResult
// @Failure 400 "missing or invalid fields"
// @Failure 500 "server configuration error"
// @Failure 502 "email dispatch failed"
// @Router /api/submit [post]
func GetSubmitFunc(srv service.Service) echo.HandlerFunc {

	return func(c echo.Context) error {
		inquiry := new(dto.Inquiry)
		if err := c.Bind(inquiry); err != nil {
			return err
		}

		result, err := srv.SubmitInquiry(*inquiry)
		if err != nil {
			return toHTTPError(c, err)
		}

		return c.JSON(http.StatusOK, result)
	}
}

// VerifyReceipt godoc
// @Summary Record follow-up verification
// @Description Records whether the user received follow-up on a submitted inquiry
// @Accept json
// @Produce json
// @Param verification body dto.Verification true "Verification"
// @Success 200 {object} dto.VerifyResult
// @Failure 500 "server configuration error"
// @Router /api/verify [post]
func GetVerifyFunc(srv service.Service) echo.HandlerFunc {

	return func(c echo.Context) error {
		verification := new(dto.Verification)
		if err := c.Bind(verification); err != nil {
			return err
		}

		result, err := srv.VerifyReceipt(*verification)
		if err != nil {
			return toHTTPError(c, err)
		}

		return c.JSON(http.StatusOK, result)
	}
}

// Subscribe godoc
// @Summary Newsletter sign-up
// @Description Signs an email address up for media updates
// @Accept json
// @Produce json
// @Param subscription body dto.Subscription true "Subscription"
// @Success 200 {object} dto.SubscribeResult
// @Failure 400 "missing email"
// @Failure 500 "server configuration error"
// @Failure 502 "email dispatch failed"
// @Router /api/subscribe [post]
func GetSubscribeFunc(srv service.Service) echo.HandlerFunc {

	return func(c echo.Context) error {
		subscription := new(dto.Subscription)
		if err := c.Bind(subscription); err != nil {
			return err
		}

		result, err := srv.Subscribe(*subscription)
		if err != nil {
			return toHTTPError(c, err)
		}

		return c.JSON(http.StatusOK, result)
	}
}

// FetchLogs godoc
// @Summary List submission logs
// @Description Returns all stored submissions newest first, guarded by the shared access token
// @Produce json
// @Param token query string true "Access token"
// @Success 200 {array} model.SubmissionRecord
// @Failure 401 "bad token"
// @Failure 500 "token not configured or store unavailable"
// @Router /api/logs [get]
func GetLogsFunc(srv service.Service) echo.HandlerFunc {

	return func(c echo.Context) error {
		records, err := srv.FetchLogs(c.QueryParam("token"))
		if err != nil {
			return toHTTPError(c, err)
		}

		c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="mission_logs.json"`)
		return c.JSONPretty(http.StatusOK, records, "  ")
	}
}
