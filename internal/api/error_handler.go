package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/retailnet/pos-admin/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps domain errors
// to status codes and renders {"error": "<message>"}. Unexpected errors are
// logged and answered with a generic 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

var statusByError = []struct {
	err    error
	status int
}{
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrMissingToken, http.StatusUnauthorized},
	{domain.ErrUnknownSubject, http.StatusUnauthorized},
	{domain.ErrInvalidToken, http.StatusBadRequest},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrUserNotFound, http.StatusNotFound},
	{domain.ErrStoreNotFound, http.StatusNotFound},
	{domain.ErrNoExportData, http.StatusNotFound},
	{domain.ErrStoreNameTaken, http.StatusConflict},
	{domain.ErrStoreHasUsers, http.StatusBadRequest},
	{domain.ErrStoreHasTransactions, http.StatusBadRequest},
	{domain.ErrUnknownReference, http.StatusBadRequest},
	{domain.ErrTooManyAttempts, http.StatusTooManyRequests},
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (router 404/405, body limits, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Message
	}

	for _, m := range statusByError {
		if errors.Is(err, m.err) {
			return m.status, m.err.Error()
		}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
