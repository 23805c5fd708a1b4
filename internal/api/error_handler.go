package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/meridianbank/admin-portal/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Severity
// mirrors the notice severities of the rendered views (danger for every error
// class here).
type errorResponse struct {
	Error    string `json:"error"`
	Severity string `json:"severity"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": ..., "severity": "danger"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg, Severity: "danger"})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, guard rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	var dup *domain.DuplicateKeyError
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &dup):
		return http.StatusConflict, dup.Error()
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		// One undifferentiated message for every login failure.
		return http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrSelfDelete):
		return http.StatusUnprocessableEntity, "You cannot delete your own account"
	case errors.Is(err, domain.ErrAdminNotFound):
		return http.StatusNotFound, "administrator not found"
	case errors.Is(err, domain.ErrCustomerNotFound):
		return http.StatusNotFound, "customer not found"
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, "Please log in to access this page"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
