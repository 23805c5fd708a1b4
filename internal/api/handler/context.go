package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meridianbank/admin-portal/internal/api/middleware"
	"github.com/meridianbank/admin-portal/internal/core/domain"
)

// ctxSession extracts the session injected by the Authenticated guard and
// fast-fails before any service call. Its presence proves the guard ran; a
// handler reached without it is a routing mistake, rejected with 401.
func ctxSession(c echo.Context) (*domain.Session, error) {
	session, ok := c.Get(middleware.ContextSessionKey).(*domain.Session)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return session, nil
}
