package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/meridianbank/admin-portal/internal/core/domain"
	"github.com/meridianbank/admin-portal/internal/core/ports"
)

const (
	// SessionCookieName is the cookie carrying the opaque session token.
	SessionCookieName = "session_token"

	// ContextSessionKey is where the resolved session lives in the request
	// context after the Authenticated guard has run.
	ContextSessionKey = "session"

	// ContextTokenKey holds the raw token so logout can terminate it.
	ContextTokenKey = "session_token"
)

const loginNotice = "Please log in to access this page"

// Authenticated resolves the opaque session token (cookie or bearer header)
// through the session store and injects the session into context. It fails
// closed: no token, an unknown token, or an idle-expired one all reject with
// 401 before any handler logic runs.
func Authenticated(store ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := tokenFromRequest(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, loginNotice)
			}

			session, err := store.Get(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrSessionNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, loginNotice)
				}
				return err
			}

			c.Set(ContextSessionKey, session)
			c.Set(ContextTokenKey, token)
			return next(c)
		}
	}
}

// tokenFromRequest prefers the session cookie and falls back to a bearer
// Authorization header for non-browser clients.
func tokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
