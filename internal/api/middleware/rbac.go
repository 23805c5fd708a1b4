package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meridianbank/admin-portal/internal/core/domain"
)

const permissionNotice = "You do not have permission to access this page"

// RequireRole enforces role-based access. It presumes the Authenticated guard
// already ran: the caller holds a session, just possibly the wrong role, so a
// denial is 403 rather than a redirect to login.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := c.Get(ContextSessionKey).(*domain.Session)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, loginNotice)
			}
			if _, ok := allowed[session.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, permissionNotice)
			}
			return next(c)
		}
	}
}
