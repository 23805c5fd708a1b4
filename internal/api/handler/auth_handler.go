package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/meridianbank/admin-portal/internal/api/metrics"
	"github.com/meridianbank/admin-portal/internal/api/middleware"
	"github.com/meridianbank/admin-portal/internal/core/domain"
	"github.com/meridianbank/admin-portal/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	// Identifier is the username for administrators and the email for
	// customers; the login algorithm decides which it is.
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type loginResponse struct {
	Notice  string          `json:"notice"`
	Token   string          `json:"token"`
	Session *domain.Session `json:"session"`
}

// Login authenticates an administrator or customer and establishes a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, session, err := h.authService.Login(c.Request().Context(), req.Identifier, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	metrics.SessionsEstablishedTotal.WithLabelValues(session.Role).Inc()

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	notice := "Welcome, Customer!"
	if session.IsAdmin() {
		notice = "Welcome, Admin!"
	}
	return c.JSON(http.StatusOK, loginResponse{Notice: notice, Token: token, Session: session})
}

// Logout terminates the caller's session. It is deliberately unguarded: a
// request without a resolvable session still gets its cookie cleared.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := h.requestToken(c); token != "" {
		if err := h.authService.Logout(c.Request().Context(), token); err != nil {
			return err
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.JSON(http.StatusOK, map[string]string{"notice": "You have been logged out"})
}

func (h *AuthHandler) requestToken(c echo.Context) string {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	parts := strings.SplitN(c.Request().Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
