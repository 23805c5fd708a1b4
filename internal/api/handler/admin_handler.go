package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meridianbank/admin-portal/internal/api/metrics"
	"github.com/meridianbank/admin-portal/internal/core/domain"
	"github.com/meridianbank/admin-portal/internal/core/ports"
)

// AdminHandler handles HTTP requests for administrator lifecycle operations.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type createAdminRequest struct {
	Username        string `json:"username" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"eqfield=Password"`
}

type updateAdminRequest struct {
	Username        string `json:"username" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type adminResponse struct {
	Notice string                `json:"notice,omitempty"`
	Admin  *domain.Administrator `json:"admin,omitempty"`
}

// List returns all administrators.
//
// @Summary      List administrators
// @Tags         admins
// @Produce      json
// @Success      200  {array}  domain.Administrator
// @Router       /admin/admins [get]
func (h *AdminHandler) List(c echo.Context) error {
	admins, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admins)
}

// Create adds a new administrator.
//
// @Summary      Create an administrator
// @Tags         admins
// @Accept       json
// @Produce      json
// @Param        body  body      createAdminRequest  true  "Administrator details"
// @Success      201   {object}  adminResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /admin/admins [post]
func (h *AdminHandler) Create(c echo.Context) error {
	var req createAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	admin, err := h.service.Create(c.Request().Context(), ports.CreateAdminInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	metrics.AccountMutationsTotal.WithLabelValues("administrator", "create").Inc()

	return c.JSON(http.StatusCreated, adminResponse{Notice: "Admin created successfully", Admin: admin})
}

// Update edits an administrator. A blank password keeps the stored hash.
//
// @Summary      Update an administrator
// @Tags         admins
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Administrator id"
// @Param        body  body      updateAdminRequest  true  "Administrator details"
// @Success      200   {object}  adminResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /admin/admins/{id} [put]
func (h *AdminHandler) Update(c echo.Context) error {
	var req updateAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Password != "" && req.Password != req.ConfirmPassword {
		return echo.NewHTTPError(http.StatusBadRequest, "passwords do not match")
	}

	admin, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateAdminInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	metrics.AccountMutationsTotal.WithLabelValues("administrator", "update").Inc()

	return c.JSON(http.StatusOK, adminResponse{Notice: "Admin updated successfully", Admin: admin})
}

// Delete removes an administrator. Deleting the acting session's own record
// is rejected.
//
// @Summary      Delete an administrator
// @Tags         admins
// @Produce      json
// @Param        id  path  string  true  "Administrator id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /admin/admins/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), session.UserID); err != nil {
		return err
	}
	metrics.AccountMutationsTotal.WithLabelValues("administrator", "delete").Inc()

	return c.JSON(http.StatusOK, map[string]string{"notice": "Admin deleted successfully"})
}
