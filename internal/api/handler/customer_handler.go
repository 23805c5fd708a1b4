package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meridianbank/admin-portal/internal/api/metrics"
	"github.com/meridianbank/admin-portal/internal/core/domain"
	"github.com/meridianbank/admin-portal/internal/core/ports"
)

// CustomerHandler handles HTTP requests for customer lifecycle operations and
// the customer's own profile view.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

type createCustomerRequest struct {
	FullName        string  `json:"full_name" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Password        string  `json:"password" validate:"required"`
	ConfirmPassword string  `json:"confirm_password" validate:"eqfield=Password"`
	AccountType     string  `json:"account_type" validate:"required"`
	Balance         float64 `json:"balance"`
	Status          string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

type updateCustomerRequest struct {
	FullName        string  `json:"full_name" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirm_password"`
	AccountType     string  `json:"account_type" validate:"required"`
	Balance         float64 `json:"balance"`
	Status          string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

type customerResponse struct {
	Notice   string           `json:"notice,omitempty"`
	Customer *domain.Customer `json:"customer,omitempty"`
}

// List returns all customers.
//
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Success      200  {array}  domain.Customer
// @Router       /admin/customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Get returns a single customer by id.
//
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        id  path  string  true  "Customer id"
// @Success      200  {object}  domain.Customer
// @Failure      404  {object}  map[string]string
// @Router       /admin/customers/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	customer, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Create opens a new customer account. The account number is generated
// server-side; the client never supplies it.
//
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      createCustomerRequest  true  "Customer details"
// @Success      201   {object}  customerResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /admin/customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.service.Create(c.Request().Context(), ports.CreateCustomerInput{
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    req.Password,
		AccountType: req.AccountType,
		Balance:     req.Balance,
		Status:      domain.CustomerStatus(req.Status),
	})
	if err != nil {
		return err
	}
	metrics.AccountMutationsTotal.WithLabelValues("customer", "create").Inc()

	return c.JSON(http.StatusCreated, customerResponse{Notice: "Customer created successfully", Customer: customer})
}

// Update edits a customer. A blank password keeps the stored hash; status
// flips between active and inactive happen only here.
//
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Customer id"
// @Param        body  body      updateCustomerRequest  true  "Customer details"
// @Success      200   {object}  customerResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /admin/customers/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Password != "" && req.Password != req.ConfirmPassword {
		return echo.NewHTTPError(http.StatusBadRequest, "passwords do not match")
	}

	customer, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateCustomerInput{
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    req.Password,
		AccountType: req.AccountType,
		Balance:     req.Balance,
		Status:      domain.CustomerStatus(req.Status),
	})
	if err != nil {
		return err
	}
	metrics.AccountMutationsTotal.WithLabelValues("customer", "update").Inc()

	return c.JSON(http.StatusOK, customerResponse{Notice: "Customer updated successfully", Customer: customer})
}

// Delete removes a customer unconditionally.
//
// @Summary      Delete a customer
// @Tags         customers
// @Produce      json
// @Param        id  path  string  true  "Customer id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.AccountMutationsTotal.WithLabelValues("customer", "delete").Inc()

	return c.JSON(http.StatusOK, map[string]string{"notice": "Customer deleted successfully"})
}

// Me returns the authenticated customer's own record.
//
// @Summary      Own profile
// @Tags         customers
// @Produce      json
// @Success      200  {object}  domain.Customer
// @Failure      404  {object}  map[string]string
// @Router       /me [get]
func (h *CustomerHandler) Me(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	customer, err := h.service.Get(c.Request().Context(), session.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}
