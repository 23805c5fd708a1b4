package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meridianbank/admin-portal/internal/core/ports"
)

// DashboardHandler serves the admin landing counters.
type DashboardHandler struct {
	admins    ports.AdminService
	customers ports.CustomerService
}

func NewDashboardHandler(admins ports.AdminService, customers ports.CustomerService) *DashboardHandler {
	return &DashboardHandler{admins: admins, customers: customers}
}

type dashboardResponse struct {
	AdminCount      int64 `json:"admin_count"`
	CustomerCount   int64 `json:"customer_count"`
	ActiveCustomers int64 `json:"active_customers"`
}

// Stats returns entity counts for the admin dashboard.
//
// @Summary      Admin dashboard counters
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Router       /admin/dashboard [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	adminCount, err := h.admins.Count(ctx)
	if err != nil {
		return err
	}
	customerCount, err := h.customers.Count(ctx)
	if err != nil {
		return err
	}
	activeCustomers, err := h.customers.CountActive(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		AdminCount:      adminCount,
		CustomerCount:   customerCount,
		ActiveCustomers: activeCustomers,
	})
}
