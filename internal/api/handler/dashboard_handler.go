package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/retailnet/pos-admin/internal/core/ports"
)

type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats handles GET /api/dashboard/stats.
//
// @Summary      Dashboard statistics for today
// @Tags         dashboard
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  domain.Dashboard
// @Failure      401  {object}  errorResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	d, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	d.TopStores = nonNil(d.TopStores)
	d.SalesChart = nonNil(d.SalesChart)
	d.RecentTransactions = nonNil(d.RecentTransactions)
	return c.JSON(http.StatusOK, d)
}
