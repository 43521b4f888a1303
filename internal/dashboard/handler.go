package dashboard

import (
	"net/http"

	"CSEPortal/pkg/params"
	"CSEPortal/pkg/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	service *DashboardService
	logger  *zap.Logger
}

func NewDashboardHandler(service *DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{service: service, logger: logger.Named("dashboard")}
}

// UserDashboard serves GET /api/user-dashboard/:email.
func (h *DashboardHandler) UserDashboard(c echo.Context) error {
	d, err := h.service.ForUser(c.Request().Context(), params.Path(c, "email"))
	if err != nil {
		h.logger.Error("dashboard read failed", zap.Error(err))
		return response.Internal(c, "Error fetching dashboard data", err)
	}
	return c.JSON(http.StatusOK, d)
}
