package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const pingTimeout = 2 * time.Second

const (
	DatabaseConnected   = "MongoDB Connected"
	DatabaseUnreachable = "MongoDB Unreachable"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Report is the /api/health body. Status stays "OK" whenever the process can
// answer; Database carries the result of a best-effort ping.
type Report struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Database string `json:"database"`
}

type HealthHandler struct {
	store  pinger
	logger *zap.Logger
}

func NewHealthHandler(store pinger, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{store: store, logger: logger.Named("health")}
}

// Welcome serves GET /.
func (h *HealthHandler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to CSE JNU Portal Backend API"})
}

// Health serves GET /api/health.
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	db := DatabaseConnected
	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("database ping failed", zap.Error(err))
		db = DatabaseUnreachable
	}
	return c.JSON(http.StatusOK, Report{
		Status:   "OK",
		Message:  "Server is running",
		Database: db,
	})
}
