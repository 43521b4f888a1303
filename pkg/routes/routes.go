package pkg

import (
	"context"
	"errors"
	"net/http"

	"CSEPortal/internal/booking"
	"CSEPortal/internal/config"
	"CSEPortal/internal/dashboard"
	"CSEPortal/internal/gallery"
	"CSEPortal/internal/health"
	"CSEPortal/internal/metrics"
	"CSEPortal/internal/notice"
	"CSEPortal/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var EchoModules = fx.Module("echo",
	fx.Provide(config.NewConfig),
	fx.Provide(config.NewLogger),
	fx.Provide(config.NewMongoDBClient),
	fx.Provide(config.NewStore),
	fx.Provide(metrics.New),
	fx.Provide(NewEchoServer),
	fx.Provide(newHealthHandler),
	fx.Provide(notice.NewNoticeRepository),
	fx.Provide(notice.NewNoticeService),
	fx.Provide(notice.NewNoticeHandler),
	fx.Provide(booking.NewRepositories),
	fx.Provide(booking.NewHandlers),
	fx.Provide(dashboard.NewDashboardService),
	fx.Provide(dashboard.NewDashboardHandler),
	fx.Provide(gallery.NewGalleryRepository),
	fx.Provide(gallery.NewGalleryService),
	fx.Provide(gallery.NewGalleryHandler),
	fx.Invoke(RegisterRoutes))

func NewEchoServer(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.SetupMiddleware(e, cfg, logger, m)

	addr := cfg.Addr()
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("JNU CSE Portal server started", zap.String("addr", "http://localhost"+addr))
			go func() {
				if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("failed to start the server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("shutting down the server")
			return e.Shutdown(ctx)
		},
	})
	return e
}

func newHealthHandler(store *config.Store, logger *zap.Logger) *health.HealthHandler {
	return health.NewHealthHandler(store, logger)
}

// Handlers is everything RegisterRoutes mounts.
type Handlers struct {
	fx.In

	Health    *health.HealthHandler
	Notice    *notice.NoticeHandler
	Booking   *booking.Handlers
	Dashboard *dashboard.DashboardHandler
	Gallery   *gallery.GalleryHandler
	Metrics   *metrics.Metrics
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/", h.Health.Welcome)
	e.GET("/metrics", echo.WrapHandler(h.Metrics.Handler()))

	api := e.Group("/api")
	api.GET("/health", h.Health.Health)

	h.Notice.Register(api.Group("/notices"))
	h.Booking.Classroom.Register(api.Group("/classroom-bookings"))
	h.Booking.Lab.Register(api.Group("/lab-bookings"))
	api.GET("/user-dashboard/:email", h.Dashboard.UserDashboard)
	h.Gallery.Register(api.Group("/gallery"))
}
