package booking

import (
	"errors"
	"net/http"

	"CSEPortal/internal/metrics"
	"CSEPortal/pkg/document"
	"CSEPortal/pkg/params"
	"CSEPortal/pkg/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// BookingHandler serves one booking collection.
type BookingHandler struct {
	service *BookingService
	logger  *zap.Logger
	label   string
}

// Handlers pairs the classroom and lab handlers for route registration.
type Handlers struct {
	Classroom *BookingHandler
	Lab       *BookingHandler
}

func NewBookingHandler(service *BookingService, logger *zap.Logger) *BookingHandler {
	label := "Classroom booking"
	if service.Kind() == Lab {
		label = "Lab booking"
	}
	return &BookingHandler{
		service: service,
		logger:  logger.Named(string(service.Kind()) + "_booking"),
		label:   label,
	}
}

func NewHandlers(repos *Repositories, m *metrics.Metrics, logger *zap.Logger) *Handlers {
	return &Handlers{
		Classroom: NewBookingHandler(NewBookingService(repos.Classroom, m), logger),
		Lab:       NewBookingHandler(NewBookingService(repos.Lab, m), logger),
	}
}

// Register mounts the booking routes on g.
func (h *BookingHandler) Register(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/user/:email", h.ListByUser)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.UpdateStatus)
	g.DELETE("/:id", h.Delete)
}

func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.service.List(c.Request().Context())
	if err != nil {
		return h.fail(c, "Error fetching bookings", err)
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) ListByUser(c echo.Context) error {
	bookings, err := h.service.ListByUser(c.Request().Context(), params.Path(c, "email"))
	if err != nil {
		return h.fail(c, "Error fetching user bookings", err)
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) Get(c echo.Context) error {
	b, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		return response.NotFound(c, h.label+" not found")
	}
	if err != nil {
		return h.fail(c, "Error fetching booking", err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Create(c echo.Context) error {
	fields, err := document.Bind(c)
	if err != nil {
		return response.BadRequest(c, "Invalid request body", err)
	}
	id, err := h.service.Create(c.Request().Context(), fields)
	if err != nil {
		return h.fail(c, "Error creating booking", err)
	}
	return c.JSON(http.StatusCreated, CreateBookingResponse{
		Message:   h.label + " created successfully",
		BookingID: id.Hex(),
	})
}

func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request body", err)
	}
	err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if errors.Is(err, ErrNotFound) {
		return response.NotFound(c, h.label+" not found")
	}
	if err != nil {
		return h.fail(c, "Error updating booking", err)
	}
	return response.OK(c, h.label+" updated successfully")
}

func (h *BookingHandler) Delete(c echo.Context) error {
	err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		return response.NotFound(c, h.label+" not found")
	}
	if err != nil {
		return h.fail(c, "Error deleting booking", err)
	}
	return response.OK(c, h.label+" deleted successfully")
}

func (h *BookingHandler) fail(c echo.Context, msg string, err error) error {
	h.logger.Error(msg, zap.Error(err), zap.String("path", c.Request().URL.Path))
	return response.Internal(c, msg, err)
}
