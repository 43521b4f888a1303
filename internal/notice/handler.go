package notice

import (
	"errors"
	"net/http"

	"CSEPortal/pkg/document"
	"CSEPortal/pkg/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// NoticeHandler serves /api/notices.
type NoticeHandler struct {
	service *NoticeService
	logger  *zap.Logger
}

func NewNoticeHandler(service *NoticeService, logger *zap.Logger) *NoticeHandler {
	return &NoticeHandler{service: service, logger: logger.Named("notice")}
}

// Register mounts the notice routes on g.
func (h *NoticeHandler) Register(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/latest", h.Latest)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *NoticeHandler) List(c echo.Context) error {
	notices, err := h.service.List(c.Request().Context())
	if err != nil {
		return h.fail(c, "Error fetching notices", err)
	}
	return c.JSON(http.StatusOK, notices)
}

func (h *NoticeHandler) Latest(c echo.Context) error {
	notices, err := h.service.Latest(c.Request().Context())
	if err != nil {
		return h.fail(c, "Error fetching latest notices", err)
	}
	return c.JSON(http.StatusOK, notices)
}

func (h *NoticeHandler) Get(c echo.Context) error {
	n, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		return response.NotFound(c, "Notice not found")
	}
	if err != nil {
		return h.fail(c, "Error fetching notice", err)
	}
	return c.JSON(http.StatusOK, n)
}

func (h *NoticeHandler) Create(c echo.Context) error {
	fields, err := document.Bind(c)
	if err != nil {
		return response.BadRequest(c, "Invalid request body", err)
	}
	id, err := h.service.Create(c.Request().Context(), fields)
	if err != nil {
		return h.fail(c, "Error creating notice", err)
	}
	return c.JSON(http.StatusCreated, CreateNoticeResponse{
		Message:  "Notice created successfully",
		NoticeID: id.Hex(),
	})
}

func (h *NoticeHandler) Update(c echo.Context) error {
	var req NoticeRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request body", err)
	}
	err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if errors.Is(err, ErrNotFound) {
		return response.NotFound(c, "Notice not found")
	}
	if err != nil {
		return h.fail(c, "Error updating notice", err)
	}
	return response.OK(c, "Notice updated successfully")
}

func (h *NoticeHandler) Delete(c echo.Context) error {
	err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		return response.NotFound(c, "Notice not found")
	}
	if err != nil {
		return h.fail(c, "Error deleting notice", err)
	}
	return response.OK(c, "Notice deleted successfully")
}

func (h *NoticeHandler) fail(c echo.Context, msg string, err error) error {
	h.logger.Error(msg, zap.Error(err), zap.String("path", c.Request().URL.Path))
	return response.Internal(c, msg, err)
}
