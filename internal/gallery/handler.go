package gallery

import (
	"errors"
	"net/http"

	"CSEPortal/pkg/document"
	"CSEPortal/pkg/params"
	"CSEPortal/pkg/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type GalleryHandler struct {
	service *GalleryService
	logger  *zap.Logger
}

func NewGalleryHandler(service *GalleryService, logger *zap.Logger) *GalleryHandler {
	return &GalleryHandler{service: service, logger: logger.Named("gallery")}
}

func (h *GalleryHandler) Register(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/category/:category", h.ListByCategory)
	g.POST("", h.Create)
	g.DELETE("/:id", h.Delete)
}

func (h *GalleryHandler) List(c echo.Context) error {
	photos, err := h.service.List(c.Request().Context())
	if err != nil {
		return h.fail(c, "Error fetching gallery", err)
	}
	return c.JSON(http.StatusOK, photos)
}

func (h *GalleryHandler) ListByCategory(c echo.Context) error {
	photos, err := h.service.ListByCategory(c.Request().Context(), params.Path(c, "category"))
	if err != nil {
		return h.fail(c, "Error fetching gallery category", err)
	}
	return c.JSON(http.StatusOK, photos)
}

func (h *GalleryHandler) Create(c echo.Context) error {
	fields, err := document.Bind(c)
	if err != nil {
		return response.BadRequest(c, "Invalid request body", err)
	}
	id, err := h.service.Create(c.Request().Context(), fields)
	if err != nil {
		return h.fail(c, "Error adding photo", err)
	}
	return c.JSON(http.StatusCreated, CreatePhotoResponse{
		Message: "Photo added successfully",
		PhotoID: id.Hex(),
	})
}

func (h *GalleryHandler) Delete(c echo.Context) error {
	err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		return response.NotFound(c, "Photo not found")
	}
	if err != nil {
		return h.fail(c, "Error deleting photo", err)
	}
	return response.OK(c, "Photo deleted successfully")
}

func (h *GalleryHandler) fail(c echo.Context, msg string, err error) error {
	h.logger.Error(msg, zap.Error(err))
	return response.Internal(c, msg, err)
}
