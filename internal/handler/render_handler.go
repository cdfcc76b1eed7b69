package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/handover-backend-go/internal/models"
	"github.com/jengzang/handover-backend-go/internal/render"
	"github.com/jengzang/handover-backend-go/internal/service"
	"github.com/jengzang/handover-backend-go/pkg/response"
)

// RenderHandler serves server-side renderings of the scene
type RenderHandler struct {
	service *service.HandoverService
}

// NewRenderHandler creates a new render handler
func NewRenderHandler(service *service.HandoverService) *RenderHandler {
	return &RenderHandler{service: service}
}

// GetImage handles GET /viz/scene.png and /viz/scene.svg
func (h *RenderHandler) GetImage(format string) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, ok := h.bind(c)
		if !ok {
			return
		}

		var buf bytes.Buffer
		if err := render.WritePlot(&buf, h.frame(filter), filter.Width, filter.Height, format); err != nil {
			response.InternalError(c, "Failed to render scene", err)
			return
		}
		c.Data(http.StatusOK, render.Formats[format], buf.Bytes())
	}
}

// GetPage handles GET /viz/scene.html
func (h *RenderHandler) GetPage(c *gin.Context) {
	filter, ok := h.bind(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render.WriteHTML(&buf, h.frame(filter)); err != nil {
		response.InternalError(c, "Failed to render scene", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *RenderHandler) bind(c *gin.Context) (models.RenderFilter, bool) {
	var filter models.RenderFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid render parameters", err)
		return filter, false
	}
	if err := filter.Validate(); err != nil {
		response.BadRequest(c, "Invalid render parameters", err)
		return filter, false
	}
	return filter, true
}

func (h *RenderHandler) frame(filter models.RenderFilter) render.Frame {
	return render.Frame{
		Scene:    h.service.Scene(),
		Path:     h.service.Path(),
		Position: h.service.Position(filter.Progress),
	}
}
