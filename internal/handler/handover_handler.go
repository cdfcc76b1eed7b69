package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/handover-backend-go/internal/models"
	"github.com/jengzang/handover-backend-go/internal/service"
	"github.com/jengzang/handover-backend-go/pkg/response"
)

// HandoverHandler handles HTTP requests for the corridor, coverage and A3 form
type HandoverHandler struct {
	service *service.HandoverService
}

// NewHandoverHandler creates a new handover handler
func NewHandoverHandler(service *service.HandoverService) *HandoverHandler {
	return &HandoverHandler{service: service}
}

// GetScene handles GET /api/v1/scene
func (h *HandoverHandler) GetScene(c *gin.Context) {
	path := h.service.Path()
	response.Success(c, gin.H{
		"scene":        h.service.Scene(),
		"total_length": path.TotalLength(),
		"segments":     len(path.Segments()),
	})
}

// GetPosition handles GET /api/v1/position?progress=
func (h *HandoverHandler) GetPosition(c *gin.Context) {
	var filter models.ProgressFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "progress must be a number between 0 and 100", err)
		return
	}
	if err := filter.Validate(); err != nil {
		response.BadRequest(c, "progress must be a number between 0 and 100", err)
		return
	}

	response.Success(c, h.service.Position(filter.Progress))
}

// GetCoverage handles GET /api/v1/coverage?x=&y=
func (h *HandoverHandler) GetCoverage(c *gin.Context) {
	var filter models.ProbeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	if err := filter.Validate(); err != nil {
		response.BadRequest(c, "x and y must be finite numbers", err)
		return
	}

	response.Success(c, h.service.Probe(models.Point{X: filter.X, Y: filter.Y}))
}

// GetA3 handles GET /api/v1/a3; missing terms take the form defaults
func (h *HandoverHandler) GetA3(c *gin.Context) {
	var in models.A3Input
	if err := c.ShouldBindQuery(&in); err != nil {
		response.BadRequest(c, "Invalid A3 parameters", err)
		return
	}
	if err := in.Validate(); err != nil {
		response.BadRequest(c, "A3 terms must be finite numbers", err)
		return
	}

	response.Success(c, h.service.A3(in))
}

// PostA3 handles POST /api/v1/a3 with a JSON body
func (h *HandoverHandler) PostA3(c *gin.Context) {
	in := models.DefaultA3Input()
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&in); err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid A3 body", err)
			return
		}
	}
	if err := in.Validate(); err != nil {
		response.BadRequest(c, "A3 terms must be finite numbers", err)
		return
	}

	response.Success(c, h.service.A3(in))
}

// GetSweep handles GET /api/v1/sweep?step=
func (h *HandoverHandler) GetSweep(c *gin.Context) {
	var filter models.SweepFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "step must be between 0.1 and 100", err)
		return
	}

	report, err := h.service.Sweep(filter.Step)
	if err != nil {
		response.BadRequest(c, "Invalid sweep step", err)
		return
	}

	response.Success(c, report)
}
