package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jengzang/handover-backend-go/internal/service"
	"github.com/jengzang/handover-backend-go/pkg/response"
)

// EventHandler handles HTTP requests for the measurement event table
type EventHandler struct {
	service *service.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(service *service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// GetEvents handles GET /api/v1/events
func (h *EventHandler) GetEvents(c *gin.Context) {
	table, err := h.service.Table(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to get event table", err)
		return
	}

	response.Success(c, table)
}

// ReloadEvents handles POST /api/v1/events/reload
func (h *EventHandler) ReloadEvents(c *gin.Context) {
	table, err := h.service.Reload(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to reload event table", err)
		return
	}

	response.Success(c, table.Meta)
}
