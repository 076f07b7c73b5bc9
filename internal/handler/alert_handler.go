package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okgaadi/fleet-api/internal/domain"
	"github.com/okgaadi/fleet-api/internal/repository"
	"github.com/okgaadi/fleet-api/pkg/logger"
	"github.com/okgaadi/fleet-api/pkg/response"
)

// AlertHandler handles alert HTTP requests
type AlertHandler struct {
	alerts repository.AlertRepository
}

// NewAlertHandler creates a new AlertHandler
func NewAlertHandler(alerts repository.AlertRepository) *AlertHandler {
	return &AlertHandler{alerts: alerts}
}

// List returns all alerts, newest first
// GET /api/alerts
func (h *AlertHandler) List(c *gin.Context) {
	alerts, err := h.alerts.List(c.Request.Context())
	if err != nil {
		logger.Get().Error("list alerts failed: " + err.Error())
		response.InternalError(c)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// Create inserts an alert record
// POST /api/alerts
func (h *AlertHandler) Create(c *gin.Context) {
	var alert domain.Alert
	if err := c.ShouldBindJSON(&alert); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if alert.ID == "" {
		alert.ID = uuid.New().String()
	}
	if alert.Timestamp.IsZero() {
		alert.Timestamp = time.Now().UTC()
	}

	if err := h.alerts.Create(c.Request.Context(), &alert); err != nil {
		logger.Get().Error("create alert failed: " + err.Error())
		response.InternalError(c)
		return
	}
	c.JSON(http.StatusCreated, alert)
}

// MarkRead flags an alert as read
// PUT /api/alerts/:id/read
func (h *AlertHandler) MarkRead(c *gin.Context) {
	if err := h.alerts.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(c, "Alert not found")
			return
		}
		logger.Get().Error("mark alert read failed: " + err.Error())
		response.InternalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alert marked as read"})
}

// Delete removes an alert
// DELETE /api/alerts/:id
func (h *AlertHandler) Delete(c *gin.Context) {
	if err := h.alerts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(c, "Alert not found")
			return
		}
		logger.Get().Error("delete alert failed: " + err.Error())
		response.InternalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alert deleted"})
}
