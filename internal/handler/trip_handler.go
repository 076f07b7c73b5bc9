package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okgaadi/fleet-api/internal/domain"
	"github.com/okgaadi/fleet-api/internal/repository"
	"github.com/okgaadi/fleet-api/pkg/logger"
	"github.com/okgaadi/fleet-api/pkg/response"
)

// TripHandler handles trip HTTP requests
type TripHandler struct {
	trips repository.TripRepository
}

// NewTripHandler creates a new TripHandler
func NewTripHandler(trips repository.TripRepository) *TripHandler {
	return &TripHandler{trips: trips}
}

// List returns all trips
// GET /api/trips
func (h *TripHandler) List(c *gin.Context) {
	trips, err := h.trips.List(c.Request.Context())
	if err != nil {
		logger.Get().Error("list trips failed: " + err.Error())
		response.InternalError(c)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// Create inserts a trip record
// POST /api/trips
func (h *TripHandler) Create(c *gin.Context) {
	var trip domain.Trip
	if err := c.ShouldBindJSON(&trip); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if trip.ID == "" {
		trip.ID = uuid.New().String()
	}

	if err := h.trips.Create(c.Request.Context(), &trip); err != nil {
		logger.Get().Error("create trip failed: " + err.Error())
		response.InternalError(c)
		return
	}
	c.JSON(http.StatusCreated, trip)
}
