package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okgaadi/fleet-api/internal/domain"
	"github.com/okgaadi/fleet-api/internal/repository"
	"github.com/okgaadi/fleet-api/pkg/logger"
	"github.com/okgaadi/fleet-api/pkg/response"
)

// VehicleHandler handles vehicle HTTP requests. Vehicle endpoints are plain
// persistence pass-throughs; the auth gate and role policy run as middleware.
type VehicleHandler struct {
	vehicles repository.VehicleRepository
}

// NewVehicleHandler creates a new VehicleHandler
func NewVehicleHandler(vehicles repository.VehicleRepository) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

// List returns all vehicles
// GET /api/vehicles
func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.vehicles.List(c.Request.Context())
	if err != nil {
		logger.Get().Error("list vehicles failed: " + err.Error())
		response.InternalError(c)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// Get returns a single vehicle by id
// GET /api/vehicles/:id
func (h *VehicleHandler) Get(c *gin.Context) {
	vehicle, err := h.vehicles.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(c, "Vehicle not found")
			return
		}
		logger.Get().Error("get vehicle failed: " + err.Error())
		response.InternalError(c)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// Create inserts a vehicle record. Routed behind the admin role policy.
// POST /api/vehicles
func (h *VehicleHandler) Create(c *gin.Context) {
	var vehicle domain.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if vehicle.ID == "" {
		vehicle.ID = uuid.New().String()
	}

	if err := h.vehicles.Create(c.Request.Context(), &vehicle); err != nil {
		logger.Get().Error("create vehicle failed: " + err.Error())
		response.InternalError(c)
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

// Update replaces a vehicle record
// PUT /api/vehicles/:id
func (h *VehicleHandler) Update(c *gin.Context) {
	var vehicle domain.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	vehicle.ID = c.Param("id")

	if err := h.vehicles.Update(c.Request.Context(), &vehicle); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(c, "Vehicle not found")
			return
		}
		logger.Get().Error("update vehicle failed: " + err.Error())
		response.InternalError(c)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// Delete removes a vehicle record
// DELETE /api/vehicles/:id
func (h *VehicleHandler) Delete(c *gin.Context) {
	if err := h.vehicles.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(c, "Vehicle not found")
			return
		}
		logger.Get().Error("delete vehicle failed: " + err.Error())
		response.InternalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted"})
}
