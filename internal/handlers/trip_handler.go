package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/smarttravel/travel-booking-backend/internal/models"
	"github.com/smarttravel/travel-booking-backend/internal/services"
)

// TripHandler exposes trip management over HTTP.
type TripHandler struct {
	trips  *services.TripService
	logger *logrus.Logger
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(trips *services.TripService, logger *logrus.Logger) *TripHandler {
	return &TripHandler{trips: trips, logger: logger}
}

type createTripRequest struct {
	UserID string `json:"user_id"`
	models.TripInput
}

// CreateTrip handles POST /api/v1/trips
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req createTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	trip, err := h.trips.CreateTrip(req.UserID, req.TripInput)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// GetTrip handles GET /api/v1/trips/:trip_id
func (h *TripHandler) GetTrip(c *gin.Context) {
	trip, err := h.trips.GetTrip(c.Param("trip_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// ListUserTrips handles GET /api/v1/users/:user_id/trips
func (h *TripHandler) ListUserTrips(c *gin.Context) {
	trips, err := h.trips.ListTripsByUser(c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}
