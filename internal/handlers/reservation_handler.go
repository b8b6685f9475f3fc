package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/smarttravel/travel-booking-backend/internal/models"
	"github.com/smarttravel/travel-booking-backend/internal/services"
)

// ReservationHandler exposes the reservation workflows over HTTP.
type ReservationHandler struct {
	reservations *services.ReservationService
	logger       *logrus.Logger
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(reservations *services.ReservationService, logger *logrus.Logger) *ReservationHandler {
	return &ReservationHandler{reservations: reservations, logger: logger}
}

// GetReservation handles GET /api/v1/reservations/:locator
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	details, err := h.reservations.GetReservationDetails(c.Param("locator"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// CreateOrUpdateBooking handles POST /api/v1/trips/:trip_id/bookings
func (h *ReservationHandler) CreateOrUpdateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	confirmation, err := h.reservations.CreateOrUpdateBooking(c.Param("trip_id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, confirmation)
}

// CancelBooking handles POST /api/v1/reservations/cancel
func (h *ReservationHandler) CancelBooking(c *gin.Context) {
	var req models.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.reservations.CancelBooking(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateFlights handles POST /api/v1/reservations/flights
func (h *ReservationHandler) UpdateFlights(c *gin.Context) {
	var req models.FlightUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.reservations.UpdateReservationFlights(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateBaggages handles POST /api/v1/reservations/baggages
func (h *ReservationHandler) UpdateBaggages(c *gin.Context) {
	var req models.BaggageUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.reservations.UpdateReservationBaggages(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdatePassengers handles POST /api/v1/reservations/passengers
func (h *ReservationHandler) UpdatePassengers(c *gin.Context) {
	var req models.PassengerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.reservations.UpdateReservationPassengers(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
