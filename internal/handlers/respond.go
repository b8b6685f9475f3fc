package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smarttravel/travel-booking-backend/internal/models"
)

// respondError maps the domain error taxonomy onto HTTP statuses.
// Unclassified errors surface as 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	var (
		validation  *models.ValidationError
		bookingGone *models.BookingNotFoundError
		tripGone    *models.TripNotFoundError
		userGone    *models.UserNotFoundError
		conflict    *models.BookingConflictError
		cancelled   *models.ReservationAlreadyCancelledError
		noSeats     *models.SeatsUnavailableError
	)

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &bookingGone), errors.As(err, &tripGone), errors.As(err, &userGone):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &conflict), errors.As(err, &cancelled):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &noSeats):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
