package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/smarttravel/travel-booking-backend/internal/models"
	"github.com/smarttravel/travel-booking-backend/internal/store"
)

// TripService manages trips, the container bookings attach to.
type TripService struct {
	trips  *store.TripRepository
	users  *store.UserRepository
	logger *logrus.Logger
}

// NewTripService creates a new TripService.
func NewTripService(trips *store.TripRepository, users *store.UserRepository, logger *logrus.Logger) *TripService {
	return &TripService{trips: trips, users: users, logger: logger}
}

// CreateTrip creates a confirmed trip for a user.
func (s *TripService) CreateTrip(userID string, input models.TripInput) (*models.Trip, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &models.UserNotFoundError{Message: fmt.Sprintf("User with ID %s not found.", userID)}
		}
		return nil, err
	}

	now := time.Now().UTC()
	trip := &models.Trip{
		TripID:             uuid.New().String(),
		TripName:           input.TripName,
		UserID:             userID,
		Status:             models.TripStatusConfirmed,
		StartDate:          input.StartDate,
		EndDate:            input.EndDate,
		DestinationSummary: input.DestinationSummary,
		BookingType:        input.BookingType,
		IsVirtualTrip:      input.IsVirtualTrip,
		IsGuestBooking:     input.IsGuestBooking,
		CreatedDate:        now,
		LastModifiedDate:   now,
	}
	if err := s.trips.Insert(trip); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"trip_id": trip.TripID,
		"user_id": userID,
	}).Info("Trip created")
	return trip, nil
}

// GetTrip retrieves a trip by id.
func (s *TripService) GetTrip(tripID string) (*models.Trip, error) {
	trip, err := s.trips.GetByID(tripID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &models.TripNotFoundError{Message: fmt.Sprintf("Trip with ID %s not found.", tripID)}
		}
		return nil, err
	}
	return trip, nil
}

// ListTripsByUser returns every trip owned by a user.
func (s *TripService) ListTripsByUser(userID string) ([]*models.Trip, error) {
	return s.trips.ListByUser(userID)
}
