package store

import (
	"fmt"

	"github.com/smarttravel/travel-booking-backend/internal/models"
)

// TripRepository handles trip storage and the trips-by-user index.
type TripRepository struct {
	store *Store
}

// NewTripRepository creates a new TripRepository.
func NewTripRepository(store *Store) *TripRepository {
	return &TripRepository{store: store}
}

// Insert stores a new trip and registers it under its owner.
func (r *TripRepository) Insert(trip *models.Trip) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.trips[trip.TripID]; exists {
		return fmt.Errorf("trip %q already exists", trip.TripID)
	}
	s.trips[trip.TripID] = trip.Clone()
	s.tripsByUser[trip.UserID] = append(s.tripsByUser[trip.UserID], trip.TripID)
	return nil
}

// GetByID retrieves a trip by id.
func (r *TripRepository) GetByID(tripID string) (*models.Trip, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	trip, ok := s.trips[tripID]
	if !ok {
		return nil, fmt.Errorf("trip %q: %w", tripID, ErrNotFound)
	}
	return trip.Clone(), nil
}

// ListByUser retrieves the trips owned by a user.
func (r *TripRepository) ListByUser(userID string) ([]*models.Trip, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.tripsByUser[userID]
	trips := make([]*models.Trip, 0, len(ids))
	for _, id := range ids {
		if trip, ok := s.trips[id]; ok {
			trips = append(trips, trip.Clone())
		}
	}
	return trips, nil
}

// Update replaces the stored trip. BookingIDs is owned by the booking
// repository; updates keep the stored list to avoid clobbering a
// concurrent attach.
func (r *TripRepository) Update(trip *models.Trip) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.trips[trip.TripID]
	if !ok {
		return fmt.Errorf("trip %q: %w", trip.TripID, ErrNotFound)
	}
	next := trip.Clone()
	next.BookingIDs = stored.BookingIDs
	s.trips[trip.TripID] = next
	return nil
}
