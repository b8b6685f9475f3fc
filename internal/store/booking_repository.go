package store

import (
	"fmt"

	"github.com/smarttravel/travel-booking-backend/internal/models"
)

// BookingRepository handles booking storage and the indices derived from
// bookings. Lookups return deep copies; callers mutate the copy and
// commit it back with Update.
type BookingRepository struct {
	store *Store
}

// NewBookingRepository creates a new BookingRepository.
func NewBookingRepository(store *Store) *BookingRepository {
	return &BookingRepository{store: store}
}

// Insert stores a new booking and registers it in the locator index, the
// trip index and the owning trip's booking list, all under one lock.
func (r *BookingRepository) Insert(booking *models.Booking) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.bookingByLocator[booking.RecordLocator]; exists {
		return fmt.Errorf("locator %q: %w", booking.RecordLocator, ErrDuplicateLocator)
	}
	if _, exists := s.bookings[booking.BookingID]; exists {
		return fmt.Errorf("booking %q already exists", booking.BookingID)
	}

	s.bookings[booking.BookingID] = booking.Clone()
	s.bookingByLocator[booking.RecordLocator] = booking.BookingID
	s.bookingsByTrip[booking.TripID] = append(s.bookingsByTrip[booking.TripID], booking.BookingID)
	if trip, ok := s.trips[booking.TripID]; ok && !trip.HasBooking(booking.BookingID) {
		trip.BookingIDs = append(trip.BookingIDs, booking.BookingID)
	}
	return nil
}

// GetByID retrieves a booking by id.
func (r *BookingRepository) GetByID(bookingID string) (*models.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.bookings[bookingID]
	if !ok {
		return nil, fmt.Errorf("booking %q: %w", bookingID, ErrNotFound)
	}
	return booking.Clone(), nil
}

// GetByLocator retrieves a booking by record locator. An index entry
// whose booking no longer exists degrades to not-found instead of
// surfacing the dangling id.
func (r *BookingRepository) GetByLocator(locator string) (*models.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookingID, ok := s.bookingByLocator[locator]
	if !ok {
		return nil, fmt.Errorf("locator %q: %w", locator, ErrNotFound)
	}
	booking, ok := s.bookings[bookingID]
	if !ok {
		return nil, fmt.Errorf("locator %q: %w", locator, ErrNotFound)
	}
	return booking.Clone(), nil
}

// ListByTrip retrieves the bookings attached to a trip.
func (r *BookingRepository) ListByTrip(tripID string) ([]*models.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.bookingsByTrip[tripID]
	bookings := make([]*models.Booking, 0, len(ids))
	for _, id := range ids {
		if booking, ok := s.bookings[id]; ok {
			bookings = append(bookings, booking.Clone())
		}
	}
	return bookings, nil
}

// Update replaces the stored booking with the given state.
func (r *BookingRepository) Update(booking *models.Booking) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[booking.BookingID]; !ok {
		return fmt.Errorf("booking %q: %w", booking.BookingID, ErrNotFound)
	}
	s.bookings[booking.BookingID] = booking.Clone()
	return nil
}

// Rehome moves a booking from one trip to another, updating the stored
// booking, both trip indices and both trips' booking lists atomically.
func (r *BookingRepository) Rehome(bookingID, oldTripID, newTripID string) error {
	if oldTripID == newTripID {
		return nil
	}
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[bookingID]
	if !ok {
		return fmt.Errorf("booking %q: %w", bookingID, ErrNotFound)
	}

	booking.TripID = newTripID
	s.bookingsByTrip[oldTripID] = removeID(s.bookingsByTrip[oldTripID], bookingID)
	if len(s.bookingsByTrip[oldTripID]) == 0 {
		delete(s.bookingsByTrip, oldTripID)
	}
	s.bookingsByTrip[newTripID] = append(s.bookingsByTrip[newTripID], bookingID)

	if trip, ok := s.trips[oldTripID]; ok {
		trip.BookingIDs = removeID(trip.BookingIDs, bookingID)
	}
	if trip, ok := s.trips[newTripID]; ok && !trip.HasBooking(bookingID) {
		trip.BookingIDs = append(trip.BookingIDs, bookingID)
	}
	return nil
}
