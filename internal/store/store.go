// Package store holds the process-lifetime entity store and the
// repositories that operate on it. All index maintenance (locator,
// bookings-by-trip, trips-by-user) happens inside repository methods
// under the store lock, so readers never observe a half-updated index.
package store

import (
	"errors"
	"sync"

	"github.com/smarttravel/travel-booking-backend/internal/models"
)

// ErrNotFound is returned by repository lookups that match nothing.
var ErrNotFound = errors.New("not found")

// ErrDuplicateLocator is returned when an insert would reuse a record
// locator that already maps to another booking.
var ErrDuplicateLocator = errors.New("record locator already in use")

// Store is the shared in-memory database. mu guards every collection and
// index; locatorLocks hands out one mutex per record locator so that a
// whole read-modify-write workflow runs exclusively for its booking.
type Store struct {
	mu sync.RWMutex

	users         map[string]*models.User
	trips         map[string]*models.Trip
	bookings      map[string]*models.Booking
	locations     map[string]*models.Location
	notifications map[string]*models.Notification

	bookingByLocator map[string]string
	bookingsByTrip   map[string][]string
	tripsByUser      map[string][]string

	lockMu       sync.Mutex
	locatorLocks map[string]*sync.Mutex
}

// New creates an empty store.
func New() *Store {
	return &Store{
		users:            make(map[string]*models.User),
		trips:            make(map[string]*models.Trip),
		bookings:         make(map[string]*models.Booking),
		locations:        make(map[string]*models.Location),
		notifications:    make(map[string]*models.Notification),
		bookingByLocator: make(map[string]string),
		bookingsByTrip:   make(map[string][]string),
		tripsByUser:      make(map[string][]string),
		locatorLocks:     make(map[string]*sync.Mutex),
	}
}

// LockLocator acquires the per-locator mutex and returns it locked.
// Callers must defer Unlock. Mutexes are created on first use and kept
// for the process lifetime, matching the store itself.
func (s *Store) LockLocator(locator string) *sync.Mutex {
	s.lockMu.Lock()
	m, ok := s.locatorLocks[locator]
	if !ok {
		m = &sync.Mutex{}
		s.locatorLocks[locator] = m
	}
	s.lockMu.Unlock()

	m.Lock()
	return m
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
