package store

import (
	"fmt"
	"strings"

	"github.com/smarttravel/travel-booking-backend/internal/models"
)

// LocationRepository handles location storage and filtered search.
type LocationRepository struct {
	store *Store
}

// NewLocationRepository creates a new LocationRepository.
func NewLocationRepository(store *Store) *LocationRepository {
	return &LocationRepository{store: store}
}

// Insert stores a new location.
func (r *LocationRepository) Insert(location *models.Location) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.locations[location.ID]; exists {
		return fmt.Errorf("location %q already exists", location.ID)
	}
	loc := *location
	s.locations[location.ID] = &loc
	return nil
}

// Find returns active locations matching every non-empty filter.
// Name and city match as case-insensitive substrings, country code as an
// exact case-insensitive match.
func (r *LocationRepository) Find(name, city, countryCode string) ([]*models.Location, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	name = strings.ToLower(strings.TrimSpace(name))
	city = strings.ToLower(strings.TrimSpace(city))
	countryCode = strings.ToLower(strings.TrimSpace(countryCode))

	var results []*models.Location
	for _, location := range s.locations {
		if !location.IsActive {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(location.Name), name) {
			continue
		}
		if city != "" && !strings.Contains(strings.ToLower(location.City), city) {
			continue
		}
		if countryCode != "" && strings.ToLower(location.CountryCode) != countryCode {
			continue
		}
		loc := *location
		results = append(results, &loc)
	}
	return results, nil
}
