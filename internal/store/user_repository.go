package store

import (
	"fmt"

	"github.com/smarttravel/travel-booking-backend/internal/models"
)

// UserRepository handles user storage.
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// Insert stores a new user. User names are unique.
func (r *UserRepository) Insert(user *models.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.ID]; exists {
		return fmt.Errorf("user %q already exists", user.ID)
	}
	for _, existing := range s.users {
		if existing.UserName == user.UserName {
			return fmt.Errorf("user name %q already taken", user.UserName)
		}
	}
	s.users[user.ID] = user.Clone()
	return nil
}

// GetByID retrieves a user by id.
func (r *UserRepository) GetByID(userID string) (*models.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", userID, ErrNotFound)
	}
	return user.Clone(), nil
}

// Update replaces the stored user.
func (r *UserRepository) Update(user *models.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return fmt.Errorf("user %q: %w", user.ID, ErrNotFound)
	}
	s.users[user.ID] = user.Clone()
	return nil
}
