package store

import "github.com/smarttravel/travel-booking-backend/internal/models"

// NotificationRepository handles queued user notifications.
type NotificationRepository struct {
	store *Store
}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository(store *Store) *NotificationRepository {
	return &NotificationRepository{store: store}
}

// Add stores a notification.
func (r *NotificationRepository) Add(notification *models.Notification) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	n := *notification
	s.notifications[notification.ID] = &n
	return nil
}

// ListByUser returns the notifications queued for a user.
func (r *NotificationRepository) ListByUser(userID string) ([]*models.Notification, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []*models.Notification
	for _, notification := range s.notifications {
		if notification.UserID == userID {
			n := *notification
			results = append(results, &n)
		}
	}
	return results, nil
}
