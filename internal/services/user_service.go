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

// UserService manages traveller profiles and their stored cards.
type UserService struct {
	users  *store.UserRepository
	logger *logrus.Logger
}

// NewUserService creates a new UserService.
func NewUserService(users *store.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// CreateUser creates an active user profile.
func (s *UserService) CreateUser(input models.UserInput) (*models.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:             uuid.New().String(),
		UserName:       input.UserName,
		GivenName:      input.GivenName,
		FamilyName:     input.FamilyName,
		Email:          input.Email,
		Locale:         input.Locale,
		Timezone:       input.Timezone,
		DateOfBirth:    input.DateOfBirth,
		Active:         true,
		PaymentMethods: make(map[string]models.PaymentMethod),
		CreatedAt:      now,
		LastModified:   now,
	}
	if err := s.users.Insert(user); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":   user.ID,
		"user_name": user.UserName,
	}).Info("User created")
	return user, nil
}

// GetUser retrieves a user by id.
func (s *UserService) GetUser(userID string) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &models.UserNotFoundError{Message: fmt.Sprintf("User with ID %s not found.", userID)}
		}
		return nil, err
	}
	return user, nil
}

// AddPaymentMethod stores a card on a user profile.
func (s *UserService) AddPaymentMethod(userID string, input models.PaymentMethodInput) (*models.PaymentMethod, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &models.UserNotFoundError{Message: fmt.Sprintf("User with ID %s not found.", userID)}
		}
		return nil, err
	}

	method := models.PaymentMethod{
		ID:       uuid.New().String(),
		Source:   input.Source,
		Brand:    input.Brand,
		LastFour: input.LastFour,
	}
	if user.PaymentMethods == nil {
		user.PaymentMethods = make(map[string]models.PaymentMethod)
	}
	user.PaymentMethods[method.ID] = method
	user.LastModified = time.Now().UTC()

	if err := s.users.Update(user); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":           userID,
		"payment_method_id": method.ID,
	}).Info("Payment method added")
	return &method, nil
}
