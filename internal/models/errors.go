package models

import (
	"fmt"
	"strings"
)

// ValidationError reports one or more invalid input fields. When several
// fields are wrong they are all listed in a single message.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "Input validation failed: " + strings.Join(e.Fields, "; ")
}

// NewValidationError creates a single-message validation error.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// BookingNotFoundError is returned when no booking matches the lookup key.
// When both halves of the key are known the message names them both.
type BookingNotFoundError struct {
	BookingSource      string
	ConfirmationNumber string
	Message            string
}

func (e *BookingNotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf(
		"The booking specified by the combination of booking_source '%s' and confirmation_number '%s' could not be found in the system.",
		e.BookingSource, e.ConfirmationNumber,
	)
}

// TripNotFoundError is returned when the target trip is missing or not
// in a bookable state.
type TripNotFoundError struct {
	Message string
}

func (e *TripNotFoundError) Error() string {
	return e.Message
}

// UserNotFoundError is returned when a user lookup fails.
type UserNotFoundError struct {
	Message string
}

func (e *UserNotFoundError) Error() string {
	return e.Message
}

// BookingConflictError is returned when a booking exists but is in a
// state that forbids the requested mutation.
type BookingConflictError struct {
	Message string
}

func (e *BookingConflictError) Error() string {
	return e.Message
}

// ReservationAlreadyCancelledError is returned when cancellation is
// requested for a booking that is already cancelled.
type ReservationAlreadyCancelledError struct {
	BookingSource      string
	ConfirmationNumber string
}

func (e *ReservationAlreadyCancelledError) Error() string {
	return fmt.Sprintf(
		"The booking specified by the combination of booking_source '%s' and confirmation_number '%s' is already cancelled.",
		e.BookingSource, e.ConfirmationNumber,
	)
}

// SeatsUnavailableError is returned when a requested flight has seat
// inventory recorded but none for the requested cabin and date.
type SeatsUnavailableError struct {
	FlightNumber string
}

func (e *SeatsUnavailableError) Error() string {
	return fmt.Sprintf("Not enough seats on flight '%s'.", e.FlightNumber)
}
