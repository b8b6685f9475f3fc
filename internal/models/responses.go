package models

import "time"

// SimplePassenger is the reduced passenger projection of a reservation
// detail response.
type SimplePassenger struct {
	NameFirst   string `json:"name_first"`
	NameLast    string `json:"name_last"`
	DateOfBirth string `json:"dob,omitempty"`
}

// ReservationDetails is the read-only projection returned by the
// reservation lookup. UserID is the login name of the trip owner.
type ReservationDetails struct {
	BookingID         string            `json:"booking_id"`
	UserID            string            `json:"user_id,omitempty"`
	BookingSource     string            `json:"booking_source"`
	RecordLocator     string            `json:"record_locator"`
	TripID            string            `json:"trip_id"`
	Status            BookingStatus     `json:"status"`
	Passengers        []SimplePassenger `json:"passengers"`
	Segments          []Segment         `json:"segments"`
	PaymentHistory    []PaymentEntry    `json:"payment_history,omitempty"`
	Warnings          []string          `json:"warnings,omitempty"`
	Insurance         string            `json:"insurance,omitempty"`
	DateBookedLocal   *time.Time        `json:"date_booked_local,omitempty"`
	FormOfPaymentName string            `json:"form_of_payment_name,omitempty"`
	FormOfPaymentType string            `json:"form_of_payment_type,omitempty"`
	Delivery          string            `json:"delivery,omitempty"`
	LastModified      time.Time         `json:"last_modified"`
}

// SegmentConfirmation is one segment in a booking confirmation. Details
// carries the type-specific fields with empty values stripped.
type SegmentConfirmation struct {
	SegmentID          string         `json:"segment_id"`
	SegmentType        SegmentType    `json:"segment_type"`
	Status             SegmentStatus  `json:"status"`
	ConfirmationNumber string         `json:"confirmation_number,omitempty"`
	Details            map[string]any `json:"details"`
}

// PassengerConfirmation is one traveller in a mutation response. The id
// is freshly minted per response.
type PassengerConfirmation struct {
	PassengerID string `json:"passenger_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	TextName    string `json:"text_name,omitempty"`
	DateOfBirth string `json:"dob,omitempty"`
}

// BookingConfirmation is the response of create-or-update booking.
type BookingConfirmation struct {
	BookingID     string                  `json:"booking_id"`
	TripID        string                  `json:"trip_id"`
	BookingSource string                  `json:"booking_source"`
	RecordLocator string                  `json:"record_locator"`
	Status        BookingStatus           `json:"status"`
	Passengers    []PassengerConfirmation `json:"passengers"`
	Segments      []SegmentConfirmation   `json:"segments"`
	Insurance     string                  `json:"insurance,omitempty"`
	LastModified  time.Time               `json:"last_modified"`
}

// CancelConfirmation is the response of a successful cancellation.
type CancelConfirmation struct {
	Success            bool          `json:"success"`
	Message            string        `json:"message"`
	BookingID          string        `json:"booking_id"`
	BookingSource      string        `json:"booking_source"`
	ConfirmationNumber string        `json:"confirmation_number"`
	Status             BookingStatus `json:"status"`
	CancelledAt        time.Time     `json:"cancelled_at"`
}

// PaymentSummary reports the ledger entry a mutation appended.
type PaymentSummary struct {
	PaymentID string      `json:"payment_id"`
	Amount    float64     `json:"amount"`
	Type      PaymentType `json:"type"`
}

// FlightResult is one resolved flight in a flight-update response.
type FlightResult struct {
	FlightNumber string  `json:"flight_number"`
	Date         string  `json:"date"`
	Origin       string  `json:"origin"`
	Destination  string  `json:"destination"`
	Price        float64 `json:"price"`
}

// FlightUpdateResult is the response of update-reservation-flights.
// Payment is null when the fare difference was zero.
type FlightUpdateResult struct {
	BookingID          string          `json:"booking_id"`
	BookingSource      string          `json:"booking_source"`
	ConfirmationNumber string          `json:"confirmation_number"`
	Status             string          `json:"status"`
	FareClass          string          `json:"fare_class"`
	Flights            []FlightResult  `json:"flights"`
	Payment            *PaymentSummary `json:"payment"`
	LastModified       time.Time       `json:"last_modified"`
}

// BaggageSummary reports the counts now applied to the air segments.
type BaggageSummary struct {
	TotalBaggages   int `json:"total_baggages"`
	NonfreeBaggages int `json:"nonfree_baggages"`
}

// BaggageUpdateResult is the response of update-reservation-baggages.
type BaggageUpdateResult struct {
	BookingID          string          `json:"booking_id"`
	BookingSource      string          `json:"booking_source"`
	ConfirmationNumber string          `json:"confirmation_number"`
	Status             string          `json:"status"`
	Baggage            BaggageSummary  `json:"baggage"`
	Payment            *PaymentSummary `json:"payment,omitempty"`
	LastModified       time.Time       `json:"last_modified"`
}

// PassengerUpdateResult is the response of update-reservation-passengers.
type PassengerUpdateResult struct {
	BookingID          string                  `json:"booking_id"`
	BookingSource      string                  `json:"booking_source"`
	ConfirmationNumber string                  `json:"confirmation_number"`
	Status             string                  `json:"status"`
	Passengers         []PassengerConfirmation `json:"passengers"`
	LastModified       time.Time               `json:"last_modified"`
}
