package models

import "time"

// TripStatus represents the lifecycle state of a trip.
type TripStatus string

const (
	TripStatusConfirmed       TripStatus = "CONFIRMED"
	TripStatusPendingApproval TripStatus = "PENDING_APPROVAL"
	TripStatusCanceled        TripStatus = "CANCELED"
	TripStatusCompleted       TripStatus = "COMPLETED"
)

// Trip groups the bookings of one itinerary for one user.
type Trip struct {
	TripID             string     `json:"trip_id"`
	TripName           string     `json:"trip_name,omitempty"`
	UserID             string     `json:"user_id"`
	Status             TripStatus `json:"status"`
	StartDate          string     `json:"start_date,omitempty"`
	EndDate            string     `json:"end_date,omitempty"`
	DestinationSummary string     `json:"destination_summary,omitempty"`
	BookingIDs         []string   `json:"booking_ids"`
	BookingType        string     `json:"booking_type,omitempty"`
	IsCanceled         bool       `json:"is_canceled"`
	IsVirtualTrip      bool       `json:"is_virtual_trip"`
	IsGuestBooking     bool       `json:"is_guest_booking"`
	CreatedDate        time.Time  `json:"created_date"`
	LastModifiedDate   time.Time  `json:"last_modified_date"`
}

// IsActive reports whether the trip can accept new or updated bookings.
func (t *Trip) IsActive() bool {
	return t.Status == TripStatusConfirmed || t.Status == TripStatusPendingApproval
}

// HasBooking reports whether the booking id is already attached.
func (t *Trip) HasBooking(bookingID string) bool {
	for _, id := range t.BookingIDs {
		if id == bookingID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the trip.
func (t *Trip) Clone() *Trip {
	out := *t
	if t.BookingIDs != nil {
		out.BookingIDs = make([]string, len(t.BookingIDs))
		copy(out.BookingIDs, t.BookingIDs)
	}
	return &out
}
