package models

import "time"

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusIssued    BookingStatus = "ISSUED"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusUpdated   BookingStatus = "UPDATED"
)

// PaymentType classifies an entry in the booking's payment ledger.
type PaymentType string

const (
	PaymentTypeBooking      PaymentType = "booking"
	PaymentTypeRefund       PaymentType = "refund"
	PaymentTypeBaggage      PaymentType = "baggage"
	PaymentTypeFlightChange PaymentType = "flight_change"
)

// PaymentEntry is one append-only row of the payment ledger. Refunds
// carry a negated amount and reuse the payment id of the original charge.
type PaymentEntry struct {
	PaymentID string      `json:"payment_id"`
	Amount    float64     `json:"amount"`
	Timestamp time.Time   `json:"timestamp"`
	Type      PaymentType `json:"type"`
}

// Passenger is one traveller on a booking.
type Passenger struct {
	NameFirst   string `json:"name_first"`
	NameLast    string `json:"name_last"`
	TextName    string `json:"text_name,omitempty"`
	PaxType     string `json:"pax_type,omitempty"`
	DateOfBirth string `json:"dob,omitempty"`
}

// Booking is a supplier reservation attached to a trip. RecordLocator is
// globally unique; BookingSource plus RecordLocator is the caller-facing
// lookup key.
type Booking struct {
	BookingID            string         `json:"booking_id"`
	BookingSource        string         `json:"booking_source"`
	RecordLocator        string         `json:"record_locator"`
	TripID               string         `json:"trip_id"`
	Status               BookingStatus  `json:"status"`
	Passengers           []Passenger    `json:"passengers"`
	Segments             []Segment      `json:"segments"`
	PaymentHistory       []PaymentEntry `json:"payment_history,omitempty"`
	Warnings             []string       `json:"warnings,omitempty"`
	Insurance            string         `json:"insurance,omitempty"`
	DateBookedLocal      *time.Time     `json:"date_booked_local,omitempty"`
	FormOfPaymentName    string         `json:"form_of_payment_name,omitempty"`
	FormOfPaymentType    string         `json:"form_of_payment_type,omitempty"`
	TicketMailingAddress string         `json:"ticket_mailing_address,omitempty"`
	TicketPickupLocation string         `json:"ticket_pickup_location,omitempty"`
	TicketPickupNumber   string         `json:"ticket_pickup_number,omitempty"`
	Delivery             string         `json:"delivery,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
	LastModified         time.Time      `json:"last_modified"`
}

// IsCancelled reports whether the booking has been cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// AirSegments returns pointers to the booking's air segments in order.
func (b *Booking) AirSegments() []*Segment {
	var air []*Segment
	for i := range b.Segments {
		if b.Segments[i].Type == SegmentTypeAir {
			air = append(air, &b.Segments[i])
		}
	}
	return air
}

// SegmentsTotalRate sums the rate of every segment on the booking.
func (b *Booking) SegmentsTotalRate() float64 {
	var total float64
	for i := range b.Segments {
		total += b.Segments[i].TotalRate
	}
	return total
}

// OriginalBookingPayment returns the first ledger entry of type "booking",
// or nil when the booking was never charged.
func (b *Booking) OriginalBookingPayment() *PaymentEntry {
	for i := range b.PaymentHistory {
		if b.PaymentHistory[i].Type == PaymentTypeBooking {
			return &b.PaymentHistory[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the booking. Mutation workflows operate on
// a clone and commit it back in one repository call, so a failed workflow
// never leaves a half-written booking behind.
func (b *Booking) Clone() *Booking {
	out := *b
	if b.Passengers != nil {
		out.Passengers = make([]Passenger, len(b.Passengers))
		copy(out.Passengers, b.Passengers)
	}
	if b.Segments != nil {
		out.Segments = make([]Segment, len(b.Segments))
		for i := range b.Segments {
			out.Segments[i] = b.Segments[i].Clone()
		}
	}
	if b.PaymentHistory != nil {
		out.PaymentHistory = make([]PaymentEntry, len(b.PaymentHistory))
		copy(out.PaymentHistory, b.PaymentHistory)
	}
	if b.Warnings != nil {
		out.Warnings = make([]string, len(b.Warnings))
		copy(out.Warnings, b.Warnings)
	}
	if b.DateBookedLocal != nil {
		booked := *b.DateBookedLocal
		out.DateBookedLocal = &booked
	}
	return &out
}
