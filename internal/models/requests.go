package models

import (
	"fmt"
	"regexp"
	"strings"
)

var recordLocatorPattern = regexp.MustCompile(`^[A-Za-z0-9]{6,}$`)

// PassengerInput is one traveller in a booking payload.
type PassengerInput struct {
	NameFirst string  `json:"name_first"`
	NameLast  string  `json:"name_last"`
	TextName  *string `json:"text_name,omitempty"`
}

// CarSegmentInput is a supplier car segment as submitted.
type CarSegmentInput struct {
	Status             string  `json:"status,omitempty"`
	ConfirmationNumber string  `json:"confirmation_number,omitempty"`
	StartDateLocal     string  `json:"start_date_local"`
	EndDateLocal       string  `json:"end_date_local"`
	PickupLocation     string  `json:"pickup_location"`
	DropoffLocation    string  `json:"dropoff_location"`
	CarType            string  `json:"car_type,omitempty"`
	Vendor             string  `json:"vendor"`
	VendorName         string  `json:"vendor_name,omitempty"`
	Currency           string  `json:"currency"`
	TotalRate          float64 `json:"total_rate"`
}

// AirSegmentInput is a supplier air segment as submitted. The inventory
// maps are optional and normally only present on seeded segments.
type AirSegmentInput struct {
	Status             string                        `json:"status,omitempty"`
	ConfirmationNumber string                        `json:"confirmation_number,omitempty"`
	DepartureDateTime  string                        `json:"departure_datetime"`
	ArrivalDateTime    string                        `json:"arrival_datetime"`
	DepartureAirport   string                        `json:"departure_airport"`
	ArrivalAirport     string                        `json:"arrival_airport"`
	FlightNumber       string                        `json:"flight_number"`
	AircraftType       string                        `json:"aircraft_type,omitempty"`
	FareClass          string                        `json:"fare_class,omitempty"`
	IsDirect           bool                          `json:"is_direct,omitempty"`
	Vendor             string                        `json:"vendor"`
	VendorName         string                        `json:"vendor_name,omitempty"`
	Currency           string                        `json:"currency"`
	TotalRate          float64                       `json:"total_rate"`
	Baggage            *Baggage                      `json:"baggage,omitempty"`
	PricingData        map[string]map[string]float64 `json:"pricing_data,omitempty"`
	AvailabilityData   map[string]map[string]int     `json:"availability_data,omitempty"`
	OperationalStatus  map[string]string             `json:"operational_status,omitempty"`
}

// HotelSegmentInput is a supplier hotel segment as submitted.
type HotelSegmentInput struct {
	Status             string  `json:"status,omitempty"`
	ConfirmationNumber string  `json:"confirmation_number,omitempty"`
	CheckInDate        string  `json:"check_in_date"`
	CheckOutDate       string  `json:"check_out_date"`
	HotelName          string  `json:"hotel_name"`
	Location           string  `json:"location"`
	RoomType           string  `json:"room_type,omitempty"`
	MealPlan           string  `json:"meal_plan,omitempty"`
	Vendor             string  `json:"vendor"`
	VendorName         string  `json:"vendor_name,omitempty"`
	Currency           string  `json:"currency"`
	TotalRate          float64 `json:"total_rate"`
}

// SegmentsInput groups the per-type segment lists of a booking payload.
type SegmentsInput struct {
	Car   []CarSegmentInput   `json:"car,omitempty"`
	Air   []AirSegmentInput   `json:"air,omitempty"`
	Hotel []HotelSegmentInput `json:"hotel,omitempty"`
}

// BookingInput is the create-or-update booking payload. Pointer fields
// are optional; nil means the caller did not provide the field and an
// existing value is left untouched.
type BookingInput struct {
	BookingSource        string           `json:"booking_source"`
	RecordLocator        string           `json:"record_locator"`
	Passengers           []PassengerInput `json:"passengers"`
	Segments             *SegmentsInput   `json:"segments,omitempty"`
	DateBookedLocal      *string          `json:"date_booked_local,omitempty"`
	FormOfPaymentName    *string          `json:"form_of_payment_name,omitempty"`
	FormOfPaymentType    *string          `json:"form_of_payment_type,omitempty"`
	TicketMailingAddress *string          `json:"ticket_mailing_address,omitempty"`
	TicketPickupLocation *string          `json:"ticket_pickup_location,omitempty"`
	TicketPickupNumber   *string          `json:"ticket_pickup_number,omitempty"`
	Delivery             *string          `json:"delivery,omitempty"`
	Warnings             []string         `json:"warnings,omitempty"`
	Insurance            *string          `json:"insurance,omitempty"`
}

// Validate checks every field and reports all offending ones at once.
func (in *BookingInput) Validate() error {
	var fields []string

	if strings.TrimSpace(in.BookingSource) == "" {
		fields = append(fields, "booking_source is required")
	}
	if !recordLocatorPattern.MatchString(in.RecordLocator) {
		fields = append(fields, "record_locator must be at least 6 alphanumeric characters")
	}
	if len(in.Passengers) == 0 {
		fields = append(fields, "passengers must contain at least one passenger")
	}
	for i, p := range in.Passengers {
		if strings.TrimSpace(p.NameFirst) == "" {
			fields = append(fields, fmt.Sprintf("passengers[%d].name_first is required", i))
		}
		if strings.TrimSpace(p.NameLast) == "" {
			fields = append(fields, fmt.Sprintf("passengers[%d].name_last is required", i))
		}
	}
	if in.Segments != nil {
		for i, car := range in.Segments.Car {
			prefix := fmt.Sprintf("segments.car[%d]", i)
			if strings.TrimSpace(car.Vendor) == "" {
				fields = append(fields, prefix+".vendor is required")
			}
			if strings.TrimSpace(car.PickupLocation) == "" {
				fields = append(fields, prefix+".pickup_location is required")
			}
			if strings.TrimSpace(car.DropoffLocation) == "" {
				fields = append(fields, prefix+".dropoff_location is required")
			}
			if strings.TrimSpace(car.StartDateLocal) == "" {
				fields = append(fields, prefix+".start_date_local is required")
			}
			if strings.TrimSpace(car.EndDateLocal) == "" {
				fields = append(fields, prefix+".end_date_local is required")
			}
			if car.TotalRate < 0 {
				fields = append(fields, prefix+".total_rate cannot be negative")
			}
		}
		for i, air := range in.Segments.Air {
			prefix := fmt.Sprintf("segments.air[%d]", i)
			if strings.TrimSpace(air.Vendor) == "" {
				fields = append(fields, prefix+".vendor is required")
			}
			if strings.TrimSpace(air.FlightNumber) == "" {
				fields = append(fields, prefix+".flight_number is required")
			}
			if strings.TrimSpace(air.DepartureAirport) == "" {
				fields = append(fields, prefix+".departure_airport is required")
			}
			if strings.TrimSpace(air.ArrivalAirport) == "" {
				fields = append(fields, prefix+".arrival_airport is required")
			}
			if strings.TrimSpace(air.DepartureDateTime) == "" {
				fields = append(fields, prefix+".departure_datetime is required")
			}
			if strings.TrimSpace(air.ArrivalDateTime) == "" {
				fields = append(fields, prefix+".arrival_datetime is required")
			}
			if air.TotalRate < 0 {
				fields = append(fields, prefix+".total_rate cannot be negative")
			}
		}
		for i, hotel := range in.Segments.Hotel {
			prefix := fmt.Sprintf("segments.hotel[%d]", i)
			if strings.TrimSpace(hotel.Vendor) == "" {
				fields = append(fields, prefix+".vendor is required")
			}
			if strings.TrimSpace(hotel.HotelName) == "" {
				fields = append(fields, prefix+".hotel_name is required")
			}
			if strings.TrimSpace(hotel.Location) == "" {
				fields = append(fields, prefix+".location is required")
			}
			if strings.TrimSpace(hotel.CheckInDate) == "" {
				fields = append(fields, prefix+".check_in_date is required")
			}
			if strings.TrimSpace(hotel.CheckOutDate) == "" {
				fields = append(fields, prefix+".check_out_date is required")
			}
			if hotel.TotalRate < 0 {
				fields = append(fields, prefix+".total_rate cannot be negative")
			}
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// CancelBookingRequest identifies the booking to cancel. UserIDValue is
// the optional on-behalf-of caller, recorded for audit only.
type CancelBookingRequest struct {
	BookingSource      string  `json:"booking_source"`
	ConfirmationNumber string  `json:"confirmation_number"`
	UserIDValue        *string `json:"userid_value,omitempty"`
}

// Validate checks both halves of the lookup key after trimming whitespace.
func (r *CancelBookingRequest) Validate() error {
	var fields []string
	if strings.TrimSpace(r.BookingSource) == "" {
		fields = append(fields, "bookingSource cannot be empty")
	}
	if strings.TrimSpace(r.ConfirmationNumber) == "" {
		fields = append(fields, "confirmationNumber cannot be empty")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// FlightUpdate is one requested flight in a flight-update payload.
// Origin, Destination and Price only matter when the flight does not
// match an existing segment.
type FlightUpdate struct {
	FlightNumber string   `json:"flight_number"`
	Date         string   `json:"date"`
	Origin       *string  `json:"origin,omitempty"`
	Destination  *string  `json:"destination,omitempty"`
	Price        *float64 `json:"price,omitempty"`
}

// FlightUpdateRequest replaces the air segments of a booking.
type FlightUpdateRequest struct {
	BookingSource      string         `json:"booking_source"`
	ConfirmationNumber string         `json:"confirmation_number"`
	FareClass          string         `json:"fare_class"`
	Flights            []FlightUpdate `json:"flights"`
	PaymentID          string         `json:"payment_id"`
}

// Validate checks the request shape. Flight existence and pricing are
// resolved by the workflow.
func (r *FlightUpdateRequest) Validate() error {
	var fields []string
	if strings.TrimSpace(r.BookingSource) == "" {
		fields = append(fields, "booking_source cannot be empty")
	}
	if strings.TrimSpace(r.ConfirmationNumber) == "" {
		fields = append(fields, "confirmation_number cannot be empty")
	}
	if strings.TrimSpace(r.FareClass) == "" {
		fields = append(fields, "fare_class cannot be empty")
	}
	if strings.TrimSpace(r.PaymentID) == "" {
		fields = append(fields, "payment_id cannot be empty")
	}
	if len(r.Flights) == 0 {
		fields = append(fields, "flights must contain at least one flight")
	}
	for i, f := range r.Flights {
		if strings.TrimSpace(f.FlightNumber) == "" {
			fields = append(fields, fmt.Sprintf("flights[%d].flight_number is required", i))
		}
		if strings.TrimSpace(f.Date) == "" {
			fields = append(fields, fmt.Sprintf("flights[%d].date is required", i))
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// BaggageUpdateRequest sets the checked-baggage counts of a booking's
// air segments. PaymentID is only required when paid bags are added.
type BaggageUpdateRequest struct {
	BookingSource      string  `json:"booking_source"`
	ConfirmationNumber string  `json:"confirmation_number"`
	TotalBaggages      int     `json:"total_baggages"`
	NonfreeBaggages    int     `json:"nonfree_baggages"`
	PaymentID          *string `json:"payment_id,omitempty"`
}

// Validate checks counts and the lookup key.
func (r *BaggageUpdateRequest) Validate() error {
	var fields []string
	if strings.TrimSpace(r.BookingSource) == "" {
		fields = append(fields, "booking_source cannot be empty")
	}
	if strings.TrimSpace(r.ConfirmationNumber) == "" {
		fields = append(fields, "confirmation_number cannot be empty")
	}
	if r.TotalBaggages < 0 {
		fields = append(fields, "total_baggages cannot be negative")
	}
	if r.NonfreeBaggages < 0 {
		fields = append(fields, "nonfree_baggages cannot be negative")
	}
	if r.NonfreeBaggages > r.TotalBaggages {
		fields = append(fields, "nonfree_baggages cannot exceed total_baggages")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// PassengerUpdate is one traveller in a passenger-replacement payload.
type PassengerUpdate struct {
	NameFirst   string  `json:"name_first"`
	NameLast    string  `json:"name_last"`
	TextName    *string `json:"text_name,omitempty"`
	PaxType     *string `json:"pax_type,omitempty"`
	DateOfBirth *string `json:"dob,omitempty"`
}

// PassengerUpdateRequest replaces the passenger roster of a booking.
type PassengerUpdateRequest struct {
	BookingSource      string            `json:"booking_source"`
	ConfirmationNumber string            `json:"confirmation_number"`
	Passengers         []PassengerUpdate `json:"passengers"`
}

// Validate checks the lookup key and each replacement passenger.
func (r *PassengerUpdateRequest) Validate() error {
	var fields []string
	if strings.TrimSpace(r.BookingSource) == "" {
		fields = append(fields, "booking_source cannot be empty")
	}
	if strings.TrimSpace(r.ConfirmationNumber) == "" {
		fields = append(fields, "confirmation_number cannot be empty")
	}
	if len(r.Passengers) == 0 {
		fields = append(fields, "passengers must contain at least one passenger")
	}
	for i, p := range r.Passengers {
		if strings.TrimSpace(p.NameFirst) == "" {
			fields = append(fields, fmt.Sprintf("passengers[%d].name_first is required", i))
		}
		if strings.TrimSpace(p.NameLast) == "" {
			fields = append(fields, fmt.Sprintf("passengers[%d].name_last is required", i))
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// TripInput is the create-trip payload.
type TripInput struct {
	TripName           string `json:"trip_name"`
	StartDate          string `json:"start_date,omitempty"`
	EndDate            string `json:"end_date,omitempty"`
	DestinationSummary string `json:"destination_summary,omitempty"`
	BookingType        string `json:"booking_type,omitempty"`
	IsVirtualTrip      bool   `json:"is_virtual_trip,omitempty"`
	IsGuestBooking     bool   `json:"is_guest_booking,omitempty"`
}

// Validate checks the trip payload.
func (in *TripInput) Validate() error {
	if strings.TrimSpace(in.TripName) == "" {
		return &ValidationError{Fields: []string{"trip_name is required"}}
	}
	return nil
}

// UserInput is the create-user payload.
type UserInput struct {
	UserName    string `json:"user_name"`
	GivenName   string `json:"given_name"`
	FamilyName  string `json:"family_name"`
	Email       string `json:"email,omitempty"`
	Locale      string `json:"locale,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
	DateOfBirth string `json:"dob,omitempty"`
}

// Validate checks the user payload.
func (in *UserInput) Validate() error {
	var fields []string
	if strings.TrimSpace(in.UserName) == "" {
		fields = append(fields, "user_name is required")
	}
	if strings.TrimSpace(in.GivenName) == "" {
		fields = append(fields, "given_name is required")
	}
	if strings.TrimSpace(in.FamilyName) == "" {
		fields = append(fields, "family_name is required")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// PaymentMethodInput adds a stored card to a user profile.
type PaymentMethodInput struct {
	Source   string `json:"source"`
	Brand    string `json:"brand,omitempty"`
	LastFour string `json:"last_four,omitempty"`
}

// Validate checks the payment-method payload.
func (in *PaymentMethodInput) Validate() error {
	if strings.TrimSpace(in.Source) == "" {
		return &ValidationError{Fields: []string{"source is required"}}
	}
	return nil
}

// LocationInput is the create-location payload.
type LocationInput struct {
	Name          string   `json:"name"`
	City          string   `json:"city,omitempty"`
	CountryCode   string   `json:"country_code,omitempty"`
	StateProvince string   `json:"state_province,omitempty"`
	PostalCode    string   `json:"postal_code,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	LocationType  string   `json:"location_type,omitempty"`
}

// Validate checks the location payload.
func (in *LocationInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return &ValidationError{Fields: []string{"name is required"}}
	}
	return nil
}
