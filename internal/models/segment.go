package models

import "time"

// SegmentType identifies which detail block a segment carries.
type SegmentType string

const (
	SegmentTypeAir   SegmentType = "AIR"
	SegmentTypeCar   SegmentType = "CAR"
	SegmentTypeHotel SegmentType = "HOTEL"
)

// SegmentStatus represents the supplier-facing state of a segment.
type SegmentStatus string

const (
	SegmentStatusConfirmed  SegmentStatus = "CONFIRMED"
	SegmentStatusWaitlisted SegmentStatus = "WAITLISTED"
	SegmentStatusCancelled  SegmentStatus = "CANCELLED"
)

// Baggage is the checked-baggage allowance attached to an air segment.
type Baggage struct {
	Count        int `json:"count"`
	WeightKg     int `json:"weight_kg"`
	NonfreeCount int `json:"nonfree_count"`
}

// AirDetails holds the air-specific fields of a segment. PricingData,
// AvailabilityData and OperationalStatus are keyed by YYYY-MM-DD date.
type AirDetails struct {
	DepartureAirport  string                        `json:"departure_airport"`
	ArrivalAirport    string                        `json:"arrival_airport"`
	FlightNumber      string                        `json:"flight_number"`
	AircraftType      string                        `json:"aircraft_type,omitempty"`
	FareClass         string                        `json:"fare_class,omitempty"`
	IsDirect          bool                          `json:"is_direct"`
	Baggage           Baggage                       `json:"baggage"`
	PricingData       map[string]map[string]float64 `json:"pricing_data,omitempty"`
	AvailabilityData  map[string]map[string]int     `json:"availability_data,omitempty"`
	OperationalStatus map[string]string             `json:"operational_status,omitempty"`
}

// CarDetails holds the car-rental fields of a segment.
type CarDetails struct {
	PickupLocation  string `json:"pickup_location"`
	DropoffLocation string `json:"dropoff_location"`
	CarType         string `json:"car_type,omitempty"`
}

// HotelDetails holds the hotel-stay fields of a segment.
type HotelDetails struct {
	HotelName string `json:"hotel_name"`
	Location  string `json:"location"`
	RoomType  string `json:"room_type,omitempty"`
	MealPlan  string `json:"meal_plan,omitempty"`
}

// Segment is a tagged variant: the common fields always apply and exactly
// one of Air, Car or Hotel is non-nil, selected by Type.
type Segment struct {
	SegmentID          string        `json:"segment_id"`
	Type               SegmentType   `json:"segment_type"`
	Status             SegmentStatus `json:"status"`
	ConfirmationNumber string        `json:"confirmation_number,omitempty"`
	StartDate          time.Time     `json:"start_date"`
	EndDate            time.Time     `json:"end_date"`
	Vendor             string        `json:"vendor,omitempty"`
	VendorName         string        `json:"vendor_name,omitempty"`
	Currency           string        `json:"currency,omitempty"`
	TotalRate          float64       `json:"total_rate"`
	Air                *AirDetails   `json:"air,omitempty"`
	Car                *CarDetails   `json:"car,omitempty"`
	Hotel              *HotelDetails `json:"hotel,omitempty"`
}

// DateKey returns the calendar-date part of the segment start, the key
// used for flight matching and inventory lookups.
func (s *Segment) DateKey() string {
	return s.StartDate.Format("2006-01-02")
}

// Clone returns a deep copy of the segment.
func (s *Segment) Clone() Segment {
	out := *s
	if s.Air != nil {
		air := *s.Air
		if s.Air.PricingData != nil {
			air.PricingData = make(map[string]map[string]float64, len(s.Air.PricingData))
			for date, cabins := range s.Air.PricingData {
				inner := make(map[string]float64, len(cabins))
				for cabin, price := range cabins {
					inner[cabin] = price
				}
				air.PricingData[date] = inner
			}
		}
		if s.Air.AvailabilityData != nil {
			air.AvailabilityData = make(map[string]map[string]int, len(s.Air.AvailabilityData))
			for date, cabins := range s.Air.AvailabilityData {
				inner := make(map[string]int, len(cabins))
				for cabin, seats := range cabins {
					inner[cabin] = seats
				}
				air.AvailabilityData[date] = inner
			}
		}
		if s.Air.OperationalStatus != nil {
			air.OperationalStatus = make(map[string]string, len(s.Air.OperationalStatus))
			for date, status := range s.Air.OperationalStatus {
				air.OperationalStatus[date] = status
			}
		}
		out.Air = &air
	}
	if s.Car != nil {
		car := *s.Car
		out.Car = &car
	}
	if s.Hotel != nil {
		hotel := *s.Hotel
		out.Hotel = &hotel
	}
	return out
}
