package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smarttravel/travel-booking-backend/internal/models"
	"github.com/smarttravel/travel-booking-backend/pkg/cabin"
)

var segmentTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseSegmentTime parses the date-time formats suppliers send. The bare
// date layout resolves to midnight.
func parseSegmentTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range segmentTimeLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, models.NewValidationError(fmt.Sprintf("Invalid datetime format: '%s'", value))
}

// mapSegmentStatus validates a supplier status. Empty defaults to
// CONFIRMED and PENDING is recorded as WAITLISTED.
func mapSegmentStatus(raw string) (models.SegmentStatus, error) {
	if strings.TrimSpace(raw) == "" {
		return models.SegmentStatusConfirmed, nil
	}
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "CONFIRMED":
		return models.SegmentStatusConfirmed, nil
	case "WAITLISTED", "PENDING":
		return models.SegmentStatusWaitlisted, nil
	case "CANCELLED":
		return models.SegmentStatusCancelled, nil
	default:
		return "", models.NewValidationError("Invalid segment status: " + raw)
	}
}

// MapCarSegment converts a supplier car segment into the stored form.
func MapCarSegment(in models.CarSegmentInput) (models.Segment, error) {
	status, err := mapSegmentStatus(in.Status)
	if err != nil {
		return models.Segment{}, err
	}
	start, err := parseSegmentTime(in.StartDateLocal)
	if err != nil {
		return models.Segment{}, err
	}
	end, err := parseSegmentTime(in.EndDateLocal)
	if err != nil {
		return models.Segment{}, err
	}
	return models.Segment{
		SegmentID:          uuid.New().String(),
		Type:               models.SegmentTypeCar,
		Status:             status,
		ConfirmationNumber: in.ConfirmationNumber,
		StartDate:          start,
		EndDate:            end,
		Vendor:             in.Vendor,
		VendorName:         in.VendorName,
		Currency:           in.Currency,
		TotalRate:          in.TotalRate,
		Car: &models.CarDetails{
			PickupLocation:  in.PickupLocation,
			DropoffLocation: in.DropoffLocation,
			CarType:         in.CarType,
		},
	}, nil
}

// MapAirSegment converts a supplier air segment into the stored form.
// The fare class is stored as the carrier letter.
func MapAirSegment(in models.AirSegmentInput) (models.Segment, error) {
	status, err := mapSegmentStatus(in.Status)
	if err != nil {
		return models.Segment{}, err
	}
	departure, err := parseSegmentTime(in.DepartureDateTime)
	if err != nil {
		return models.Segment{}, err
	}
	arrival, err := parseSegmentTime(in.ArrivalDateTime)
	if err != nil {
		return models.Segment{}, err
	}

	var baggage models.Baggage
	if in.Baggage != nil {
		baggage = *in.Baggage
	}
	return models.Segment{
		SegmentID:          uuid.New().String(),
		Type:               models.SegmentTypeAir,
		Status:             status,
		ConfirmationNumber: in.ConfirmationNumber,
		StartDate:          departure,
		EndDate:            arrival,
		Vendor:             in.Vendor,
		VendorName:         in.VendorName,
		Currency:           in.Currency,
		TotalRate:          in.TotalRate,
		Air: &models.AirDetails{
			DepartureAirport:  in.DepartureAirport,
			ArrivalAirport:    in.ArrivalAirport,
			FlightNumber:      in.FlightNumber,
			AircraftType:      in.AircraftType,
			FareClass:         cabin.Denormalize(cabin.Normalize(in.FareClass)),
			IsDirect:          in.IsDirect,
			Baggage:           baggage,
			PricingData:       in.PricingData,
			AvailabilityData:  in.AvailabilityData,
			OperationalStatus: in.OperationalStatus,
		},
	}, nil
}

// MapHotelSegment converts a supplier hotel segment into the stored form.
func MapHotelSegment(in models.HotelSegmentInput) (models.Segment, error) {
	status, err := mapSegmentStatus(in.Status)
	if err != nil {
		return models.Segment{}, err
	}
	checkIn, err := parseSegmentTime(in.CheckInDate)
	if err != nil {
		return models.Segment{}, err
	}
	checkOut, err := parseSegmentTime(in.CheckOutDate)
	if err != nil {
		return models.Segment{}, err
	}
	return models.Segment{
		SegmentID:          uuid.New().String(),
		Type:               models.SegmentTypeHotel,
		Status:             status,
		ConfirmationNumber: in.ConfirmationNumber,
		StartDate:          checkIn,
		EndDate:            checkOut,
		Vendor:             in.Vendor,
		VendorName:         in.VendorName,
		Currency:           in.Currency,
		TotalRate:          in.TotalRate,
		Hotel: &models.HotelDetails{
			HotelName: in.HotelName,
			Location:  in.Location,
			RoomType:  in.RoomType,
			MealPlan:  in.MealPlan,
		},
	}, nil
}

// MapSegments converts a full segment payload, car first, then air,
// then hotel. A nil payload maps to no segments.
func MapSegments(in *models.SegmentsInput) ([]models.Segment, error) {
	if in == nil {
		return nil, nil
	}
	segments := make([]models.Segment, 0, len(in.Car)+len(in.Air)+len(in.Hotel))
	for _, car := range in.Car {
		segment, err := MapCarSegment(car)
		if err != nil {
			return nil, err
		}
		segments = append(segments, segment)
	}
	for _, air := range in.Air {
		segment, err := MapAirSegment(air)
		if err != nil {
			return nil, err
		}
		segments = append(segments, segment)
	}
	for _, hotel := range in.Hotel {
		segment, err := MapHotelSegment(hotel)
		if err != nil {
			return nil, err
		}
		segments = append(segments, segment)
	}
	return segments, nil
}
