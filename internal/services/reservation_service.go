package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/smarttravel/travel-booking-backend/internal/models"
	"github.com/smarttravel/travel-booking-backend/internal/store"
	"github.com/smarttravel/travel-booking-backend/pkg/cabin"
)

const (
	defaultOriginAirport      = "JFK"
	defaultDestinationAirport = "LAX"
	defaultAircraftType       = "Boeing 737"
)

// PricingConfig holds the tariffs used when no live inventory price is
// available, plus the paid-baggage rates.
type PricingConfig struct {
	PricePerBag    float64
	BagWeightKg    int
	StandardPrices map[string]float64
	DefaultPrice   float64
}

// DefaultPricingConfig returns the standard tariff table.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		PricePerBag: 50,
		BagWeightKg: 23,
		StandardPrices: map[string]float64{
			"economy":         100,
			"business":        300,
			"first":           500,
			"premium_economy": 200,
		},
		DefaultPrice: 100,
	}
}

// PriceFor returns the standard price for a cabin.
func (c PricingConfig) PriceFor(cabinName string) float64 {
	if price, ok := c.StandardPrices[cabinName]; ok {
		return price
	}
	return c.DefaultPrice
}

// ReservationService implements the booking lifecycle: creation and
// update, cancellation with refund, flight, baggage and passenger
// mutations, and the read-only detail projection. Every mutation runs
// under the per-locator lock so concurrent calls for the same booking
// serialize.
type ReservationService struct {
	store         *store.Store
	bookings      *store.BookingRepository
	trips         *store.TripRepository
	users         *store.UserRepository
	notifications *store.NotificationRepository
	pricing       PricingConfig
	logger        *logrus.Logger
}

// NewReservationService creates a new ReservationService.
func NewReservationService(
	st *store.Store,
	bookings *store.BookingRepository,
	trips *store.TripRepository,
	users *store.UserRepository,
	notifications *store.NotificationRepository,
	pricing PricingConfig,
	logger *logrus.Logger,
) *ReservationService {
	return &ReservationService{
		store:         st,
		bookings:      bookings,
		trips:         trips,
		users:         users,
		notifications: notifications,
		pricing:       pricing,
		logger:        logger,
	}
}

// GetReservationDetails returns the read-only projection of a booking
// looked up by record locator alone.
func (s *ReservationService) GetReservationDetails(recordLocator string) (*models.ReservationDetails, error) {
	if strings.TrimSpace(recordLocator) == "" {
		return nil, models.NewValidationError("record_locator is required")
	}

	booking, err := s.bookings.GetByLocator(recordLocator)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &models.BookingNotFoundError{
				Message: fmt.Sprintf("Booking with record locator %s not found", recordLocator),
			}
		}
		return nil, err
	}

	details := &models.ReservationDetails{
		BookingID:         booking.BookingID,
		BookingSource:     booking.BookingSource,
		RecordLocator:     booking.RecordLocator,
		TripID:            booking.TripID,
		Status:            booking.Status,
		Segments:          booking.Segments,
		PaymentHistory:    booking.PaymentHistory,
		Warnings:          booking.Warnings,
		Insurance:         booking.Insurance,
		DateBookedLocal:   booking.DateBookedLocal,
		FormOfPaymentName: booking.FormOfPaymentName,
		FormOfPaymentType: booking.FormOfPaymentType,
		Delivery:          booking.Delivery,
		LastModified:      booking.LastModified,
	}
	details.Passengers = make([]models.SimplePassenger, 0, len(booking.Passengers))
	for _, p := range booking.Passengers {
		details.Passengers = append(details.Passengers, models.SimplePassenger{
			NameFirst:   p.NameFirst,
			NameLast:    p.NameLast,
			DateOfBirth: p.DateOfBirth,
		})
	}
	details.UserID = s.resolveOwnerUserName(booking.TripID)
	return details, nil
}

// CreateOrUpdateBooking creates a booking under a trip, or updates the
// booking that already holds the record locator. Updates replace the
// passenger roster and segments wholesale from the payload and apply
// only the optional fields the caller provided.
func (s *ReservationService) CreateOrUpdateBooking(tripID string, input models.BookingInput) (*models.BookingConfirmation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(tripID) == "" {
		return nil, models.NewValidationError("trip_id is required")
	}

	trip, err := s.trips.GetByID(tripID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &models.TripNotFoundError{Message: fmt.Sprintf("Trip with ID %s not found.", tripID)}
		}
		return nil, err
	}
	if !trip.IsActive() {
		return nil, &models.TripNotFoundError{
			Message: fmt.Sprintf("Trip with ID %s is not active. Current status: %s", tripID, trip.Status),
		}
	}

	mu := s.store.LockLocator(input.RecordLocator)
	defer mu.Unlock()

	segments, err := MapSegments(input.Segments)
	if err != nil {
		return nil, err
	}
	passengers := mapPassengerInputs(input.Passengers)
	now := time.Now().UTC()

	existing, err := s.bookings.GetByLocator(input.RecordLocator)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	if existing == nil {
		booking := &models.Booking{
			BookingID:     uuid.New().String(),
			BookingSource: input.BookingSource,
			RecordLocator: input.RecordLocator,
			TripID:        tripID,
			Status:        models.BookingStatusIssued,
			Passengers:    passengers,
			Segments:      segments,
			Insurance:     "no",
			CreatedAt:     now,
			LastModified:  now,
		}
		if err := applyOptionalBookingFields(booking, input); err != nil {
			return nil, err
		}
		if booking.DateBookedLocal == nil {
			booked := now
			booking.DateBookedLocal = &booked
		}
		booking.Status = ReduceBookingStatus(booking.Segments, booking.Status)

		if err := s.bookings.Insert(booking); err != nil {
			return nil, err
		}
		s.refreshTripStatus(tripID)

		s.logger.WithFields(logrus.Fields{
			"booking_id":     booking.BookingID,
			"record_locator": booking.RecordLocator,
			"trip_id":        tripID,
			"status":         booking.Status,
		}).Info("Booking created")
		return buildBookingConfirmation(booking), nil
	}

	if existing.IsCancelled() {
		return nil, &models.BookingConflictError{
			Message: fmt.Sprintf("Booking '%s' is in a non-updatable state: %s", input.RecordLocator, existing.Status),
		}
	}

	existing.BookingSource = input.BookingSource
	existing.Passengers = passengers
	// Segments are replaced wholesale; an omitted segment block clears them.
	existing.Segments = segments
	// Optional fields can fail on a bad date, so they are applied before
	// any store mutation.
	if err := applyOptionalBookingFields(existing, input); err != nil {
		return nil, err
	}

	previousTripID := existing.TripID
	if previousTripID != tripID {
		if err := s.bookings.Rehome(existing.BookingID, previousTripID, tripID); err != nil {
			return nil, err
		}
		existing.TripID = tripID
	}

	// Updates reduce from UPDATED so a booking whose waitlisted segments
	// have since confirmed drops its PENDING status.
	existing.Status = ReduceBookingStatus(existing.Segments, models.BookingStatusUpdated)
	existing.LastModified = now

	if err := s.bookings.Update(existing); err != nil {
		return nil, err
	}
	s.refreshTripStatus(tripID)
	if previousTripID != tripID {
		s.refreshTripStatus(previousTripID)
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id":     existing.BookingID,
		"record_locator": existing.RecordLocator,
		"trip_id":        tripID,
		"status":         existing.Status,
	}).Info("Booking updated")
	return buildBookingConfirmation(existing), nil
}

// CancelBooking cancels the whole booking, cancels every segment,
// refunds the segment total against the original charge and notifies
// the trip owner.
func (s *ReservationService) CancelBooking(req models.CancelBookingRequest) (*models.CancelConfirmation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	mu := s.store.LockLocator(req.ConfirmationNumber)
	defer mu.Unlock()

	booking, err := s.resolveBooking(req.BookingSource, req.ConfirmationNumber)
	if err != nil {
		return nil, err
	}
	if booking.IsCancelled() {
		return nil, &models.ReservationAlreadyCancelledError{
			BookingSource:      req.BookingSource,
			ConfirmationNumber: req.ConfirmationNumber,
		}
	}

	now := time.Now().UTC()
	refund := booking.SegmentsTotalRate()
	original := booking.OriginalBookingPayment()
	if refund > 0 && original != nil {
		booking.PaymentHistory = append(booking.PaymentHistory, models.PaymentEntry{
			PaymentID: original.PaymentID,
			Amount:    -refund,
			Timestamp: now,
			Type:      models.PaymentTypeRefund,
		})
	}

	booking.Status = models.BookingStatusCancelled
	for i := range booking.Segments {
		booking.Segments[i].Status = models.SegmentStatusCancelled
	}
	booking.LastModified = now

	if err := s.bookings.Update(booking); err != nil {
		return nil, err
	}
	s.refreshTripStatus(booking.TripID)
	s.notifyTripOwner(booking.TripID, fmt.Sprintf("Booking %s has been cancelled", booking.RecordLocator))

	fields := logrus.Fields{
		"booking_id":     booking.BookingID,
		"record_locator": booking.RecordLocator,
		"refund_amount":  refund,
	}
	if req.UserIDValue != nil {
		fields["on_behalf_of"] = *req.UserIDValue
	}
	s.logger.WithFields(fields).Info("Booking cancelled")

	return &models.CancelConfirmation{
		Success:            true,
		Message:            fmt.Sprintf("Booking %s has been successfully cancelled", req.ConfirmationNumber),
		BookingID:          booking.BookingID,
		BookingSource:      booking.BookingSource,
		ConfirmationNumber: booking.RecordLocator,
		Status:             booking.Status,
		CancelledAt:        now,
	}, nil
}

// UpdateReservationFlights replaces the booking's air segments with the
// requested flights, keeping non-air segments. Per-passenger fares are
// resolved against existing segments, caller prices, seat inventory and
// the standard tariff, in that order, and the fare difference is charged
// or refunded against the supplied payment id.
func (s *ReservationService) UpdateReservationFlights(req models.FlightUpdateRequest) (*models.FlightUpdateResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	mu := s.store.LockLocator(req.ConfirmationNumber)
	defer mu.Unlock()

	booking, err := s.resolveBooking(req.BookingSource, req.ConfirmationNumber)
	if err != nil {
		return nil, err
	}
	if booking.IsCancelled() {
		return nil, &models.BookingConflictError{
			Message: fmt.Sprintf("Booking '%s' is in a non-updatable state: %s", req.ConfirmationNumber, booking.Status),
		}
	}

	airSegments := booking.AirSegments()
	if len(airSegments) == 0 {
		return nil, models.NewValidationError("Booking does not contain any air segments")
	}

	baggageByFlight := make(map[string]models.Baggage, len(airSegments))
	for _, seg := range airSegments {
		baggageByFlight[seg.Air.FlightNumber+"_"+seg.DateKey()] = seg.Air.Baggage
	}
	fallbackBaggage := airSegments[0].Air.Baggage

	passengerCount := len(booking.Passengers)
	existingTotal := 0.0
	for _, seg := range airSegments {
		existingTotal += seg.TotalRate
	}
	existingTotal *= float64(passengerCount)

	cabinName := cabin.Normalize(req.FareClass)
	results := make([]models.FlightResult, 0, len(req.Flights))
	newTotal := 0.0

	for _, flight := range req.Flights {
		dateKey := datePart(flight.Date)

		var match *models.Segment
		for _, seg := range airSegments {
			if seg.Air.FlightNumber == flight.FlightNumber && seg.DateKey() == dateKey {
				match = seg
				break
			}
		}

		origin := defaultOriginAirport
		destination := defaultDestinationAirport
		if match != nil {
			origin = match.Air.DepartureAirport
			destination = match.Air.ArrivalAirport
		}
		if flight.Origin != nil {
			origin = *flight.Origin
		}
		if flight.Destination != nil {
			destination = *flight.Destination
		}

		var price float64
		switch {
		case match != nil && cabin.Normalize(match.Air.FareClass) == cabinName:
			price = match.TotalRate
		case flight.Price != nil:
			price = *flight.Price
		default:
			price, err = s.resolveInventoryPrice(airSegments, flight.FlightNumber, dateKey, cabinName)
			if err != nil {
				return nil, err
			}
		}

		results = append(results, models.FlightResult{
			FlightNumber: flight.FlightNumber,
			Date:         dateKey,
			Origin:       origin,
			Destination:  destination,
			Price:        price,
		})
		newTotal += price * float64(passengerCount)
	}

	now := time.Now().UTC()
	difference := newTotal - existingTotal
	var payment *models.PaymentSummary
	if difference != 0 {
		booking.PaymentHistory = append(booking.PaymentHistory, models.PaymentEntry{
			PaymentID: req.PaymentID,
			Amount:    difference,
			Timestamp: now,
			Type:      models.PaymentTypeFlightChange,
		})
		payment = &models.PaymentSummary{
			PaymentID: req.PaymentID,
			Amount:    difference,
			Type:      models.PaymentTypeFlightChange,
		}
	}

	kept := make([]models.Segment, 0, len(booking.Segments))
	for i := range booking.Segments {
		if booking.Segments[i].Type != models.SegmentTypeAir {
			kept = append(kept, booking.Segments[i])
		}
	}
	for _, result := range results {
		segment, err := s.buildFlightSegment(result, cabinName, baggageByFlight, fallbackBaggage)
		if err != nil {
			return nil, err
		}
		kept = append(kept, segment)
	}
	booking.Segments = kept
	booking.Status = ReduceBookingStatus(booking.Segments, models.BookingStatusUpdated)
	booking.LastModified = now

	if err := s.bookings.Update(booking); err != nil {
		return nil, err
	}
	s.refreshTripStatus(booking.TripID)

	s.logger.WithFields(logrus.Fields{
		"booking_id":      booking.BookingID,
		"record_locator":  booking.RecordLocator,
		"flights":         len(results),
		"fare_difference": difference,
	}).Info("Reservation flights updated")

	return &models.FlightUpdateResult{
		BookingID:          booking.BookingID,
		BookingSource:      booking.BookingSource,
		ConfirmationNumber: booking.RecordLocator,
		Status:             "SUCCESS",
		FareClass:          req.FareClass,
		Flights:            results,
		Payment:            payment,
		LastModified:       booking.LastModified,
	}, nil
}

// UpdateReservationBaggages sets the checked-baggage counts on every air
// segment. Newly added paid bags are charged at the per-bag rate against
// the supplied payment id.
func (s *ReservationService) UpdateReservationBaggages(req models.BaggageUpdateRequest) (*models.BaggageUpdateResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	mu := s.store.LockLocator(req.ConfirmationNumber)
	defer mu.Unlock()

	booking, err := s.resolveBooking(req.BookingSource, req.ConfirmationNumber)
	if err != nil {
		return nil, err
	}
	if booking.IsCancelled() {
		return nil, &models.BookingConflictError{
			Message: fmt.Sprintf("Booking '%s' is in a non-updatable state: %s", req.ConfirmationNumber, booking.Status),
		}
	}

	airSegments := booking.AirSegments()
	if len(airSegments) == 0 {
		return nil, models.NewValidationError("Booking does not contain any air segments")
	}

	current := airSegments[0].Air.Baggage
	additional := req.NonfreeBaggages - current.NonfreeCount
	if additional < 0 {
		additional = 0
	}
	charge := float64(additional) * s.pricing.PricePerBag

	now := time.Now().UTC()
	var payment *models.PaymentSummary
	if charge > 0 {
		if req.PaymentID == nil || strings.TrimSpace(*req.PaymentID) == "" {
			return nil, models.NewValidationError("payment_id is required when adding paid baggage")
		}
		booking.PaymentHistory = append(booking.PaymentHistory, models.PaymentEntry{
			PaymentID: *req.PaymentID,
			Amount:    charge,
			Timestamp: now,
			Type:      models.PaymentTypeBaggage,
		})
		payment = &models.PaymentSummary{
			PaymentID: *req.PaymentID,
			Amount:    charge,
			Type:      models.PaymentTypeBaggage,
		}
	}

	for _, seg := range airSegments {
		seg.Air.Baggage = models.Baggage{
			Count:        req.TotalBaggages,
			WeightKg:     req.TotalBaggages * s.pricing.BagWeightKg,
			NonfreeCount: req.NonfreeBaggages,
		}
	}
	booking.LastModified = now

	if err := s.bookings.Update(booking); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id":     booking.BookingID,
		"record_locator": booking.RecordLocator,
		"total_baggages": req.TotalBaggages,
		"charge":         charge,
	}).Info("Reservation baggages updated")

	return &models.BaggageUpdateResult{
		BookingID:          booking.BookingID,
		BookingSource:      booking.BookingSource,
		ConfirmationNumber: booking.RecordLocator,
		Status:             "SUCCESS",
		Baggage: models.BaggageSummary{
			TotalBaggages:   req.TotalBaggages,
			NonfreeBaggages: req.NonfreeBaggages,
		},
		Payment:      payment,
		LastModified: booking.LastModified,
	}, nil
}

// UpdateReservationPassengers replaces the passenger roster. The new
// roster must have the same size; dates of birth are inherited by
// position when the replacement omits them.
func (s *ReservationService) UpdateReservationPassengers(req models.PassengerUpdateRequest) (*models.PassengerUpdateResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	mu := s.store.LockLocator(req.ConfirmationNumber)
	defer mu.Unlock()

	booking, err := s.resolveBooking(req.BookingSource, req.ConfirmationNumber)
	if err != nil {
		return nil, err
	}
	if booking.IsCancelled() {
		return nil, &models.BookingConflictError{
			Message: fmt.Sprintf("Booking '%s' is in a non-updatable state: %s", req.ConfirmationNumber, booking.Status),
		}
	}
	if len(req.Passengers) != len(booking.Passengers) {
		return nil, models.NewValidationError("Number of passengers does not match")
	}

	roster := make([]models.Passenger, 0, len(req.Passengers))
	for i, p := range req.Passengers {
		passenger := models.Passenger{
			NameFirst: p.NameFirst,
			NameLast:  p.NameLast,
			TextName:  p.NameLast + "/" + p.NameFirst,
			PaxType:   "ADT",
		}
		if p.TextName != nil {
			passenger.TextName = *p.TextName
		}
		if p.PaxType != nil {
			passenger.PaxType = *p.PaxType
		}
		if p.DateOfBirth != nil {
			passenger.DateOfBirth = *p.DateOfBirth
		} else {
			passenger.DateOfBirth = booking.Passengers[i].DateOfBirth
		}
		roster = append(roster, passenger)
	}

	booking.Passengers = roster
	booking.Status = ReduceBookingStatus(booking.Segments, models.BookingStatusUpdated)
	booking.LastModified = time.Now().UTC()

	if err := s.bookings.Update(booking); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id":     booking.BookingID,
		"record_locator": booking.RecordLocator,
		"passengers":     len(roster),
	}).Info("Reservation passengers updated")

	return &models.PassengerUpdateResult{
		BookingID:          booking.BookingID,
		BookingSource:      booking.BookingSource,
		ConfirmationNumber: booking.RecordLocator,
		Status:             "SUCCESS",
		Passengers:         buildPassengerConfirmations(roster),
		LastModified:       booking.LastModified,
	}, nil
}

// resolveBooking looks up a booking by locator and checks the source
// half of the key. A source mismatch is indistinguishable from a missing
// booking so the key is not probeable.
func (s *ReservationService) resolveBooking(bookingSource, confirmationNumber string) (*models.Booking, error) {
	booking, err := s.bookings.GetByLocator(confirmationNumber)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &models.BookingNotFoundError{
				BookingSource:      bookingSource,
				ConfirmationNumber: confirmationNumber,
			}
		}
		return nil, err
	}
	if booking.BookingSource != bookingSource {
		return nil, &models.BookingNotFoundError{
			BookingSource:      bookingSource,
			ConfirmationNumber: confirmationNumber,
		}
	}
	return booking, nil
}

// resolveInventoryPrice walks the booking's segments for seat inventory
// on the requested flight. Flights whose inventory does not list the
// cabin for the date fail; flights without any inventory fall back to
// the standard tariff.
func (s *ReservationService) resolveInventoryPrice(airSegments []*models.Segment, flightNumber, dateKey, cabinName string) (float64, error) {
	hasInventory := false
	available := false
	priced := false
	var inventoryPrice float64

	for _, seg := range airSegments {
		if seg.Air.FlightNumber != flightNumber {
			continue
		}
		if len(seg.Air.AvailabilityData) > 0 || len(seg.Air.PricingData) > 0 {
			hasInventory = true
		}
		if cabins, ok := seg.Air.AvailabilityData[dateKey]; ok {
			if _, ok := cabins[cabinName]; ok {
				available = true
			}
		}
		if prices, ok := seg.Air.PricingData[dateKey]; ok {
			if price, ok := prices[cabinName]; ok {
				priced = true
				inventoryPrice = price
			}
		}
	}

	if hasInventory && !available {
		return 0, &models.SeatsUnavailableError{FlightNumber: flightNumber}
	}
	if priced {
		return inventoryPrice, nil
	}
	return s.pricing.PriceFor(cabinName), nil
}

// buildFlightSegment constructs a confirmed air segment for a resolved
// flight. The confirmation number is the flight number plus the date
// without dashes, and the vendor is the carrier prefix of the flight
// number.
func (s *ReservationService) buildFlightSegment(result models.FlightResult, cabinName string, baggageByFlight map[string]models.Baggage, fallback models.Baggage) (models.Segment, error) {
	departure, err := time.Parse("2006-01-02", result.Date)
	if err != nil {
		return models.Segment{}, models.NewValidationError(fmt.Sprintf("Invalid datetime format: '%s'", result.Date))
	}

	vendor := result.FlightNumber
	if len(vendor) > 2 {
		vendor = vendor[:2]
	}
	baggage, ok := baggageByFlight[result.FlightNumber+"_"+result.Date]
	if !ok {
		baggage = fallback
	}

	return models.Segment{
		SegmentID:          uuid.New().String(),
		Type:               models.SegmentTypeAir,
		Status:             models.SegmentStatusConfirmed,
		ConfirmationNumber: result.FlightNumber + strings.ReplaceAll(result.Date, "-", ""),
		StartDate:          departure,
		EndDate:            departure,
		Vendor:             vendor,
		VendorName:         vendor + " Airlines",
		Currency:           "USD",
		TotalRate:          result.Price,
		Air: &models.AirDetails{
			DepartureAirport: result.Origin,
			ArrivalAirport:   result.Destination,
			FlightNumber:     result.FlightNumber,
			AircraftType:     defaultAircraftType,
			FareClass:        cabin.Denormalize(cabinName),
			IsDirect:         true,
			Baggage:          baggage,
		},
	}, nil
}

// refreshTripStatus re-derives the trip status from its bookings. A
// missing trip is tolerated; the booking mutation has already committed.
func (s *ReservationService) refreshTripStatus(tripID string) {
	trip, err := s.trips.GetByID(tripID)
	if err != nil {
		return
	}
	bookings, err := s.bookings.ListByTrip(tripID)
	if err != nil {
		return
	}
	statuses := make([]models.BookingStatus, 0, len(bookings))
	for _, b := range bookings {
		statuses = append(statuses, b.Status)
	}
	next := ReduceTripStatus(trip.Status, statuses)
	if next == trip.Status {
		return
	}
	trip.Status = next
	trip.LastModifiedDate = time.Now().UTC()
	if err := s.trips.Update(trip); err != nil {
		s.logger.WithError(err).WithField("trip_id", tripID).Warn("Failed to refresh trip status")
	}
}

// notifyTripOwner queues a notification for the user owning the trip.
func (s *ReservationService) notifyTripOwner(tripID, message string) {
	trip, err := s.trips.GetByID(tripID)
	if err != nil {
		return
	}
	_ = s.notifications.Add(&models.Notification{
		ID:        uuid.New().String(),
		UserID:    trip.UserID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	})
}

// resolveOwnerUserName maps a trip to its owner's login name.
func (s *ReservationService) resolveOwnerUserName(tripID string) string {
	trip, err := s.trips.GetByID(tripID)
	if err != nil {
		return ""
	}
	user, err := s.users.GetByID(trip.UserID)
	if err != nil {
		return ""
	}
	return user.UserName
}

// datePart returns the calendar-date part of a date or date-time string.
func datePart(value string) string {
	value = strings.TrimSpace(value)
	if idx := strings.IndexAny(value, "T "); idx >= 0 {
		return value[:idx]
	}
	return value
}

func mapPassengerInputs(inputs []models.PassengerInput) []models.Passenger {
	passengers := make([]models.Passenger, 0, len(inputs))
	for _, in := range inputs {
		passenger := models.Passenger{
			NameFirst: in.NameFirst,
			NameLast:  in.NameLast,
			TextName:  in.NameLast + "/" + in.NameFirst,
			PaxType:   "ADT",
		}
		if in.TextName != nil {
			passenger.TextName = *in.TextName
		}
		passengers = append(passengers, passenger)
	}
	return passengers
}

func applyOptionalBookingFields(booking *models.Booking, input models.BookingInput) error {
	if input.DateBookedLocal != nil {
		booked, err := parseSegmentTime(*input.DateBookedLocal)
		if err != nil {
			return err
		}
		booking.DateBookedLocal = &booked
	}
	if input.FormOfPaymentName != nil {
		booking.FormOfPaymentName = *input.FormOfPaymentName
	}
	if input.FormOfPaymentType != nil {
		booking.FormOfPaymentType = *input.FormOfPaymentType
	}
	if input.TicketMailingAddress != nil {
		booking.TicketMailingAddress = *input.TicketMailingAddress
	}
	if input.TicketPickupLocation != nil {
		booking.TicketPickupLocation = *input.TicketPickupLocation
	}
	if input.TicketPickupNumber != nil {
		booking.TicketPickupNumber = *input.TicketPickupNumber
	}
	if input.Delivery != nil {
		booking.Delivery = *input.Delivery
	}
	if input.Warnings != nil {
		booking.Warnings = input.Warnings
	}
	if input.Insurance != nil {
		booking.Insurance = *input.Insurance
	}
	return nil
}

func buildBookingConfirmation(booking *models.Booking) *models.BookingConfirmation {
	return &models.BookingConfirmation{
		BookingID:     booking.BookingID,
		TripID:        booking.TripID,
		BookingSource: booking.BookingSource,
		RecordLocator: booking.RecordLocator,
		Status:        booking.Status,
		Passengers:    buildPassengerConfirmations(booking.Passengers),
		Segments:      buildSegmentConfirmations(booking.Segments),
		Insurance:     booking.Insurance,
		LastModified:  booking.LastModified,
	}
}

func buildPassengerConfirmations(passengers []models.Passenger) []models.PassengerConfirmation {
	out := make([]models.PassengerConfirmation, 0, len(passengers))
	for _, p := range passengers {
		textName := p.TextName
		if textName == "" {
			textName = p.NameLast + "/" + p.NameFirst
		}
		out = append(out, models.PassengerConfirmation{
			PassengerID: uuid.New().String(),
			FirstName:   p.NameFirst,
			LastName:    p.NameLast,
			TextName:    textName,
			DateOfBirth: p.DateOfBirth,
		})
	}
	return out
}

func buildSegmentConfirmations(segments []models.Segment) []models.SegmentConfirmation {
	out := make([]models.SegmentConfirmation, 0, len(segments))
	for i := range segments {
		seg := &segments[i]
		details := map[string]any{
			"Vendor":     seg.Vendor,
			"VendorName": seg.VendorName,
			"Currency":   seg.Currency,
			"TotalRate":  seg.TotalRate,
			"StartDate":  seg.StartDate.Format("2006-01-02T15:04:05"),
			"EndDate":    seg.EndDate.Format("2006-01-02T15:04:05"),
		}
		switch seg.Type {
		case models.SegmentTypeAir:
			details["FlightNumber"] = seg.Air.FlightNumber
			details["DepartureAirport"] = seg.Air.DepartureAirport
			details["ArrivalAirport"] = seg.Air.ArrivalAirport
			details["AircraftType"] = seg.Air.AircraftType
			details["FareClass"] = cabin.Normalize(seg.Air.FareClass)
			details["IsDirect"] = seg.Air.IsDirect
		case models.SegmentTypeCar:
			details["PickupLocation"] = seg.Car.PickupLocation
			details["DropoffLocation"] = seg.Car.DropoffLocation
			details["CarType"] = seg.Car.CarType
		case models.SegmentTypeHotel:
			details["HotelName"] = seg.Hotel.HotelName
			details["Location"] = seg.Hotel.Location
			details["RoomType"] = seg.Hotel.RoomType
			details["MealPlan"] = seg.Hotel.MealPlan
		}
		for key, value := range details {
			if str, ok := value.(string); ok && str == "" {
				delete(details, key)
			}
		}
		out = append(out, models.SegmentConfirmation{
			SegmentID:          seg.SegmentID,
			SegmentType:        seg.Type,
			Status:             seg.Status,
			ConfirmationNumber: seg.ConfirmationNumber,
			Details:            details,
		})
	}
	return out
}
