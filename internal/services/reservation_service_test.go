package services

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smarttravel/travel-booking-backend/internal/models"
	"github.com/smarttravel/travel-booking-backend/internal/store"
)

type reservationFixture struct {
	svc      *ReservationService
	tripSvc  *TripService
	bookings *store.BookingRepository
	trips    *store.TripRepository
	userID   string
	tripID   string
}

func setupReservationTest(t *testing.T) *reservationFixture {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	st := store.New()
	bookings := store.NewBookingRepository(st)
	trips := store.NewTripRepository(st)
	users := store.NewUserRepository(st)
	notifications := store.NewNotificationRepository(st)

	svc := NewReservationService(st, bookings, trips, users, notifications, DefaultPricingConfig(), logger)
	userSvc := NewUserService(users, logger)
	tripSvc := NewTripService(trips, users, logger)

	user, err := userSvc.CreateUser(models.UserInput{
		UserName:   "ada.lovelace",
		GivenName:  "Ada",
		FamilyName: "Lovelace",
	})
	require.NoError(t, err)

	trip, err := tripSvc.CreateTrip(user.ID, models.TripInput{TripName: "West Coast"})
	require.NoError(t, err)

	return &reservationFixture{
		svc:      svc,
		tripSvc:  tripSvc,
		bookings: bookings,
		trips:    trips,
		userID:   user.ID,
		tripID:   trip.TripID,
	}
}

func airInput(status string) models.AirSegmentInput {
	return models.AirSegmentInput{
		Status:            status,
		DepartureDateTime: "2026-09-10T08:30:00",
		ArrivalDateTime:   "2026-09-10T11:45:00",
		DepartureAirport:  "JFK",
		ArrivalAirport:    "SFO",
		FlightNumber:      "AA100",
		FareClass:         "J",
		Vendor:            "AA",
		Currency:          "USD",
		TotalRate:         420,
		Baggage:           &models.Baggage{Count: 2, WeightKg: 46, NonfreeCount: 0},
	}
}

func bookingInput(locator string, air ...models.AirSegmentInput) models.BookingInput {
	return models.BookingInput{
		BookingSource: "concur",
		RecordLocator: locator,
		Passengers:    []models.PassengerInput{{NameFirst: "Ada", NameLast: "Lovelace"}},
		Segments:      &models.SegmentsInput{Air: air},
	}
}

func TestCreateBookingIssued(t *testing.T) {
	fx := setupReservationTest(t)

	confirmation, err := fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", airInput("")))
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusIssued, confirmation.Status)
	assert.Equal(t, fx.tripID, confirmation.TripID)
	require.Len(t, confirmation.Segments, 1)
	assert.Equal(t, models.SegmentStatusConfirmed, confirmation.Segments[0].Status)
	require.Len(t, confirmation.Passengers, 1)
	assert.Equal(t, "Lovelace/Ada", confirmation.Passengers[0].TextName)

	trip, err := fx.trips.GetByID(fx.tripID)
	require.NoError(t, err)
	assert.Equal(t, []string{confirmation.BookingID}, trip.BookingIDs)
}

func TestCreateBookingValidationEnumeratesFields(t *testing.T) {
	fx := setupReservationTest(t)

	_, err := fx.svc.CreateOrUpdateBooking(fx.tripID, models.BookingInput{
		RecordLocator: "ab1",
		Passengers:    []models.PassengerInput{{NameFirst: "Ada"}},
	})
	require.Error(t, err)

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "booking_source is required")
	assert.Contains(t, err.Error(), "record_locator must be at least 6 alphanumeric characters")
	assert.Contains(t, err.Error(), "passengers[0].name_last is required")
}

func TestUpdateBookingReplayBecomesUpdated(t *testing.T) {
	fx := setupReservationTest(t)

	input := bookingInput("ABC123", airInput(""))
	first, err := fx.svc.CreateOrUpdateBooking(fx.tripID, input)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusIssued, first.Status)

	second, err := fx.svc.CreateOrUpdateBooking(fx.tripID, input)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusUpdated, second.Status)
	assert.Equal(t, first.BookingID, second.BookingID)
	assert.True(t, second.LastModified.After(first.LastModified))
}

func TestUpdateBookingOmittedSegmentBlockClearsSegments(t *testing.T) {
	fx := setupReservationTest(t)

	first, err := fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", airInput("")))
	require.NoError(t, err)

	update := bookingInput("ABC123")
	update.Segments = nil
	second, err := fx.svc.CreateOrUpdateBooking(fx.tripID, update)
	require.NoError(t, err)
	assert.Equal(t, first.BookingID, second.BookingID)
	assert.Equal(t, models.BookingStatusUpdated, second.Status)
	assert.Empty(t, second.Segments)

	booking, err := fx.bookings.GetByID(first.BookingID)
	require.NoError(t, err)
	assert.Empty(t, booking.Segments)
}

func TestCreateBookingWaitlistedSegmentGoesPending(t *testing.T) {
	fx := setupReservationTest(t)

	confirmation, err := fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", airInput("pending")))
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, confirmation.Status)

	trip, err := fx.trips.GetByID(fx.tripID)
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusPendingApproval, trip.Status)
}

func TestPendingClearsBackToConfirmedTrip(t *testing.T) {
	fx := setupReservationTest(t)

	_, err := fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", airInput("pending")))
	require.NoError(t, err)

	_, err = fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", airInput("confirmed")))
	require.NoError(t, err)

	trip, err := fx.trips.GetByID(fx.tripID)
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusConfirmed, trip.Status)
}

func TestCreateBookingAllCancelledSegments(t *testing.T) {
	fx := setupReservationTest(t)

	confirmation, err := fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", airInput("cancelled")))
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, confirmation.Status)
}

func TestCreateBookingTripNotFound(t *testing.T) {
	fx := setupReservationTest(t)

	_, err := fx.svc.CreateOrUpdateBooking("missing-trip", bookingInput("ABC123"))
	require.Error(t, err)

	var notFound *models.TripNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Trip with ID missing-trip not found.", err.Error())
}

func TestCreateBookingInactiveTrip(t *testing.T) {
	fx := setupReservationTest(t)

	trip, err := fx.trips.GetByID(fx.tripID)
	require.NoError(t, err)
	trip.Status = models.TripStatusCanceled
	require.NoError(t, fx.trips.Update(trip))

	_, err = fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123"))
	require.Error(t, err)

	var notFound *models.TripNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "is not active. Current status: CANCELED")
}

func TestUpdateCancelledBookingConflict(t *testing.T) {
	fx := setupReservationTest(t)

	_, err := fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", airInput("")))
	require.NoError(t, err)

	_, err = fx.svc.CancelBooking(models.CancelBookingRequest{
		BookingSource:      "concur",
		ConfirmationNumber: "ABC123",
	})
	require.NoError(t, err)

	_, err = fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", airInput("")))
	require.Error(t, err)

	var conflict *models.BookingConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, err.Error(), "non-updatable state")
}

func TestUpdateBookingRehomesTrip(t *testing.T) {
	fx := setupReservationTest(t)

	first, err := fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", airInput("")))
	require.NoError(t, err)

	other, err := fx.tripSvc.CreateTrip(fx.userID, models.TripInput{TripName: "East Coast"})
	require.NoError(t, err)

	second, err := fx.svc.CreateOrUpdateBooking(other.TripID, bookingInput("ABC123", airInput("")))
	require.NoError(t, err)
	assert.Equal(t, first.BookingID, second.BookingID)
	assert.Equal(t, other.TripID, second.TripID)

	oldTrip, err := fx.trips.GetByID(fx.tripID)
	require.NoError(t, err)
	assert.Empty(t, oldTrip.BookingIDs)

	newTrip, err := fx.trips.GetByID(other.TripID)
	require.NoError(t, err)
	assert.Equal(t, []string{first.BookingID}, newTrip.BookingIDs)
}

func TestGetReservationDetails(t *testing.T) {
	fx := setupReservationTest(t)

	confirmation, err := fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", airInput("")))
	require.NoError(t, err)

	details, err := fx.svc.GetReservationDetails("ABC123")
	require.NoError(t, err)
	assert.Equal(t, confirmation.BookingID, details.BookingID)
	assert.Equal(t, "ada.lovelace", details.UserID)
	assert.Equal(t, "concur", details.BookingSource)
	require.Len(t, details.Passengers, 1)
	assert.Equal(t, "Ada", details.Passengers[0].NameFirst)
}

func TestGetReservationDetailsNotFound(t *testing.T) {
	fx := setupReservationTest(t)

	_, err := fx.svc.GetReservationDetails("ZZZ999")
	require.Error(t, err)

	var notFound *models.BookingNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Booking with record locator ZZZ999 not found", err.Error())
}

func TestCancelBookingRefundsOriginalPayment(t *testing.T) {
	fx := setupReservationTest(t)

	confirmation, err := fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", airInput("")))
	require.NoError(t, err)

	booking, err := fx.bookings.GetByID(confirmation.BookingID)
	require.NoError(t, err)
	booking.PaymentHistory = append(booking.PaymentHistory, models.PaymentEntry{
		PaymentID: "pay-original",
		Amount:    420,
		Type:      models.PaymentTypeBooking,
	})
	require.NoError(t, fx.bookings.Update(booking))

	result, err := fx.svc.CancelBooking(models.CancelBookingRequest{
		BookingSource:      "concur",
		ConfirmationNumber: "ABC123",
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, models.BookingStatusCancelled, result.Status)

	cancelled, err := fx.bookings.GetByID(confirmation.BookingID)
	require.NoError(t, err)
	require.Len(t, cancelled.PaymentHistory, 2)
	refund := cancelled.PaymentHistory[1]
	assert.Equal(t, models.PaymentTypeRefund, refund.Type)
	assert.Equal(t, "pay-original", refund.PaymentID)
	assert.Equal(t, -420.0, refund.Amount)
	for _, seg := range cancelled.Segments {
		assert.Equal(t, models.SegmentStatusCancelled, seg.Status)
	}
}

func TestCancelBookingWithoutOriginalPaymentSkipsRefund(t *testing.T) {
	fx := setupReservationTest(t)

	confirmation, err := fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", airInput("")))
	require.NoError(t, err)

	_, err = fx.svc.CancelBooking(models.CancelBookingRequest{
		BookingSource:      "concur",
		ConfirmationNumber: "ABC123",
	})
	require.NoError(t, err)

	cancelled, err := fx.bookings.GetByID(confirmation.BookingID)
	require.NoError(t, err)
	assert.Empty(t, cancelled.PaymentHistory)
}

func TestCancelBookingTwice(t *testing.T) {
	fx := setupReservationTest(t)

	_, err := fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", airInput("")))
	require.NoError(t, err)

	req := models.CancelBookingRequest{BookingSource: "concur", ConfirmationNumber: "ABC123"}
	_, err = fx.svc.CancelBooking(req)
	require.NoError(t, err)

	_, err = fx.svc.CancelBooking(req)
	require.Error(t, err)

	var already *models.ReservationAlreadyCancelledError
	require.ErrorAs(t, err, &already)
	assert.Equal(t,
		"The booking specified by the combination of booking_source 'concur' and confirmation_number 'ABC123' is already cancelled.",
		err.Error())
}

func TestCancelBookingSourceMismatch(t *testing.T) {
	fx := setupReservationTest(t)

	_, err := fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", airInput("")))
	require.NoError(t, err)

	_, err = fx.svc.CancelBooking(models.CancelBookingRequest{
		BookingSource:      "other-gds",
		ConfirmationNumber: "ABC123",
	})
	require.Error(t, err)

	var notFound *models.BookingNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t,
		"The booking specified by the combination of booking_source 'other-gds' and confirmation_number 'ABC123' could not be found in the system.",
		err.Error())
}

func TestFlightUpdateMatchedFareKeepsPriceAndBaggage(t *testing.T) {
	fx := setupReservationTest(t)

	confirmation, err := fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", airInput("")))
	require.NoError(t, err)

	result, err := fx.svc.UpdateReservationFlights(models.FlightUpdateRequest{
		BookingSource:      "concur",
		ConfirmationNumber: "ABC123",
		FareClass:          "J",
		PaymentID:          "pay-1",
		Flights:            []models.FlightUpdate{{FlightNumber: "AA100", Date: "2026-09-10"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "SUCCESS", result.Status)
	require.Len(t, result.Flights, 1)
	assert.Equal(t, 420.0, result.Flights[0].Price)
	assert.Equal(t, "JFK", result.Flights[0].Origin)
	assert.Equal(t, "SFO", result.Flights[0].Destination)
	assert.Nil(t, result.Payment)

	booking, err := fx.bookings.GetByID(confirmation.BookingID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusUpdated, booking.Status)
	assert.Empty(t, booking.PaymentHistory)
	air := booking.AirSegments()
	require.Len(t, air, 1)
	assert.Equal(t, 2, air[0].Air.Baggage.Count)
}

func TestFlightUpdateFareDifferenceCharged(t *testing.T) {
	fx := setupReservationTest(t)

	confirmation, err := fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", airInput("")))
	require.NoError(t, err)

	result, err := fx.svc.UpdateReservationFlights(models.FlightUpdateRequest{
		BookingSource:      "concur",
		ConfirmationNumber: "ABC123",
		FareClass:          "Y",
		PaymentID:          "pay-2",
		Flights:            []models.FlightUpdate{{FlightNumber: "AA100", Date: "2026-09-10"}},
	})
	require.NoError(t, err)

	require.NotNil(t, result.Payment)
	assert.Equal(t, "pay-2", result.Payment.PaymentID)
	assert.Equal(t, -320.0, result.Payment.Amount)
	assert.Equal(t, models.PaymentTypeFlightChange, result.Payment.Type)

	booking, err := fx.bookings.GetByID(confirmation.BookingID)
	require.NoError(t, err)
	require.Len(t, booking.PaymentHistory, 1)
	assert.Equal(t, -320.0, booking.PaymentHistory[0].Amount)
}

func TestFlightUpdateSeatsUnavailable(t *testing.T) {
	fx := setupReservationTest(t)

	seeded := airInput("")
	seeded.AvailabilityData = map[string]map[string]int{
		"2026-09-10": {"business": 5},
	}
	_, err := fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", seeded))
	require.NoError(t, err)

	_, err = fx.svc.UpdateReservationFlights(models.FlightUpdateRequest{
		BookingSource:      "concur",
		ConfirmationNumber: "ABC123",
		FareClass:          "Y",
		PaymentID:          "pay-3",
		Flights:            []models.FlightUpdate{{FlightNumber: "AA100", Date: "2026-09-10"}},
	})
	require.Error(t, err)

	var unavailable *models.SeatsUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "Not enough seats on flight 'AA100'.", err.Error())
}

func TestFlightUpdateZeroSeatListingStillAvailable(t *testing.T) {
	fx := setupReservationTest(t)

	seeded := airInput("")
	seeded.AvailabilityData = map[string]map[string]int{
		"2026-09-10": {"economy": 0},
	}
	_, err := fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", seeded))
	require.NoError(t, err)

	// A cabin listed for the date counts as available even at zero seats;
	// with no pricing data the standard tariff applies.
	result, err := fx.svc.UpdateReservationFlights(models.FlightUpdateRequest{
		BookingSource:      "concur",
		ConfirmationNumber: "ABC123",
		FareClass:          "Y",
		PaymentID:          "pay-7",
		Flights:            []models.FlightUpdate{{FlightNumber: "AA100", Date: "2026-09-10"}},
	})
	require.NoError(t, err)
	require.Len(t, result.Flights, 1)
	assert.Equal(t, 100.0, result.Flights[0].Price)
}

func TestFlightUpdateInventoryPrice(t *testing.T) {
	fx := setupReservationTest(t)

	seeded := airInput("")
	seeded.AvailabilityData = map[string]map[string]int{
		"2026-09-10": {"economy": 3},
	}
	seeded.PricingData = map[string]map[string]float64{
		"2026-09-10": {"economy": 150},
	}
	_, err := fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", seeded))
	require.NoError(t, err)

	result, err := fx.svc.UpdateReservationFlights(models.FlightUpdateRequest{
		BookingSource:      "concur",
		ConfirmationNumber: "ABC123",
		FareClass:          "Y",
		PaymentID:          "pay-4",
		Flights:            []models.FlightUpdate{{FlightNumber: "AA100", Date: "2026-09-10"}},
	})
	require.NoError(t, err)
	require.Len(t, result.Flights, 1)
	assert.Equal(t, 150.0, result.Flights[0].Price)
}

func TestFlightUpdateNewFlightDefaults(t *testing.T) {
	fx := setupReservationTest(t)

	confirmation, err := fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", airInput("")))
	require.NoError(t, err)

	result, err := fx.svc.UpdateReservationFlights(models.FlightUpdateRequest{
		BookingSource:      "concur",
		ConfirmationNumber: "ABC123",
		FareClass:          "W",
		PaymentID:          "pay-5",
		Flights:            []models.FlightUpdate{{FlightNumber: "UA2002", Date: "2026-10-01"}},
	})
	require.NoError(t, err)
	require.Len(t, result.Flights, 1)
	assert.Equal(t, 200.0, result.Flights[0].Price)
	assert.Equal(t, "JFK", result.Flights[0].Origin)
	assert.Equal(t, "LAX", result.Flights[0].Destination)

	booking, err := fx.bookings.GetByID(confirmation.BookingID)
	require.NoError(t, err)
	air := booking.AirSegments()
	require.Len(t, air, 1)
	assert.Equal(t, "UA200220261001", air[0].ConfirmationNumber)
	assert.Equal(t, "UA", air[0].Vendor)
	assert.Equal(t, "UA Airlines", air[0].VendorName)
	assert.Equal(t, "Boeing 737", air[0].Air.AircraftType)
	assert.Equal(t, "W", air[0].Air.FareClass)
	assert.Equal(t, "USD", air[0].Currency)
	assert.True(t, air[0].Air.IsDirect)
	// No segment matches the new flight, so the allowance of the first
	// original air segment carries over.
	assert.Equal(t, 2, air[0].Air.Baggage.Count)
}

func TestFlightUpdateNoAirSegments(t *testing.T) {
	fx := setupReservationTest(t)

	input := models.BookingInput{
		BookingSource: "concur",
		RecordLocator: "ABC123",
		Passengers:    []models.PassengerInput{{NameFirst: "Ada", NameLast: "Lovelace"}},
		Segments: &models.SegmentsInput{Hotel: []models.HotelSegmentInput{{
			CheckInDate:  "2026-09-10",
			CheckOutDate: "2026-09-12",
			HotelName:    "Grand Plaza",
			Location:     "San Francisco",
			Vendor:       "HL",
			Currency:     "USD",
			TotalRate:    300,
		}}},
	}
	_, err := fx.svc.CreateOrUpdateBooking(fx.tripID, input)
	require.NoError(t, err)

	_, err = fx.svc.UpdateReservationFlights(models.FlightUpdateRequest{
		BookingSource:      "concur",
		ConfirmationNumber: "ABC123",
		FareClass:          "Y",
		PaymentID:          "pay-6",
		Flights:            []models.FlightUpdate{{FlightNumber: "AA100", Date: "2026-09-10"}},
	})
	require.Error(t, err)
	assert.Equal(t, "Booking does not contain any air segments", err.Error())
}

func TestBaggageUpdateChargesAddedPaidBags(t *testing.T) {
	fx := setupReservationTest(t)

	confirmation, err := fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", airInput("")))
	require.NoError(t, err)

	paymentID := "pay-bags"
	result, err := fx.svc.UpdateReservationBaggages(models.BaggageUpdateRequest{
		BookingSource:      "concur",
		ConfirmationNumber: "ABC123",
		TotalBaggages:      3,
		NonfreeBaggages:    2,
		PaymentID:          &paymentID,
	})
	require.NoError(t, err)

	require.NotNil(t, result.Payment)
	assert.Equal(t, 100.0, result.Payment.Amount)
	assert.Equal(t, models.PaymentTypeBaggage, result.Payment.Type)

	booking, err := fx.bookings.GetByID(confirmation.BookingID)
	require.NoError(t, err)
	air := booking.AirSegments()
	require.Len(t, air, 1)
	assert.Equal(t, models.Baggage{Count: 3, WeightKg: 69, NonfreeCount: 2}, air[0].Air.Baggage)
	require.Len(t, booking.PaymentHistory, 1)
	assert.Equal(t, 100.0, booking.PaymentHistory[0].Amount)
}

func TestBaggageUpdateRequiresPaymentForCharge(t *testing.T) {
	fx := setupReservationTest(t)

	_, err := fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", airInput("")))
	require.NoError(t, err)

	_, err = fx.svc.UpdateReservationBaggages(models.BaggageUpdateRequest{
		BookingSource:      "concur",
		ConfirmationNumber: "ABC123",
		TotalBaggages:      2,
		NonfreeBaggages:    1,
	})
	require.Error(t, err)
	assert.Equal(t, "payment_id is required when adding paid baggage", err.Error())
}

func TestBaggageUpdateFreeOnlyNeedsNoPayment(t *testing.T) {
	fx := setupReservationTest(t)

	_, err := fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", airInput("")))
	require.NoError(t, err)

	result, err := fx.svc.UpdateReservationBaggages(models.BaggageUpdateRequest{
		BookingSource:      "concur",
		ConfirmationNumber: "ABC123",
		TotalBaggages:      1,
		NonfreeBaggages:    0,
	})
	require.NoError(t, err)
	assert.Nil(t, result.Payment)
	assert.Equal(t, 1, result.Baggage.TotalBaggages)
}

func TestBaggageUpdateNonfreeExceedsTotal(t *testing.T) {
	fx := setupReservationTest(t)

	_, err := fx.svc.UpdateReservationBaggages(models.BaggageUpdateRequest{
		BookingSource:      "concur",
		ConfirmationNumber: "ABC123",
		TotalBaggages:      1,
		NonfreeBaggages:    2,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonfree_baggages cannot exceed total_baggages")
}

func TestPassengerUpdateReplacesRoster(t *testing.T) {
	fx := setupReservationTest(t)

	confirmation, err := fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", airInput("")))
	require.NoError(t, err)

	dob := "1815-12-10"
	result, err := fx.svc.UpdateReservationPassengers(models.PassengerUpdateRequest{
		BookingSource:      "concur",
		ConfirmationNumber: "ABC123",
		Passengers:         []models.PassengerUpdate{{NameFirst: "Augusta", NameLast: "King", DateOfBirth: &dob}},
	})
	require.NoError(t, err)

	require.Len(t, result.Passengers, 1)
	assert.NotEmpty(t, result.Passengers[0].PassengerID)
	assert.Equal(t, "Augusta", result.Passengers[0].FirstName)
	assert.Equal(t, "King/Augusta", result.Passengers[0].TextName)
	assert.Equal(t, dob, result.Passengers[0].DateOfBirth)

	// A later replacement without a date of birth inherits it by position.
	second, err := fx.svc.UpdateReservationPassengers(models.PassengerUpdateRequest{
		BookingSource:      "concur",
		ConfirmationNumber: "ABC123",
		Passengers:         []models.PassengerUpdate{{NameFirst: "Ada", NameLast: "Byron"}},
	})
	require.NoError(t, err)
	assert.Equal(t, dob, second.Passengers[0].DateOfBirth)

	booking, err := fx.bookings.GetByID(confirmation.BookingID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusUpdated, booking.Status)
	assert.Equal(t, "Byron", booking.Passengers[0].NameLast)
}

func TestPassengerUpdateCountMismatch(t *testing.T) {
	fx := setupReservationTest(t)

	_, err := fx.svc.CreateOrUpdateBooking(fx.tripID, bookingInput("ABC123", airInput("")))
	require.NoError(t, err)

	_, err = fx.svc.UpdateReservationPassengers(models.PassengerUpdateRequest{
		BookingSource:      "concur",
		ConfirmationNumber: "ABC123",
		Passengers: []models.PassengerUpdate{
			{NameFirst: "Ada", NameLast: "Lovelace"},
			{NameFirst: "Charles", NameLast: "Babbage"},
		},
	})
	require.Error(t, err)
	assert.Equal(t, "Number of passengers does not match", err.Error())
}
