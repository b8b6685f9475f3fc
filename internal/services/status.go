package services

import "github.com/smarttravel/travel-booking-backend/internal/models"

// ReduceBookingStatus derives a booking status from its segments. The
// reducer only ever downgrades: every segment cancelled means CANCELLED,
// any waitlisted segment means PENDING, and otherwise the current status
// is kept as is.
func ReduceBookingStatus(segments []models.Segment, current models.BookingStatus) models.BookingStatus {
	if len(segments) == 0 {
		return current
	}

	allCancelled := true
	anyWaitlisted := false
	for i := range segments {
		switch segments[i].Status {
		case models.SegmentStatusCancelled:
		case models.SegmentStatusWaitlisted:
			anyWaitlisted = true
			allCancelled = false
		default:
			allCancelled = false
		}
	}

	if allCancelled {
		return models.BookingStatusCancelled
	}
	if anyWaitlisted {
		return models.BookingStatusPending
	}
	return current
}

// ReduceTripStatus derives a trip status from its bookings' states. Any
// PENDING booking puts the trip into PENDING_APPROVAL; once none remain
// a PENDING_APPROVAL trip returns to CONFIRMED. The reducer never
// cancels a trip and never touches CANCELED or COMPLETED trips.
func ReduceTripStatus(current models.TripStatus, bookingStatuses []models.BookingStatus) models.TripStatus {
	if current == models.TripStatusCanceled || current == models.TripStatusCompleted {
		return current
	}
	for _, status := range bookingStatuses {
		if status == models.BookingStatusPending {
			return models.TripStatusPendingApproval
		}
	}
	if current == models.TripStatusPendingApproval {
		return models.TripStatusConfirmed
	}
	return current
}
