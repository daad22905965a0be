package planner

import (
	"context"

	"go.uber.org/zap"

	"roamify/models"
	"roamify/utils"
)

// Booking ID prefixes per candidate kind.
var kindPrefixes = map[models.BookingKind]string{
	models.KindFlight:   "FLIGHT",
	models.KindHotel:    "HOTEL",
	models.KindActivity: "ACT",
}

func (s *DefaultPlannerService) bookFlight(ctx context.Context, offer models.FlightOffer) (models.Booking, error) {
	return s.bookCandidate(ctx, models.KindFlight, offer.ID, offer)
}

func (s *DefaultPlannerService) bookHotel(ctx context.Context, hotel models.HotelOption) (models.Booking, error) {
	return s.bookCandidate(ctx, models.KindHotel, hotel.ID, hotel)
}

func (s *DefaultPlannerService) bookActivity(ctx context.Context, activity models.Activity) (models.Booking, error) {
	return s.bookCandidate(ctx, models.KindActivity, activity.ID, activity)
}

// bookCandidate commits a single accepted candidate through the booking
// provider. The returned booking carries the candidate verbatim in
// Details. A provider failure surfaces as a BookingError; no FAILED
// booking record enters the itinerary.
func (s *DefaultPlannerService) bookCandidate(ctx context.Context, kind models.BookingKind, candidateID string, details any) (models.Booking, error) {
	confirmation, err := s.Bookings.Book(ctx, kind, candidateID)
	if err != nil {
		return models.Booking{}, &BookingError{Kind: kind, CandidateID: candidateID, Err: err}
	}
	booking := models.Booking{
		ID:           kindPrefixes[kind] + "-" + candidateID,
		Kind:         kind,
		Status:       models.StatusConfirmed,
		Details:      details,
		Confirmation: confirmation.Code,
	}
	utils.GetLogger().Info("booking confirmed",
		zap.String("bookingId", booking.ID),
		zap.String("confirmation", booking.Confirmation))
	return booking, nil
}
