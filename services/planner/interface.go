package planner

import (
	"context"

	"roamify/models"
)

// PlannerService defines the interface for running one trip-planning
// orchestration from preferences to a consolidated itinerary.
type PlannerService interface {
	PlanTrip(ctx context.Context, prefs models.TravelPreferences) (models.Itinerary, error)
}

// DefaultPlannerService implements PlannerService over the external
// collaborator interfaces. All fields must be set; the service holds no
// state between runs.
type DefaultPlannerService struct {
	Tokens    *TokenCache
	Flights   FlightInventory
	Locations LocationResolver
	Lodging   LodgingInventory
	POI       POIDiscovery
	Bookings  BookingProvider

	// Provider location codes for the flight leg. Code resolution is the
	// caller's concern; the pipeline uses them as-is.
	OriginCode      string
	DestinationCode string

	// Currency used for lodging quotes, e.g. "EUR".
	Currency string
}
