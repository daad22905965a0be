package planner

import (
	"context"
	"time"

	"roamify/models"
)

// The planner consumes its external collaborators through the interfaces
// below. Transport, authentication wiring and response parsing are the
// collaborators' concern; the mock implementations live in
// services/inventory.

// CredentialIssuer hands out opaque bearer credentials for provider
// sessions. Expiry is unspecified.
type CredentialIssuer interface {
	Issue(ctx context.Context, clientID, clientSecret string) (string, error)
}

// Location is a resolved city: a provider location code plus coordinates.
type Location struct {
	Code      string
	Latitude  float64
	Longitude float64
}

// LocationResolver turns a city name into a provider location.
type LocationResolver interface {
	Resolve(ctx context.Context, city string) (Location, error)
}

// FlightInventory searches flight offers for a one-way leg.
type FlightInventory interface {
	Search(ctx context.Context, origin, destination string, date time.Time, adults int) ([]models.FlightOffer, error)
}

// Property is a lodging candidate before pricing.
type Property struct {
	ID       string
	Name     string
	Rating   float64
	Location models.GeoLocation
}

// Quote is the best available rate for a property and stay.
type Quote struct {
	Total    float64
	Currency string
}

// LodgingInventory finds properties near a coordinate and prices them
// individually. Quote failures are item-scoped, not fatal.
type LodgingInventory interface {
	SearchByGeocode(ctx context.Context, lat, lng, radiusKm float64) ([]Property, error)
	Quote(ctx context.Context, propertyID string, checkIn, checkOut time.Time, guests int, currency string) (Quote, error)
}

// Venue is a point-of-interest hit from discovery search.
type Venue struct {
	ID       string
	Name     string
	Category string
	Location models.GeoLocation
}

// VenueDetail carries the per-venue enrichment lookup.
type VenueDetail struct {
	Rating      float64
	PriceTier   int
	Hours       string
	Description string
	URL         string
}

// POIDiscovery searches venues near a coordinate. It requires no bearer
// credential in this design.
type POIDiscovery interface {
	Search(ctx context.Context, lat, lng float64, radiusMeters int, categories []string) ([]Venue, error)
	Details(ctx context.Context, venueID string) (VenueDetail, error)
}

// Confirmation is the provider's acknowledgement of a committed booking.
type Confirmation struct {
	Code string
}

// BookingProvider commits a single candidate, identified by kind and
// candidate ID.
type BookingProvider interface {
	Book(ctx context.Context, kind models.BookingKind, candidateID string) (Confirmation, error)
}
