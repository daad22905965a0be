package planner

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamify/models"
)

// Fake collaborators. Each fake keeps just enough state to steer one
// scenario; provider order of returned candidates is preserved.

type fakeFlights struct {
	offers []models.FlightOffer
	err    error
}

func (f *fakeFlights) Search(ctx context.Context, origin, destination string, date time.Time, adults int) ([]models.FlightOffer, error) {
	return f.offers, f.err
}

type fakeLocations struct {
	loc Location
	err error
}

func (f *fakeLocations) Resolve(ctx context.Context, city string) (Location, error) {
	return f.loc, f.err
}

type fakeLodging struct {
	props     []Property
	searchErr error
	quoteErrs map[string]error
	quotes    map[string]float64
}

func (f *fakeLodging) SearchByGeocode(ctx context.Context, lat, lng, radiusKm float64) ([]Property, error) {
	return f.props, f.searchErr
}

func (f *fakeLodging) Quote(ctx context.Context, propertyID string, checkIn, checkOut time.Time, guests int, currency string) (Quote, error) {
	if err := f.quoteErrs[propertyID]; err != nil {
		return Quote{}, err
	}
	total, ok := f.quotes[propertyID]
	if !ok {
		total = 180
	}
	return Quote{Total: total, Currency: currency}, nil
}

type fakePOI struct {
	venues     []Venue
	searchErr  error
	details    map[string]VenueDetail
	detailErrs map[string]error

	lastLat float64
	lastLng float64
}

func (f *fakePOI) Search(ctx context.Context, lat, lng float64, radiusMeters int, categories []string) ([]Venue, error) {
	f.lastLat, f.lastLng = lat, lng
	return f.venues, f.searchErr
}

func (f *fakePOI) Details(ctx context.Context, venueID string) (VenueDetail, error) {
	if err := f.detailErrs[venueID]; err != nil {
		return VenueDetail{}, err
	}
	return f.details[venueID], nil
}

type fakeBookings struct {
	failIDs map[string]bool
	booked  []string
}

func (f *fakeBookings) Book(ctx context.Context, kind models.BookingKind, candidateID string) (Confirmation, error) {
	if f.failIDs[candidateID] {
		return Confirmation{}, fmt.Errorf("provider rejected %s", candidateID)
	}
	f.booked = append(f.booked, candidateID)
	return Confirmation{Code: "CONF-" + candidateID}, nil
}

func landmarkVenues(n int) ([]Venue, map[string]VenueDetail) {
	venues := make([]Venue, 0, n)
	details := make(map[string]VenueDetail, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("V%d", i+1)
		venues = append(venues, Venue{
			ID:       id,
			Name:     fmt.Sprintf("City Museum %d", i+1),
			Category: "Museum",
			Location: models.GeoLocation{Latitude: 48.86, Longitude: 2.33},
		})
		details[id] = VenueDetail{Rating: 4.5, PriceTier: 2}
	}
	return venues, details
}

func testPrefs() models.TravelPreferences {
	return models.TravelPreferences{
		OriginCity:      "New York",
		DestinationCity: "Paris",
		StartDate:       time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 9, 27, 0, 0, 0, 0, time.UTC),
		Style:           models.StyleMidRange,
		Budget:          5000,
		Interests:       []string{"history", "food"},
		Guests:          2,
	}
}

func newTestService() (*DefaultPlannerService, *fakeBookings, *fakePOI) {
	venues, details := landmarkVenues(2)
	poi := &fakePOI{venues: venues, details: details}
	bookings := &fakeBookings{}
	svc := &DefaultPlannerService{
		Tokens: &TokenCache{Issuer: &countingIssuer{}, Provider: "inventory", ClientID: "id", ClientSecret: "secret"},
		Flights: &fakeFlights{offers: []models.FlightOffer{
			{ID: "F1", Price: 420, Airline: "AF"},
			{ID: "F2", Price: 365, Airline: "DL"},
		}},
		Locations: &fakeLocations{loc: Location{Code: "PAR", Latitude: 48.8566, Longitude: 2.3522}},
		Lodging: &fakeLodging{
			props: []Property{
				{ID: "H1", Name: "Hôtel Lumière", Rating: 4.2, Location: models.GeoLocation{Latitude: 48.87, Longitude: 2.35}},
				{ID: "H2", Name: "Riverside Court", Rating: 3.8, Location: models.GeoLocation{Latitude: 48.85, Longitude: 2.34}},
			},
			quotes: map[string]float64{"H1": 280, "H2": 210},
		},
		POI:             poi,
		Bookings:        bookings,
		OriginCode:      "JFK",
		DestinationCode: "CDG",
		Currency:        "EUR",
	}
	return svc, bookings, poi
}

func TestPlanTripBooksFirstSurvivingCandidates(t *testing.T) {
	svc, _, _ := newTestService()

	itinerary, err := svc.PlanTrip(context.Background(), testPrefs())
	require.NoError(t, err)

	require.Len(t, itinerary.Flights, 1)
	flight := itinerary.Flights[0]
	assert.Equal(t, "FLIGHT-F1", flight.ID)
	assert.Equal(t, models.KindFlight, flight.Kind)
	assert.Equal(t, models.StatusConfirmed, flight.Status)
	assert.Equal(t, "CONF-F1", flight.Confirmation)
	offer, ok := flight.Details.(models.FlightOffer)
	require.True(t, ok, "Details must carry the booked candidate verbatim")
	assert.Equal(t, "F1", offer.ID)

	require.Len(t, itinerary.Hotels, 1)
	assert.Equal(t, "HOTEL-H1", itinerary.Hotels[0].ID)
	assert.Equal(t, "CONF-H1", itinerary.Hotels[0].Confirmation)

	require.Len(t, itinerary.Activities, 2)
	assert.Equal(t, "ACT-V1", itinerary.Activities[0].ID)
	assert.Equal(t, "ACT-V2", itinerary.Activities[1].ID)
}

func TestPlanTripNoFlightOffersIsNotFatal(t *testing.T) {
	svc, _, _ := newTestService()
	svc.Flights = &fakeFlights{offers: nil}

	itinerary, err := svc.PlanTrip(context.Background(), testPrefs())
	require.NoError(t, err)
	assert.Empty(t, itinerary.Flights)
	require.Len(t, itinerary.Hotels, 1, "hotel stage proceeds without a flight")
}

func TestPlanTripActivityBookingCap(t *testing.T) {
	svc, bookings, poi := newTestService()
	venues, details := landmarkVenues(5)
	poi.venues, poi.details = venues, details

	itinerary, err := svc.PlanTrip(context.Background(), testPrefs())
	require.NoError(t, err)

	require.Len(t, itinerary.Activities, 3, "at most 3 activities are booked")
	assert.Equal(t, "ACT-V1", itinerary.Activities[0].ID)
	assert.Equal(t, "ACT-V2", itinerary.Activities[1].ID)
	assert.Equal(t, "ACT-V3", itinerary.Activities[2].ID)
	// F1, H1, then the first three venues in discovery order.
	assert.Equal(t, []string{"F1", "H1", "V1", "V2", "V3"}, bookings.booked)
}

func TestPlanTripHotelPrimaryQueryFailureAborts(t *testing.T) {
	svc, _, _ := newTestService()
	svc.Locations = &fakeLocations{err: errors.New("no location code found")}

	itinerary, err := svc.PlanTrip(context.Background(), testPrefs())
	require.Error(t, err)

	var planErr *PlanningError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, StageHotelSearch, planErr.Stage)

	var primaryErr *PrimaryQueryError
	assert.ErrorAs(t, err, &primaryErr)

	// Partial accumulation is discarded on fatal failure.
	assert.Empty(t, itinerary.Flights)
	assert.Empty(t, itinerary.Hotels)
	assert.Empty(t, itinerary.Activities)
}

func TestPlanTripAuthFailureAborts(t *testing.T) {
	svc, _, _ := newTestService()
	svc.Tokens = &TokenCache{
		Issuer:   &countingIssuer{err: errors.New("invalid client credentials")},
		Provider: "inventory",
	}

	_, err := svc.PlanTrip(context.Background(), testPrefs())
	require.Error(t, err)

	var planErr *PlanningError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, StageFlightSearch, planErr.Stage)

	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestPlanTripQuoteFailureSkipsProperty(t *testing.T) {
	svc, _, _ := newTestService()
	lodging := svc.Lodging.(*fakeLodging)
	lodging.quoteErrs = map[string]error{"H1": errors.New("no offers available")}

	itinerary, err := svc.PlanTrip(context.Background(), testPrefs())
	require.NoError(t, err, "a per-item quote failure never aborts the run")

	require.Len(t, itinerary.Hotels, 1)
	assert.Equal(t, "HOTEL-H2", itinerary.Hotels[0].ID, "the unquotable property is skipped")
}

func TestPlanTripVenueDetailFailureSkipsVenue(t *testing.T) {
	svc, _, poi := newTestService()
	poi.detailErrs = map[string]error{"V1": errors.New("details unavailable")}

	itinerary, err := svc.PlanTrip(context.Background(), testPrefs())
	require.NoError(t, err)

	require.Len(t, itinerary.Activities, 1)
	assert.Equal(t, "ACT-V2", itinerary.Activities[0].ID)
}

func TestPlanTripActivityAnchorFollowsBookedHotel(t *testing.T) {
	svc, _, poi := newTestService()

	_, err := svc.PlanTrip(context.Background(), testPrefs())
	require.NoError(t, err)

	// H1 is the booked hotel; its coordinates anchor the venue search.
	assert.InDelta(t, 48.87, poi.lastLat, 1e-9)
	assert.InDelta(t, 2.35, poi.lastLng, 1e-9)
}

func TestPlanTripActivityAnchorFallsBackToDestination(t *testing.T) {
	svc, _, poi := newTestService()
	svc.Lodging = &fakeLodging{props: nil}

	itinerary, err := svc.PlanTrip(context.Background(), testPrefs())
	require.NoError(t, err)
	assert.Empty(t, itinerary.Hotels)

	assert.InDelta(t, 48.8566, poi.lastLat, 1e-9)
	assert.InDelta(t, 2.3522, poi.lastLng, 1e-9)
}

func TestPlanTripActivityBookingFailureAbortsRun(t *testing.T) {
	svc, bookings, poi := newTestService()
	venues, details := landmarkVenues(3)
	poi.venues, poi.details = venues, details
	bookings.failIDs = map[string]bool{"V2": true}

	itinerary, err := svc.PlanTrip(context.Background(), testPrefs())
	require.Error(t, err)

	var planErr *PlanningError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, StageActivityBook, planErr.Stage)

	var bookErr *BookingError
	require.ErrorAs(t, err, &bookErr)
	assert.Equal(t, "V2", bookErr.CandidateID)

	assert.Empty(t, itinerary.Activities, "fatal failure discards partial accumulation")
}

func TestPlanTripRejectedCandidatesNeverReachBooking(t *testing.T) {
	svc, bookings, _ := newTestService()
	lodging := svc.Lodging.(*fakeLodging)
	// H1 prices out of the mid-range band; H2 stays in.
	lodging.quotes = map[string]float64{"H1": 950, "H2": 210}

	itinerary, err := svc.PlanTrip(context.Background(), testPrefs())
	require.NoError(t, err)

	require.Len(t, itinerary.Hotels, 1)
	assert.Equal(t, "HOTEL-H2", itinerary.Hotels[0].ID)
	assert.NotContains(t, bookings.booked, "H1")
}

func TestPlanTripIsIdempotentWithDeterministicCollaborators(t *testing.T) {
	svc, _, _ := newTestService()

	first, err := svc.PlanTrip(context.Background(), testPrefs())
	require.NoError(t, err)
	second, err := svc.PlanTrip(context.Background(), testPrefs())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
