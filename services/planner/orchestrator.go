package planner

import (
	"context"

	"go.uber.org/zap"

	"roamify/models"
	"roamify/utils"
)

const (
	flightSearchAdults   = 1
	hotelSearchRadiusKm  = 20
	hotelQuoteCap        = 5
	activityRadiusMeters = 5000
	activityBookingCap   = 3
)

// defaultAnchor is the activity search fallback when neither a booked
// hotel nor a resolved destination supplies coordinates.
var defaultAnchor = models.GeoLocation{Latitude: 48.85334, Longitude: 2.34889}

// PlanTrip drives the full planning pipeline: flight search and booking,
// hotel search and booking, then activity search and booking. Stages run
// strictly in sequence. An empty search result skips the matching booking
// stage and the run continues; a fatal stage error aborts the run,
// discards any partial accumulation, and surfaces as a single
// PlanningError naming the originating stage.
func (s *DefaultPlannerService) PlanTrip(ctx context.Context, prefs models.TravelPreferences) (models.Itinerary, error) {
	logger := utils.GetLogger()
	if prefs.Guests <= 0 {
		prefs.Guests = 2
	}

	// Empty stages yield empty lists, not nulls.
	itinerary := models.Itinerary{
		Flights:    []models.Booking{},
		Hotels:     []models.Booking{},
		Activities: []models.Booking{},
	}

	flights, err := s.searchFlights(ctx, prefs)
	if err != nil {
		return models.Itinerary{}, &PlanningError{Stage: StageFlightSearch, Err: err}
	}
	if len(flights) > 0 {
		// Provider order is authoritative: book the first candidate only.
		booking, err := s.bookFlight(ctx, flights[0])
		if err != nil {
			return models.Itinerary{}, &PlanningError{Stage: StageFlightBook, Err: err}
		}
		itinerary.Flights = append(itinerary.Flights, booking)
	} else {
		logger.Info("no flight offers found, continuing without a flight")
	}

	hotels, destination, err := s.searchHotels(ctx, prefs)
	if err != nil {
		return models.Itinerary{}, &PlanningError{Stage: StageHotelSearch, Err: err}
	}
	if len(hotels) > 0 {
		booking, err := s.bookHotel(ctx, hotels[0])
		if err != nil {
			return models.Itinerary{}, &PlanningError{Stage: StageHotelBook, Err: err}
		}
		itinerary.Hotels = append(itinerary.Hotels, booking)
	} else {
		logger.Info("no hotels matched, continuing without lodging")
	}

	// The booked hotel anchors the activity search; otherwise fall back
	// to the resolved destination coordinates.
	anchor := destination
	if len(itinerary.Hotels) > 0 {
		if hotel, ok := itinerary.Hotels[0].Details.(models.HotelOption); ok {
			anchor = hotel.Location
		}
	}
	if anchor.Latitude == 0 && anchor.Longitude == 0 {
		anchor = defaultAnchor
	}

	activities, err := s.searchActivities(ctx, prefs, anchor)
	if err != nil {
		return models.Itinerary{}, &PlanningError{Stage: StageActivitySearch, Err: err}
	}
	if len(activities) > activityBookingCap {
		activities = activities[:activityBookingCap]
	}
	for _, activity := range activities {
		booking, err := s.bookActivity(ctx, activity)
		if err != nil {
			return models.Itinerary{}, &PlanningError{Stage: StageActivityBook, Err: err}
		}
		itinerary.Activities = append(itinerary.Activities, booking)
	}

	logger.Info("trip planning complete",
		zap.Int("flights", len(itinerary.Flights)),
		zap.Int("hotels", len(itinerary.Hotels)),
		zap.Int("activities", len(itinerary.Activities)))
	return itinerary, nil
}

// searchFlights acquires a fresh provider credential and queries flight
// offers for the departure date. Offers come back in provider order; no
// re-sorting happens here or downstream.
func (s *DefaultPlannerService) searchFlights(ctx context.Context, prefs models.TravelPreferences) ([]models.FlightOffer, error) {
	logger := utils.GetLogger()
	if _, err := s.Tokens.GetToken(ctx); err != nil {
		return nil, err
	}

	offers, err := s.Flights.Search(ctx, s.OriginCode, s.DestinationCode, prefs.StartDate, flightSearchAdults)
	if err != nil {
		return nil, &PrimaryQueryError{Op: "flight offer search", Err: err}
	}
	logger.Info("flight search finished",
		zap.String("origin", s.OriginCode),
		zap.String("destination", s.DestinationCode),
		zap.Int("offers", len(offers)))
	return offers, nil
}

// searchHotels resolves the destination city, finds properties within the
// search radius, and prices each of the first hotelQuoteCap properties
// individually. A failed quote skips that property only; the resolved
// destination coordinates are returned for use as the activity anchor.
func (s *DefaultPlannerService) searchHotels(ctx context.Context, prefs models.TravelPreferences) ([]models.HotelOption, models.GeoLocation, error) {
	logger := utils.GetLogger()
	if _, err := s.Tokens.GetToken(ctx); err != nil {
		return nil, models.GeoLocation{}, err
	}

	location, err := s.Locations.Resolve(ctx, prefs.DestinationCity)
	if err != nil {
		return nil, models.GeoLocation{}, &PrimaryQueryError{Op: "destination resolution for " + prefs.DestinationCity, Err: err}
	}
	destination := models.GeoLocation{Latitude: location.Latitude, Longitude: location.Longitude}

	properties, err := s.Lodging.SearchByGeocode(ctx, location.Latitude, location.Longitude, hotelSearchRadiusKm)
	if err != nil {
		return nil, destination, &PrimaryQueryError{Op: "hotel geocode search", Err: err}
	}
	if len(properties) == 0 {
		logger.Info("no properties found near destination", zap.String("city", prefs.DestinationCity))
		return nil, destination, nil
	}
	if len(properties) > hotelQuoteCap {
		properties = properties[:hotelQuoteCap]
	}

	var hotels []models.HotelOption
	for _, property := range properties {
		quote, err := s.Lodging.Quote(ctx, property.ID, prefs.StartDate, prefs.EndDate, prefs.Guests, s.Currency)
		if err != nil {
			itemErr := &ItemQueryError{ItemID: property.ID, Err: err}
			logger.Warn("skipping property without a usable quote", zap.Error(itemErr))
			continue
		}
		hotel := models.HotelOption{
			ID:       property.ID,
			Name:     property.Name,
			Price:    quote.Total,
			Rating:   property.Rating,
			Location: property.Location,
		}
		if MatchesHotel(prefs, hotel) {
			hotels = append(hotels, hotel)
		}
	}
	logger.Info("hotel search finished",
		zap.String("city", prefs.DestinationCity),
		zap.Int("matched", len(hotels)))
	return hotels, destination, nil
}

// searchActivities queries venue discovery around the anchor coordinate
// and enriches each hit with its detail lookup. The discovery provider
// needs no credential. A failed detail lookup skips that venue only.
func (s *DefaultPlannerService) searchActivities(ctx context.Context, prefs models.TravelPreferences, anchor models.GeoLocation) ([]models.Activity, error) {
	logger := utils.GetLogger()
	categories := CategoriesForInterests(prefs.Interests)

	venues, err := s.POI.Search(ctx, anchor.Latitude, anchor.Longitude, activityRadiusMeters, categories)
	if err != nil {
		return nil, &PrimaryQueryError{Op: "venue search", Err: err}
	}

	var activities []models.Activity
	for _, venue := range venues {
		detail, err := s.POI.Details(ctx, venue.ID)
		if err != nil {
			itemErr := &ItemQueryError{ItemID: venue.ID, Err: err}
			logger.Warn("skipping venue without details", zap.Error(itemErr))
			continue
		}
		activity := models.Activity{
			ID:          venue.ID,
			Name:        venue.Name,
			Category:    venue.Category,
			Rating:      detail.Rating,
			PriceTier:   detail.PriceTier,
			Location:    venue.Location,
			Hours:       detail.Hours,
			Description: detail.Description,
			URL:         detail.URL,
		}
		if MatchesActivity(prefs, activity) {
			activities = append(activities, activity)
		}
	}
	logger.Info("activity search finished",
		zap.Float64("lat", anchor.Latitude),
		zap.Float64("lng", anchor.Longitude),
		zap.Int("matched", len(activities)))
	return activities, nil
}
