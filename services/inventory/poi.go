package inventory

import (
	"context"
	"fmt"

	"roamify/models"
	"roamify/services/planner"
)

// MockPOIDiscovery serves a fixed venue set modelled on a city-centre
// discovery response. Venues are tagged with the provider category IDs
// they belong to; a search with categories returns only venues sharing at
// least one requested category, a search without categories returns
// everything in range.
type MockPOIDiscovery struct {
	// FailSearch makes the venue search fail (primary query).
	FailSearch bool
	// FailDetails lists venue IDs whose detail lookup fails; the planner
	// skips those venues.
	FailDetails map[string]bool

	// LastSearchLat/Lng record the most recent search anchor.
	LastSearchLat float64
	LastSearchLng float64
}

type mockVenue struct {
	venue      planner.Venue
	categories []string
	detail     planner.VenueDetail
}

const (
	catHistoricSite = "4deefb944765f83613cdba6e"
	catFood         = "4d4b7105d754a06374d81259"
	catOutdoors     = "4d4b7105d754a06377d81259"
	catArts         = "4d4b7104d754a06370d81259"
	catShopping     = "4d4b7105d754a06378d81259"
)

var venueSet = []mockVenue{
	{
		venue: planner.Venue{
			ID: "V101", Name: "Eiffel Tower", Category: "Monument",
			Location: models.GeoLocation{Latitude: 48.8584, Longitude: 2.2945, Address: "Champ de Mars"},
		},
		categories: []string{catHistoricSite},
		detail: planner.VenueDetail{
			Rating: 4.8, PriceTier: 2, Hours: "Open until 11:00 PM",
			Description: "Wrought-iron landmark with panoramic viewing decks",
			URL:         "https://example.com/eiffel-tower",
		},
	},
	{
		venue: planner.Venue{
			ID: "V102", Name: "Louvre Museum", Category: "Museum",
			Location: models.GeoLocation{Latitude: 48.8606, Longitude: 2.3376, Address: "Rue de Rivoli"},
		},
		categories: []string{catArts, catHistoricSite},
		detail: planner.VenueDetail{
			Rating: 4.7, PriceTier: 2, Hours: "Open until 6:00 PM",
			Description: "World's largest art museum",
			URL:         "https://example.com/louvre",
		},
	},
	{
		venue: planner.Venue{
			ID: "V103", Name: "Le Petit Bistro", Category: "French Restaurant",
			Location: models.GeoLocation{Latitude: 48.8530, Longitude: 2.3499, Address: "Quai de Montebello"},
		},
		categories: []string{catFood},
		detail: planner.VenueDetail{
			Rating: 4.4, PriceTier: 3, Hours: "Open until 10:30 PM",
			Description: "Classic bistro fare by the Seine",
			URL:         "https://example.com/petit-bistro",
		},
	},
	{
		venue: planner.Venue{
			ID: "V104", Name: "Jardin des Tuileries", Category: "Garden",
			Location: models.GeoLocation{Latitude: 48.8634, Longitude: 2.3275, Address: "Place de la Concorde"},
		},
		categories: []string{catOutdoors},
		detail: planner.VenueDetail{
			Rating: 4.6, PriceTier: 0, Hours: "Open until 9:00 PM",
			Description: "Formal garden between the Louvre and the Concorde",
			URL:         "https://example.com/tuileries",
		},
	},
	{
		venue: planner.Venue{
			ID: "V105", Name: "Galeries Lafayette", Category: "Department Store",
			Location: models.GeoLocation{Latitude: 48.8738, Longitude: 2.3320, Address: "Boulevard Haussmann"},
		},
		categories: []string{catShopping},
		detail: planner.VenueDetail{
			Rating: 4.3, PriceTier: 3, Hours: "Open until 8:30 PM",
			Description: "Flagship department store under the glass dome",
			URL:         "https://example.com/lafayette",
		},
	},
	{
		venue: planner.Venue{
			ID: "V106", Name: "Musée d'Orsay", Category: "Museum",
			Location: models.GeoLocation{Latitude: 48.8600, Longitude: 2.3266, Address: "Rue de la Légion d'Honneur"},
		},
		categories: []string{catArts},
		detail: planner.VenueDetail{
			Rating: 4.7, PriceTier: 2, Hours: "Open until 6:00 PM",
			Description: "Impressionist collection in a former railway station",
			URL:         "https://example.com/orsay",
		},
	},
}

func (m *MockPOIDiscovery) Search(ctx context.Context, lat, lng float64, radiusMeters int, categories []string) ([]planner.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.LastSearchLat, m.LastSearchLng = lat, lng
	if m.FailSearch {
		return nil, fmt.Errorf("venue search unavailable near %.4f,%.4f", lat, lng)
	}

	var venues []planner.Venue
	for _, mv := range venueSet {
		if len(categories) > 0 && !intersects(mv.categories, categories) {
			continue
		}
		venues = append(venues, mv.venue)
	}
	return venues, nil
}

func (m *MockPOIDiscovery) Details(ctx context.Context, venueID string) (planner.VenueDetail, error) {
	if err := ctx.Err(); err != nil {
		return planner.VenueDetail{}, err
	}
	if m.FailDetails[venueID] {
		return planner.VenueDetail{}, fmt.Errorf("details unavailable for venue %s", venueID)
	}
	for _, mv := range venueSet {
		if mv.venue.ID == venueID {
			return mv.detail, nil
		}
	}
	return planner.VenueDetail{}, fmt.Errorf("unknown venue %s", venueID)
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
