package inventory

import (
	"context"
	"fmt"
	"math"
	"time"

	"roamify/models"
	"roamify/services/planner"
)

// MockLodgingInventory generates properties around a coordinate and
// prices them deterministically from the property index and stay length.
type MockLodgingInventory struct {
	// FailSearch makes the geocode search itself fail (primary query).
	FailSearch bool
	// FailQuotes lists property IDs whose quote lookup fails; the
	// planner is expected to skip those items and continue.
	FailQuotes map[string]bool
}

var propertyNames = []string{
	"Hôtel Lumière",
	"The Crescent House",
	"Auberge du Canal",
	"Grand Meridian Palace",
	"Maison Verte",
	"Riverside Court",
	"Hotel Beaumont",
	"Le Petit Jardin Inn",
}

func (m *MockLodgingInventory) SearchByGeocode(ctx context.Context, lat, lng, radiusKm float64) ([]planner.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.FailSearch {
		return nil, fmt.Errorf("hotel geocode search unavailable near %.4f,%.4f", lat, lng)
	}

	properties := make([]planner.Property, 0, len(propertyNames))
	for i, name := range propertyNames {
		// Scatter properties on a small ring inside the search radius.
		angle := float64(i) * math.Pi / 4
		properties = append(properties, planner.Property{
			ID:     fmt.Sprintf("HT%d", i+1),
			Name:   name,
			Rating: 3.0 + 0.25*float64(i%5),
			Location: models.GeoLocation{
				Latitude:  lat + 0.01*math.Sin(angle),
				Longitude: lng + 0.01*math.Cos(angle),
				Address:   fmt.Sprintf("%d Rue de la Gare", 10+i),
			},
		})
	}
	return properties, nil
}

func (m *MockLodgingInventory) Quote(ctx context.Context, propertyID string, checkIn, checkOut time.Time, guests int, currency string) (planner.Quote, error) {
	if err := ctx.Err(); err != nil {
		return planner.Quote{}, err
	}
	if m.FailQuotes[propertyID] {
		return planner.Quote{}, fmt.Errorf("no offers available for property %s", propertyID)
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	var index int
	fmt.Sscanf(propertyID, "HT%d", &index)
	nightly := 45.0 + 20.0*float64(index-1)
	return planner.Quote{
		Total:    nightly * float64(nights),
		Currency: currency,
	}, nil
}
