package inventory

import (
	"context"
	"fmt"
	"strings"

	"roamify/services/planner"
)

// MockLocationResolver resolves a small fixed set of cities to provider
// location codes and coordinates.
type MockLocationResolver struct{}

var cityTable = map[string]planner.Location{
	"paris":    {Code: "PAR", Latitude: 48.8566, Longitude: 2.3522},
	"new york": {Code: "NYC", Latitude: 40.7128, Longitude: -74.0060},
	"london":   {Code: "LON", Latitude: 51.5074, Longitude: -0.1278},
	"rome":     {Code: "ROM", Latitude: 41.9028, Longitude: 12.4964},
	"tokyo":    {Code: "TYO", Latitude: 35.6762, Longitude: 139.6503},
}

func (m *MockLocationResolver) Resolve(ctx context.Context, city string) (planner.Location, error) {
	if err := ctx.Err(); err != nil {
		return planner.Location{}, err
	}
	location, ok := cityTable[strings.ToLower(strings.TrimSpace(city))]
	if !ok {
		return planner.Location{}, fmt.Errorf("no location code found for city %q", city)
	}
	return location, nil
}
