package inventory

import (
	"context"
	"fmt"
	"time"

	"roamify/models"
)

// MockFlightInventory generates a deterministic set of flight offers for
// a leg and date. Determinism matters: identical requests must yield
// structurally identical itineraries.
type MockFlightInventory struct {
	// Empty reports zero offers for every search.
	Empty bool
	// Fail makes every search return an error (primary-query failure).
	Fail bool
}

type fleetEntry struct {
	carrier   string
	basePrice float64
	stops     int
	departHr  int
}

var fleet = []fleetEntry{
	{"AF", 420, 0, 8},
	{"DL", 365, 1, 10},
	{"BA", 298, 1, 13},
	{"LH", 512, 0, 16},
	{"UA", 245, 2, 19},
}

func (m *MockFlightInventory) Search(ctx context.Context, origin, destination string, date time.Time, adults int) ([]models.FlightOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.Fail {
		return nil, fmt.Errorf("flight offer search unavailable for %s-%s", origin, destination)
	}
	if m.Empty {
		return []models.FlightOffer{}, nil
	}

	day := date.Truncate(24 * time.Hour)
	offers := make([]models.FlightOffer, 0, len(fleet))
	for i, entry := range fleet {
		departure := day.Add(time.Duration(entry.departHr) * time.Hour)
		duration := 7*time.Hour + 30*time.Minute + time.Duration(entry.stops)*2*time.Hour
		offers = append(offers, models.FlightOffer{
			ID:            fmt.Sprintf("FL%d", i+1),
			Price:         entry.basePrice + float64(date.Day()),
			Airline:       entry.carrier,
			DepartureTime: departure,
			ArrivalTime:   departure.Add(duration),
			Stops:         entry.stops,
		})
	}
	return offers, nil
}
