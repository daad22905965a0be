package inventory

import (
	"context"
	"fmt"
	"time"

	"roamify/models"
	"roamify/services/planner"
)

// MockBookingProvider is the placeholder booking backend: it confirms
// every candidate after a fixed processing delay, with a confirmation
// code derived from the candidate ID.
type MockBookingProvider struct {
	// Delay simulates provider processing time per booking call.
	Delay time.Duration
	// FailIDs lists candidate IDs whose booking call fails.
	FailIDs map[string]bool
}

func NewMockBookingProvider() *MockBookingProvider {
	return &MockBookingProvider{Delay: 150 * time.Millisecond}
}

func (m *MockBookingProvider) Book(ctx context.Context, kind models.BookingKind, candidateID string) (planner.Confirmation, error) {
	if m.Delay > 0 {
		select {
		case <-ctx.Done():
			return planner.Confirmation{}, ctx.Err()
		case <-time.After(m.Delay):
		}
	} else if err := ctx.Err(); err != nil {
		return planner.Confirmation{}, err
	}

	if m.FailIDs[candidateID] {
		return planner.Confirmation{}, fmt.Errorf("%s booking rejected by provider for %s", kind, candidateID)
	}
	return planner.Confirmation{Code: "CONF-" + candidateID}, nil
}
