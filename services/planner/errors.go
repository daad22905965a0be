package planner

import (
	"fmt"

	"roamify/models"
)

// Stage names the phase of the planning pipeline an error originated in.
type Stage string

const (
	StageFlightSearch   Stage = "flight_search"
	StageFlightBook     Stage = "flight_book"
	StageHotelSearch    Stage = "hotel_search"
	StageHotelBook      Stage = "hotel_book"
	StageActivitySearch Stage = "activity_search"
	StageActivityBook   Stage = "activity_book"
)

// AuthError reports a failed credential issuance. It is always fatal for
// the planning run; no retry is attempted.
type AuthError struct {
	Provider string
	Err      error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed for provider %s: %v", e.Provider, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// PrimaryQueryError reports a failed primary lookup (location resolution,
// geocode search, flight offer search, venue search). Fatal.
type PrimaryQueryError struct {
	Op  string
	Err error
}

func (e *PrimaryQueryError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *PrimaryQueryError) Unwrap() error { return e.Err }

// ItemQueryError reports a failed per-item sub-query (a single hotel's
// price quote, a single venue's detail lookup). It never escapes its
// stage: the item is logged and skipped.
type ItemQueryError struct {
	ItemID string
	Err    error
}

func (e *ItemQueryError) Error() string {
	return fmt.Sprintf("item %s query failed: %v", e.ItemID, e.Err)
}

func (e *ItemQueryError) Unwrap() error { return e.Err }

// BookingError reports a provider booking call that failed. Fatal.
type BookingError struct {
	Kind        models.BookingKind
	CandidateID string
	Err         error
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s booking for %s failed: %v", e.Kind, e.CandidateID, e.Err)
}

func (e *BookingError) Unwrap() error { return e.Err }

// PlanningError is the single error surfaced by PlanTrip. It names the
// stage that aborted the run and carries the cause chain.
type PlanningError struct {
	Stage Stage
	Err   error
}

func (e *PlanningError) Error() string {
	return fmt.Sprintf("trip planning failed at %s: %v", e.Stage, e.Err)
}

func (e *PlanningError) Unwrap() error { return e.Err }
