package models

// Itinerary is the consolidated outcome of one planning run. The slices
// preserve booking order. The orchestrator owns the value exclusively for
// the duration of the run and hands it back by value on completion; a
// fatal failure yields no itinerary at all.
type Itinerary struct {
	Flights    []Booking `json:"flights"`
	Hotels     []Booking `json:"hotels"`
	Activities []Booking `json:"activities"`
}
