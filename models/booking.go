package models

// BookingKind identifies which trip component a booking belongs to.
type BookingKind string

const (
	KindFlight   BookingKind = "flight"
	KindHotel    BookingKind = "hotel"
	KindActivity BookingKind = "activity"
)

// BookingStatus is the lifecycle state of a booking record.
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusFailed    BookingStatus = "FAILED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// Booking is a committed reservation for one candidate. Details always
// holds exactly the candidate that was booked; it is never re-derived.
// A booking is immutable once its status reaches CONFIRMED.
type Booking struct {
	ID           string        `json:"id"` // provider-prefixed, e.g. "FLIGHT-FL1"
	Kind         BookingKind   `json:"kind"`
	Status       BookingStatus `json:"status"`
	Details      any           `json:"details"`
	Confirmation string        `json:"confirmation,omitempty"`
}
