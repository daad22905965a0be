package models

import "time"

// GeoLocation pins an inventory item to a point on the map.
type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// FlightOffer is an unbooked flight candidate as returned by the flight
// inventory, in provider order.
type FlightOffer struct {
	ID            string    `json:"id"`
	Price         float64   `json:"price"`
	Airline       string    `json:"airline"` // carrier code, e.g. "AF"
	DepartureTime time.Time `json:"departureTime"`
	ArrivalTime   time.Time `json:"arrivalTime"`
	Stops         int       `json:"stops"`
}

// HotelOption is a lodging property joined with its best price quote for
// the requested stay.
type HotelOption struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Price    float64     `json:"price"` // total for the stay
	Rating   float64     `json:"rating"`
	Location GeoLocation `json:"location"`
}

// Activity is a point-of-interest venue enriched with its detail lookup.
type Activity struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Rating      float64     `json:"rating"`
	PriceTier   int         `json:"priceTier"` // 0 (free) .. 4 (splurge)
	Location    GeoLocation `json:"location"`
	Hours       string      `json:"hours,omitempty"`
	Description string      `json:"description,omitempty"`
	URL         string      `json:"url,omitempty"`
}
