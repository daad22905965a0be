package models

import "time"

// TravelStyle buckets a traveller's spending profile.
type TravelStyle string

const (
	StyleLuxury   TravelStyle = "luxury"
	StyleMidRange TravelStyle = "mid-range"
	StyleBudget   TravelStyle = "budget"
)

// TravelPreferences is the immutable snapshot of trip parameters for a
// single planning run. It is assembled once by the caller and never
// modified while the run is in flight.
type TravelPreferences struct {
	OriginCity          string      `json:"originCity"`
	DestinationCity     string      `json:"destinationCity"`
	StartDate           time.Time   `json:"startDate"`
	EndDate             time.Time   `json:"endDate"`
	Style               TravelStyle `json:"style"`
	Budget              float64     `json:"budget"`
	Interests           []string    `json:"interests"`
	DietaryRestrictions []string    `json:"dietaryRestrictions"`
	AccessibilityNeeds  []string    `json:"accessibilityNeeds"`
	Guests              int         `json:"guests"`
}
