package planner

import (
	"strings"

	"go.uber.org/zap"

	"roamify/models"
	"roamify/utils"
)

// Static matching configuration. Kept as data rather than branches so the
// tables can be tested and extended without touching the rule logic.
var (
	// interestCategories maps a traveller interest to the discovery
	// provider's category identifiers. Interests without an entry are
	// silently ignored when building a venue search.
	interestCategories = map[string][]string{
		"history":  {"4deefb944765f83613cdba6e"}, // Historic Site
		"food":     {"4d4b7105d754a06374d81259"}, // Food
		"nature":   {"4d4b7105d754a06377d81259"}, // Outdoors
		"culture":  {"4d4b7104d754a06370d81259"}, // Arts & Entertainment
		"shopping": {"4d4b7105d754a06378d81259"}, // Shop & Service
	}

	// landmarkKeywords always match an activity regardless of the
	// configured interests. They keep sparse interest mappings from
	// filtering out the obvious sights.
	landmarkKeywords = []string{"museum", "monument", "tower", "palace", "park", "garden"}
)

// CategoriesForInterests translates traveller interests into provider
// category identifiers, dropping interests with no mapping.
func CategoriesForInterests(interests []string) []string {
	var categories []string
	for _, interest := range interests {
		if ids, ok := interestCategories[strings.ToLower(interest)]; ok {
			categories = append(categories, ids...)
		}
	}
	return categories
}

// Rule evaluation is indirected through package variables so an
// evaluation fault can be simulated; MatchesHotel and MatchesActivity
// recover from faults and accept the candidate. Matching must never
// abort a planning run.
var (
	hotelRule    = evaluateHotel
	activityRule = evaluateActivity
)

// MatchesHotel reports whether a hotel candidate satisfies the
// traveller's style. An internal evaluation fault counts as a match.
func MatchesHotel(prefs models.TravelPreferences, hotel models.HotelOption) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			utils.GetLogger().Warn("hotel preference evaluation fault, accepting candidate",
				zap.String("hotelId", hotel.ID), zap.Any("fault", r))
			ok = true
		}
	}()
	return hotelRule(prefs, hotel)
}

func evaluateHotel(prefs models.TravelPreferences, hotel models.HotelOption) bool {
	switch prefs.Style {
	case models.StyleLuxury:
		if hotel.Price < 200 {
			return false
		}
	case models.StyleBudget:
		if hotel.Price > 300 {
			return false
		}
	case models.StyleMidRange:
		if hotel.Price < 100 || hotel.Price > 500 {
			return false
		}
	}
	// No price bounds apply when the style is unset. No other hotel
	// attribute participates in matching.
	return true
}

// MatchesActivity reports whether an activity candidate satisfies the
// traveller's interests and style. An internal evaluation fault counts
// as a match.
func MatchesActivity(prefs models.TravelPreferences, activity models.Activity) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			utils.GetLogger().Warn("activity preference evaluation fault, accepting candidate",
				zap.String("activityId", activity.ID), zap.Any("fault", r))
			ok = true
		}
	}()
	return activityRule(prefs, activity)
}

func evaluateActivity(prefs models.TravelPreferences, activity models.Activity) bool {
	// Interest check over the name+category blob. Skipped entirely when
	// no interests were configured.
	if len(prefs.Interests) > 0 {
		blob := strings.ToLower(activity.Name + " " + activity.Category)

		interestMatch := false
		for _, interest := range prefs.Interests {
			if strings.Contains(blob, strings.ToLower(interest)) {
				interestMatch = true
				break
			}
		}

		landmarkMatch := false
		for _, keyword := range landmarkKeywords {
			if strings.Contains(blob, keyword) {
				landmarkMatch = true
				break
			}
		}

		if !interestMatch && !landmarkMatch {
			return false
		}
	}

	// Price tier check, independent of the interest check.
	switch prefs.Style {
	case models.StyleLuxury:
		if activity.PriceTier < 1 {
			return false
		}
	case models.StyleBudget:
		if activity.PriceTier > 3 {
			return false
		}
	}
	return true
}
