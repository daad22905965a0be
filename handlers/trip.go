package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"roamify/models"
	"roamify/services/planner"
	"roamify/utils"
)

// PlanCachePrefix namespaces cached itineraries in Redis.
const PlanCachePrefix = "tripPlan:"

// planCacheTTL bounds how long a planned itinerary stays retrievable.
const planCacheTTL = 30 * time.Minute

// TripHandler exposes the planning pipeline over HTTP.
type TripHandler struct {
	Planner planner.PlannerService
	Cache   *redis.Client // optional; planning works without it
	Logger  *zap.Logger
}

func NewTripHandler(svc planner.PlannerService, cache *redis.Client, logger *zap.Logger) *TripHandler {
	return &TripHandler{Planner: svc, Cache: cache, Logger: logger}
}

type planTripRequest struct {
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	Preferences struct {
		Budget              float64  `json:"budget"`
		Style               string   `json:"style"`
		Interests           []string `json:"interests"`
		DietaryRestrictions []string `json:"dietaryRestrictions"`
		AccessibilityNeeds  []string `json:"accessibilityNeeds"`
		Guests              int      `json:"guests"`
	} `json:"preferences"`
}

const dateLayout = "2006-01-02"

func (r *planTripRequest) toPreferences() (models.TravelPreferences, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return models.TravelPreferences{}, fmt.Errorf("invalid startDate %q, expected YYYY-MM-DD", r.StartDate)
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return models.TravelPreferences{}, fmt.Errorf("invalid endDate %q, expected YYYY-MM-DD", r.EndDate)
	}
	if !end.After(start) {
		return models.TravelPreferences{}, fmt.Errorf("endDate must be after startDate")
	}
	switch models.TravelStyle(r.Preferences.Style) {
	case "", models.StyleLuxury, models.StyleMidRange, models.StyleBudget:
	default:
		return models.TravelPreferences{}, fmt.Errorf("invalid style %q", r.Preferences.Style)
	}
	return models.TravelPreferences{
		OriginCity:          r.Origin,
		DestinationCity:     r.Destination,
		StartDate:           start,
		EndDate:             end,
		Style:               models.TravelStyle(r.Preferences.Style),
		Budget:              r.Preferences.Budget,
		Interests:           r.Preferences.Interests,
		DietaryRestrictions: r.Preferences.DietaryRestrictions,
		AccessibilityNeeds:  r.Preferences.AccessibilityNeeds,
		Guests:              r.Preferences.Guests,
	}, nil
}

// PlanTrip runs one planning pipeline and returns the itinerary along
// with a plan ID for later retrieval.
func (h *TripHandler) PlanTrip(c *gin.Context) {
	var req planTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	prefs, err := req.toPreferences()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid trip parameters", err.Error())
		return
	}

	itinerary, err := h.Planner.PlanTrip(c.Request.Context(), prefs)
	if err != nil {
		var planErr *planner.PlanningError
		if errors.As(err, &planErr) {
			h.Logger.Error("trip planning failed",
				zap.String("stage", string(planErr.Stage)), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "trip planning failed",
				"stage": string(planErr.Stage),
			})
			return
		}
		h.Logger.Error("trip planning failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "trip planning failed"})
		return
	}

	planID := uuid.New().String()
	h.cacheItinerary(c.Request.Context(), planID, itinerary)

	c.JSON(http.StatusOK, gin.H{
		"planId":    planID,
		"itinerary": itinerary,
	})
}

// GetItinerary fetches a previously planned itinerary by plan ID.
func (h *TripHandler) GetItinerary(c *gin.Context) {
	if h.Cache == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "plan cache unavailable", "")
		return
	}
	planID := c.Param("id")
	data, err := h.Cache.Get(c.Request.Context(), PlanCachePrefix+planID).Result()
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "itinerary not found or expired", planID)
		return
	}
	var itinerary models.Itinerary
	if err := json.Unmarshal([]byte(data), &itinerary); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to parse cached itinerary", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"planId": planID, "itinerary": itinerary})
}

func (h *TripHandler) cacheItinerary(ctx context.Context, planID string, itinerary models.Itinerary) {
	if h.Cache == nil {
		return
	}
	data, err := json.Marshal(itinerary)
	if err != nil {
		h.Logger.Warn("failed to marshal itinerary for caching", zap.Error(err))
		return
	}
	if err := h.Cache.Set(ctx, PlanCachePrefix+planID, data, planCacheTTL).Err(); err != nil {
		h.Logger.Warn("failed to cache itinerary", zap.String("planId", planID), zap.Error(err))
	}
}
