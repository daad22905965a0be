package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"roamify/config"
)

// PlanCacheClient stores planned itineraries for retrieval within the
// process lifetime. Cross-run persistence is out of scope; entries are
// TTL-bounded.
var PlanCacheClient *redis.Client

// InitPlanCache initializes the Redis client for the itinerary cache.
func InitPlanCache() {
	PlanCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPlanDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := PlanCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Plan Cache): %v", err)
	}
}

// GetPlanCacheClient returns the itinerary cache client.
func GetPlanCacheClient() *redis.Client {
	if PlanCacheClient == nil {
		InitPlanCache()
	}
	return PlanCacheClient
}
