// File: roamify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"roamify/config"
	"roamify/handlers"
	"roamify/middleware"
	"roamify/routes"
	"roamify/services/inventory"
	"roamify/services/planner"
	"roamify/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitPlanCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// External collaborators (mock inventory in this build).
	tokenCache := &planner.TokenCache{
		Issuer:       inventory.NewMockCredentialIssuer(),
		Provider:     "inventory",
		ClientID:     config.AppConfig.ProviderClientID,
		ClientSecret: config.AppConfig.ProviderClientSecret,
	}

	plannerService := &planner.DefaultPlannerService{
		Tokens:          tokenCache,
		Flights:         &inventory.MockFlightInventory{},
		Locations:       &inventory.MockLocationResolver{},
		Lodging:         &inventory.MockLodgingInventory{},
		POI:             &inventory.MockPOIDiscovery{},
		Bookings:        inventory.NewMockBookingProvider(),
		OriginCode:      config.AppConfig.OriginCode,
		DestinationCode: config.AppConfig.DestinationCode,
		Currency:        config.AppConfig.DefaultCurrency,
	}

	tripHandler := handlers.NewTripHandler(plannerService, utils.GetPlanCacheClient(), logger)
	routes.RegisterRoutes(router, tripHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
