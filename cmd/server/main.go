package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/smarttravel/travel-booking-backend/internal/config"
	"github.com/smarttravel/travel-booking-backend/internal/handlers"
	"github.com/smarttravel/travel-booking-backend/internal/services"
	"github.com/smarttravel/travel-booking-backend/internal/store"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting SmartTravel Booking Backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize the in-memory store and repositories
	entityStore := store.New()
	bookingRepository := store.NewBookingRepository(entityStore)
	tripRepository := store.NewTripRepository(entityStore)
	userRepository := store.NewUserRepository(entityStore)
	locationRepository := store.NewLocationRepository(entityStore)
	notificationRepository := store.NewNotificationRepository(entityStore)

	// Initialize services
	logger.Info("Initializing services...")
	pricing := services.PricingConfig{
		PricePerBag: cfg.Pricing.PricePerBag,
		BagWeightKg: cfg.Pricing.BagWeightKg,
		StandardPrices: map[string]float64{
			"economy":         cfg.Pricing.EconomyPrice,
			"business":        cfg.Pricing.BusinessPrice,
			"first":           cfg.Pricing.FirstPrice,
			"premium_economy": cfg.Pricing.PremiumEconomyPrice,
		},
		DefaultPrice: cfg.Pricing.DefaultPrice,
	}
	reservationService := services.NewReservationService(
		entityStore,
		bookingRepository,
		tripRepository,
		userRepository,
		notificationRepository,
		pricing,
		logger,
	)
	tripService := services.NewTripService(tripRepository, userRepository, logger)
	userService := services.NewUserService(userRepository, logger)

	// Initialize handlers
	reservationHandler := handlers.NewReservationHandler(reservationService, logger)
	tripHandler := handlers.NewTripHandler(tripService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)
	locationHandler := handlers.NewLocationHandler(locationRepository, logger)

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", healthCheckHandler())

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		reservations := v1.Group("/reservations")
		{
			reservations.GET("/:locator", reservationHandler.GetReservation)
			reservations.POST("/cancel", reservationHandler.CancelBooking)
			reservations.POST("/flights", reservationHandler.UpdateFlights)
			reservations.POST("/baggages", reservationHandler.UpdateBaggages)
			reservations.POST("/passengers", reservationHandler.UpdatePassengers)
		}

		trips := v1.Group("/trips")
		{
			trips.POST("", tripHandler.CreateTrip)
			trips.GET("/:trip_id", tripHandler.GetTrip)
			trips.POST("/:trip_id/bookings", reservationHandler.CreateOrUpdateBooking)
		}

		users := v1.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("/:user_id", userHandler.GetUser)
			users.GET("/:user_id/trips", tripHandler.ListUserTrips)
			users.POST("/:user_id/payment-methods", userHandler.AddPaymentMethod)
		}

		locations := v1.Group("/locations")
		{
			locations.POST("", locationHandler.CreateLocation)
			locations.GET("", locationHandler.FindLocations)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}

// requestLogger middleware for logging HTTP requests
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		fields := logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": latency.Milliseconds(),
		}

		if c.Writer.Status() >= 500 {
			logger.WithFields(fields).Error("Request completed")
		} else if c.Writer.Status() >= 400 {
			logger.WithFields(fields).Warn("Request completed")
		} else {
			logger.WithFields(fields).Info("Request completed")
		}
	}
}

// healthCheckHandler returns a health check endpoint
func healthCheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}
