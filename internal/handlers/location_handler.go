package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/smarttravel/travel-booking-backend/internal/models"
	"github.com/smarttravel/travel-booking-backend/internal/store"
)

// LocationHandler exposes the location catalogue over HTTP.
type LocationHandler struct {
	locations *store.LocationRepository
	logger    *logrus.Logger
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(locations *store.LocationRepository, logger *logrus.Logger) *LocationHandler {
	return &LocationHandler{locations: locations, logger: logger}
}

// CreateLocation handles POST /api/v1/locations
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var input models.LocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := input.Validate(); err != nil {
		respondError(c, err)
		return
	}

	location := &models.Location{
		ID:            uuid.New().String(),
		Name:          input.Name,
		City:          input.City,
		CountryCode:   input.CountryCode,
		StateProvince: input.StateProvince,
		PostalCode:    input.PostalCode,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		LocationType:  input.LocationType,
		IsActive:      true,
	}
	if err := h.locations.Insert(location); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, location)
}

// FindLocations handles GET /api/v1/locations
func (h *LocationHandler) FindLocations(c *gin.Context) {
	results, err := h.locations.Find(c.Query("name"), c.Query("city"), c.Query("country_code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": results})
}
