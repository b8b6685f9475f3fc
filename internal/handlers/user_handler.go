package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/smarttravel/travel-booking-backend/internal/models"
	"github.com/smarttravel/travel-booking-backend/internal/services"
)

// UserHandler exposes traveller profiles over HTTP.
type UserHandler struct {
	users  *services.UserService
	logger *logrus.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *services.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// CreateUser handles POST /api/v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input models.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.users.CreateUser(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetUser handles GET /api/v1/users/:user_id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.users.GetUser(c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// AddPaymentMethod handles POST /api/v1/users/:user_id/payment-methods
func (h *UserHandler) AddPaymentMethod(c *gin.Context) {
	var input models.PaymentMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	method, err := h.users.AddPaymentMethod(c.Param("user_id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, method)
}
