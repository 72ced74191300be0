package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/outlet-platform/stock-service/internal/application"
	"github.com/outlet-platform/stock-service/internal/logging"
)

// UserService is the application surface the user handlers depend on
type UserService interface {
	Register(ctx context.Context, cmd application.RegisterUserCommand) (*application.UserDTO, error)
	Authenticate(ctx context.Context, cmd application.AuthenticateUserCommand) (*application.UserDTO, error)
}

// UserHandlers contains handlers for online customer accounts
type UserHandlers struct {
	service UserService
	logger  *logging.Logger
}

// NewUserHandlers creates a new UserHandlers
func NewUserHandlers(service UserService, logger *logging.Logger) *UserHandlers {
	return &UserHandlers{service: service, logger: logger}
}

// RegisterRoutes registers user routes on the router
func (h *UserHandlers) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Authenticate)
	}
}

// Register handles creating a new customer account
func (h *UserHandlers) Register(c *gin.Context) {
	var cmd application.RegisterUserCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.Register(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Authenticate handles a login attempt
func (h *UserHandlers) Authenticate(c *gin.Context) {
	var cmd application.AuthenticateUserCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.Authenticate(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
