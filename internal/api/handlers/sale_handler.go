package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/outlet-platform/stock-service/internal/application"
	"github.com/outlet-platform/stock-service/internal/logging"
)

// SaleService is the application surface the sale handlers depend on
type SaleService interface {
	ProcessSale(ctx context.Context, cmd *application.ProcessSaleCommand) (*application.BillDTO, error)
}

// SaleHandlers contains handlers for sale settlement
type SaleHandlers struct {
	service SaleService
	logger  *logging.Logger
}

// NewSaleHandlers creates a new SaleHandlers
func NewSaleHandlers(service SaleService, logger *logging.Logger) *SaleHandlers {
	return &SaleHandlers{service: service, logger: logger}
}

// RegisterRoutes registers sale routes on the router
func (h *SaleHandlers) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/sales", h.ProcessSale)
}

// ProcessSale handles settling a sale
func (h *SaleHandlers) ProcessSale(c *gin.Context) {
	var cmd application.ProcessSaleCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bill, err := h.service.ProcessSale(c.Request.Context(), &cmd)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, bill)
}
