package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/outlet-platform/stock-service/internal/application"
	"github.com/outlet-platform/stock-service/internal/logging"
)

// StockService is the application surface the stock handlers depend on
type StockService interface {
	Transfer(ctx context.Context, cmd application.TransferStockCommand) (*application.InventoryDTO, error)
	AddBatch(ctx context.Context, cmd application.AddStockBatchCommand) (*application.StockBatchDTO, error)
}

// StockHandlers contains handlers for stock movement operations
type StockHandlers struct {
	service StockService
	logger  *logging.Logger
}

// NewStockHandlers creates a new StockHandlers
func NewStockHandlers(service StockService, logger *logging.Logger) *StockHandlers {
	return &StockHandlers{service: service, logger: logger}
}

// RegisterRoutes registers stock routes on the router
func (h *StockHandlers) RegisterRoutes(router *gin.RouterGroup) {
	stock := router.Group("/stock")
	{
		stock.POST("/transfers", h.Transfer)
		stock.POST("/batches", h.AddBatch)
	}
}

// Transfer handles moving quantity between inventory locations
func (h *StockHandlers) Transfer(c *gin.Context) {
	var cmd application.TransferStockCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inventory, err := h.service.Transfer(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, inventory)
}

// AddBatch handles receiving a purchased batch into the store
func (h *StockHandlers) AddBatch(c *gin.Context) {
	var cmd application.AddStockBatchCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	batch, err := h.service.AddBatch(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, batch)
}
