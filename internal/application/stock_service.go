package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/outlet-platform/stock-service/internal/apperrors"
	"github.com/outlet-platform/stock-service/internal/domain"
	"github.com/outlet-platform/stock-service/internal/logging"
	"github.com/outlet-platform/stock-service/internal/metrics"
)

// StockService covers the replenishment side of the outlet: receiving
// purchased batches into the backroom store and moving quantity from the
// store to the shelf or the online reserve. Transfers debit the selected
// batch, so batch quantity always reflects what is physically left of
// that lot in the backroom.
type StockService struct {
	products    domain.ProductRepository
	inventories domain.InventoryRepository
	batches     domain.StockBatchRepository
	policy      domain.BatchSelectionPolicy
	notifier    domain.InventorySubject
	logger      *logging.Logger
	metrics     *metrics.Metrics
}

// NewStockService creates a new StockService.
func NewStockService(
	products domain.ProductRepository,
	inventories domain.InventoryRepository,
	batches domain.StockBatchRepository,
	policy domain.BatchSelectionPolicy,
	notifier domain.InventorySubject,
	logger *logging.Logger,
	m *metrics.Metrics,
) *StockService {
	return &StockService{
		products:    products,
		inventories: inventories,
		batches:     batches,
		policy:      policy,
		notifier:    notifier,
		logger:      logger,
		metrics:     m,
	}
}

// Transfer moves quantity from the backroom store to the shelf or the
// online reserve, debiting the policy-selected batch.
func (s *StockService) Transfer(ctx context.Context, cmd TransferStockCommand) (*InventoryDTO, error) {
	if cmd.ProductCode == "" {
		return nil, apperrors.ErrValidation("Product code cannot be empty")
	}
	if cmd.Quantity <= 0 {
		return nil, apperrors.ErrValidation("Quantity must be positive")
	}
	if !cmd.Direction.IsValid() {
		return nil, apperrors.ErrValidation(fmt.Sprintf("Invalid transfer direction: %s", cmd.Direction))
	}

	inv, err := s.inventories.FindByProductCode(ctx, cmd.ProductCode)
	if err != nil {
		return nil, fmt.Errorf("failed to look up inventory for %s: %w", cmd.ProductCode, err)
	}
	if inv == nil {
		return nil, apperrors.ErrNotFound(fmt.Sprintf("Inventory not found for product: %s", cmd.ProductCode))
	}

	if inv.StoreQuantity < cmd.Quantity {
		return nil, apperrors.ErrInsufficientQuantity(fmt.Sprintf(
			"Insufficient store quantity for product %s: requested %d, available %d",
			cmd.ProductCode, cmd.Quantity, inv.StoreQuantity))
	}

	allBatches, err := s.batches.FindByProductCode(ctx, cmd.ProductCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load batches for %s: %w", cmd.ProductCode, err)
	}
	batch := s.policy.SelectBatch(allBatches)
	if batch == nil {
		return nil, apperrors.ErrNoAvailableBatch(fmt.Sprintf(
			"No available batches for product: %s", cmd.ProductCode))
	}

	if err := batch.ReduceQuantity(cmd.Quantity); err != nil {
		return nil, apperrors.ErrInsufficientQuantity(fmt.Sprintf(
			"Insufficient quantity in batch %s for product %s: requested %d, available %d",
			batch.BatchID, cmd.ProductCode, cmd.Quantity, batch.Quantity)).Wrap(err)
	}

	switch cmd.Direction {
	case StoreToShelf:
		err = inv.TransferStoreToShelf(cmd.Quantity)
	case StoreToOnline:
		err = inv.TransferStoreToOnline(cmd.Quantity)
	}
	if err != nil {
		return nil, apperrors.ErrInsufficientQuantity(fmt.Sprintf(
			"Insufficient store quantity for product %s", cmd.ProductCode)).Wrap(err)
	}

	if err := s.inventories.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to persist inventory for %s: %w", cmd.ProductCode, err)
	}
	if err := s.batches.Update(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to persist batch %s: %w", batch.BatchID, err)
	}

	s.notifier.NotifyInventoryChanged(inv)
	s.metrics.StockTransfers.WithLabelValues(string(cmd.Direction)).Inc()

	s.logger.Info("Stock transferred",
		"productCode", cmd.ProductCode,
		"direction", string(cmd.Direction),
		"quantity", cmd.Quantity,
		"batchId", batch.BatchID,
	)
	return ToInventoryDTO(inv), nil
}

// AddBatch receives a newly purchased batch into the backroom store,
// creating the product's inventory record on first receipt.
func (s *StockService) AddBatch(ctx context.Context, cmd AddStockBatchCommand) (*StockBatchDTO, error) {
	product, err := s.products.FindByCode(ctx, cmd.ProductCode)
	if err != nil {
		return nil, fmt.Errorf("failed to look up product %s: %w", cmd.ProductCode, err)
	}
	if product == nil {
		return nil, apperrors.ErrNotFound(fmt.Sprintf("Product not found: %s", cmd.ProductCode))
	}

	batch, err := domain.NewStockBatch(cmd.ProductCode, time.Now().UTC(), cmd.Quantity, cmd.ExpiryDate)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuantity) {
			return nil, apperrors.ErrValidation("Quantity must be positive")
		}
		if errors.Is(err, domain.ErrExpiryBeforePurchase) {
			return nil, apperrors.ErrValidation("Expiry date cannot be before purchase date")
		}
		return nil, apperrors.ErrValidation(err.Error())
	}

	inv, err := s.inventories.FindByProductCode(ctx, cmd.ProductCode)
	if err != nil {
		return nil, fmt.Errorf("failed to look up inventory for %s: %w", cmd.ProductCode, err)
	}
	created := false
	if inv == nil {
		inv, err = domain.NewInventory(cmd.ProductCode)
		if err != nil {
			return nil, apperrors.ErrValidation(err.Error())
		}
		created = true
	}
	if err := inv.AddToStore(cmd.Quantity); err != nil {
		return nil, apperrors.ErrValidation(err.Error())
	}

	if err := s.batches.Save(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to persist batch %s: %w", batch.BatchID, err)
	}
	if created {
		err = s.inventories.Save(ctx, inv)
	} else {
		err = s.inventories.Update(ctx, inv)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to persist inventory for %s: %w", cmd.ProductCode, err)
	}

	s.notifier.NotifyInventoryChanged(inv)
	s.metrics.BatchesReceived.Inc()

	s.logger.Info("Stock batch received",
		"productCode", cmd.ProductCode,
		"batchId", batch.BatchID,
		"quantity", cmd.Quantity,
		"expiryDate", batch.ExpiryDate.Format("2006-01-02"),
	)
	return ToStockBatchDTO(batch), nil
}
