package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/outlet-platform/stock-service/internal/apperrors"
	"github.com/outlet-platform/stock-service/internal/domain"
	"github.com/outlet-platform/stock-service/internal/logging"
	"github.com/outlet-platform/stock-service/internal/metrics"
)

// SaleService settles sales: it validates the requested cart, debits the
// correct inventory location per channel, prices each line at time of
// sale, and produces the immutable bill. Mutations happen on in-memory
// aggregates first; nothing is persisted until every line has been
// debited and the bill has validated, so a failed sale leaves all
// collaborators untouched.
type SaleService struct {
	products    domain.ProductRepository
	inventories domain.InventoryRepository
	batches     domain.StockBatchRepository
	bills       domain.BillRepository
	policy      domain.BatchSelectionPolicy
	notifier    domain.InventorySubject
	logger      *logging.Logger
	metrics     *metrics.Metrics
}

// NewSaleService creates a new SaleService.
func NewSaleService(
	products domain.ProductRepository,
	inventories domain.InventoryRepository,
	batches domain.StockBatchRepository,
	bills domain.BillRepository,
	policy domain.BatchSelectionPolicy,
	notifier domain.InventorySubject,
	logger *logging.Logger,
	m *metrics.Metrics,
) *SaleService {
	return &SaleService{
		products:    products,
		inventories: inventories,
		batches:     batches,
		bills:       bills,
		policy:      policy,
		notifier:    notifier,
		logger:      logger,
		metrics:     m,
	}
}

// ProcessSale settles one sale across one or more line items and returns
// the bill.
func (s *SaleService) ProcessSale(ctx context.Context, cmd *ProcessSaleCommand) (*BillDTO, error) {
	dto, err := s.processSale(ctx, cmd)
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok {
			s.metrics.SaleFailures.WithLabelValues(appErr.Code).Inc()
		}
		return nil, err
	}
	s.metrics.SalesProcessed.WithLabelValues(dto.TransactionType).Inc()
	return dto, nil
}

func (s *SaleService) processSale(ctx context.Context, cmd *ProcessSaleCommand) (*BillDTO, error) {
	if cmd == nil {
		return nil, apperrors.ErrValidation("Sale request cannot be null")
	}
	if len(cmd.Items) == 0 {
		return nil, apperrors.ErrValidation("Sale must have at least one item")
	}
	if cmd.CashTenderedCents < 0 {
		return nil, apperrors.ErrValidation("Cash tendered cannot be negative")
	}
	if !cmd.TransactionType.IsValid() {
		return nil, apperrors.ErrValidation(fmt.Sprintf("Invalid transaction type: %s", cmd.TransactionType))
	}
	if cmd.TransactionType == domain.TransactionOnline && cmd.CustomerID == "" {
		return nil, apperrors.ErrValidation("Customer ID is required for online sales")
	}

	cashTendered, err := domain.NewMoney(cmd.CashTenderedCents, domain.DefaultCurrency)
	if err != nil {
		return nil, apperrors.ErrValidation("Cash tendered cannot be negative")
	}

	// Line items for the same product share one in-memory aggregate so
	// repeated codes debit cumulatively.
	loaded := make(map[string]*domain.Inventory)
	ordered := make([]*domain.Inventory, 0, len(cmd.Items))
	billItems := make([]domain.BillItem, 0, len(cmd.Items))

	for _, line := range cmd.Items {
		if line.Quantity <= 0 {
			return nil, apperrors.ErrValidation(fmt.Sprintf("Quantity must be positive for product: %s", line.ProductCode))
		}

		product, err := s.products.FindByCode(ctx, line.ProductCode)
		if err != nil {
			return nil, fmt.Errorf("failed to look up product %s: %w", line.ProductCode, err)
		}
		if product == nil {
			return nil, apperrors.ErrNotFound(fmt.Sprintf("Product not found: %s", line.ProductCode))
		}

		inv, ok := loaded[line.ProductCode]
		if !ok {
			inv, err = s.inventories.FindByProductCode(ctx, line.ProductCode)
			if err != nil {
				return nil, fmt.Errorf("failed to look up inventory for %s: %w", line.ProductCode, err)
			}
			if inv == nil {
				return nil, apperrors.ErrNotFound(fmt.Sprintf("Inventory not found for product: %s", line.ProductCode))
			}
			loaded[line.ProductCode] = inv
			ordered = append(ordered, inv)
		}

		if err := s.debit(ctx, inv, line, cmd.TransactionType); err != nil {
			return nil, err
		}

		item, err := domain.NewBillItem(
			product.Code(),
			product.Name(),
			product.Unit(),
			line.Quantity,
			product.Price(),
			product.DiscountPercentage(),
		)
		if err != nil {
			return nil, apperrors.ErrValidation(err.Error())
		}
		billItems = append(billItems, item)
	}

	serial, err := s.bills.NextSerialNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain bill serial number: %w", err)
	}

	bill, err := domain.NewBillBuilder().
		SerialNumber(serial).
		Items(billItems).
		CashTendered(cashTendered).
		TransactionType(cmd.TransactionType).
		CustomerID(cmd.CustomerID).
		Build()
	if err != nil {
		if errors.Is(err, domain.ErrCashTenderedTooLow) {
			return nil, apperrors.ErrValidation("Cash tendered must be greater than or equal to total")
		}
		return nil, apperrors.ErrValidation(err.Error())
	}

	for _, inv := range ordered {
		if err := s.inventories.Update(ctx, inv); err != nil {
			return nil, fmt.Errorf("failed to persist inventory for %s: %w", inv.ProductCode, err)
		}
	}
	if err := s.bills.Save(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to persist bill %d: %w", serial, err)
	}

	for _, inv := range ordered {
		s.notifier.NotifyInventoryChanged(inv)
	}

	s.logger.Info("Sale settled",
		"serialNumber", bill.SerialNumber(),
		"channel", string(bill.TransactionType()),
		"items", len(billItems),
		"total", bill.Total().String(),
	)
	return ToBillDTO(bill), nil
}

// debit applies the channel-specific reduction for one line item. Counter
// sales draw from the shelf; the selection policy attributes the sale to
// a lot for traceability but batch quantities are debited at transfer
// time, not at sale time. Online sales draw from the online-reserved
// quantity directly.
func (s *SaleService) debit(ctx context.Context, inv *domain.Inventory, line SaleLine, channel domain.TransactionType) error {
	switch channel {
	case domain.TransactionCounter:
		batches, err := s.batches.FindByProductCode(ctx, line.ProductCode)
		if err != nil {
			return fmt.Errorf("failed to load batches for %s: %w", line.ProductCode, err)
		}
		if selected := s.policy.SelectBatch(batches); selected != nil {
			s.logger.Debug("Counter sale attributed to batch",
				"productCode", line.ProductCode, "batchId", selected.BatchID)
		} else {
			s.logger.Warn("No sellable batch for counter sale attribution",
				"productCode", line.ProductCode)
		}

		if inv.ShelfQuantity < line.Quantity {
			return apperrors.ErrInsufficientStock(fmt.Sprintf(
				"Insufficient stock for product %s: requested %d, available %d on shelf",
				line.ProductCode, line.Quantity, inv.ShelfQuantity))
		}
		if err := inv.ReduceFromShelf(line.Quantity); err != nil {
			return apperrors.ErrInsufficientStock(fmt.Sprintf(
				"Insufficient stock for product %s", line.ProductCode)).Wrap(err)
		}
		return nil

	case domain.TransactionOnline:
		if inv.OnlineQuantity < line.Quantity {
			return apperrors.ErrInsufficientStock(fmt.Sprintf(
				"Insufficient stock for product %s: requested %d, available %d online",
				line.ProductCode, line.Quantity, inv.OnlineQuantity))
		}
		if err := inv.ReduceFromOnline(line.Quantity); err != nil {
			return apperrors.ErrInsufficientStock(fmt.Sprintf(
				"Insufficient stock for product %s", line.ProductCode)).Wrap(err)
		}
		return nil

	default:
		return apperrors.ErrValidation(fmt.Sprintf("Invalid transaction type: %s", channel))
	}
}
