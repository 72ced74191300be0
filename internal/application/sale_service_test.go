package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outlet-platform/stock-service/internal/apperrors"
	"github.com/outlet-platform/stock-service/internal/domain"
)

func testProduct(t *testing.T, code string, priceCents int64, discount float64) *domain.Product {
	t.Helper()
	p, err := domain.NewProduct(code, "Product "+code, "unit", domain.MustMoney(priceCents), discount)
	require.NoError(t, err)
	return p
}

func testInventory(t *testing.T, code string, shelf, store, online int) *domain.Inventory {
	t.Helper()
	inv, err := domain.NewInventory(code)
	require.NoError(t, err)
	if shelf > 0 {
		require.NoError(t, inv.AddToShelf(shelf))
	}
	if store > 0 {
		require.NoError(t, inv.AddToStore(store))
	}
	if online > 0 {
		require.NoError(t, inv.AddToOnline(online))
	}
	return inv
}

func saleFixture(t *testing.T) (*SaleService, *fakeInventoryRepo, *fakeBillRepo, *recordingObserver) {
	t.Helper()
	now := time.Now().UTC()
	batch, err := domain.NewStockBatchWithID("B1", "PROD-001", now.AddDate(0, 0, -10), 100, now.AddDate(0, 6, 0))
	require.NoError(t, err)

	products := &fakeProductRepo{products: map[string]*domain.Product{
		"PROD-001": testProduct(t, "PROD-001", 1000, 0),
		"PROD-002": testProduct(t, "PROD-002", 1500, 10),
	}}
	inventories := &fakeInventoryRepo{inventories: map[string]*domain.Inventory{
		"PROD-001": testInventory(t, "PROD-001", 100, 0, 50),
		"PROD-002": testInventory(t, "PROD-002", 30, 0, 2),
	}}
	batches := &fakeBatchRepo{batches: map[string][]*domain.StockBatch{
		"PROD-001": {batch},
	}}
	bills := &fakeBillRepo{}

	logger := testLogger()
	observer := &recordingObserver{}
	notifier := NewChangeNotifier(logger)
	notifier.Subscribe(observer)

	service := NewSaleService(products, inventories, batches, bills,
		domain.NewFIFOBatchPolicy(), notifier, logger, testMetrics())
	return service, inventories, bills, observer
}

func TestSaleService_CounterSale(t *testing.T) {
	service, inventories, bills, observer := saleFixture(t)

	bill, err := service.ProcessSale(context.Background(), &ProcessSaleCommand{
		Items:             []SaleLine{{ProductCode: "PROD-001", Quantity: 5}},
		CashTenderedCents: 10000,
		TransactionType:   domain.TransactionCounter,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, bill.SerialNumber)
	assert.Equal(t, "COUNTER", bill.TransactionType)
	assert.Equal(t, int64(5000), bill.TotalCents)
	assert.Equal(t, int64(5000), bill.ChangeCents)

	inv := inventories.inventories["PROD-001"]
	assert.Equal(t, 95, inv.ShelfQuantity)
	assert.Equal(t, 50, inv.OnlineQuantity)

	assert.Equal(t, []string{"PROD-001"}, inventories.updateCalls)
	require.Len(t, bills.saved, 1)
	require.Len(t, observer.changed, 1)
	assert.Equal(t, 95, observer.changed[0].ShelfQuantity)
}

func TestSaleService_OnlineSale(t *testing.T) {
	service, inventories, _, _ := saleFixture(t)

	bill, err := service.ProcessSale(context.Background(), &ProcessSaleCommand{
		Items:             []SaleLine{{ProductCode: "PROD-001", Quantity: 10}},
		CashTenderedCents: 10000,
		TransactionType:   domain.TransactionOnline,
		CustomerID:        "CUST-42",
	})
	require.NoError(t, err)

	assert.Equal(t, "ONLINE", bill.TransactionType)
	assert.Equal(t, "CUST-42", bill.CustomerID)

	inv := inventories.inventories["PROD-001"]
	assert.Equal(t, 100, inv.ShelfQuantity)
	assert.Equal(t, 40, inv.OnlineQuantity)
}

func TestSaleService_OnlineInsufficientLeavesStateUntouched(t *testing.T) {
	service, inventories, bills, observer := saleFixture(t)

	_, err := service.ProcessSale(context.Background(), &ProcessSaleCommand{
		Items:             []SaleLine{{ProductCode: "PROD-002", Quantity: 10}},
		CashTenderedCents: 100000,
		TransactionType:   domain.TransactionOnline,
		CustomerID:        "CUST-42",
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInsufficientStock))
	assert.Contains(t, err.Error(), "Insufficient stock")

	assert.Equal(t, 2, inventories.inventories["PROD-002"].OnlineQuantity)
	assert.Empty(t, inventories.updateCalls)
	assert.Empty(t, bills.saved)
	assert.Empty(t, observer.changed)
}

func TestSaleService_CounterInsufficientShelf(t *testing.T) {
	service, inventories, _, _ := saleFixture(t)

	_, err := service.ProcessSale(context.Background(), &ProcessSaleCommand{
		Items:             []SaleLine{{ProductCode: "PROD-001", Quantity: 101}},
		CashTenderedCents: 10000000,
		TransactionType:   domain.TransactionCounter,
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInsufficientStock))
	assert.Equal(t, 100, inventories.inventories["PROD-001"].ShelfQuantity)
}

func TestSaleService_CounterWithoutBatchesStillSells(t *testing.T) {
	// PROD-002 has no batches; the counter path only uses the batch for
	// lot attribution, so the sale succeeds as long as the shelf covers it
	service, inventories, _, _ := saleFixture(t)

	_, err := service.ProcessSale(context.Background(), &ProcessSaleCommand{
		Items:             []SaleLine{{ProductCode: "PROD-002", Quantity: 3}},
		CashTenderedCents: 10000,
		TransactionType:   domain.TransactionCounter,
	})
	require.NoError(t, err)
	assert.Equal(t, 27, inventories.inventories["PROD-002"].ShelfQuantity)
}

func TestSaleService_RepeatedLinesDebitCumulatively(t *testing.T) {
	service, inventories, _, observer := saleFixture(t)

	_, err := service.ProcessSale(context.Background(), &ProcessSaleCommand{
		Items: []SaleLine{
			{ProductCode: "PROD-001", Quantity: 60},
			{ProductCode: "PROD-001", Quantity: 40},
		},
		CashTenderedCents: 1000000,
		TransactionType:   domain.TransactionCounter,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, inventories.inventories["PROD-001"].ShelfQuantity)
	// one distinct inventory, one update, one notification
	assert.Equal(t, []string{"PROD-001"}, inventories.updateCalls)
	assert.Len(t, observer.changed, 1)
}

func TestSaleService_Validation(t *testing.T) {
	service, _, _, _ := saleFixture(t)
	ctx := context.Background()

	_, err := service.ProcessSale(ctx, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Sale request cannot be null")

	_, err = service.ProcessSale(ctx, &ProcessSaleCommand{
		CashTenderedCents: 1000,
		TransactionType:   domain.TransactionCounter,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Sale must have at least one item")

	_, err = service.ProcessSale(ctx, &ProcessSaleCommand{
		Items:             []SaleLine{{ProductCode: "PROD-001", Quantity: 1}},
		CashTenderedCents: -1,
		TransactionType:   domain.TransactionCounter,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cash tendered cannot be negative")

	_, err = service.ProcessSale(ctx, &ProcessSaleCommand{
		Items:             []SaleLine{{ProductCode: "PROD-001", Quantity: 1}},
		CashTenderedCents: 1000,
		TransactionType:   "WHOLESALE",
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidationError))

	_, err = service.ProcessSale(ctx, &ProcessSaleCommand{
		Items:             []SaleLine{{ProductCode: "PROD-001", Quantity: 1}},
		CashTenderedCents: 1000,
		TransactionType:   domain.TransactionOnline,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Customer ID is required")
}

func TestSaleService_ProductNotFound(t *testing.T) {
	service, _, _, _ := saleFixture(t)

	_, err := service.ProcessSale(context.Background(), &ProcessSaleCommand{
		Items:             []SaleLine{{ProductCode: "MISSING", Quantity: 1}},
		CashTenderedCents: 1000,
		TransactionType:   domain.TransactionCounter,
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
	assert.Contains(t, err.Error(), "Product not found: MISSING")
}

func TestSaleService_InventoryNotFound(t *testing.T) {
	service, inventories, _, _ := saleFixture(t)
	delete(inventories.inventories, "PROD-001")

	_, err := service.ProcessSale(context.Background(), &ProcessSaleCommand{
		Items:             []SaleLine{{ProductCode: "PROD-001", Quantity: 1}},
		CashTenderedCents: 1000,
		TransactionType:   domain.TransactionCounter,
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
	assert.Contains(t, err.Error(), "Inventory not found for product: PROD-001")
}

func TestSaleService_CashTenderedTooLow(t *testing.T) {
	service, inventories, bills, _ := saleFixture(t)

	_, err := service.ProcessSale(context.Background(), &ProcessSaleCommand{
		Items:             []SaleLine{{ProductCode: "PROD-001", Quantity: 10}},
		CashTenderedCents: 5000,
		TransactionType:   domain.TransactionCounter,
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidationError))
	assert.Contains(t, err.Error(), "Cash tendered must be greater than or equal to total")

	// the bill failed validation, so nothing was persisted
	assert.Empty(t, inventories.updateCalls)
	assert.Empty(t, bills.saved)
}

func TestSaleService_DiscountedLinePricing(t *testing.T) {
	service, _, _, _ := saleFixture(t)

	// PROD-002: 15.00 x 2 at 10% discount = 27.00
	bill, err := service.ProcessSale(context.Background(), &ProcessSaleCommand{
		Items:             []SaleLine{{ProductCode: "PROD-002", Quantity: 2}},
		CashTenderedCents: 5000,
		TransactionType:   domain.TransactionCounter,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3000), bill.SubtotalCents)
	assert.Equal(t, int64(300), bill.DiscountCents)
	assert.Equal(t, int64(2700), bill.TotalCents)
	assert.Equal(t, int64(2300), bill.ChangeCents)
}
