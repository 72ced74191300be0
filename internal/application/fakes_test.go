package application

import (
	"context"

	"github.com/outlet-platform/stock-service/internal/domain"
	"github.com/outlet-platform/stock-service/internal/logging"
	"github.com/outlet-platform/stock-service/internal/metrics"
)

func testLogger() *logging.Logger {
	return logging.New(logging.DefaultConfig("test"))
}

func testMetrics() *metrics.Metrics {
	return metrics.New("test")
}

type fakeProductRepo struct {
	products map[string]*domain.Product
	findErr  error
}

func (f *fakeProductRepo) FindByCode(ctx context.Context, code string) (*domain.Product, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.products[code], nil
}

type fakeInventoryRepo struct {
	inventories map[string]*domain.Inventory
	saveErr     error
	updateErr   error
	findErr     error
	saveCalls   []string
	updateCalls []string
}

func (f *fakeInventoryRepo) FindByProductCode(ctx context.Context, code string) (*domain.Inventory, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.inventories[code], nil
}

func (f *fakeInventoryRepo) Save(ctx context.Context, inv *domain.Inventory) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.inventories == nil {
		f.inventories = make(map[string]*domain.Inventory)
	}
	f.inventories[inv.ProductCode] = inv
	f.saveCalls = append(f.saveCalls, inv.ProductCode)
	return nil
}

func (f *fakeInventoryRepo) Update(ctx context.Context, inv *domain.Inventory) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.inventories[inv.ProductCode] = inv
	f.updateCalls = append(f.updateCalls, inv.ProductCode)
	return nil
}

type fakeBatchRepo struct {
	batches     map[string][]*domain.StockBatch
	findErr     error
	saveErr     error
	saveCalls   []string
	updateCalls []string
}

func (f *fakeBatchRepo) FindByProductCode(ctx context.Context, code string) ([]*domain.StockBatch, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.batches[code], nil
}

func (f *fakeBatchRepo) Save(ctx context.Context, batch *domain.StockBatch) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.batches == nil {
		f.batches = make(map[string][]*domain.StockBatch)
	}
	f.batches[batch.ProductCode] = append(f.batches[batch.ProductCode], batch)
	f.saveCalls = append(f.saveCalls, batch.BatchID)
	return nil
}

func (f *fakeBatchRepo) Update(ctx context.Context, batch *domain.StockBatch) error {
	f.updateCalls = append(f.updateCalls, batch.BatchID)
	return nil
}

type fakeBillRepo struct {
	serial    int
	serialErr error
	saveErr   error
	saved     []*domain.Bill
}

func (f *fakeBillRepo) NextSerialNumber(ctx context.Context) (int, error) {
	if f.serialErr != nil {
		return 0, f.serialErr
	}
	f.serial++
	return f.serial, nil
}

func (f *fakeBillRepo) Save(ctx context.Context, bill *domain.Bill) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, bill)
	return nil
}

type fakeUserRepo struct {
	users   map[string]*domain.User
	findErr error
	saveErr error
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.users[email], nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if f.findErr != nil {
		return false, f.findErr
	}
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeUserRepo) Save(ctx context.Context, user *domain.User) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.users == nil {
		f.users = make(map[string]*domain.User)
	}
	f.users[user.Email] = user
	return nil
}

// recordingObserver captures every notification for assertions.
type recordingObserver struct {
	changed  []*domain.Inventory
	lowStock []*domain.Inventory
}

func (o *recordingObserver) OnInventoryChanged(inv *domain.Inventory) {
	o.changed = append(o.changed, inv)
}

func (o *recordingObserver) OnLowStock(inv *domain.Inventory) {
	o.lowStock = append(o.lowStock, inv)
}
