package domain

import "context"

// ProductRepository reads the product catalog. The catalog is owned by an
// external service; this core never writes it.
type ProductRepository interface {
	// FindByCode returns nil, nil when the product does not exist.
	FindByCode(ctx context.Context, code string) (*Product, error)
}

// InventoryRepository persists per-product inventories. Save inserts a
// newly created inventory; Update replaces an existing one. Callers must
// pick the right one (a Save of an existing product would double-insert).
type InventoryRepository interface {
	// FindByProductCode returns nil, nil when no inventory exists yet.
	FindByProductCode(ctx context.Context, code string) (*Inventory, error)
	Save(ctx context.Context, inv *Inventory) error
	Update(ctx context.Context, inv *Inventory) error
}

// StockBatchRepository persists expiring purchase batches.
type StockBatchRepository interface {
	FindByProductCode(ctx context.Context, code string) ([]*StockBatch, error)
	Save(ctx context.Context, batch *StockBatch) error
	Update(ctx context.Context, batch *StockBatch) error
}

// BillRepository issues serial numbers and stores settled bills.
type BillRepository interface {
	NextSerialNumber(ctx context.Context) (int, error)
	Save(ctx context.Context, bill *Bill) error
}

// UserRepository persists registered online customers.
type UserRepository interface {
	// FindByEmail returns nil, nil when no user has that email.
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, user *User) error
}
