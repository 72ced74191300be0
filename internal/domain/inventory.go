package domain

import (
	"errors"
	"time"
)

// Errors
var (
	ErrEmptyProductCode     = errors.New("product code cannot be empty")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrInsufficientQuantity = errors.New("insufficient quantity at location")
)

// ReorderThreshold is the total-quantity level below which a low-stock
// alert fires.
const ReorderThreshold = 50

// Location identifies one of the outlet's three stock locations.
type Location string

const (
	LocationStore  Location = "store"  // backroom
	LocationShelf  Location = "shelf"  // counter-facing
	LocationOnline Location = "online" // reserved for e-commerce
)

// Inventory is the per-product aggregate tracking quantities across the
// three outlet locations. It is owned by the persistence layer between
// calls; use cases hold it in memory for the duration of one operation.
type Inventory struct {
	ProductCode    string    `bson:"productCode"`
	ShelfQuantity  int       `bson:"shelfQuantity"`
	StoreQuantity  int       `bson:"storeQuantity"`
	OnlineQuantity int       `bson:"onlineQuantity"`
	CreatedAt      time.Time `bson:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt"`
}

// NewInventory creates a fresh inventory with all quantities zero.
func NewInventory(productCode string) (*Inventory, error) {
	if productCode == "" {
		return nil, ErrEmptyProductCode
	}
	now := time.Now().UTC()
	return &Inventory{
		ProductCode: productCode,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// TotalQuantity returns the quantity summed over all locations.
func (inv *Inventory) TotalQuantity() int {
	return inv.ShelfQuantity + inv.StoreQuantity + inv.OnlineQuantity
}

// IsBelowReorderLevel reports whether total stock has fallen under the
// reorder threshold.
func (inv *Inventory) IsBelowReorderLevel() bool {
	return inv.TotalQuantity() < ReorderThreshold
}

// AddToShelf increases the shelf quantity.
func (inv *Inventory) AddToShelf(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	inv.ShelfQuantity += qty
	inv.UpdatedAt = time.Now().UTC()
	return nil
}

// AddToStore increases the backroom store quantity.
func (inv *Inventory) AddToStore(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	inv.StoreQuantity += qty
	inv.UpdatedAt = time.Now().UTC()
	return nil
}

// AddToOnline increases the online-reserved quantity.
func (inv *Inventory) AddToOnline(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	inv.OnlineQuantity += qty
	inv.UpdatedAt = time.Now().UTC()
	return nil
}

// ReduceFromShelf decreases the shelf quantity. The check happens before
// any mutation so a failed reduction leaves the aggregate unchanged.
func (inv *Inventory) ReduceFromShelf(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if qty > inv.ShelfQuantity {
		return ErrInsufficientQuantity
	}
	inv.ShelfQuantity -= qty
	inv.UpdatedAt = time.Now().UTC()
	return nil
}

// ReduceFromStore decreases the backroom store quantity.
func (inv *Inventory) ReduceFromStore(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if qty > inv.StoreQuantity {
		return ErrInsufficientQuantity
	}
	inv.StoreQuantity -= qty
	inv.UpdatedAt = time.Now().UTC()
	return nil
}

// ReduceFromOnline decreases the online-reserved quantity.
func (inv *Inventory) ReduceFromOnline(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if qty > inv.OnlineQuantity {
		return ErrInsufficientQuantity
	}
	inv.OnlineQuantity -= qty
	inv.UpdatedAt = time.Now().UTC()
	return nil
}

// TransferStoreToShelf moves quantity from the backroom store to the shelf
// as one logical step. If the reduction fails nothing is mutated.
func (inv *Inventory) TransferStoreToShelf(qty int) error {
	if err := inv.ReduceFromStore(qty); err != nil {
		return err
	}
	return inv.AddToShelf(qty)
}

// TransferStoreToOnline moves quantity from the backroom store to the
// online-reserved location as one logical step.
func (inv *Inventory) TransferStoreToOnline(qty int) error {
	if err := inv.ReduceFromStore(qty); err != nil {
		return err
	}
	return inv.AddToOnline(qty)
}
