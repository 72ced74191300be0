package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Errors
var (
	ErrExpiryBeforePurchase = errors.New("expiry date cannot be before purchase date")
)

// StockBatch is one dated, expiring lot of a product. Batches are never
// deleted, even at zero quantity; they remain as the historical record of
// what was received and when.
type StockBatch struct {
	BatchID      string    `bson:"batchId"`
	ProductCode  string    `bson:"productCode"`
	PurchaseDate time.Time `bson:"purchaseDate"`
	Quantity     int       `bson:"quantity"`
	ExpiryDate   time.Time `bson:"expiryDate"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

// NewStockBatch creates a batch with a generated batch ID.
func NewStockBatch(productCode string, purchaseDate time.Time, quantity int, expiryDate time.Time) (*StockBatch, error) {
	return NewStockBatchWithID(generateBatchID(), productCode, purchaseDate, quantity, expiryDate)
}

// NewStockBatchWithID creates a batch with a caller-supplied batch ID.
func NewStockBatchWithID(batchID, productCode string, purchaseDate time.Time, quantity int, expiryDate time.Time) (*StockBatch, error) {
	if productCode == "" {
		return nil, ErrEmptyProductCode
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if dateOf(expiryDate).Before(dateOf(purchaseDate)) {
		return nil, ErrExpiryBeforePurchase
	}
	now := time.Now().UTC()
	return &StockBatch{
		BatchID:      batchID,
		ProductCode:  productCode,
		PurchaseDate: dateOf(purchaseDate),
		Quantity:     quantity,
		ExpiryDate:   dateOf(expiryDate),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ReduceQuantity draws quantity from the batch. The check happens before
// mutation; a batch quantity never goes negative.
func (b *StockBatch) ReduceQuantity(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if qty > b.Quantity {
		return ErrInsufficientQuantity
	}
	b.Quantity -= qty
	b.UpdatedAt = time.Now().UTC()
	return nil
}

// IsExpired reports whether the current date is past the expiry date.
// Comparison is at date granularity; a batch expiring today is still
// sellable today.
func (b *StockBatch) IsExpired() bool {
	return dateOf(time.Now().UTC()).After(dateOf(b.ExpiryDate))
}

// DaysUntilExpiry returns the whole days remaining until expiry. Negative
// for already-expired batches.
func (b *StockBatch) DaysUntilExpiry() int {
	today := dateOf(time.Now().UTC())
	return int(dateOf(b.ExpiryDate).Sub(today).Hours() / 24)
}

// IsEmpty reports whether the batch has been fully drawn down.
func (b *StockBatch) IsEmpty() bool {
	return b.Quantity == 0
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func generateBatchID() string {
	return fmt.Sprintf("BATCH-%s", uuid.New().String()[:8])
}
