package domain

// BatchSelectionPolicy picks which batch quantity should be drawn from
// next. Implementations must not mutate the batches they inspect; returns
// nil when no batch is eligible.
type BatchSelectionPolicy interface {
	SelectBatch(batches []*StockBatch) *StockBatch
}

// FIFOBatchPolicy selects the eligible batch with the earliest purchase
// date. Zero-quantity and expired batches are skipped; ties go to the
// first batch encountered in list order.
type FIFOBatchPolicy struct{}

func NewFIFOBatchPolicy() *FIFOBatchPolicy {
	return &FIFOBatchPolicy{}
}

func (p *FIFOBatchPolicy) SelectBatch(batches []*StockBatch) *StockBatch {
	var selected *StockBatch
	for _, batch := range batches {
		if batch == nil || batch.IsEmpty() || batch.IsExpired() {
			continue
		}
		if selected == nil || batch.PurchaseDate.Before(selected.PurchaseDate) {
			selected = batch
		}
	}
	return selected
}

// EarliestExpiryBatchPolicy selects the eligible batch closest to expiry,
// minimizing waste for perishables. Same skip rules and tie-breaking as
// FIFO.
type EarliestExpiryBatchPolicy struct{}

func NewEarliestExpiryBatchPolicy() *EarliestExpiryBatchPolicy {
	return &EarliestExpiryBatchPolicy{}
}

func (p *EarliestExpiryBatchPolicy) SelectBatch(batches []*StockBatch) *StockBatch {
	var selected *StockBatch
	for _, batch := range batches {
		if batch == nil || batch.IsEmpty() || batch.IsExpired() {
			continue
		}
		if selected == nil || batch.ExpiryDate.Before(selected.ExpiryDate) {
			selected = batch
		}
	}
	return selected
}
