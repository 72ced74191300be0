package domain

import (
	"errors"
	"time"
)

// Errors
var (
	ErrBillNoItems            = errors.New("bill must have at least one item")
	ErrCashTenderedTooLow     = errors.New("cash tendered must be greater than or equal to total")
	ErrCustomerIDRequired     = errors.New("customer id is required for online transactions")
	ErrEmptyBillItemName      = errors.New("bill item product name cannot be empty")
	ErrNegativeCashTendered   = errors.New("cash tendered cannot be negative")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
)

// TransactionType identifies the sale channel.
type TransactionType string

const (
	TransactionCounter TransactionType = "COUNTER"
	TransactionOnline  TransactionType = "ONLINE"
)

// IsValid checks if the transaction type is valid.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionCounter, TransactionOnline:
		return true
	default:
		return false
	}
}

// BillItem is one settled line of a bill, priced at time of sale.
type BillItem struct {
	productCode        string
	productName        string
	unit               string
	quantity           int
	unitPrice          Money
	discountPercentage float64
}

// NewBillItem validates and constructs a bill line.
func NewBillItem(productCode, productName, unit string, quantity int, unitPrice Money, discountPercentage float64) (BillItem, error) {
	if productCode == "" {
		return BillItem{}, ErrEmptyProductCode
	}
	if productName == "" {
		return BillItem{}, ErrEmptyBillItemName
	}
	if quantity <= 0 {
		return BillItem{}, ErrInvalidQuantity
	}
	if discountPercentage < 0 || discountPercentage > 100 {
		return BillItem{}, ErrInvalidDiscount
	}
	return BillItem{
		productCode:        productCode,
		productName:        productName,
		unit:               unit,
		quantity:           quantity,
		unitPrice:          unitPrice,
		discountPercentage: discountPercentage,
	}, nil
}

func (i BillItem) ProductCode() string         { return i.productCode }
func (i BillItem) ProductName() string         { return i.productName }
func (i BillItem) Unit() string                { return i.unit }
func (i BillItem) Quantity() int               { return i.quantity }
func (i BillItem) UnitPrice() Money            { return i.unitPrice }
func (i BillItem) DiscountPercentage() float64 { return i.discountPercentage }

// ItemTotal is unit price times quantity, before discount.
func (i BillItem) ItemTotal() Money {
	total, _ := i.unitPrice.Multiply(i.quantity)
	return total
}

// DiscountAmount is the discount taken off this line.
func (i BillItem) DiscountAmount() Money {
	amount, _ := i.ItemTotal().Percent(i.discountPercentage)
	return amount
}

// FinalPrice is the line total after discount.
func (i BillItem) FinalPrice() Money {
	final, _ := i.ItemTotal().Subtract(i.DiscountAmount())
	return final
}

// Bill is the immutable record of one settled sale. Construct it through
// BillBuilder; a Bill is never mutated after Build.
type Bill struct {
	serialNumber    int
	billDate        time.Time
	items           []BillItem
	cashTendered    Money
	transactionType TransactionType
	customerID      string
}

func (b *Bill) SerialNumber() int                { return b.serialNumber }
func (b *Bill) BillDate() time.Time              { return b.billDate }
func (b *Bill) CashTendered() Money              { return b.cashTendered }
func (b *Bill) TransactionType() TransactionType { return b.transactionType }
func (b *Bill) CustomerID() string               { return b.customerID }

// Items returns a copy of the bill lines in original order.
func (b *Bill) Items() []BillItem {
	items := make([]BillItem, len(b.items))
	copy(items, b.items)
	return items
}

// Subtotal is the sum of line totals before discounts.
func (b *Bill) Subtotal() Money {
	sum := ZeroMoney(b.cashTendered.Currency())
	for _, item := range b.items {
		sum, _ = sum.Add(item.ItemTotal())
	}
	return sum
}

// Discount is the sum of line discount amounts.
func (b *Bill) Discount() Money {
	sum := ZeroMoney(b.cashTendered.Currency())
	for _, item := range b.items {
		sum, _ = sum.Add(item.DiscountAmount())
	}
	return sum
}

// Total is subtotal minus discount.
func (b *Bill) Total() Money {
	total, _ := b.Subtotal().Subtract(b.Discount())
	return total
}

// Change is cash tendered minus total.
func (b *Bill) Change() Money {
	change, _ := b.cashTendered.Subtract(b.Total())
	return change
}

// BillBuilder accumulates bill state and validates it at Build. The
// half-built state is never observable outside the builder.
type BillBuilder struct {
	serialNumber    int
	billDate        time.Time
	items           []BillItem
	cashTendered    Money
	hasCash         bool
	transactionType TransactionType
	customerID      string
}

// NewBillBuilder creates a builder defaulting to a counter transaction
// dated now.
func NewBillBuilder() *BillBuilder {
	return &BillBuilder{
		billDate:        time.Now().UTC(),
		transactionType: TransactionCounter,
	}
}

func (bb *BillBuilder) SerialNumber(n int) *BillBuilder {
	bb.serialNumber = n
	return bb
}

func (bb *BillBuilder) BillDate(t time.Time) *BillBuilder {
	bb.billDate = t
	return bb
}

func (bb *BillBuilder) AddItem(item BillItem) *BillBuilder {
	bb.items = append(bb.items, item)
	return bb
}

func (bb *BillBuilder) Items(items []BillItem) *BillBuilder {
	bb.items = append([]BillItem(nil), items...)
	return bb
}

func (bb *BillBuilder) CashTendered(m Money) *BillBuilder {
	bb.cashTendered = m
	bb.hasCash = true
	return bb
}

func (bb *BillBuilder) TransactionType(t TransactionType) *BillBuilder {
	bb.transactionType = t
	return bb
}

func (bb *BillBuilder) CustomerID(id string) *BillBuilder {
	bb.customerID = id
	return bb
}

// Build validates the accumulated state and produces the immutable Bill.
func (bb *BillBuilder) Build() (*Bill, error) {
	if len(bb.items) == 0 {
		return nil, ErrBillNoItems
	}
	if !bb.transactionType.IsValid() {
		return nil, ErrInvalidTransactionType
	}
	if bb.transactionType == TransactionOnline && bb.customerID == "" {
		return nil, ErrCustomerIDRequired
	}
	if !bb.hasCash {
		bb.cashTendered = ZeroMoney(bb.items[0].unitPrice.Currency())
	}

	bill := &Bill{
		serialNumber:    bb.serialNumber,
		billDate:        bb.billDate,
		items:           append([]BillItem(nil), bb.items...),
		cashTendered:    bb.cashTendered,
		transactionType: bb.transactionType,
		customerID:      bb.customerID,
	}

	enough, err := bill.cashTendered.GreaterThanOrEqual(bill.Total())
	if err != nil {
		return nil, err
	}
	if !enough {
		return nil, ErrCashTenderedTooLow
	}
	return bill, nil
}
