package domain

import "errors"

// Errors
var (
	ErrEmptyProductName = errors.New("product name cannot be empty")
	ErrInvalidDiscount  = errors.New("discount percentage must be between 0 and 100")
)

// Product is an immutable catalog entry. The catalog itself is owned
// elsewhere; this core only reads products to price sales.
type Product struct {
	code               string
	name               string
	unit               string
	price              Money
	discountPercentage float64
}

// NewProduct validates and constructs a product. Price is the unit price;
// discountPercentage is the standing discount applied at sale time.
func NewProduct(code, name, unit string, price Money, discountPercentage float64) (*Product, error) {
	if code == "" {
		return nil, ErrEmptyProductCode
	}
	if name == "" {
		return nil, ErrEmptyProductName
	}
	if discountPercentage < 0 || discountPercentage > 100 {
		return nil, ErrInvalidDiscount
	}
	return &Product{
		code:               code,
		name:               name,
		unit:               unit,
		price:              price,
		discountPercentage: discountPercentage,
	}, nil
}

func (p *Product) Code() string                { return p.code }
func (p *Product) Name() string                { return p.name }
func (p *Product) Unit() string                { return p.unit }
func (p *Product) Price() Money                { return p.price }
func (p *Product) DiscountPercentage() float64 { return p.discountPercentage }

// DiscountedPrice returns the unit price after the standing discount.
func (p *Product) DiscountedPrice() Money {
	discount, err := p.price.Percent(p.discountPercentage)
	if err != nil {
		return p.price
	}
	discounted, err := p.price.Subtract(discount)
	if err != nil {
		return p.price
	}
	return discounted
}

// Equals compares products by code; two catalog entries with the same code
// are the same product.
func (p *Product) Equals(other *Product) bool {
	return other != nil && p.code == other.code
}
