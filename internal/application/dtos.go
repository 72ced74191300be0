package application

import "time"

// BillItemDTO represents one settled bill line in responses.
type BillItemDTO struct {
	ProductCode        string  `json:"productCode"`
	ProductName        string  `json:"productName"`
	Unit               string  `json:"unit,omitempty"`
	Quantity           int     `json:"quantity"`
	UnitPriceCents     int64   `json:"unitPriceCents"`
	DiscountPercentage float64 `json:"discountPercentage"`
	ItemTotalCents     int64   `json:"itemTotalCents"`
	DiscountCents      int64   `json:"discountCents"`
	FinalPriceCents    int64   `json:"finalPriceCents"`
}

// BillDTO represents a settled bill in responses.
type BillDTO struct {
	SerialNumber      int           `json:"serialNumber"`
	BillDate          time.Time     `json:"billDate"`
	TransactionType   string        `json:"transactionType"`
	CustomerID        string        `json:"customerId,omitempty"`
	Items             []BillItemDTO `json:"items"`
	Currency          string        `json:"currency"`
	SubtotalCents     int64         `json:"subtotalCents"`
	DiscountCents     int64         `json:"discountCents"`
	TotalCents        int64         `json:"totalCents"`
	CashTenderedCents int64         `json:"cashTenderedCents"`
	ChangeCents       int64         `json:"changeCents"`
}

// InventoryDTO represents a per-product inventory in responses.
type InventoryDTO struct {
	ProductCode       string `json:"productCode"`
	ShelfQuantity     int    `json:"shelfQuantity"`
	StoreQuantity     int    `json:"storeQuantity"`
	OnlineQuantity    int    `json:"onlineQuantity"`
	TotalQuantity     int    `json:"totalQuantity"`
	BelowReorderLevel bool   `json:"belowReorderLevel"`
}

// StockBatchDTO represents a purchase batch in responses.
type StockBatchDTO struct {
	BatchID         string    `json:"batchId"`
	ProductCode     string    `json:"productCode"`
	PurchaseDate    time.Time `json:"purchaseDate"`
	Quantity        int       `json:"quantity"`
	ExpiryDate      time.Time `json:"expiryDate"`
	DaysUntilExpiry int       `json:"daysUntilExpiry"`
	Expired         bool      `json:"expired"`
}

// UserDTO represents a registered customer in responses. The password
// hash never leaves the service.
type UserDTO struct {
	UserID           string    `json:"userId"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Address          string    `json:"address,omitempty"`
	RegistrationDate time.Time `json:"registrationDate"`
}
