package application

import (
	"time"

	"github.com/outlet-platform/stock-service/internal/domain"
)

// SaleLine is one requested line item of a sale.
type SaleLine struct {
	ProductCode string `json:"productCode" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required"`
}

// ProcessSaleCommand represents the command to settle a sale. Passed by
// pointer so a missing request body is distinguishable from an empty one.
type ProcessSaleCommand struct {
	Items             []SaleLine             `json:"items"`
	CashTenderedCents int64                  `json:"cashTenderedCents"`
	TransactionType   domain.TransactionType `json:"transactionType"`
	CustomerID        string                 `json:"customerId,omitempty"`
}

// TransferDirection names the allowed inter-location moves.
type TransferDirection string

const (
	StoreToShelf  TransferDirection = "STORE_TO_SHELF"
	StoreToOnline TransferDirection = "STORE_TO_ONLINE"
)

// IsValid checks if the transfer direction is valid.
func (d TransferDirection) IsValid() bool {
	switch d {
	case StoreToShelf, StoreToOnline:
		return true
	default:
		return false
	}
}

// TransferStockCommand represents the command to move quantity between
// locations.
type TransferStockCommand struct {
	ProductCode string            `json:"productCode" binding:"required"`
	Quantity    int               `json:"quantity" binding:"required"`
	Direction   TransferDirection `json:"direction" binding:"required"`
}

// AddStockBatchCommand represents the command to receive new stock into
// the backroom store.
type AddStockBatchCommand struct {
	ProductCode string    `json:"productCode" binding:"required"`
	Quantity    int       `json:"quantity" binding:"required"`
	ExpiryDate  time.Time `json:"expiryDate" binding:"required"`
}

// RegisterUserCommand represents the command to register an online
// customer.
type RegisterUserCommand struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

// AuthenticateUserCommand represents a login attempt.
type AuthenticateUserCommand struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
