package application

import "github.com/outlet-platform/stock-service/internal/domain"

// ToBillDTO converts a settled bill to its response representation.
func ToBillDTO(bill *domain.Bill) *BillDTO {
	items := bill.Items()
	itemDTOs := make([]BillItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, BillItemDTO{
			ProductCode:        item.ProductCode(),
			ProductName:        item.ProductName(),
			Unit:               item.Unit(),
			Quantity:           item.Quantity(),
			UnitPriceCents:     item.UnitPrice().Amount(),
			DiscountPercentage: item.DiscountPercentage(),
			ItemTotalCents:     item.ItemTotal().Amount(),
			DiscountCents:      item.DiscountAmount().Amount(),
			FinalPriceCents:    item.FinalPrice().Amount(),
		})
	}

	return &BillDTO{
		SerialNumber:      bill.SerialNumber(),
		BillDate:          bill.BillDate(),
		TransactionType:   string(bill.TransactionType()),
		CustomerID:        bill.CustomerID(),
		Items:             itemDTOs,
		Currency:          bill.CashTendered().Currency(),
		SubtotalCents:     bill.Subtotal().Amount(),
		DiscountCents:     bill.Discount().Amount(),
		TotalCents:        bill.Total().Amount(),
		CashTenderedCents: bill.CashTendered().Amount(),
		ChangeCents:       bill.Change().Amount(),
	}
}

// ToInventoryDTO converts an inventory aggregate to its response
// representation.
func ToInventoryDTO(inv *domain.Inventory) *InventoryDTO {
	return &InventoryDTO{
		ProductCode:       inv.ProductCode,
		ShelfQuantity:     inv.ShelfQuantity,
		StoreQuantity:     inv.StoreQuantity,
		OnlineQuantity:    inv.OnlineQuantity,
		TotalQuantity:     inv.TotalQuantity(),
		BelowReorderLevel: inv.IsBelowReorderLevel(),
	}
}

// ToStockBatchDTO converts a batch to its response representation.
func ToStockBatchDTO(batch *domain.StockBatch) *StockBatchDTO {
	return &StockBatchDTO{
		BatchID:         batch.BatchID,
		ProductCode:     batch.ProductCode,
		PurchaseDate:    batch.PurchaseDate,
		Quantity:        batch.Quantity,
		ExpiryDate:      batch.ExpiryDate,
		DaysUntilExpiry: batch.DaysUntilExpiry(),
		Expired:         batch.IsExpired(),
	}
}

// ToUserDTO converts a user to its response representation.
func ToUserDTO(user *domain.User) *UserDTO {
	return &UserDTO{
		UserID:           user.UserID,
		Name:             user.Name,
		Email:            user.Email,
		Address:          user.Address,
		RegistrationDate: user.RegistrationDate,
	}
}
