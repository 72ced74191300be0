package domain

// InventoryObserver receives change notifications after a use case has
// mutated and persisted an inventory. Observers must tolerate being called
// synchronously on the mutating goroutine.
type InventoryObserver interface {
	OnInventoryChanged(inv *Inventory)
	OnLowStock(inv *Inventory)
}

// InventorySubject broadcasts inventory changes to subscribed observers,
// in registration order. When the inventory is below the reorder level the
// low-stock callback fires in addition to the change callback.
type InventorySubject interface {
	Subscribe(observer InventoryObserver)
	NotifyInventoryChanged(inv *Inventory)
}
