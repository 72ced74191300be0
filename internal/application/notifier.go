package application

import (
	"github.com/outlet-platform/stock-service/internal/domain"
	"github.com/outlet-platform/stock-service/internal/logging"
)

// ChangeNotifier is the concrete InventorySubject. Observers are invoked
// synchronously, in registration order. A panicking observer is logged
// and skipped so a broken alerting channel cannot fail the mutation that
// triggered it.
type ChangeNotifier struct {
	observers []domain.InventoryObserver
	logger    *logging.Logger
}

// NewChangeNotifier creates a notifier with no subscribers.
func NewChangeNotifier(logger *logging.Logger) *ChangeNotifier {
	return &ChangeNotifier{logger: logger}
}

// Subscribe registers an observer. Not safe for concurrent use with
// NotifyInventoryChanged; subscribe during wiring, before serving.
func (n *ChangeNotifier) Subscribe(observer domain.InventoryObserver) {
	if observer == nil {
		return
	}
	n.observers = append(n.observers, observer)
}

// NotifyInventoryChanged broadcasts the changed inventory to every
// observer, and additionally the low-stock callback when the aggregate is
// below the reorder level.
func (n *ChangeNotifier) NotifyInventoryChanged(inv *domain.Inventory) {
	for _, observer := range n.observers {
		n.invoke(inv, observer.OnInventoryChanged)
	}
	if inv.IsBelowReorderLevel() {
		for _, observer := range n.observers {
			n.invoke(inv, observer.OnLowStock)
		}
	}
}

func (n *ChangeNotifier) invoke(inv *domain.Inventory, callback func(*domain.Inventory)) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("Inventory observer panicked",
				"productCode", inv.ProductCode, "panic", r)
		}
	}()
	callback(inv)
}
