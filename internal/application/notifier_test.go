package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outlet-platform/stock-service/internal/domain"
)

type panickingObserver struct{}

func (panickingObserver) OnInventoryChanged(*domain.Inventory) { panic("alerting channel down") }
func (panickingObserver) OnLowStock(*domain.Inventory)         { panic("alerting channel down") }

type orderedObserver struct {
	name  string
	order *[]string
}

func (o orderedObserver) OnInventoryChanged(*domain.Inventory) {
	*o.order = append(*o.order, o.name)
}
func (o orderedObserver) OnLowStock(*domain.Inventory) {}

func TestChangeNotifier_NotifiesAllObservers(t *testing.T) {
	notifier := NewChangeNotifier(testLogger())
	first := &recordingObserver{}
	second := &recordingObserver{}
	notifier.Subscribe(first)
	notifier.Subscribe(second)

	inv := testInventory(t, "PROD-001", 100, 0, 0)
	notifier.NotifyInventoryChanged(inv)

	require.Len(t, first.changed, 1)
	require.Len(t, second.changed, 1)
	assert.Same(t, inv, first.changed[0])
	// 100 units is above the reorder threshold
	assert.Empty(t, first.lowStock)
}

func TestChangeNotifier_LowStockCallback(t *testing.T) {
	notifier := NewChangeNotifier(testLogger())
	observer := &recordingObserver{}
	notifier.Subscribe(observer)

	inv := testInventory(t, "PROD-001", domain.ReorderThreshold-1, 0, 0)
	notifier.NotifyInventoryChanged(inv)

	require.Len(t, observer.changed, 1)
	require.Len(t, observer.lowStock, 1)
	assert.Same(t, inv, observer.lowStock[0])
}

func TestChangeNotifier_PanickingObserverIsIsolated(t *testing.T) {
	notifier := NewChangeNotifier(testLogger())
	survivor := &recordingObserver{}
	notifier.Subscribe(panickingObserver{})
	notifier.Subscribe(survivor)

	inv := testInventory(t, "PROD-001", 5, 0, 0)
	assert.NotPanics(t, func() {
		notifier.NotifyInventoryChanged(inv)
	})

	// the panic in the first observer does not stop the rest
	require.Len(t, survivor.changed, 1)
	require.Len(t, survivor.lowStock, 1)
}

func TestChangeNotifier_RegistrationOrder(t *testing.T) {
	notifier := NewChangeNotifier(testLogger())
	var order []string
	notifier.Subscribe(orderedObserver{name: "first", order: &order})
	notifier.Subscribe(orderedObserver{name: "second", order: &order})
	notifier.Subscribe(orderedObserver{name: "third", order: &order})

	notifier.NotifyInventoryChanged(testInventory(t, "PROD-001", 100, 0, 0))
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestChangeNotifier_NilSubscribeIgnored(t *testing.T) {
	notifier := NewChangeNotifier(testLogger())
	notifier.Subscribe(nil)

	assert.NotPanics(t, func() {
		notifier.NotifyInventoryChanged(testInventory(t, "PROD-001", 100, 0, 0))
	})
}
