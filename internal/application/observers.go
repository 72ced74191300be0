package application

import (
	"github.com/outlet-platform/stock-service/internal/domain"
	"github.com/outlet-platform/stock-service/internal/logging"
	"github.com/outlet-platform/stock-service/internal/metrics"
)

// StockAlertObserver logs inventory changes and raises low-stock reorder
// alerts on the service log.
type StockAlertObserver struct {
	logger *logging.Logger
}

func NewStockAlertObserver(logger *logging.Logger) *StockAlertObserver {
	return &StockAlertObserver{logger: logger}
}

func (o *StockAlertObserver) OnInventoryChanged(inv *domain.Inventory) {
	o.logger.Info("Inventory updated",
		"productCode", inv.ProductCode,
		"shelf", inv.ShelfQuantity,
		"store", inv.StoreQuantity,
		"online", inv.OnlineQuantity,
		"total", inv.TotalQuantity(),
	)
}

func (o *StockAlertObserver) OnLowStock(inv *domain.Inventory) {
	o.logger.Warn("Low stock alert: reorder required",
		"productCode", inv.ProductCode,
		"currentTotal", inv.TotalQuantity(),
		"reorderThreshold", domain.ReorderThreshold,
	)
}

// MetricsObserver exports inventory levels and low-stock alerts to
// Prometheus.
type MetricsObserver struct {
	metrics *metrics.Metrics
}

func NewMetricsObserver(m *metrics.Metrics) *MetricsObserver {
	return &MetricsObserver{metrics: m}
}

func (o *MetricsObserver) OnInventoryChanged(inv *domain.Inventory) {
	o.metrics.InventoryTotal.WithLabelValues(inv.ProductCode).Set(float64(inv.TotalQuantity()))
}

func (o *MetricsObserver) OnLowStock(inv *domain.Inventory) {
	o.metrics.LowStockAlerts.Inc()
}
