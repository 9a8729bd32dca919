package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters and gauges for the POS hot paths. Registered on the default
// registry; pos.go mounts promhttp on /metrics.
var (
	OrdersPlaced = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_orders_placed_total",
		Help: "Orders created, by source (kiosk, cashier).",
	}, []string{"source"})

	BatchesCooked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_batches_cooked_total",
		Help: "Successful batch-cook operations.",
	})

	OrderConsumptions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_order_consumptions_total",
		Help: "Kitchen transitions that ran prepared-stock consumption.",
	})

	ShortageRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_shortage_rejections_total",
		Help: "Operations rejected for insufficient stock, by kind (inventory, prepared).",
	}, []string{"kind"})

	KitchenQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pos_kitchen_queue_depth",
		Help: "Orders currently not done.",
	})

	LowStockIngredients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pos_low_stock_ingredients",
		Help: "Active ingredients at or below par level.",
	})
)
