package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the sale write path. The finalize sequence has two failure
// modes that must never pass silently: a compensating delete that itself
// failed (orphaned sale header), and a stock decrement that failed after the
// sale committed (stock count drift). Both are alert material, not log noise.
var (
	SalesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "assistech",
		Name:      "sales_created_total",
		Help:      "Number of sales successfully finalized.",
	})

	SaleRollbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "assistech",
		Name:      "sale_rollbacks_total",
		Help:      "Number of compensating deletes issued after a failed line-item insert.",
	})

	SaleRollbackFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "assistech",
		Name:      "sale_rollback_failures_total",
		Help:      "Compensating deletes that failed, leaving an orphaned sale header.",
	})

	StockDecrementFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "assistech",
		Name:      "stock_decrement_failures_total",
		Help:      "Stock decrements that failed after a sale was committed.",
	})

	ReceiptsPrinted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "assistech",
		Name:      "receipts_printed_total",
		Help:      "Receipts sent to the thermal printer.",
	})
)
