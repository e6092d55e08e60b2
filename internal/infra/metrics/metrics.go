package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors for core operations. Register them once per registry.
type Metrics struct {
	CartOps        *prometheus.CounterVec
	Checkouts      *prometheus.CounterVec
	CheckoutAmount prometheus.Counter
	Queries        prometheus.Counter
	QueryResults   prometheus.Histogram
	Logins         *prometheus.CounterVec
	AccessDenied   *prometheus.CounterVec
	CatalogItems   *prometheus.GaugeVec
	Sessions       prometheus.Gauge
}

func New() *Metrics {
	return &Metrics{
		CartOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "uniformhub",
			Subsystem: "cart",
			Name:      "operations_total",
			Help:      "Cart mutations by operation and outcome.",
		}, []string{"op", "outcome"}),
		Checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "uniformhub",
			Subsystem: "cart",
			Name:      "checkouts_total",
			Help:      "Completed sales by payment method.",
		}, []string{"method"}),
		CheckoutAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "uniformhub",
			Subsystem: "cart",
			Name:      "checkout_amount_total",
			Help:      "Sum of receipt totals including tax.",
		}),
		Queries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "uniformhub",
			Subsystem: "inventory",
			Name:      "queries_total",
			Help:      "Inventory queries served.",
		}),
		QueryResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "uniformhub",
			Subsystem: "inventory",
			Name:      "query_result_items",
			Help:      "Items returned per inventory query.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 200},
		}),
		Logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "uniformhub",
			Subsystem: "session",
			Name:      "logins_total",
			Help:      "Login attempts by requested role and result.",
		}, []string{"role", "result"}),
		AccessDenied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "uniformhub",
			Subsystem: "access",
			Name:      "denied_total",
			Help:      "Requests refused by the permission table, by screen.",
		}, []string{"screen"}),
		CatalogItems: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "uniformhub",
			Subsystem: "catalog",
			Name:      "items",
			Help:      "Catalog items by derived status.",
		}, []string{"status"}),
		Sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "uniformhub",
			Subsystem: "session",
			Name:      "open",
			Help:      "Open workspaces.",
		}),
	}
}

func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.CartOps, m.Checkouts, m.CheckoutAmount, m.Queries, m.QueryResults,
		m.Logins, m.AccessDenied, m.CatalogItems, m.Sessions,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveCatalog sets the per-status gauges from counts.
func (m *Metrics) ObserveCatalog(inStock, lowStock, outOfStock int) {
	m.CatalogItems.WithLabelValues("in-stock").Set(float64(inStock))
	m.CatalogItems.WithLabelValues("low-stock").Set(float64(lowStock))
	m.CatalogItems.WithLabelValues("out-of-stock").Set(float64(outOfStock))
}
