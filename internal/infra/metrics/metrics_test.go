package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterAndObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New()
	if err := m.Register(reg); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := m.Register(reg); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}

	m.CartOps.WithLabelValues("add", "clamped").Inc()
	m.ObserveCatalog(5, 2, 1)

	if got := testutil.ToFloat64(m.CartOps.WithLabelValues("add", "clamped")); got != 1 {
		t.Fatalf("expected 1 clamped add, got %f", got)
	}
	if got := testutil.ToFloat64(m.CatalogItems.WithLabelValues("low-stock")); got != 2 {
		t.Fatalf("expected 2 low-stock items, got %f", got)
	}
}
