package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func newIsolatedMetrics(t *testing.T) (*OrderMetrics, *prometheus.Registry) {
	t.Helper()
	registry := prometheus.NewRegistry()
	return newOrderMetricsWithRegisterer(registry), registry
}

func gatherMetric(t *testing.T, registry *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	for _, family := range families {
		if family.GetName() == name {
			return family
		}
	}
	return nil
}

func TestNewOrderMetrics_Collectors(t *testing.T) {
	metrics, _ := newIsolatedMetrics(t)

	if metrics.ordersCreated == nil {
		t.Error("ordersCreated counter should not be nil")
	}
	if metrics.ordersFailed == nil {
		t.Error("ordersFailed counter vec should not be nil")
	}
	if metrics.createDuration == nil {
		t.Error("createDuration histogram should not be nil")
	}
	if metrics.itemsPerOrder == nil {
		t.Error("itemsPerOrder histogram should not be nil")
	}
}

func TestNewOrderMetrics_DuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()

	first := newOrderMetricsWithRegisterer(registry)
	// Повторная регистрация должна вернуть уже существующие коллекторы.
	second := newOrderMetricsWithRegisterer(registry)

	if first.ordersCreated != second.ordersCreated {
		t.Error("expected the same ordersCreated collector on re-registration")
	}
}

func TestRecordOrderCreated(t *testing.T) {
	metrics, registry := newIsolatedMetrics(t)

	metrics.RecordOrderCreated(2)
	metrics.RecordOrderCreated(5)

	family := gatherMetric(t, registry, "storefront_orders_created_total")
	if family == nil {
		t.Fatal("storefront_orders_created_total not found")
	}
	if got := family.GetMetric()[0].GetCounter().GetValue(); got != 2 {
		t.Fatalf("expected counter value 2, got %v", got)
	}

	items := gatherMetric(t, registry, "storefront_order_items_per_order")
	if items == nil {
		t.Fatal("storefront_order_items_per_order not found")
	}
	if got := items.GetMetric()[0].GetHistogram().GetSampleCount(); got != 2 {
		t.Fatalf("expected 2 histogram samples, got %v", got)
	}
}

func TestRecordOrderFailed_Reasons(t *testing.T) {
	metrics, registry := newIsolatedMetrics(t)

	metrics.RecordOrderFailed(FailReasonCustomerNotFound)
	metrics.RecordOrderFailed(FailReasonInsufficientStock)
	metrics.RecordOrderFailed(FailReasonInsufficientStock)

	family := gatherMetric(t, registry, "storefront_orders_failed_total")
	if family == nil {
		t.Fatal("storefront_orders_failed_total not found")
	}

	byReason := map[string]float64{}
	for _, metric := range family.GetMetric() {
		for _, label := range metric.GetLabel() {
			if label.GetName() == "reason" {
				byReason[label.GetValue()] = metric.GetCounter().GetValue()
			}
		}
	}

	if byReason[FailReasonCustomerNotFound] != 1 {
		t.Errorf("expected 1 customer_not_found failure, got %v", byReason[FailReasonCustomerNotFound])
	}
	if byReason[FailReasonInsufficientStock] != 2 {
		t.Errorf("expected 2 insufficient_stock failures, got %v", byReason[FailReasonInsufficientStock])
	}
}

func TestRecordCreateDuration(t *testing.T) {
	metrics, registry := newIsolatedMetrics(t)

	metrics.RecordCreateDuration(15 * time.Millisecond)

	family := gatherMetric(t, registry, "storefront_order_create_duration_seconds")
	if family == nil {
		t.Fatal("storefront_order_create_duration_seconds not found")
	}
	histogram := family.GetMetric()[0].GetHistogram()
	if histogram.GetSampleCount() != 1 {
		t.Fatalf("expected 1 sample, got %v", histogram.GetSampleCount())
	}
	if histogram.GetSampleSum() <= 0 {
		t.Fatalf("expected positive sample sum, got %v", histogram.GetSampleSum())
	}
}
