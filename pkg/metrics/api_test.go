package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNewAPIMetricsNilRegisterer(t *testing.T) {
	m := NewAPIMetrics(nil)
	// All recorders must be safe no-ops without a registry.
	m.ObserveRequest("GET", "200", time.Second)
	m.IncOrderPlaced()
	m.IncAssistantOutcome("ok")
}

func TestOrdersPlacedCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAPIMetrics(reg)

	m.IncOrderPlaced()
	m.IncOrderPlaced()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	var found *dto.MetricFamily
	for _, fam := range families {
		if fam.GetName() == "orders_placed_total" {
			found = fam
		}
	}
	if found == nil {
		t.Fatal("orders_placed_total not registered")
	}
	if got := found.GetMetric()[0].GetCounter().GetValue(); got != 2 {
		t.Fatalf("expected 2 orders, got %v", got)
	}
}

func TestAssistantOutcomeLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAPIMetrics(reg)

	m.IncAssistantOutcome("ok")
	m.IncAssistantOutcome("fallback")
	m.IncAssistantOutcome("")

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	labels := map[string]float64{}
	for _, fam := range families {
		if fam.GetName() != "assistant_requests_total" {
			continue
		}
		for _, metric := range fam.GetMetric() {
			for _, pair := range metric.GetLabel() {
				if pair.GetName() == "outcome" {
					labels[pair.GetValue()] = metric.GetCounter().GetValue()
				}
			}
		}
	}
	if labels["ok"] != 1 || labels["fallback"] != 1 || labels["unknown"] != 1 {
		t.Fatalf("unexpected label counts: %v", labels)
	}
}
