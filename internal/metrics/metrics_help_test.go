package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func TestMetricHelpDescriptions(t *testing.T) {
	registry := prometheus.NewRegistry()
	NewWithRegistry(registry, zap.NewNop())

	// Gather metrics
	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatal("Expected registered metric families, got none")
	}

	// Check each metric has a non-empty help description
	for _, mf := range metricFamilies {
		name := mf.GetName()
		help := mf.GetHelp()

		if len(strings.TrimSpace(help)) == 0 {
			t.Errorf("Metric '%s' has an empty help description", name)
		}
	}
}

func TestMetricNamingConvention(t *testing.T) {
	registry := prometheus.NewRegistry()
	NewWithRegistry(registry, zap.NewNop())

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}

	// All metric names must be namespaced snake_case
	for _, mf := range metricFamilies {
		name := mf.GetName()

		if !strings.HasPrefix(name, namespace+"_") {
			t.Errorf("Metric '%s' is missing the '%s' namespace", name, namespace)
		}
		if strings.ToLower(name) != name {
			t.Errorf("Metric '%s' is not snake_case", name)
		}
		if strings.Contains(name, "-") || strings.Contains(name, " ") {
			t.Errorf("Metric '%s' contains invalid characters", name)
		}
	}
}
