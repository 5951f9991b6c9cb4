package metrics

import (
	"blinkdeploys/tokenscope/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// CatalogMetrics describes the loaded pricing catalog.
//
// Metrics:
//   - tokenscope_analyzer_catalog_models: Number of priced models
//   - tokenscope_analyzer_catalog_age_days: Days since the prices were collected
type CatalogMetrics struct {
	models prometheus.Gauge

	ageDays prometheus.Gauge
}

// NewCatalogMetrics creates and registers catalog metrics with the provided registry.
func NewCatalogMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *CatalogMetrics {
	cm := &CatalogMetrics{
		models: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "catalog_models",
				Help:      "Number of models in the pricing catalog",
			},
		),

		ageDays: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "catalog_age_days",
				Help:      "Age of the pricing catalog in days",
			},
		),
	}

	registry.MustRegister(cm.models, cm.ageDays)

	return cm
}

// SetModels sets the number of priced models.
func (cm *CatalogMetrics) SetModels(n int) {
	cm.models.Set(float64(n))
}

// SetAgeDays sets the catalog age.
func (cm *CatalogMetrics) SetAgeDays(days float64) {
	cm.ageDays.Set(days)
}
