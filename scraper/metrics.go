package scraper

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for the scraper. They live on a
// dedicated registry so batch runs can expose them without touching the
// default registry.
type Metrics struct {
	Registry      *prometheus.Registry
	FetchesTotal  *prometheus.CounterVec
	FetchDuration prometheus.Histogram
	RecipesTotal  prometheus.Counter
	ErrorsTotal   *prometheus.CounterVec
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	fetches := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipemd_fetches_total",
			Help: "Total recipe page fetches issued.",
		},
		[]string{"phase"},
	)
	fetchDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipemd_fetch_duration_seconds",
			Help:    "Recipe page fetch latency.",
			Buckets: prometheus.DefBuckets,
		},
	)
	recipes := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recipemd_recipes_scraped_total",
			Help: "Total recipes successfully extracted.",
		},
	)
	errorsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipemd_errors_total",
			Help: "Total scrape errors by type.",
		},
		[]string{"error_type"},
	)

	registry.MustRegister(fetches, fetchDuration, recipes, errorsTotal)

	return &Metrics{
		Registry:      registry,
		FetchesTotal:  fetches,
		FetchDuration: fetchDuration,
		RecipesTotal:  recipes,
		ErrorsTotal:   errorsTotal,
	}
}

// IncFetch increments the fetches counter for a phase label.
func (m *Metrics) IncFetch(phase string) {
	if m == nil {
		return
	}
	m.FetchesTotal.WithLabelValues(phase).Inc()
}

// ObserveDuration records a page fetch duration.
func (m *Metrics) ObserveDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.FetchDuration.Observe(d.Seconds())
}

// IncRecipes increments the extracted-recipes counter.
func (m *Metrics) IncRecipes() {
	if m == nil {
		return
	}
	m.RecipesTotal.Inc()
}

// IncError increments the errors counter for a type label.
func (m *Metrics) IncError(errorType string) {
	if m == nil {
		return
	}
	m.ErrorsTotal.WithLabelValues(errorType).Inc()
}
