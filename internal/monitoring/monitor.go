package monitoring

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Monitor collects runtime metrics for the view engine. Named values are
// kept for the JSON metrics endpoint; counters and histograms go to a
// private Prometheus registry.
type Monitor struct {
	metrics      map[string]interface{}
	metricsMutex sync.RWMutex
	startTime    time.Time

	registry     *prometheus.Registry
	assemblies   *prometheus.CounterVec
	assemblyTime *prometheus.HistogramVec
	cacheLookups *prometheus.CounterVec
	catalogItems *prometheus.GaugeVec
	reloads      *prometheus.CounterVec
}

// NewMonitor creates a new monitoring instance
func NewMonitor() *Monitor {
	registry := prometheus.NewRegistry()

	assemblies := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campconnect_view_assemblies_total",
			Help: "Number of assembled views",
		},
		[]string{"entity", "sort"},
	)

	assemblyTime := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "campconnect_view_duration_seconds",
			Help:    "Time taken to assemble a view",
			Buckets: prometheus.ExponentialBuckets(0.00005, 4, 8),
		},
		[]string{"entity"},
	)

	cacheLookups := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campconnect_view_cache_total",
			Help: "View cache lookups by result",
		},
		[]string{"result"},
	)

	catalogItems := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "campconnect_catalog_items",
			Help: "Records in the current catalog snapshot",
		},
		[]string{"entity"},
	)

	reloads := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campconnect_catalog_reloads_total",
			Help: "Catalog reload attempts by result",
		},
		[]string{"result"},
	)

	registry.MustRegister(assemblies, assemblyTime, cacheLookups, catalogItems, reloads)

	return &Monitor{
		metrics:      make(map[string]interface{}),
		startTime:    time.Now(),
		registry:     registry,
		assemblies:   assemblies,
		assemblyTime: assemblyTime,
		cacheLookups: cacheLookups,
		catalogItems: catalogItems,
		reloads:      reloads,
	}
}

// RecordMetric records a metric value
func (m *Monitor) RecordMetric(name string, value interface{}) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics[name] = value
}

// GetMetric returns a specific metric value
func (m *Monitor) GetMetric(name string) (interface{}, bool) {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()
	value, exists := m.metrics[name]
	return value, exists
}

// GetMetrics returns all current metrics
func (m *Monitor) GetMetrics() map[string]interface{} {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()

	metrics := make(map[string]interface{}, len(m.metrics)+1)
	for k, v := range m.metrics {
		metrics[k] = v
	}
	metrics["uptime_seconds"] = time.Since(m.startTime).Seconds()

	return metrics
}

// Reset clears all named metrics. Prometheus series are left alone.
func (m *Monitor) Reset() {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics = make(map[string]interface{})
}

// ObserveAssembly records one assembled view
func (m *Monitor) ObserveAssembly(entity, sortKey string, took time.Duration, showing, total int) {
	m.assemblies.WithLabelValues(entity, sortKey).Inc()
	m.assemblyTime.WithLabelValues(entity).Observe(took.Seconds())

	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics[entity+"_last_sort"] = sortKey
	m.metrics[entity+"_last_showing"] = showing
	m.metrics[entity+"_last_total"] = total
	m.metrics[entity+"_last_assembled"] = time.Now().Format(time.RFC3339)
}

// ObserveCache records a view cache lookup
func (m *Monitor) ObserveCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// ObserveReload records a catalog reload attempt and, on success, the new
// snapshot's size
func (m *Monitor) ObserveReload(version uint64, inventory, vendors int, err error) {
	if err != nil {
		m.reloads.WithLabelValues("error").Inc()
		m.RecordMetric("catalog_last_error", err.Error())
		return
	}
	m.reloads.WithLabelValues("ok").Inc()
	m.catalogItems.WithLabelValues("inventory").Set(float64(inventory))
	m.catalogItems.WithLabelValues("vendors").Set(float64(vendors))

	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics["catalog_version"] = version
	m.metrics["catalog_inventory"] = inventory
	m.metrics["catalog_vendors"] = vendors
	delete(m.metrics, "catalog_last_error")
}

// Registry exposes the Prometheus registry
func (m *Monitor) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Monitor) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
