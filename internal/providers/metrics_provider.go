package providers

import (
	"presence/internal/structures"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	CacheDataset  = "dataset"
	CacheResponse = "response"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits(cache string)
	IncCacheMisses(cache string)
	ObserveParseDuration(duration time.Duration)
	AddSkippedRows(reason string, count int)
	SetUsersTotal(count int)
	IncRefreshes(ok bool)
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
	parseDuration   prometheus.Histogram
	skippedRows     *prometheus.CounterVec
	usersTotal      prometheus.Gauge
	refreshes       *prometheus.CounterVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits(cache string) {
	m.cacheHits.WithLabelValues(cache).Inc()
}

func (m *MetricsProvider) IncCacheMisses(cache string) {
	m.cacheMisses.WithLabelValues(cache).Inc()
}

func (m *MetricsProvider) ObserveParseDuration(duration time.Duration) {
	m.parseDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) AddSkippedRows(reason string, count int) {
	m.skippedRows.WithLabelValues(reason).Add(float64(count))
}

func (m *MetricsProvider) SetUsersTotal(count int) {
	m.usersTotal.Set(float64(count))
}

func (m *MetricsProvider) IncRefreshes(ok bool) {
	m.refreshes.WithLabelValues(strconv.FormatBool(ok)).Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}
	return newMetricsProvider(promauto.With(prometheus.DefaultRegisterer))
}

func newMetricsProvider(factory promauto.Factory) *MetricsProvider {
	return &MetricsProvider{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "presence_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "presence_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "presence_cache_hits_total",
			Help: "Total number of cache hits",
		}, []string{"cache"}),

		cacheMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "presence_cache_misses_total",
			Help: "Total number of cache misses",
		}, []string{"cache"}),

		parseDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "presence_parse_duration_seconds",
			Help:    "Duration of presence source parsing in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		skippedRows: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "presence_skipped_rows_total",
			Help: "Presence rows skipped while parsing, by reason",
		}, []string{"reason"}),

		usersTotal: factory.NewGauge(prometheus.GaugeOpts{
			Name: "presence_users_total",
			Help: "Number of users in the current dataset",
		}),

		refreshes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "presence_metadata_refreshes_total",
			Help: "Metadata refresh attempts by outcome",
		}, []string{"ok"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits(_ string)                            {}
func (n *noopMetrics) IncCacheMisses(_ string)                          {}
func (n *noopMetrics) ObserveParseDuration(_ time.Duration)             {}
func (n *noopMetrics) AddSkippedRows(_ string, _ int)                   {}
func (n *noopMetrics) SetUsersTotal(_ int)                              {}
func (n *noopMetrics) IncRefreshes(_ bool)                              {}
