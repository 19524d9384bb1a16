package monitoring

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/GriffinCanCode/primecore/internal/numtheory/factorization"
)

const namespace = "primecore"

// Metrics holds all Prometheus metrics. Each instance owns its registry so
// tests and embedded servers never collide on the global one.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Tool metrics
	ToolCalls    *prometheus.CounterVec
	ToolDuration *prometheus.HistogramVec
	ToolErrors   *prometheus.CounterVec

	// Factorization metrics
	Factorizations      *prometheus.CounterVec
	FactorDuration      prometheus.Histogram
	TrialFactors        prometheus.Counter
	PowerSplits         prometheus.Counter
	RhoSplits           prometheus.Counter
	RhoRetries          prometheus.Counter
	RhoIterations       prometheus.Histogram
	SlowFactorizations  prometheus.Counter
	slowFactorThreshold time.Duration

	// WebSocket metrics
	WSConnections prometheus.Gauge
	WSMessages    *prometheus.CounterVec

	startTime time.Time

	// Snapshot for the JSON stats endpoint
	snapshot Snapshot
	mu       sync.RWMutex
}

// Snapshot holds running totals for the JSON stats endpoint
type Snapshot struct {
	TotalRequests     int64
	TotalErrors       int64
	TotalDuration     float64 // sum of request durations in seconds
	ToolCalls         int64
	ToolErrors        int64
	Factorizations    int64
	RhoRetries        int64
	ActiveConnections int64
	Uptime            time.Duration
}

// NewMetrics creates a metrics collector backed by a fresh registry that
// also carries the Go runtime and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	m := &Metrics{
		registry:            reg,
		startTime:           time.Now(),
		slowFactorThreshold: time.Second,

		// HTTP metrics
		RequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"method", "path"},
		),
		ResponseSize: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_response_size_bytes",
				Help:      "HTTP response size in bytes",
				Buckets:   prometheus.ExponentialBuckets(100, 10, 7),
			},
			[]string{"method", "path"},
		),

		// Tool metrics
		ToolCalls: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tool_calls_total",
				Help:      "Total number of tool executions",
			},
			[]string{"tool", "status"},
		),
		ToolDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "tool_duration_seconds",
				Help:      "Tool execution duration in seconds",
				Buckets:   []float64{.0001, .001, .005, .01, .05, .1, .5, 1, 5, 30},
			},
			[]string{"tool"},
		),
		ToolErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tool_errors_total",
				Help:      "Total number of failed tool executions by error kind",
			},
			[]string{"tool", "kind"},
		),

		// Factorization metrics
		Factorizations: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "factorizations_total",
				Help:      "Total number of factorizations by outcome",
			},
			[]string{"status"},
		),
		FactorDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "factorization_duration_seconds",
				Help:      "Factorization duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 10, 8),
			},
		),
		TrialFactors: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "trial_factors_total",
				Help:      "Prime factors found by trial division",
			},
		),
		PowerSplits: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "power_splits_total",
				Help:      "Cofactors split as perfect powers",
			},
		),
		RhoSplits: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rho_splits_total",
				Help:      "Cofactors split by Pollard rho",
			},
		),
		RhoRetries: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rho_retries_total",
				Help:      "Degenerate Pollard rho runs restarted with a new polynomial",
			},
		),
		RhoIterations: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "rho_iterations",
				Help:      "Pollard rho iterations per factorization",
				Buckets:   prometheus.ExponentialBuckets(1, 10, 10),
			},
		),
		SlowFactorizations: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "slow_factorizations_total",
				Help:      "Factorizations that took at least one second",
			},
		),

		// WebSocket metrics
		WSConnections: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "ws_connections",
				Help:      "Number of active WebSocket connections",
			},
		),
		WSMessages: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ws_messages_total",
				Help:      "Total number of WebSocket messages",
			},
			[]string{"direction", "type"},
		),
	}

	f.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "uptime_seconds",
			Help:      "Service uptime in seconds",
		},
		func() float64 { return time.Since(m.startTime).Seconds() },
	)

	return m
}

// Registry returns the registry the metrics are registered with
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the Prometheus exposition format for this registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))

	m.mu.Lock()
	m.snapshot.TotalRequests++
	m.snapshot.TotalDuration += duration.Seconds()
	if status != "" && (status[0] == '4' || status[0] == '5') {
		m.snapshot.TotalErrors++
	}
	m.mu.Unlock()
}

// ObserveTool records one tool execution; an empty errorKind is a success
func (m *Metrics) ObserveTool(toolID string, elapsed time.Duration, errorKind string) {
	status := "success"
	if errorKind != "" {
		status = "error"
		m.ToolErrors.WithLabelValues(toolID, errorKind).Inc()
	}
	m.ToolCalls.WithLabelValues(toolID, status).Inc()
	m.ToolDuration.WithLabelValues(toolID).Observe(elapsed.Seconds())

	m.mu.Lock()
	m.snapshot.ToolCalls++
	if errorKind != "" {
		m.snapshot.ToolErrors++
	}
	m.mu.Unlock()
}

// ObserveFactorization records the work counters of one factorization
func (m *Metrics) ObserveFactorization(st factorization.Stats, elapsed time.Duration, errorKind string) {
	status := "success"
	if errorKind != "" {
		status = errorKind
	}
	m.Factorizations.WithLabelValues(status).Inc()
	m.FactorDuration.Observe(elapsed.Seconds())
	m.TrialFactors.Add(float64(st.TrialFactors))
	m.PowerSplits.Add(float64(st.PowerSplits))
	m.RhoSplits.Add(float64(st.RhoSplits))
	m.RhoRetries.Add(float64(st.RhoRetries))
	if st.Iterations > 0 {
		m.RhoIterations.Observe(float64(st.Iterations))
	}
	if elapsed >= m.slowFactorThreshold {
		m.SlowFactorizations.Inc()
	}

	m.mu.Lock()
	m.snapshot.Factorizations++
	m.snapshot.RhoRetries += int64(st.RhoRetries)
	m.mu.Unlock()
}

// RecordWSMessage records a WebSocket message
func (m *Metrics) RecordWSMessage(direction, msgType string) {
	m.WSMessages.WithLabelValues(direction, msgType).Inc()
}

// IncWSConnections increments WebSocket connections
func (m *Metrics) IncWSConnections() {
	m.WSConnections.Inc()
	m.mu.Lock()
	m.snapshot.ActiveConnections++
	m.mu.Unlock()
}

// DecWSConnections decrements WebSocket connections
func (m *Metrics) DecWSConnections() {
	m.WSConnections.Dec()
	m.mu.Lock()
	m.snapshot.ActiveConnections--
	m.mu.Unlock()
}

// GetSnapshot returns a copy of the running totals
func (m *Metrics) GetSnapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := m.snapshot
	s.Uptime = time.Since(m.startTime)
	return s
}
