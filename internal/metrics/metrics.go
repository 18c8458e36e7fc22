// File: internal/metrics/metrics.go
// Project: Terminal Velocity
// Description: Centralized metrics collection and Prometheus-compatible export
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-14

package metrics

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// MetricsCollector tracks connection, lookup, and database activity for the
// navigation TUI and its supporting repositories.
type MetricsCollector struct {
	mu sync.RWMutex

	// Connection metrics
	totalConnections    atomic.Int64
	activeConnections   atomic.Int64
	failedConnections   atomic.Int64
	connectionDurations []time.Duration

	// Navigation activity
	jumpsExecuted      atomic.Int64
	scannerResolutions atomic.Int64
	scannerFailures    atomic.Int64

	// System metrics
	databaseQueries atomic.Int64
	databaseErrors  atomic.Int64

	// Operation latency, keyed by operation name (e.g. "scanner_resolve").
	latency *LatencyHistogram

	// Custom counters
	customCounters map[string]*atomic.Int64
	customGauges   map[string]*atomic.Int64

	peakConnections int64
	peakTime        time.Time
	startTime       time.Time
}

var global *MetricsCollector
var once sync.Once

// Init initializes the global metrics collector.
func Init() *MetricsCollector {
	once.Do(func() {
		global = &MetricsCollector{
			latency:        NewLatencyHistogram(1000),
			customCounters: make(map[string]*atomic.Int64),
			customGauges:   make(map[string]*atomic.Int64),
			startTime:      time.Now(),
		}
	})
	return global
}

// Global returns the global metrics collector, initializing it if needed.
func Global() *MetricsCollector {
	if global == nil {
		return Init()
	}
	return global
}

// Connection metrics

func (m *MetricsCollector) IncrementConnections() {
	m.totalConnections.Add(1)
}

func (m *MetricsCollector) IncrementActiveConnections() {
	current := m.activeConnections.Add(1)
	m.updatePeak(current)
}

func (m *MetricsCollector) DecrementActiveConnections() {
	m.activeConnections.Add(-1)
}

func (m *MetricsCollector) IncrementFailedConnections() {
	m.failedConnections.Add(1)
}

func (m *MetricsCollector) RecordConnectionDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectionDurations = append(m.connectionDurations, d)
	if len(m.connectionDurations) > 1000 {
		m.connectionDurations = m.connectionDurations[len(m.connectionDurations)-1000:]
	}
}

func (m *MetricsCollector) updatePeak(current int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if current > m.peakConnections {
		m.peakConnections = current
		m.peakTime = time.Now()
	}
}

// Navigation activity metrics

func (m *MetricsCollector) IncrementJumps() {
	m.jumpsExecuted.Add(1)
}

func (m *MetricsCollector) IncrementScannerResolutions() {
	m.scannerResolutions.Add(1)
}

func (m *MetricsCollector) IncrementScannerFailures() {
	m.scannerFailures.Add(1)
}

// System metrics

func (m *MetricsCollector) IncrementDBQueries() {
	m.databaseQueries.Add(1)
}

func (m *MetricsCollector) IncrementDBErrors() {
	m.databaseErrors.Add(1)
}

// RecordLatency records a sample for a named operation.
func (m *MetricsCollector) RecordLatency(operation string, d time.Duration) {
	m.latency.Record(operation, d)
}

// Custom metrics

func (m *MetricsCollector) IncrementCounter(name string) {
	m.mu.Lock()
	if _, ok := m.customCounters[name]; !ok {
		m.customCounters[name] = &atomic.Int64{}
	}
	counter := m.customCounters[name]
	m.mu.Unlock()
	counter.Add(1)
}

func (m *MetricsCollector) SetGauge(name string, value int64) {
	m.mu.Lock()
	if _, ok := m.customGauges[name]; !ok {
		m.customGauges[name] = &atomic.Int64{}
	}
	gauge := m.customGauges[name]
	m.mu.Unlock()
	gauge.Store(value)
}

// MetricsSnapshot is a point-in-time copy of every tracked metric.
type MetricsSnapshot struct {
	TotalConnections  int64
	ActiveConnections int64
	FailedConnections int64
	AvgConnectionTime time.Duration
	PeakConnections   int64
	PeakTime          time.Time

	JumpsExecuted      int64
	ScannerResolutions int64
	ScannerFailures    int64

	DatabaseQueries int64
	DatabaseErrors  int64

	Uptime time.Duration

	CustomCounters map[string]int64
	CustomGauges   map[string]int64
}

func (m *MetricsCollector) Snapshot() *MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var avgConnTime time.Duration
	if len(m.connectionDurations) > 0 {
		var total time.Duration
		for _, d := range m.connectionDurations {
			total += d
		}
		avgConnTime = total / time.Duration(len(m.connectionDurations))
	}

	customCounters := make(map[string]int64)
	for k, v := range m.customCounters {
		customCounters[k] = v.Load()
	}
	customGauges := make(map[string]int64)
	for k, v := range m.customGauges {
		customGauges[k] = v.Load()
	}

	return &MetricsSnapshot{
		TotalConnections:   m.totalConnections.Load(),
		ActiveConnections:  m.activeConnections.Load(),
		FailedConnections:  m.failedConnections.Load(),
		AvgConnectionTime:  avgConnTime,
		PeakConnections:    m.peakConnections,
		PeakTime:           m.peakTime,
		JumpsExecuted:      m.jumpsExecuted.Load(),
		ScannerResolutions: m.scannerResolutions.Load(),
		ScannerFailures:    m.scannerFailures.Load(),
		DatabaseQueries:    m.databaseQueries.Load(),
		DatabaseErrors:     m.databaseErrors.Load(),
		Uptime:             time.Since(m.startTime),
		CustomCounters:     customCounters,
		CustomGauges:       customGauges,
	}
}

// PrometheusFormat returns metrics in Prometheus exposition format.
func (m *MetricsCollector) PrometheusFormat() string {
	snap := m.Snapshot()

	var out string
	out += "# HELP pgnames_connections_total Total number of connections accepted\n"
	out += "# TYPE pgnames_connections_total counter\n"
	out += fmt.Sprintf("pgnames_connections_total %d\n\n", snap.TotalConnections)

	out += "# HELP pgnames_connections_active Currently active connections\n"
	out += "# TYPE pgnames_connections_active gauge\n"
	out += fmt.Sprintf("pgnames_connections_active %d\n\n", snap.ActiveConnections)

	out += "# HELP pgnames_connections_failed_total Total failed connection attempts\n"
	out += "# TYPE pgnames_connections_failed_total counter\n"
	out += fmt.Sprintf("pgnames_connections_failed_total %d\n\n", snap.FailedConnections)

	out += "# HELP pgnames_jumps_total Total navigation jumps executed\n"
	out += "# TYPE pgnames_jumps_total counter\n"
	out += fmt.Sprintf("pgnames_jumps_total %d\n\n", snap.JumpsExecuted)

	out += "# HELP pgnames_scanner_resolutions_total Total scanner designation resolutions\n"
	out += "# TYPE pgnames_scanner_resolutions_total counter\n"
	out += fmt.Sprintf("pgnames_scanner_resolutions_total %d\n\n", snap.ScannerResolutions)

	out += "# HELP pgnames_scanner_failures_total Total scanner designation resolutions that failed\n"
	out += "# TYPE pgnames_scanner_failures_total counter\n"
	out += fmt.Sprintf("pgnames_scanner_failures_total %d\n\n", snap.ScannerFailures)

	out += "# HELP pgnames_db_queries_total Total database queries\n"
	out += "# TYPE pgnames_db_queries_total counter\n"
	out += fmt.Sprintf("pgnames_db_queries_total %d\n\n", snap.DatabaseQueries)

	out += "# HELP pgnames_db_errors_total Total database errors\n"
	out += "# TYPE pgnames_db_errors_total counter\n"
	out += fmt.Sprintf("pgnames_db_errors_total %d\n\n", snap.DatabaseErrors)

	out += "# HELP pgnames_uptime_seconds Process uptime in seconds\n"
	out += "# TYPE pgnames_uptime_seconds gauge\n"
	out += fmt.Sprintf("pgnames_uptime_seconds %.0f\n\n", snap.Uptime.Seconds())

	for _, op := range m.latency.GetOperations() {
		p50, p95, p99 := m.latency.GetPercentiles(op)
		out += fmt.Sprintf("# HELP pgnames_latency_seconds %s operation latency\n", op)
		out += fmt.Sprintf("# TYPE pgnames_latency_seconds summary\n")
		out += fmt.Sprintf("pgnames_latency_seconds{operation=%q,quantile=\"0.5\"} %.6f\n", op, p50.Seconds())
		out += fmt.Sprintf("pgnames_latency_seconds{operation=%q,quantile=\"0.95\"} %.6f\n", op, p95.Seconds())
		out += fmt.Sprintf("pgnames_latency_seconds{operation=%q,quantile=\"0.99\"} %.6f\n\n", op, p99.Seconds())
	}

	names := make([]string, 0, len(snap.CustomCounters))
	for name := range snap.CustomCounters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		out += fmt.Sprintf("# HELP pgnames_custom_%s Custom counter\n", name)
		out += fmt.Sprintf("# TYPE pgnames_custom_%s counter\n", name)
		out += fmt.Sprintf("pgnames_custom_%s %d\n\n", name, snap.CustomCounters[name])
	}

	return out
}
