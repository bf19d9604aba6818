// Package observe provides application-wide observability primitives for
// npcdb: OpenTelemetry metrics, distributed tracing, structured logging,
// and HTTP middleware that ties them together.
//
// Metrics are recorded through the OpenTelemetry Metrics API. A Prometheus
// exporter bridge is available via [InitProvider] so that metrics can still be
// scraped via the standard /metrics endpoint. A package-level default
// [Metrics] instance ([DefaultMetrics]) is provided for convenience; tests
// should use [NewMetrics] with a custom [metric.MeterProvider] to avoid
// cross-test pollution.
package observe

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all npcdb metrics.
const meterName = "github.com/diceforge/npcdb"

// Metrics holds all OpenTelemetry metric instruments for the application.
// All fields are safe for concurrent use — the underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// --- Latency histograms ---

	// StoreQueryDuration tracks roster store operation latency. Use with
	// attributes:
	//   attribute.String("op", ...), attribute.String("status", ...)
	StoreQueryDuration metric.Float64Histogram

	// ExportDuration tracks Fantasy Grounds export generation latency.
	ExportDuration metric.Float64Histogram

	// HTTPRequestDuration tracks HTTP request processing time. Use with attributes:
	//   attribute.String("method", ...), attribute.String("path", ...)
	HTTPRequestDuration metric.Float64Histogram

	// --- Counters ---

	// ExportsGenerated counts export runs. Use with attribute:
	//   attribute.String("scope", "section"|"module")
	ExportsGenerated metric.Int64Counter

	// AuditRuns counts prerequisite audit runs.
	AuditRuns metric.Int64Counter

	// AuditFindings counts NPCs flagged by the prerequisite audit. Use with
	// attribute: attribute.String("region", ...)
	AuditFindings metric.Int64Counter

	// ResolverLookups counts name-resolution attempts. Use with attributes:
	//   attribute.String("stage", "exact"|"substring"|"phonetic"), attribute.String("status", ...)
	ResolverLookups metric.Int64Counter

	// --- Error counters ---

	// StoreErrors counts failed store operations. Use with attribute:
	//   attribute.String("op", ...)
	StoreErrors metric.Int64Counter

	// --- Gauges ---

	// ActiveRequests tracks the number of in-flight HTTP requests.
	ActiveRequests metric.Int64UpDownCounter
}

// latencyBuckets defines histogram bucket boundaries (in seconds) optimised
// for database round trips and export generation.
var latencyBuckets = []float64{
	0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	// Histograms.
	if met.StoreQueryDuration, err = m.Float64Histogram("npcdb.store.query.duration",
		metric.WithDescription("Latency of roster store operations."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.ExportDuration, err = m.Float64Histogram("npcdb.export.duration",
		metric.WithDescription("Latency of Fantasy Grounds export generation."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.HTTPRequestDuration, err = m.Float64Histogram("npcdb.http.request.duration",
		metric.WithDescription("HTTP request latency by method and path."),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	// Counters.
	if met.ExportsGenerated, err = m.Int64Counter("npcdb.exports.generated",
		metric.WithDescription("Total export runs by scope."),
	); err != nil {
		return nil, err
	}
	if met.AuditRuns, err = m.Int64Counter("npcdb.audit.runs",
		metric.WithDescription("Total prerequisite audit runs."),
	); err != nil {
		return nil, err
	}
	if met.AuditFindings, err = m.Int64Counter("npcdb.audit.findings",
		metric.WithDescription("Total NPCs flagged by the prerequisite audit, by region."),
	); err != nil {
		return nil, err
	}
	if met.ResolverLookups, err = m.Int64Counter("npcdb.resolver.lookups",
		metric.WithDescription("Total name-resolution attempts by stage and status."),
	); err != nil {
		return nil, err
	}

	// Error counters.
	if met.StoreErrors, err = m.Int64Counter("npcdb.store.errors",
		metric.WithDescription("Total failed store operations by op."),
	); err != nil {
		return nil, err
	}

	// Gauges (UpDownCounters).
	if met.ActiveRequests, err = m.Int64UpDownCounter("npcdb.active_requests",
		metric.WithDescription("Number of in-flight HTTP requests."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it on
// first call using [otel.GetMeterProvider]. Subsequent calls return the same
// pointer. Panics if instrument creation fails (should not happen with the
// global provider).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// Attr is a convenience alias for [attribute.String] to reduce verbosity at
// call sites.
func Attr(key, value string) attribute.KeyValue {
	return attribute.String(key, value)
}

// RecordStoreQuery records one store operation: its duration in the latency
// histogram and, when err is non-nil, an increment of the error counter.
func (m *Metrics) RecordStoreQuery(ctx context.Context, op string, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
		m.StoreErrors.Add(ctx, 1,
			metric.WithAttributes(attribute.String("op", op)),
		)
	}
	m.StoreQueryDuration.Record(ctx, d.Seconds(),
		metric.WithAttributes(
			attribute.String("op", op),
			attribute.String("status", status),
		),
	)
}

// RecordExport records one export run with its scope ("section" or "module")
// and generation latency.
func (m *Metrics) RecordExport(ctx context.Context, scope string, d time.Duration) {
	m.ExportsGenerated.Add(ctx, 1,
		metric.WithAttributes(attribute.String("scope", scope)),
	)
	m.ExportDuration.Record(ctx, d.Seconds(),
		metric.WithAttributes(attribute.String("scope", scope)),
	)
}

// RecordAudit records one completed audit run and its finding count.
func (m *Metrics) RecordAudit(ctx context.Context, region string, findings int) {
	m.AuditRuns.Add(ctx, 1)
	if findings > 0 {
		m.AuditFindings.Add(ctx, int64(findings),
			metric.WithAttributes(attribute.String("region", region)),
		)
	}
}

// RecordResolverLookup records one name-resolution attempt with the stage
// that settled it and the outcome status.
func (m *Metrics) RecordResolverLookup(ctx context.Context, stage, status string) {
	m.ResolverLookups.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("stage", stage),
			attribute.String("status", status),
		),
	)
}
