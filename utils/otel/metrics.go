package otel

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds all OTel metric instruments for the backend. Nil until
// InitMetrics runs; the Record helpers tolerate that.
var Metrics *BackendMetrics

// BackendMetrics contains all metric instruments.
type BackendMetrics struct {
	SearchTotal         metric.Int64Counter
	SearchDuration      metric.Float64Histogram
	SubmissionsTotal    metric.Int64Counter
	UpstreamErrorsTotal metric.Int64Counter
}

// InitMetrics initializes all metric instruments.
func InitMetrics() error {
	meter := otel.Meter("edubrief-backend")

	searchTotal, err := meter.Int64Counter("edubrief_search_total",
		metric.WithDescription("Total number of search requests"),
	)
	if err != nil {
		return err
	}

	searchDuration, err := meter.Float64Histogram("edubrief_search_duration_seconds",
		metric.WithDescription("Search request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	submissionsTotal, err := meter.Int64Counter("edubrief_submissions_total",
		metric.WithDescription("Total number of accepted form submissions"),
	)
	if err != nil {
		return err
	}

	upstreamErrorsTotal, err := meter.Int64Counter("edubrief_upstream_errors_total",
		metric.WithDescription("Total number of upstream service errors"),
	)
	if err != nil {
		return err
	}

	Metrics = &BackendMetrics{
		SearchTotal:         searchTotal,
		SearchDuration:      searchDuration,
		SubmissionsTotal:    submissionsTotal,
		UpstreamErrorsTotal: upstreamErrorsTotal,
	}

	return nil
}

// RecordSearch records one search request across the given number of
// collections.
func RecordSearch(ctx context.Context, collections int, d time.Duration, errored bool) {
	if Metrics == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.Int("collections", collections),
		attribute.Bool("error", errored),
	)
	Metrics.SearchTotal.Add(ctx, 1, attrs)
	Metrics.SearchDuration.Record(ctx, d.Seconds(), attrs)
	if errored {
		Metrics.UpstreamErrorsTotal.Add(ctx, 1,
			metric.WithAttributes(attribute.String("op", "search")))
	}
}

// RecordSubmission records one accepted form submission of the given kind.
func RecordSubmission(ctx context.Context, kind string) {
	if Metrics == nil {
		return
	}
	Metrics.SubmissionsTotal.Add(ctx, 1,
		metric.WithAttributes(attribute.String("kind", kind)))
}
