// Package metrics provides Prometheus instrumentation for recipe lookups.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/matt-dz/recipefinder/internal/gateway"
	"github.com/matt-dz/recipefinder/internal/recipe"
)

const namespace = "recipefinder"

const (
	resultSuccess  = "success"
	resultNotFound = "not_found"
	resultError    = "error"
)

type Metrics struct {
	// GatewayRequests counts gateway calls.
	// Labels: operation, result (success, not_found, error)
	GatewayRequests *prometheus.CounterVec
	// GatewayDuration tracks gateway call latency in seconds.
	// Labels: operation
	GatewayDuration *prometheus.HistogramVec
	// GatewayResults tracks how many recipes each call returned.
	// Labels: operation
	GatewayResults *prometheus.HistogramVec
}

// New registers the recipe metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		GatewayRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "gateway",
				Name:      "requests_total",
				Help:      "Total number of recipe gateway calls",
			},
			[]string{"operation", "result"},
		),
		GatewayDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "gateway",
				Name:      "request_duration_seconds",
				Help:      "Duration of recipe gateway calls in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		GatewayResults: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "gateway",
				Name:      "results",
				Help:      "Number of recipes returned per gateway call",
				Buckets:   []float64{0, 1, 5, 10, 20, 50},
			},
			[]string{"operation"},
		),
	}
}

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

type instrumented struct {
	next    gateway.Gateway
	metrics *Metrics
}

// Instrument wraps g so every call is counted and timed.
func Instrument(g gateway.Gateway, m *Metrics) gateway.Gateway {
	return &instrumented{next: g, metrics: m}
}

func (i *instrumented) observe(op string, start time.Time, n int, err error) {
	result := resultSuccess
	switch {
	case errors.Is(err, gateway.ErrNotFound):
		result = resultNotFound
	case err != nil:
		result = resultError
	}
	i.metrics.GatewayRequests.WithLabelValues(op, result).Inc()
	i.metrics.GatewayDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err == nil {
		i.metrics.GatewayResults.WithLabelValues(op).Observe(float64(n))
	}
}

func (i *instrumented) SearchByText(ctx context.Context, query string) ([]recipe.Recipe, error) {
	start := time.Now()
	rs, err := i.next.SearchByText(ctx, query)
	i.observe("search_by_text", start, len(rs), err)
	return rs, err
}

func (i *instrumented) SearchByIngredients(ctx context.Context, list string) ([]recipe.Recipe, error) {
	start := time.Now()
	rs, err := i.next.SearchByIngredients(ctx, list)
	i.observe("search_by_ingredients", start, len(rs), err)
	return rs, err
}

func (i *instrumented) GetByID(ctx context.Context, id int64) (recipe.Recipe, error) {
	start := time.Now()
	r, err := i.next.GetByID(ctx, id)
	i.observe("get_by_id", start, 1, err)
	return r, err
}

func (i *instrumented) GetByIDs(ctx context.Context, ids []int64) ([]recipe.Recipe, error) {
	start := time.Now()
	rs, err := i.next.GetByIDs(ctx, ids)
	i.observe("get_by_ids", start, len(rs), err)
	return rs, err
}
