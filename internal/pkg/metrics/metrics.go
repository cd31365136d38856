package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the ingestion gateway metrics on a private registry.
type Collector struct {
	reg *prometheus.Registry

	FixesReceived prometheus.Counter
	FixesRejected *prometheus.CounterVec // reason label: missing_field|invalid_field
	FixesStored   prometheus.Counter
	StoreErrors   prometheus.Counter

	EventsPublished  prometheus.Counter
	EventPublishErrs prometheus.Counter

	UpsertDuration prometheus.Histogram
}

// NewCollector creates and registers the gateway metrics.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		FixesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "telemetry_fixes_received_total",
			Help: "Total webhook requests that reached the validator.",
		}),
		FixesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "telemetry_fixes_rejected_total",
			Help: "Total fixes rejected by validation.",
		}, []string{"reason"}),
		FixesStored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "telemetry_fixes_stored_total",
			Help: "Total fixes upserted into the store.",
		}),
		StoreErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "telemetry_store_errors_total",
			Help: "Total storage failures during upsert.",
		}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "telemetry_events_published_total",
			Help: "Total fix-received events published to NATS.",
		}),
		EventPublishErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "telemetry_event_publish_errors_total",
			Help: "Total NATS publish errors.",
		}),
		UpsertDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "telemetry_upsert_duration_seconds",
			Help:    "Duration of fix upserts into the store.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 15),
		}),
	}

	reg.MustRegister(
		c.FixesReceived, c.FixesRejected,
		c.FixesStored, c.StoreErrors,
		c.EventsPublished, c.EventPublishErrs,
		c.UpsertDuration,
	)

	return c
}

// Handler exposes the registry for the /metrics endpoint.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
