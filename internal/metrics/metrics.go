package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the service's Prometheus metrics on a private registry.
type Collector struct {
	reg *prometheus.Registry

	SearchesTotal   prometheus.Counter
	SearchFallbacks *prometheus.CounterVec // reason label: upstream_error|no_candidates
	ProviderErrors  *prometheus.CounterVec // provider label: directions|geocoder|places|gbis
	SearchDuration  prometheus.Histogram

	PlaceQueries    prometheus.Counter
	BusLookups      *prometheus.CounterVec // kind label: arrivals|locations|routes
	BusLookupMocked *prometheus.CounterVec

	PaymentsSimulated prometheus.Counter
}

// NewCollector creates and registers the service metrics.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		SearchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tripplan_searches_total",
			Help: "Total trip searches handled.",
		}),
		SearchFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tripplan_search_fallbacks_total",
			Help: "Searches answered with the illustrative mock route set.",
		}, []string{"reason"}),
		ProviderErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tripplan_provider_errors_total",
			Help: "Upstream provider call failures.",
		}, []string{"provider"}),
		SearchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tripplan_search_duration_seconds",
			Help:    "End-to-end duration of one trip search.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		PlaceQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tripplan_place_queries_total",
			Help: "Place autocomplete queries issued to the provider.",
		}),
		BusLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tripplan_bus_lookups_total",
			Help: "Bus information lookups handled.",
		}, []string{"kind"}),
		BusLookupMocked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tripplan_bus_lookups_mocked_total",
			Help: "Bus information lookups answered with mock records.",
		}, []string{"kind"}),
		PaymentsSimulated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tripplan_payments_simulated_total",
			Help: "Simulated payment completions.",
		}),
	}

	reg.MustRegister(
		c.SearchesTotal, c.SearchFallbacks, c.ProviderErrors, c.SearchDuration,
		c.PlaceQueries, c.BusLookups, c.BusLookupMocked,
		c.PaymentsSimulated,
	)

	return c
}

// Handler exposes the registry for a /metrics endpoint.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
