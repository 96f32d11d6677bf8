package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ChecksTotal       *prometheus.CounterVec
	ParseFailures     prometheus.Counter
	CacheHits         prometheus.Counter
	CacheMisses       prometheus.Counter
	BlockedDomainSize prometheus.Gauge
}

// New creates and registers all metrics for the validate feature. Pass
// prometheus.DefaultRegisterer in main and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ChecksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mailcheck_checks_total",
			Help: "Total number of address checks by verdict",
		}, []string{"verdict"}),
		ParseFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "mailcheck_parse_failures_total",
			Help: "Total number of inputs rejected by the address parser",
		}),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "mailcheck_cache_hits_total",
			Help: "Total number of checks served from the verdict cache",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "mailcheck_cache_misses_total",
			Help: "Total number of checks that missed the verdict cache",
		}),
		BlockedDomainSize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "mailcheck_blocked_domains",
			Help: "Current number of deny-listed domains",
		}),
	}
}

func (m *Metrics) ObserveCheck(verdict string) {
	m.ChecksTotal.WithLabelValues(verdict).Inc()
}

func (m *Metrics) IncrementParseFailures() {
	m.ParseFailures.Inc()
}

func (m *Metrics) IncrementCacheHits() {
	m.CacheHits.Inc()
}

func (m *Metrics) IncrementCacheMisses() {
	m.CacheMisses.Inc()
}

func (m *Metrics) SetBlockedDomains(count int) {
	m.BlockedDomainSize.Set(float64(count))
}
