package selfcheck

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the selfcheck collectors.
type Metrics struct {
	cases    prometheus.Counter
	checks   *prometheus.CounterVec
	failures *prometheus.CounterVec
	limbs    prometheus.Histogram
}

// NewMetrics creates the selfcheck collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		cases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bignum",
			Subsystem: "selfcheck",
			Name:      "cases_total",
			Help:      "Number of generated cases checked.",
		}),
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bignum",
			Subsystem: "selfcheck",
			Name:      "property_checks_total",
			Help:      "Number of property evaluations, by property.",
		}, []string{"property"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bignum",
			Subsystem: "selfcheck",
			Name:      "failures_total",
			Help:      "Number of property violations, by property.",
		}, []string{"property"}),
		limbs: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bignum",
			Subsystem: "selfcheck",
			Name:      "operand_limbs",
			Help:      "Limb count of generated operands.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 9),
		}),
	}
	reg.MustRegister(m.cases, m.checks, m.failures, m.limbs)
	return m
}
