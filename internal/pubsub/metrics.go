package pubsub

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts bus traffic and lookups that passed or failed the catalog
// check.
type Metrics struct {
	rejected  *prometheus.CounterVec
	published *prometheus.CounterVec
}

// NewMetrics creates the bus metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wscatalog",
			Name:      "rejected_total",
			Help:      "Publishes, subscriptions and lookups rejected for an unregistered identifier",
		}, []string{"op"}),
		published: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wscatalog",
			Name:      "published_total",
			Help:      "Messages published on registered topics, by topic group",
		}, []string{"group"}),
	}
	for _, c := range []prometheus.Collector{m.rejected, m.published} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Reject counts a rejected identifier under op. A nil Metrics is a no-op.
func (m *Metrics) Reject(op string) {
	if m != nil {
		m.rejected.WithLabelValues(op).Inc()
	}
}

func (m *Metrics) publish(group string) {
	if m != nil {
		m.published.WithLabelValues(group).Inc()
	}
}
