package providers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"ticketcounter/internal/structures"
	"time"
)

type MetricsProviderInterface interface {
	IncEventsTotal(event string)
	SetToday(messages, conversations int)
	ObservePersistenceDuration(duration time.Duration)
	Flush() error
}

type MetricsProvider struct {
	registry            *prometheus.Registry
	textfile            string
	eventsTotal         *prometheus.CounterVec
	messagesToday       prometheus.Gauge
	conversationsToday  prometheus.Gauge
	persistenceDuration prometheus.Histogram
}

func (m *MetricsProvider) IncEventsTotal(event string) {
	m.eventsTotal.WithLabelValues(event).Inc()
}

func (m *MetricsProvider) SetToday(messages, conversations int) {
	m.messagesToday.Set(float64(messages))
	m.conversationsToday.Set(float64(conversations))
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

// Flush writes the registry in text exposition format for a node-exporter
// textfile collector. Nothing is written without a configured path.
func (m *MetricsProvider) Flush() error {
	if m.textfile == "" {
		return nil
	}
	return prometheus.WriteToTextfile(m.textfile, m.registry)
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &MetricsProvider{
		registry: reg,
		textfile: conf.Metrics.Textfile,

		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ticketcounter_events_total",
			Help: "Activity events handled, by outcome",
		}, []string{"event"}),

		messagesToday: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ticketcounter_messages_today",
			Help: "Messages logged for the current day",
		}),

		conversationsToday: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ticketcounter_conversations_today",
			Help: "Unique ticket links logged for the current day",
		}),

		persistenceDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ticketcounter_persistence_duration_seconds",
			Help:    "Duration of document saves in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "ticketcounter_message_goal",
		Help: "Configured daily message goal",
	}, func() float64 {
		return float64(conf.Goals.Messages)
	})

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "ticketcounter_conversation_goal",
		Help: "Configured daily conversation goal",
	}, func() float64 {
		return float64(conf.Goals.Conversations)
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncEventsTotal(_ string)                    {}
func (n *noopMetrics) SetToday(_, _ int)                          {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration) {}
func (n *noopMetrics) Flush() error                               { return nil }
