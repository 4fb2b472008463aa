package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	commandsProcessed  *prometheus.CounterVec
	commandDuration    prometheus.Histogram
	gatewayRequests    *prometheus.CounterVec
	gatewayDuration    prometheus.Histogram
	briefingsAssembled *prometheus.CounterVec
	authEventsTotal    *prometheus.CounterVec
	activeSessions     prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		commandsProcessed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "voice_commands_processed_total",
				Help: "Total number of voice commands processed",
			},
			[]string{"intent", "status"},
		),
		commandDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "voice_command_duration_milliseconds",
				Help:    "Voice command processing duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		gatewayRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_requests_total",
				Help: "Total number of spend-management API requests",
			},
			[]string{"operation", "status"},
		),
		gatewayDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gateway_request_duration_milliseconds",
				Help:    "Spend-management API request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		briefingsAssembled: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "news_briefings_assembled_total",
				Help: "Total number of news briefings assembled",
			},
			[]string{"status"},
		),
		authEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhook_auth_events_total",
				Help: "Total number of webhook authentication events",
			},
			[]string{"event_type"},
		),
		activeSessions: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_voice_sessions",
				Help: "Current number of active voice sessions",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "command.processed":
		m.commandsProcessed.WithLabelValues(tags["intent"], status).Inc()
	case "gateway.request":
		m.gatewayRequests.WithLabelValues(tags["operation"], status).Inc()
	case "briefing.assembled":
		if status != "" {
			m.briefingsAssembled.WithLabelValues(status).Inc()
		}
	case "auth.event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "command.processing":
		m.commandDuration.Observe(float64(duration.Milliseconds()))
	case "gateway.request":
		m.gatewayDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "active_sessions":
		m.activeSessions.Set(value)
	}
}
