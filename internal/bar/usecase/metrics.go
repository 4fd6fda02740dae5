package usecase

import (
	"go.opentelemetry.io/otel/metric"
)

type metrics struct {
	chats       metric.Int64Counter
	orders      metric.Int64Counter
	llmFailures metric.Int64Counter
	chatLatency metric.Float64Histogram
	llmLatency  metric.Float64Histogram
}

// newMetrics registers the bar instruments. Registration errors fall back to no-op instruments.
func newMetrics(meter metric.Meter) metrics {
	var m metrics
	m.chats, _ = meter.Int64Counter("bar_chat_requests_total",
		metric.WithDescription("Chat messages handled, by resolved intent"))
	m.orders, _ = meter.Int64Counter("bar_orders_total",
		metric.WithDescription("Pour plans attempted, by recipe and result"))
	m.llmFailures, _ = meter.Int64Counter("bar_llm_failures_total",
		metric.WithDescription("Chat turns that failed at the language model"))
	m.chatLatency, _ = meter.Float64Histogram("bar_chat_duration_seconds",
		metric.WithDescription("End-to-end chat latency"), metric.WithUnit("s"))
	m.llmLatency, _ = meter.Float64Histogram("bar_llm_duration_seconds",
		metric.WithDescription("Language model latency"), metric.WithUnit("s"))
	return m
}
