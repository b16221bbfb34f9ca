package metrics

import (
	"strconv"

	"github.com/Dhoini/Storefront-gateway/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Исходы исходящих вызовов к Stripe
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// GatewayMetrics интерфейс для метрик шлюза
type GatewayMetrics interface {
	IncUpstreamCall(operation, outcome string)
	IncFallbackServed()
	IncCheckoutSessionCreated()
	ObserveRequestDuration(method, path string, status int, seconds float64)
}

type gatewayMetrics struct {
	log              *logger.Logger
	upstreamCalls    *prometheus.CounterVec
	fallbackServed   prometheus.Counter
	checkoutSessions prometheus.Counter
	requestDuration  *prometheus.HistogramVec
}

// NewGatewayMetrics создает новые метрики шлюза
func NewGatewayMetrics(registry *prometheus.Registry, log *logger.Logger) GatewayMetrics {
	upstreamCalls := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_upstream_calls_total",
			Help: "The total number of Stripe API calls by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	fallbackServed := promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_catalog_fallback_total",
			Help: "The total number of times the static catalog fallback was served",
		},
	)

	checkoutSessions := promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_checkout_sessions_total",
			Help: "The total number of created checkout sessions",
		},
	)

	requestDuration := promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_seconds",
			Help:    "HTTP request latency distribution",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	return &gatewayMetrics{
		log:              log,
		upstreamCalls:    upstreamCalls,
		fallbackServed:   fallbackServed,
		checkoutSessions: checkoutSessions,
		requestDuration:  requestDuration,
	}
}

// IncUpstreamCall увеличивает счетчик вызовов Stripe API
func (m *gatewayMetrics) IncUpstreamCall(operation, outcome string) {
	m.upstreamCalls.WithLabelValues(operation, outcome).Inc()
}

// IncFallbackServed увеличивает счетчик отдач статического каталога
func (m *gatewayMetrics) IncFallbackServed() {
	m.fallbackServed.Inc()
}

// IncCheckoutSessionCreated увеличивает счетчик созданных checkout-сессий
func (m *gatewayMetrics) IncCheckoutSessionCreated() {
	m.checkoutSessions.Inc()
}

// ObserveRequestDuration записывает длительность HTTP запроса
func (m *gatewayMetrics) ObserveRequestDuration(method, path string, status int, seconds float64) {
	m.requestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(seconds)
}
