// Package metrics собирает Prometheus-метрики сервиса
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик бота и админ-панели
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	UpdatesTotal *prometheus.CounterVec

	BookingsCreated  prometheus.Counter
	BookingConflicts prometheus.Counter
	BookingFailures  prometheus.Counter
	PaymentLinks     prometheus.Counter
	PaymentFailures  prometheus.Counter
}

// New регистрирует метрики в дефолтном реестре Prometheus
func New(service string) *Metrics {
	labels := prometheus.Labels{"service": service}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of admin panel HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Admin panel HTTP request duration",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		UpdatesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "telegram_updates_total",
			Help:        "Total number of processed Telegram updates",
			ConstLabels: labels,
		}, []string{"kind"}),

		BookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of committed bookings",
			ConstLabels: labels,
		}),

		BookingConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_conflicts_total",
			Help:        "Total number of bookings rejected due to a kennel conflict",
			ConstLabels: labels,
		}),

		BookingFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_failures_total",
			Help:        "Total number of bookings lost to persistence errors",
			ConstLabels: labels,
		}),

		PaymentLinks: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "payment_links_created_total",
			Help:        "Total number of successfully created checkout sessions",
			ConstLabels: labels,
		}),

		PaymentFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "payment_link_failures_total",
			Help:        "Total number of failed checkout session creations",
			ConstLabels: labels,
		}),
	}
}
