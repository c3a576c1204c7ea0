package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	paymentClaims = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_claims_total",
			Help: "Total payment claims submitted by buyers",
		},
	)

	bookingsConfirmed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_confirmed_total",
			Help: "Total bookings reaching the confirmed state",
		},
	)

	bookingFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_failures_total",
			Help: "Booking flow failures per stage",
		},
		[]string{"stage"},
	)

	unreconciledClaims = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "unreconciled_claims_total",
			Help: "Payment claims flagged for manual reconciliation",
		},
	)
)

func ObserveHTTPRequest(method, path, status string, elapsed time.Duration) {
	httpRequestDuration.WithLabelValues(method, path, status).Observe(elapsed.Seconds())
}

func IncPaymentClaims() {
	paymentClaims.Inc()
}

func IncBookingsConfirmed() {
	bookingsConfirmed.Inc()
}

func IncBookingFailures(stage string) {
	bookingFailures.WithLabelValues(stage).Inc()
}

func IncUnreconciledClaims() {
	unreconciledClaims.Inc()
}

// StartMetricsServer exposes /metrics on its own listener, away from the
// buyer-facing fiber app.
func StartMetricsServer(port string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(":"+port, mux)
}
