package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	initOnce sync.Once

	submissionsTotal   *prometheus.CounterVec
	notificationsTotal *prometheus.CounterVec
	verificationsTotal *prometheus.CounterVec
)

// Init registers metrics on the default Prometheus registry exactly once.
func Init() {
	initOnce.Do(func() {
		submissionsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contact_submissions_total",
				Help: "Total number of contact submissions by outcome.",
			},
			[]string{"outcome"},
		)

		notificationsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contact_notifications_total",
				Help: "Total number of outbound email dispatches by kind and outcome.",
			},
			[]string{"kind", "outcome"},
		)

		verificationsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contact_verifications_total",
				Help: "Total number of recorded verification updates by status.",
			},
			[]string{"status"},
		)

		prometheus.MustRegister(
			submissionsTotal,
			notificationsTotal,
			verificationsTotal,
		)

		// Ensure counter vectors are visible at /metrics before first increment.
		submissionsTotal.WithLabelValues("accepted")
		for _, kind := range []string{"inquiry", "verification", "subscription"} {
			notificationsTotal.WithLabelValues(kind, "success")
			notificationsTotal.WithLabelValues(kind, "failure")
		}
	})
}

func IncSubmission(outcome string) {
	Init()
	submissionsTotal.WithLabelValues(outcome).Inc()
}

func IncNotification(kind, outcome string) {
	Init()
	notificationsTotal.WithLabelValues(kind, outcome).Inc()
}

func IncVerification(status string) {
	Init()
	verificationsTotal.WithLabelValues(status).Inc()
}
