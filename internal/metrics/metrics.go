package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bike_service",
			Name:      "bookings_created_total",
			Help:      "Bookings accepted past validation and capacity checks.",
		},
	)

	assignments = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bike_service",
			Name:      "assignments_total",
			Help:      "Successful mechanic-to-booking assignments.",
		},
	)

	statusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bike_service",
			Name:      "status_transitions_total",
			Help:      "Booking status transitions by target status.",
		},
		[]string{"status"},
	)

	notificationJobs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bike_service",
			Name:      "notification_jobs_total",
			Help:      "Notification jobs by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingsCreated, assignments, statusTransitions, notificationJobs)
	})
}

func IncBookingCreated() {
	bookingsCreated.Inc()
}

func IncAssignment() {
	assignments.Inc()
}

func IncStatusTransition(status string) {
	statusTransitions.WithLabelValues(status).Inc()
}

func IncNotificationJob(kind, outcome string) {
	notificationJobs.WithLabelValues(kind, outcome).Inc()
}
