package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_http_requests_total",
			Help: "Total HTTP requests by method, path and status",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "booking_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	AppointmentsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_appointments_created_total",
			Help: "Appointments successfully booked",
		},
	)

	AppointmentsCanceled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_appointments_canceled_total",
			Help: "Appointments canceled through the public endpoint",
		},
	)

	SlotConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_slot_conflicts_total",
			Help: "Booking attempts rejected because the slot was taken",
		},
	)

	RemindersSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_reminders_sent_total",
			Help: "Reminder jobs enqueued by the worker",
		},
	)
)
