package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "nutrition_booking"

// Reservation outcomes
const (
	OutcomeReserved = "reserved"
	OutcomeFull     = "full"
	OutcomeBlocked  = "blocked"
	OutcomeNotFound = "not_found"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics groups the collectors of the booking service. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	Reservations        *prometheus.CounterVec
	ReservationDuration prometheus.Histogram
	Transitions         *prometheus.CounterVec
	SlotsGenerated      *prometheus.CounterVec
	NotificationsQueued *prometheus.CounterVec
	HTTPRequests        *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Reservations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_total",
			Help:      "Reservation attempts by outcome.",
		}, []string{"outcome"}),
		ReservationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reservation_duration_seconds",
			Help:      "Time spent holding the slot lock and reservation transaction.",
			Buckets:   prometheus.DefBuckets,
		}),
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointment_transitions_total",
			Help:      "Appointment status transitions.",
		}, []string{"from", "to"}),
		SlotsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slots_generated_total",
			Help:      "Slots produced by bulk generation by result.",
		}, []string{"result"}),
		NotificationsQueued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Appointment events handed to the dispatcher by result.",
		}, []string{"result"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		m.Reservations,
		m.ReservationDuration,
		m.Transitions,
		m.SlotsGenerated,
		m.NotificationsQueued,
		m.HTTPRequests,
		m.HTTPDuration,
	)
	return m
}

func (m *Metrics) ObserveReservation(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.Reservations.WithLabelValues(outcome).Inc()
	m.ReservationDuration.Observe(seconds)
}

func (m *Metrics) ObserveTransition(from, to string) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) ObserveGenerated(created, duplicates int) {
	if m == nil {
		return
	}
	m.SlotsGenerated.WithLabelValues("created").Add(float64(created))
	m.SlotsGenerated.WithLabelValues("duplicate").Add(float64(duplicates))
}

func (m *Metrics) ObserveNotification(result string) {
	if m == nil {
		return
	}
	m.NotificationsQueued.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveHTTP(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(seconds)
}
