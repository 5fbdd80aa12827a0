package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	venueOccupancy = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "venue_occupancy_current",
			Help: "Current occupant count per venue",
		},
		[]string{"venue_id"},
	)

	venueCapacityMax = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "venue_capacity_maximum",
			Help: "Configured maximum capacity per venue",
		},
		[]string{"venue_id"},
	)

	admissionOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admission_operations_total",
			Help: "Check-in and check-out operations by outcome",
		},
		[]string{"operation", "venue_id", "outcome"},
	)

	redemptionOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redemption_operations_total",
			Help: "Ticket redemption attempts by outcome",
		},
		[]string{"outcome"},
	)

	crowdTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crowd_level_transitions_total",
			Help: "Crowd level boundary crossings per venue",
		},
		[]string{"venue_id", "to_level"},
	)

	capacityFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "capacity_fetch_duration_seconds",
			Help:    "Duration of remote capacity fetches",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
		},
		[]string{"status"},
	)
)

type Monitor struct{}

func NewMonitor() *Monitor {
	return &Monitor{}
}

func (m *Monitor) TrackOccupancy(venueID string, current, maximum int) {
	venueOccupancy.WithLabelValues(venueID).Set(float64(current))
	venueCapacityMax.WithLabelValues(venueID).Set(float64(maximum))
}

func (m *Monitor) TrackAdmission(operation, venueID, outcome string) {
	admissionOperations.WithLabelValues(operation, venueID, outcome).Inc()
}

func (m *Monitor) TrackRedemption(outcome string) {
	redemptionOperations.WithLabelValues(outcome).Inc()
}

func (m *Monitor) TrackCrowdTransition(venueID, toLevel string) {
	crowdTransitions.WithLabelValues(venueID, toLevel).Inc()
}

func (m *Monitor) TrackCapacityFetch(status string, duration time.Duration) {
	capacityFetchDuration.WithLabelValues(status).Observe(duration.Seconds())
}
