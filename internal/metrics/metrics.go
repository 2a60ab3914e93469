// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "renttrack"

var (
	// HTTPRequestsTotal counts served requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency, simulated delay included.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// AuthAttemptsTotal counts login attempts by outcome.
	AuthAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_attempts_total",
			Help:      "Total number of login attempts",
		},
		[]string{"outcome"},
	)

	// OCRJobsTotal counts finished OCR jobs by outcome.
	OCRJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ocr_jobs_total",
			Help:      "Total number of OCR jobs by outcome",
		},
		[]string{"outcome"},
	)

	// OCRJobsPending is the number of armed OCR timers.
	OCRJobsPending = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ocr_jobs_pending",
			Help:      "Number of OCR jobs waiting to complete",
		},
	)

	// EventsPublishedTotal counts domain events handed to the broker.
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Total number of domain events published",
		},
		[]string{"type", "result"},
	)
)

// OCR job outcomes.
const (
	OutcomeCompleted = "completed"
	OutcomeSkipped   = "skipped"
	OutcomeCancelled = "cancelled"
)

// RecordOCRJob increments the OCR outcome counter.
func RecordOCRJob(outcome string) {
	OCRJobsTotal.WithLabelValues(outcome).Inc()
}

// RecordAuthAttempt increments the login counter.
func RecordAuthAttempt(ok bool) {
	outcome := "failure"
	if ok {
		outcome = "success"
	}
	AuthAttemptsTotal.WithLabelValues(outcome).Inc()
}

// RecordEvent increments the published events counter.
func RecordEvent(eventType string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	EventsPublishedTotal.WithLabelValues(eventType, result).Inc()
}
