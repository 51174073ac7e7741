package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// QuoteMetrics records quote submissions and contact-form lead forwards.
type QuoteMetrics struct {
	submissionDuration *prometheus.HistogramVec
	submissions        *prometheus.CounterVec
	leads              *prometheus.CounterVec
}

// NewQuoteMetrics registers the quote metrics on the provided registerer.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		return &QuoteMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quote_submission_duration_seconds",
		Help:    "Duration of quote submissions to the bookings API in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_submissions_total",
		Help: "Quote submissions by outcome.",
	}, []string{"outcome"})
	leads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lead_forwards_total",
		Help: "Contact-form lead forwards by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(duration, submissions, leads)
	return &QuoteMetrics{
		submissionDuration: duration,
		submissions:        submissions,
		leads:              leads,
	}
}

// ObserveSubmission records one submission attempt with its duration.
func (q *QuoteMetrics) ObserveSubmission(outcome string, duration time.Duration) {
	if q == nil {
		return
	}
	label := normalizeLabel(outcome)
	if q.submissions != nil {
		q.submissions.WithLabelValues(label).Inc()
	}
	if q.submissionDuration != nil {
		q.submissionDuration.WithLabelValues(label).Observe(duration.Seconds())
	}
}

// IncLeadForward increments the lead-forward counter for the outcome.
func (q *QuoteMetrics) IncLeadForward(outcome string) {
	if q == nil || q.leads == nil {
		return
	}
	q.leads.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func normalizeLabel(outcome string) string {
	if outcome == "" {
		return "unknown"
	}
	return outcome
}
