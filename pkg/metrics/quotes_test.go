package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveSubmissionCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewQuoteMetrics(reg)

	m.ObserveSubmission("success", 120*time.Millisecond)
	m.ObserveSubmission("success", 80*time.Millisecond)
	m.ObserveSubmission("transport_failed", time.Second)

	if got := testutil.ToFloat64(m.submissions.WithLabelValues("success")); got != 2 {
		t.Fatalf("expected 2 successful submissions, got %v", got)
	}
	if got := testutil.ToFloat64(m.submissions.WithLabelValues("transport_failed")); got != 1 {
		t.Fatalf("expected 1 failed submission, got %v", got)
	}
}

func TestIncLeadForwardNormalizesLabel(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewQuoteMetrics(reg)

	m.IncLeadForward("")

	if got := testutil.ToFloat64(m.leads.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("expected unknown label to be counted, got %v", got)
	}
}

func TestNilRegistererAndReceiverAreSafe(t *testing.T) {
	m := NewQuoteMetrics(nil)
	m.ObserveSubmission("success", time.Second)
	m.IncLeadForward("success")

	var nilMetrics *QuoteMetrics
	nilMetrics.ObserveSubmission("success", time.Second)
	nilMetrics.IncLeadForward("success")
}
