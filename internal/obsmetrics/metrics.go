// Package obsmetrics exposes the Prometheus counters and histogram that
// track extraction outcomes and latency. There is no processing logic
// here, only instrumentation, kept separate from the pipeline so the
// pipeline package stays a pure function of its inputs.
package obsmetrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome classifies how a single ExtractPlays call resolved.
type Outcome string

const (
	OutcomePrimary  Outcome = "primary"
	OutcomeFallback Outcome = "fallback"
	OutcomeEmpty    Outcome = "empty"
)

var (
	extractionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ticketvision",
		Name:      "extractions_total",
		Help:      "Total number of ExtractPlays calls, partitioned by outcome.",
	}, []string{"outcome"})

	extractionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ticketvision",
		Name:      "extraction_duration_seconds",
		Help:      "Wall-clock duration of a single ExtractPlays call.",
		Buckets:   prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(extractionsTotal, extractionDuration)
}

// StartTimer returns the instant a call began; pass it to ObserveExtraction
// when the call completes.
func StartTimer() time.Time {
	return time.Now()
}

// ObserveExtraction records one completed call against both metrics.
func ObserveExtraction(outcome Outcome, started time.Time) {
	extractionsTotal.WithLabelValues(string(outcome)).Inc()
	extractionDuration.Observe(time.Since(started).Seconds())
}

// Serve blocks, exposing the registered metrics on addr at /metrics via
// promhttp. Callers that want it running alongside extraction work start
// it in its own goroutine; addr is internal/config.Config's MetricsAddr.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
