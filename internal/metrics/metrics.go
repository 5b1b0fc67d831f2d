package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rephrase_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// ParaphraseDuration tracks end-to-end paraphrase latency by outcome
	// (success, failure, fault).
	ParaphraseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rephrase_paraphrase_duration_seconds",
		Help:    "Time spent producing a paraphrase.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"outcome"})

	// InputChars tracks the distribution of trimmed input text lengths.
	InputChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "rephrase_input_chars",
		Help:    "Number of characters in paraphrase input text.",
		Buckets: []float64{10, 50, 100, 250, 500, 1000, 2500, 5000},
	})

	// RemoteResponses counts inference API responses by status code, or
	// "transport_error" when no response arrived.
	RemoteResponses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rephrase_remote_responses_total",
		Help: "Inference API responses by status code.",
	}, []string{"status"})

	// RemoteDuration tracks the inference API round trip.
	RemoteDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "rephrase_remote_duration_seconds",
		Help:    "Inference API round-trip time.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	})
)
