package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters
var (
	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "healwave_generations_total",
		Help: "Total generation requests by signal kind and outcome",
	}, []string{"kind", "outcome"})
	EncodedBytesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "healwave_encoded_bytes_total",
		Help: "Total WAV bytes produced",
	})
)

// Histograms
var (
	GenerationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "healwave_generation_duration_seconds",
		Help:    "Wall time spent synthesizing and encoding, by signal kind",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"kind"})
)
