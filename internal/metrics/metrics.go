// Package metrics exposes the application's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QuestionsTotal counts answered questions by handling agent.
	QuestionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eda",
		Subsystem: "orchestrator",
		Name:      "questions_total",
		Help:      "Answered questions by handling agent.",
	}, []string{"agent"})

	// IntentsTotal counts classification outcomes by resolved intent.
	IntentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eda",
		Subsystem: "classifier",
		Name:      "intents_total",
		Help:      "Classification outcomes by resolved intent.",
	}, []string{"intent"})

	// NarrativeFallbacks counts commentary calls that fell back to the
	// deterministic local copy.
	NarrativeFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "eda",
		Subsystem: "agents",
		Name:      "narrative_fallbacks_total",
		Help:      "Commentary calls answered with local fallback copy.",
	})

	// CollaboratorLatency observes narrative collaborator round-trip time.
	CollaboratorLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "eda",
		Subsystem: "agents",
		Name:      "collaborator_latency_seconds",
		Help:      "Narrative collaborator round-trip latency.",
		Buckets:   prometheus.DefBuckets,
	})
)
