// Package metrics holds the process-wide prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChainReadFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "foodtrace",
		Name:      "chain_read_failures_total",
		Help:      "Contract reads that failed and were reported as unavailable.",
	}, []string{"op"})

	LocalStoreFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "foodtrace",
		Name:      "local_store_failures_total",
		Help:      "Local store reads or writes that failed and were swallowed.",
	}, []string{"op"})

	ReviewsAdded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "foodtrace",
		Name:      "reviews_added_total",
		Help:      "Entries appended to a local journal.",
	}, []string{"kind"})

	IndexedBatchEvents = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "foodtrace",
		Name:      "indexed_batch_events_total",
		Help:      "BatchEventLog entries persisted by the indexer.",
	})
)
