// Package metrics holds the Prometheus instruments for the assistant.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	DocumentsIndexedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "assistant",
			Name:      "documents_indexed_total",
			Help:      "Documents processed by the indexing pipeline",
		},
		[]string{"result"}, // "indexed" / "skipped" / "error"
	)

	ChunksIndexedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "assistant",
			Name:      "chunks_indexed_total",
			Help:      "Chunks upserted into the search index",
		},
	)

	IndexingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "assistant",
			Name:      "indexing_duration_seconds",
			Help:      "Per-document indexing duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "assistant",
			Name:      "queries_total",
			Help:      "Answer queries served",
		},
		[]string{"result"}, // "answered" / "no_info" / "error"
	)

	QueryDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "assistant",
			Name:      "query_duration_seconds",
			Help:      "End-to-end answer latency in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	DocumentsDeletedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "assistant",
			Name:      "documents_deleted_total",
			Help:      "Document deletions by outcome",
		},
		[]string{"result"}, // "success" / "partial" / "error"
	)
)

var registered bool

// Register registers the assistant metrics with the default registry. Must
// be called once from main.
func Register() {
	if registered {
		return
	}
	prometheus.MustRegister(DocumentsIndexedTotal)
	prometheus.MustRegister(ChunksIndexedTotal)
	prometheus.MustRegister(IndexingDuration)
	prometheus.MustRegister(QueriesTotal)
	prometheus.MustRegister(QueryDuration)
	prometheus.MustRegister(DocumentsDeletedTotal)
	registered = true
}
