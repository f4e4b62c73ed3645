// Package observability provides Prometheus collectors and OpenTelemetry tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gamerforum_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// CacheResults counts cache-aside lookups by key prefix and outcome (hit/miss).
	CacheResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gamerforum_cache_results_total",
		Help: "Cache-aside lookup outcomes by key prefix",
	}, []string{"prefix", "outcome"})

	// CascadeDeleteDuration records the latency of cascading delete transactions by root entity.
	CascadeDeleteDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gamerforum_cascade_delete_duration_seconds",
		Help:    "Duration of cascading delete transactions",
		Buckets: prometheus.DefBuckets,
	}, []string{"root"})

	// CascadeDeletedRows counts rows removed by cascading deletes, per entity level.
	CascadeDeletedRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gamerforum_cascade_deleted_rows_total",
		Help: "Rows removed by cascading deletes, by entity",
	}, []string{"entity"})

	// VoteUpserts counts vote casts by direction.
	VoteUpserts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gamerforum_vote_upserts_total",
		Help: "Vote casts by direction",
	}, []string{"type"})
)

// ObserveCascadeDelete records one completed cascade transaction.
func ObserveCascadeDelete(root string, start time.Time) {
	CascadeDeleteDuration.WithLabelValues(root).Observe(time.Since(start).Seconds())
}
