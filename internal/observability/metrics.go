// Package observability holds application-level Prometheus metrics. HTTP
// request metrics come from the fiberprometheus middleware; the collectors
// here cover the Redis-backed collaborators.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ladle_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// CacheLookups counts cache-aside lookups by result (hit or miss).
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ladle_cache_lookups_total",
		Help: "Total number of cache-aside lookups by result",
	}, []string{"result"})

	// SessionsIssued counts sessions created through signup and login.
	SessionsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ladle_sessions_issued_total",
		Help: "Total number of sessions issued",
	})
)
