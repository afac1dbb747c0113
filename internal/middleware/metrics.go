package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fritter_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// ReactionsRecorded counts reaction mutations by kind and direction.
	ReactionsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fritter_reactions_recorded_total",
		Help: "Total reaction mutations by kind (like/dislike) and op (add/remove)",
	}, []string{"kind", "op"})

	// ConsensusTransitions counts freets crossing the consensus-filter
	// threshold in either direction.
	ConsensusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fritter_consensus_transitions_total",
		Help: "Total consensus-filter flag transitions by direction (hidden/restored)",
	}, []string{"direction"})

	// FreetsPublished counts published freets.
	FreetsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fritter_freets_published_total",
		Help: "Total freets published",
	})
)

// InitMetrics creates the Prometheus middleware for the Fiber app.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the fiberprometheus request middleware.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
