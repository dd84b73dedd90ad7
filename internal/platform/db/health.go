package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthStatus reports the outcome of a database connectivity probe.
type HealthStatus struct {
	Healthy bool          `json:"healthy"`
	Latency time.Duration `json:"latency_ns"`
	Error   string        `json:"error,omitempty"`
}

// CheckHealth pings the database and measures round-trip latency.
func CheckHealth(ctx context.Context, pool *pgxpool.Pool) HealthStatus {
	start := time.Now()
	if err := pool.Ping(ctx); err != nil {
		return HealthStatus{Healthy: false, Latency: time.Since(start), Error: err.Error()}
	}
	return HealthStatus{Healthy: true, Latency: time.Since(start)}
}
