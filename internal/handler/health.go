package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type HealthHandler struct {
	pool    *pgxpool.Pool
	rdb     *redis.Client
	startAt time.Time
}

func NewHealthHandler(pool *pgxpool.Pool, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{
		pool:    pool,
		rdb:     rdb,
		startAt: time.Now(),
	}
}

type dependencyCheck struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Live handles GET /health/live, the liveness probe.
func (h *HealthHandler) Live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready handles GET /health/ready, the readiness probe with dependency checks.
// Redis is optional, so a missing cache only degrades, never fails, the
// service.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	dbCheck := h.checkDB(ctx)
	redisCheck := h.checkRedis(ctx)

	overall := "healthy"
	if dbCheck.Status == "down" || redisCheck.Status == "down" {
		overall = "degraded"
	}

	status := fiber.StatusOK
	if overall != "healthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"checks": fiber.Map{
			"database": dbCheck,
			"redis":    redisCheck,
		},
		"uptime_seconds": int(time.Since(h.startAt).Seconds()),
	})
}

func (h *HealthHandler) checkDB(ctx context.Context) dependencyCheck {
	start := time.Now()
	err := h.pool.Ping(ctx)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return dependencyCheck{Status: "down", LatencyMS: latency, Error: "connection failed"}
	}
	return dependencyCheck{Status: "up", LatencyMS: latency}
}

func (h *HealthHandler) checkRedis(ctx context.Context) dependencyCheck {
	if h.rdb == nil {
		return dependencyCheck{Status: "disabled"}
	}

	start := time.Now()
	err := h.rdb.Ping(ctx).Err()
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return dependencyCheck{Status: "down", LatencyMS: latency, Error: "connection failed"}
	}
	return dependencyCheck{Status: "up", LatencyMS: latency}
}
