package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tubetools/tubetools-go/internal/model"
)

// DateFormat is the day key used in api_usage_tracker.
const DateFormat = "2006-01-02"

type QuotaRepo struct {
	pool *pgxpool.Pool
}

func NewQuotaRepo(pool *pgxpool.Pool) *QuotaRepo {
	return &QuotaRepo{pool: pool}
}

// Gate atomically consumes one quota unit for the given day, provided the
// ceiling has not been reached. A single conditional upsert replaces the
// read-then-write pattern so concurrent callers can never push call_count
// past the ceiling: the conditional UPDATE declines (no row returned) once
// call_count has hit it.
func (r *QuotaRepo) Gate(ctx context.Context, day time.Time, ceiling int) (model.QuotaDecision, error) {
	const query = `
		INSERT INTO api_usage_tracker (date, call_count)
		VALUES ($1, 1)
		ON CONFLICT (date) DO UPDATE
		SET call_count = api_usage_tracker.call_count + 1
		WHERE api_usage_tracker.call_count < $2
		RETURNING call_count`

	var count int
	err := r.pool.QueryRow(ctx, query, day.UTC().Format(DateFormat), ceiling).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		// Conditional update declined: today's ceiling is exhausted.
		return model.QuotaDecision{Allowed: false, Remaining: 0}, nil
	}
	if err != nil {
		return model.QuotaDecision{}, fmt.Errorf("quota gate: %w", err)
	}

	remaining := ceiling - count
	if remaining < 0 {
		remaining = 0
	}
	return model.QuotaDecision{Allowed: true, Remaining: remaining}, nil
}

// Usage returns the consumed call count for the given day, zero when no
// record exists yet.
func (r *QuotaRepo) Usage(ctx context.Context, day time.Time) (int, error) {
	const query = `SELECT call_count FROM api_usage_tracker WHERE date = $1`

	var count int
	err := r.pool.QueryRow(ctx, query, day.UTC().Format(DateFormat)).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("quota usage: %w", err)
	}
	return count, nil
}
