package service

import (
	"context"
	"time"

	"github.com/tubetools/tubetools-go/internal/model"
	"github.com/tubetools/tubetools-go/internal/repository"
)

// QuotaStore is the persistence the quota gate runs against. Gate must
// consume one unit atomically, declining without incrementing once the
// day's ceiling is reached.
type QuotaStore interface {
	Gate(ctx context.Context, day time.Time, ceiling int) (model.QuotaDecision, error)
	Usage(ctx context.Context, day time.Time) (int, error)
}

// exhaustionFlag is the cache-side short-circuit for exhausted days.
type exhaustionFlag interface {
	QuotaExhausted(ctx context.Context, day string) bool
	MarkQuotaExhausted(ctx context.Context, day string, ttl time.Duration)
}

// QuotaService enforces the daily ceiling on official API calls. The gate
// itself is one atomic statement in Postgres; Redis only short-circuits
// repeat denials after the day is exhausted.
type QuotaService struct {
	store   QuotaStore
	cache   exhaustionFlag
	ceiling int
	now     func() time.Time
}

func NewQuotaService(store QuotaStore, cache *CacheService, ceiling int) *QuotaService {
	s := &QuotaService{
		store:   store,
		ceiling: ceiling,
		now:     time.Now,
	}
	if cache != nil {
		s.cache = cache
	}
	return s
}

// Check consumes one quota unit if the ceiling permits.
func (s *QuotaService) Check(ctx context.Context) (model.QuotaDecision, error) {
	today := s.now().UTC()
	day := today.Format(repository.DateFormat)

	if s.cache != nil && s.cache.QuotaExhausted(ctx, day) {
		return model.QuotaDecision{Allowed: false, Remaining: 0}, nil
	}

	dec, err := s.store.Gate(ctx, today, s.ceiling)
	if err != nil {
		return model.QuotaDecision{}, err
	}

	if !dec.Allowed && s.cache != nil {
		s.cache.MarkQuotaExhausted(ctx, day, UntilMidnightUTC(today))
	}
	return dec, nil
}

// Usage reports today's consumption without consuming a unit.
func (s *QuotaService) Usage(ctx context.Context) (*model.UsageResponse, error) {
	today := s.now().UTC()
	count, err := s.store.Usage(ctx, today)
	if err != nil {
		return nil, err
	}

	remaining := s.ceiling - count
	if remaining < 0 {
		remaining = 0
	}
	return &model.UsageResponse{
		Date:      today.Format(repository.DateFormat),
		CallCount: count,
		Ceiling:   s.ceiling,
		Remaining: remaining,
	}, nil
}

// Ceiling returns the configured daily limit.
func (s *QuotaService) Ceiling() int {
	return s.ceiling
}

// UntilMidnightUTC returns the duration until the next UTC day boundary,
// when the exhaustion flag must lapse along with the counter's key.
func UntilMidnightUTC(now time.Time) time.Duration {
	now = now.UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
	return midnight.Sub(now)
}
