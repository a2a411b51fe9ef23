package persistence

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/resume-studio/internal/domain/renderlog"
)

// RenderStatsKey is the Redis hash holding one counter per template:status.
const RenderStatsKey = "resume:renders"

const (
	seenKeyPrefix = RenderStatsKey + ":seen:"
	// seenTTL bounds how long a redelivered event is still recognised.
	seenTTL = 7 * 24 * time.Hour
)

type redisRenderStatsStore struct {
	rdb *redis.Client
}

func NewRedisRenderStatsStore(rdb *redis.Client) renderlog.StatsStore {
	return &redisRenderStatsStore{rdb: rdb}
}

// Increment counts e once per event id; redelivered events are no-ops.
func (s *redisRenderStatsStore) Increment(ctx context.Context, e *renderlog.Entry) error {
	seenKey := seenKeyPrefix + e.ID.String()
	first, err := s.rdb.SetNX(ctx, seenKey, 1, seenTTL).Result()
	if err != nil {
		return fmt.Errorf("mark event %s: %w", e.ID, err)
	}
	if !first {
		return nil
	}

	if err := s.rdb.HIncrBy(ctx, RenderStatsKey, e.CounterKey(), 1).Err(); err != nil {
		// Let a later redelivery try again.
		_ = s.rdb.Del(ctx, seenKey).Err()
		return fmt.Errorf("increment %s: %w", e.CounterKey(), err)
	}
	return nil
}

func (s *redisRenderStatsStore) Counts(ctx context.Context) (map[string]int64, error) {
	raw, err := s.rdb.HGetAll(ctx, RenderStatsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("read render counters: %w", err)
	}

	counts := make(map[string]int64, len(raw))
	for field, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("counter %s is not an integer: %w", field, err)
		}
		counts[field] = n
	}
	return counts, nil
}
