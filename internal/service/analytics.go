package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const viewKeyPrefix = "secretboard:views:"

// AnalyticsService attributes feed views to tracking identifiers.
// Counters share the 24 hour lifetime of the tracking cookie and are
// best effort: callers log failures and move on.
type AnalyticsService struct {
	rdb *redis.Client
}

func NewAnalyticsService(redisClient *redis.Client) *AnalyticsService {
	return &AnalyticsService{
		rdb: redisClient,
	}
}

func (s *AnalyticsService) RecordView(ctx context.Context, trackingID string) error {
	if trackingID == "" {
		return nil
	}

	key := viewKeyPrefix + trackingID
	if err := s.rdb.Incr(ctx, key).Err(); err != nil {
		return errors.Wrap(err, "AnalyticsService.RecordView")
	}
	if err := s.rdb.Expire(ctx, key, 24*time.Hour).Err(); err != nil {
		return errors.Wrap(err, "AnalyticsService.RecordView")
	}
	return nil
}

func (s *AnalyticsService) Views(ctx context.Context, trackingID string) (int64, error) {
	count, err := s.rdb.Get(ctx, viewKeyPrefix+trackingID).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "AnalyticsService.Views")
	}
	return count, nil
}
