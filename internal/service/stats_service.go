package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kidslearn_backend/internal/model"
	"kidslearn_backend/internal/repository"
	"kidslearn_backend/internal/scoring"
	"kidslearn_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const statsCacheTTL = 5 * time.Minute

type StatsSource string

const (
	SourcePackage StatsSource = "package"
	SourceLegacy  StatsSource = "legacy"
)

// StatsService aggregates correct/incorrect counts across the two storage
// shapes and both subjects. Combined results are cached in Redis with a
// short TTL and invalidated on submission; any cache failure falls back to
// the database.
type StatsService struct {
	StatsRepo *repository.StatsRepository
	Redis     *redis.Client
}

func NewStatsService(statsRepo *repository.StatsRepository, rdb *redis.Client) *StatsService {
	return &StatsService{StatsRepo: statsRepo, Redis: rdb}
}

// Aggregate scans one storage shape for one subject.
func (s *StatsService) Aggregate(childID uint, subject model.Subject, source StatsSource, period scoring.Period) (model.SubjectStats, error) {
	cutoff := cutoffPtr(period)
	switch source {
	case SourcePackage:
		return s.StatsRepo.PackageStats(childID, subject, cutoff)
	case SourceLegacy:
		return s.StatsRepo.LegacyStats(childID, subject, cutoff)
	}
	return model.SubjectStats{}, fmt.Errorf("unknown stats source %q", source)
}

// AggregateByDate is the per-calendar-date variant; dates without activity
// are omitted.
func (s *StatsService) AggregateByDate(childID uint, subject model.Subject, source StatsSource, period scoring.Period) ([]model.DailyStats, error) {
	cutoff := cutoffPtr(period)
	switch source {
	case SourcePackage:
		return s.StatsRepo.PackageDaily(childID, subject, cutoff)
	case SourceLegacy:
		return s.StatsRepo.LegacyDaily(childID, subject, cutoff)
	}
	return nil, fmt.Errorf("unknown stats source %q", source)
}

// Combined merges both sources for both subjects by field-wise sum: the two
// shapes belong to the same assignment timeline, they just live in
// different tables.
func (s *StatsService) Combined(childID uint, period scoring.Period) (*model.CombinedStats, error) {
	ctx := context.Background()
	key := fmt.Sprintf("stats:child:%d:combined:%s", childID, period)

	if val, err := s.Redis.Get(ctx, key).Result(); err == nil {
		var cached model.CombinedStats
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return &cached, nil
		}
	} else if err != redis.Nil {
		logger.Log.Warn("stats cache read failed", zap.Error(err))
	}

	out := &model.CombinedStats{}
	for _, subject := range []model.Subject{model.SubjectMath, model.SubjectReading} {
		pkg, err := s.Aggregate(childID, subject, SourcePackage, period)
		if err != nil {
			return nil, err
		}
		legacy, err := s.Aggregate(childID, subject, SourceLegacy, period)
		if err != nil {
			return nil, err
		}
		merged := scoring.MergeStats(pkg, legacy)
		if subject == model.SubjectMath {
			out.Math = merged
		} else {
			out.Reading = merged
		}
	}

	if b, err := json.Marshal(out); err == nil {
		if err := s.Redis.Set(ctx, key, b, statsCacheTTL).Err(); err != nil {
			logger.Log.Warn("stats cache write failed", zap.Error(err))
		}
	}
	return out, nil
}

// CombinedByDate merges both sources' by-date series per subject, summing
// same-date buckets.
func (s *StatsService) CombinedByDate(childID uint, subject model.Subject, period scoring.Period) ([]model.DailyStats, error) {
	pkg, err := s.AggregateByDate(childID, subject, SourcePackage, period)
	if err != nil {
		return nil, err
	}
	legacy, err := s.AggregateByDate(childID, subject, SourceLegacy, period)
	if err != nil {
		return nil, err
	}
	return scoring.MergeDaily(pkg, legacy), nil
}

func cutoffPtr(period scoring.Period) *time.Time {
	if c, ok := period.Cutoff(time.Now()); ok {
		return &c
	}
	return nil
}
