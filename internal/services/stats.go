package services

import (
	"context"
	"time"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/models"
)

// Cache keys and TTLs for the stats endpoints.
const (
	globalStatsCacheKey   = "stats:global"
	trendingCacheKey      = "stats:trending"
	globalStatsCacheTTL   = time.Minute
	trendingStatsCacheTTL = 5 * time.Minute

	topReadersLimit    = 10
	trendingBooksLimit = 20
)

// AnalyticsAggregator defines the aggregation queries behind the stats
// endpoints.
type AnalyticsAggregator interface {
	TopReaders(ctx context.Context, limit int64) ([]models.TopReader, error)
	ClubStats(ctx context.Context, clubID string) (*models.ClubStats, error)
	Trending(ctx context.Context, limit int64) ([]models.TrendingBook, error)
	Count(ctx context.Context) (int64, error)
}

// RecommendationCounter counts stored recommendations.
type RecommendationCounter interface {
	Count(ctx context.Context) (int64, error)
}

// StatsCacher caches serialized stats payloads.
type StatsCacher interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// StatsService serves the global, club and trending statistics. Global and
// trending results are cached; cache errors fall through to the store.
type StatsService struct {
	analytics       AnalyticsAggregator
	recommendations RecommendationCounter
	cache           StatsCacher
}

// NewStatsService creates a new StatsService.
func NewStatsService(analytics AnalyticsAggregator, recommendations RecommendationCounter, cache StatsCacher) *StatsService {
	return &StatsService{
		analytics:       analytics,
		recommendations: recommendations,
		cache:           cache,
	}
}

// Global returns platform-wide counts and the top-reader ranking.
func (s *StatsService) Global(ctx context.Context) (*models.GlobalStats, error) {
	if s.cache != nil {
		var cached models.GlobalStats
		if hit, err := s.cache.Get(ctx, globalStatsCacheKey, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	analyticsCount, err := s.analytics.Count(ctx)
	if err != nil {
		return nil, err
	}

	recommendationsCount, err := s.recommendations.Count(ctx)
	if err != nil {
		return nil, err
	}

	topReaders, err := s.analytics.TopReaders(ctx, topReadersLimit)
	if err != nil {
		return nil, err
	}

	stats := &models.GlobalStats{
		TotalAnalytics:       analyticsCount,
		TotalRecommendations: recommendationsCount,
		TopReaders:           topReaders,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, globalStatsCacheKey, stats, globalStatsCacheTTL); err != nil {
			logger.Log.Warnw("failed to cache global stats", "err", err)
		}
	}
	return stats, nil
}

// Club returns the aggregate statistics for one club.
func (s *StatsService) Club(ctx context.Context, clubID string) (*models.ClubStats, error) {
	return s.analytics.ClubStats(ctx, clubID)
}

// Trending returns the books with the most recent reader activity.
func (s *StatsService) Trending(ctx context.Context) ([]models.TrendingBook, error) {
	if s.cache != nil {
		var cached []models.TrendingBook
		if hit, err := s.cache.Get(ctx, trendingCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	trending, err := s.analytics.Trending(ctx, trendingBooksLimit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, trendingCacheKey, trending, trendingStatsCacheTTL); err != nil {
			logger.Log.Warnw("failed to cache trending stats", "err", err)
		}
	}
	return trending, nil
}
