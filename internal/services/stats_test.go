package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookclubhq/bookclub-server/internal/models"
)

func TestStatsService_Global_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analytics := NewMockAnalyticsAggregator(ctrl)
	recommendations := NewMockRecommendationCounter(ctrl)
	cache := NewMockStatsCacher(ctrl)

	cache.EXPECT().Get(gomock.Any(), "stats:global", gomock.Any()).Return(false, nil)
	analytics.EXPECT().Count(gomock.Any()).Return(int64(120), nil)
	recommendations.EXPECT().Count(gomock.Any()).Return(int64(45), nil)
	analytics.EXPECT().TopReaders(gomock.Any(), int64(10)).Return([]models.TopReader{
		{UserID: "user-1", TotalReadingTime: 900, BooksRead: 5},
	}, nil)
	cache.EXPECT().Set(gomock.Any(), "stats:global", gomock.Any(), time.Minute).Return(nil)

	svc := NewStatsService(analytics, recommendations, cache)
	stats, err := svc.Global(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalAnalytics)
	assert.Equal(t, int64(45), stats.TotalRecommendations)
	require.Len(t, stats.TopReaders, 1)
	assert.Equal(t, "user-1", stats.TopReaders[0].UserID)
}

func TestStatsService_Global_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analytics := NewMockAnalyticsAggregator(ctrl)
	cache := NewMockStatsCacher(ctrl)

	cache.EXPECT().
		Get(gomock.Any(), "stats:global", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest any) (bool, error) {
			*dest.(*models.GlobalStats) = models.GlobalStats{TotalAnalytics: 99}
			return true, nil
		})

	svc := NewStatsService(analytics, NewMockRecommendationCounter(ctrl), cache)
	stats, err := svc.Global(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(99), stats.TotalAnalytics)
}

func TestStatsService_Global_CacheErrorFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analytics := NewMockAnalyticsAggregator(ctrl)
	recommendations := NewMockRecommendationCounter(ctrl)
	cache := NewMockStatsCacher(ctrl)

	cache.EXPECT().Get(gomock.Any(), "stats:global", gomock.Any()).Return(false, errors.New("redis down"))
	analytics.EXPECT().Count(gomock.Any()).Return(int64(1), nil)
	recommendations.EXPECT().Count(gomock.Any()).Return(int64(2), nil)
	analytics.EXPECT().TopReaders(gomock.Any(), int64(10)).Return(nil, nil)
	cache.EXPECT().Set(gomock.Any(), "stats:global", gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	svc := NewStatsService(analytics, recommendations, cache)
	stats, err := svc.Global(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalAnalytics)
}

func TestStatsService_Global_NilCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analytics := NewMockAnalyticsAggregator(ctrl)
	recommendations := NewMockRecommendationCounter(ctrl)

	analytics.EXPECT().Count(gomock.Any()).Return(int64(7), nil)
	recommendations.EXPECT().Count(gomock.Any()).Return(int64(3), nil)
	analytics.EXPECT().TopReaders(gomock.Any(), int64(10)).Return(nil, nil)

	svc := NewStatsService(analytics, recommendations, nil)
	stats, err := svc.Global(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.TotalAnalytics)
}

func TestStatsService_Club(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analytics := NewMockAnalyticsAggregator(ctrl)
	analytics.EXPECT().
		ClubStats(gomock.Any(), "club-1").
		Return(&models.ClubStats{TotalMembers: 8, TotalBooks: 3}, nil)

	svc := NewStatsService(analytics, NewMockRecommendationCounter(ctrl), nil)
	stats, err := svc.Club(context.Background(), "club-1")
	require.NoError(t, err)
	assert.Equal(t, int64(8), stats.TotalMembers)
}

func TestStatsService_Trending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analytics := NewMockAnalyticsAggregator(ctrl)
	cache := NewMockStatsCacher(ctrl)

	cache.EXPECT().Get(gomock.Any(), "stats:trending", gomock.Any()).Return(false, nil)
	analytics.EXPECT().
		Trending(gomock.Any(), int64(20)).
		Return([]models.TrendingBook{{BookID: "book-1", ReadersCount: 14, TrendingScore: 98}}, nil)
	cache.EXPECT().Set(gomock.Any(), "stats:trending", gomock.Any(), 5*time.Minute).Return(nil)

	svc := NewStatsService(analytics, NewMockRecommendationCounter(ctrl), cache)
	trending, err := svc.Trending(context.Background())
	require.NoError(t, err)
	require.Len(t, trending, 1)
	assert.Equal(t, "book-1", trending[0].BookID)

	cache.EXPECT().
		Get(gomock.Any(), "stats:trending", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest any) (bool, error) {
			*dest.(*[]models.TrendingBook) = trending
			return true, nil
		})
	cached, err := svc.Trending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, trending, cached)
}
