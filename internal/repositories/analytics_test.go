package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/bookclubhq/bookclub-server/internal/models"
)

func TestAnalyticsRepository_Upsert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns updated document", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "user_id", Value: "user-1"},
			{Key: "club_id", Value: "club-1"},
			{Key: "book_id", Value: "book-1"},
			{Key: "reading_speed", Value: 20.0},
			{Key: "completion_rate", Value: 40.0},
			{Key: "sessions_count", Value: int64(3)},
		}}))

		repo := &AnalyticsRepository{col: mt.Coll}
		doc, err := repo.Upsert(context.Background(), "user-1", "club-1", "book-1", models.SessionMetrics{
			ReadingSpeed:   20,
			CompletionRate: 40,
		})
		assert.NoError(t, err)
		assert.NotNil(t, doc)
		assert.Equal(t, "user-1", doc.UserID)
		assert.Equal(t, int64(3), doc.SessionsCount)
	})
}

func TestAnalyticsRepository_ListByUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("two records", func(mt *mtest.T) {
		first := mtest.CreateCursorResponse(1, "testdb.reading_analytics", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "user_id", Value: "user-1"},
			{Key: "book_id", Value: "book-1"},
		})
		second := mtest.CreateCursorResponse(1, "testdb.reading_analytics", mtest.NextBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "user_id", Value: "user-1"},
			{Key: "book_id", Value: "book-2"},
		})
		killCursors := mtest.CreateCursorResponse(0, "testdb.reading_analytics", mtest.NextBatch)
		mt.AddMockResponses(first, second, killCursors)

		repo := &AnalyticsRepository{col: mt.Coll}
		docs, err := repo.ListByUser(context.Background(), "user-1", "")
		assert.NoError(t, err)
		assert.Len(t, docs, 2)
		assert.Equal(t, "book-1", docs[0].BookID)
	})
}

func TestAnalyticsRepository_UserSummary(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("aggregated totals", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "testdb.reading_analytics", mtest.FirstBatch, bson.D{
			{Key: "total_books", Value: int64(4)},
			{Key: "avg_reading_speed", Value: 18.5},
			{Key: "avg_completion_rate", Value: 62.0},
			{Key: "total_reading_time", Value: 900.0},
			{Key: "total_sessions", Value: int64(21)},
		}))

		repo := &AnalyticsRepository{col: mt.Coll}
		summary, err := repo.UserSummary(context.Background(), "user-1")
		assert.NoError(t, err)
		assert.Equal(t, int64(4), summary.TotalBooks)
		assert.Equal(t, int64(21), summary.TotalSessions)
	})

	mt.Run("no rows gives zero summary", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "testdb.reading_analytics", mtest.FirstBatch))

		repo := &AnalyticsRepository{col: mt.Coll}
		summary, err := repo.UserSummary(context.Background(), "user-1")
		assert.NoError(t, err)
		assert.Equal(t, &models.AnalyticsSummary{}, summary)
	})
}

func TestAnalyticsRepository_TopReaders(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ranks are assigned in order", func(mt *mtest.T) {
		first := mtest.CreateCursorResponse(1, "testdb.reading_analytics", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "user-1"},
			{Key: "total_reading_time", Value: 900.0},
			{Key: "books_read", Value: int64(5)},
		})
		second := mtest.CreateCursorResponse(1, "testdb.reading_analytics", mtest.NextBatch, bson.D{
			{Key: "_id", Value: "user-2"},
			{Key: "total_reading_time", Value: 700.0},
			{Key: "books_read", Value: int64(3)},
		})
		killCursors := mtest.CreateCursorResponse(0, "testdb.reading_analytics", mtest.NextBatch)
		mt.AddMockResponses(first, second, killCursors)

		repo := &AnalyticsRepository{col: mt.Coll}
		readers, err := repo.TopReaders(context.Background(), 10)
		assert.NoError(t, err)
		assert.Len(t, readers, 2)
		assert.Equal(t, 1, readers[0].Rank)
		assert.Equal(t, "user-1", readers[0].UserID)
		assert.Equal(t, 2, readers[1].Rank)
	})
}
