package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/models"
)

const analyticsCollection = "reading_analytics"

// trendingWindow bounds the activity window for the trending ranking.
const trendingWindow = 30 * 24 * time.Hour

// AnalyticsRepository stores per-user reading statistics and runs the
// aggregation pipelines behind the summary and stats endpoints.
type AnalyticsRepository struct {
	col *mongo.Collection
}

func NewAnalyticsRepository(db *mongo.Database) *AnalyticsRepository {
	return &AnalyticsRepository{col: db.Collection(analyticsCollection)}
}

// EnsureAnalyticsIndexes creates the compound unique index over the
// (user, club, book) triple plus the lookup indexes.
func EnsureAnalyticsIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(analyticsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "club_id", Value: 1},
				{Key: "book_id", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "book_id", Value: 1}}},
		{Keys: bson.D{{Key: "last_activity", Value: -1}}},
	})
	return err
}

// Upsert updates the analytics record keyed by the (user, club, book)
// triple, creating it when absent. Each call increments sessions_count by
// one; the increment is atomic in the store, so concurrent sessions never
// produce duplicate rows.
func (r *AnalyticsRepository) Upsert(ctx context.Context, userID, clubID, bookID string, metrics models.SessionMetrics) (*models.ReadingAnalytics, error) {
	now := time.Now()

	filter := bson.M{"user_id": userID, "club_id": clubID, "book_id": bookID}
	update := bson.M{
		"$set": bson.M{
			"reading_speed":        metrics.ReadingSpeed,
			"avg_session_duration": metrics.AvgSessionDuration,
			"total_reading_time":   metrics.TotalReadingTime,
			"completion_rate":      metrics.CompletionRate,
			"last_activity":        now,
			"updated_at":           now,
		},
		"$inc":         bson.M{"sessions_count": 1},
		"$setOnInsert": bson.M{"created_at": now},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc models.ReadingAnalytics
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		logger.Log.Errorw("analytics upsert failed",
			"user_id", userID, "club_id", clubID, "book_id", bookID, "err", err)
		return nil, err
	}
	return &doc, nil
}

// ListByUser returns up to 50 analytics records for a user, most recent
// activity first. clubID narrows the result when non-empty.
func (r *AnalyticsRepository) ListByUser(ctx context.Context, userID, clubID string) ([]models.ReadingAnalytics, error) {
	filter := bson.M{"user_id": userID}
	if clubID != "" {
		filter["club_id"] = clubID
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "last_activity", Value: -1}}).
		SetLimit(50)

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		logger.Log.Errorw("analytics list failed", "user_id", userID, "err", err)
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []models.ReadingAnalytics
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// UserSummary aggregates all of a user's analytics rows into totals and
// averages. Returns a zero summary when the user has no rows.
func (r *AnalyticsRepository) UserSummary(ctx context.Context, userID string) (*models.AnalyticsSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$group", Value: bson.M{
			"_id":                 nil,
			"total_books":         bson.M{"$sum": 1},
			"avg_reading_speed":   bson.M{"$avg": "$reading_speed"},
			"avg_completion_rate": bson.M{"$avg": "$completion_rate"},
			"total_reading_time":  bson.M{"$sum": "$total_reading_time"},
			"total_sessions":      bson.M{"$sum": "$sessions_count"},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		logger.Log.Errorw("analytics summary aggregation failed", "user_id", userID, "err", err)
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.AnalyticsSummary
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &models.AnalyticsSummary{}, nil
	}
	return &results[0], nil
}

// TopReaders ranks users by total reading time across all clubs.
func (r *AnalyticsRepository) TopReaders(ctx context.Context, limit int64) ([]models.TopReader, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":                 "$user_id",
			"total_reading_time":  bson.M{"$sum": "$total_reading_time"},
			"books_read":          bson.M{"$sum": 1},
			"avg_completion_rate": bson.M{"$avg": "$completion_rate"},
		}}},
		{{Key: "$sort", Value: bson.M{"total_reading_time": -1}}},
		{{Key: "$limit", Value: limit}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		logger.Log.Errorw("top readers aggregation failed", "err", err)
		return nil, err
	}
	defer cur.Close(ctx)

	var readers []models.TopReader
	if err := cur.All(ctx, &readers); err != nil {
		return nil, err
	}
	for i := range readers {
		readers[i].Rank = i + 1
	}
	return readers, nil
}

// ClubStats aggregates member, book and reading totals for one club.
// Returns zero stats when the club has no activity.
func (r *AnalyticsRepository) ClubStats(ctx context.Context, clubID string) (*models.ClubStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"club_id": clubID}}},
		{{Key: "$group", Value: bson.M{
			"_id":                 nil,
			"members":             bson.M{"$addToSet": "$user_id"},
			"books":               bson.M{"$addToSet": "$book_id"},
			"avg_reading_speed":   bson.M{"$avg": "$reading_speed"},
			"avg_completion_rate": bson.M{"$avg": "$completion_rate"},
			"total_reading_time":  bson.M{"$sum": "$total_reading_time"},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":                 0,
			"total_members":       bson.M{"$size": "$members"},
			"total_books":         bson.M{"$size": "$books"},
			"avg_reading_speed":   bson.M{"$round": bson.A{"$avg_reading_speed", 2}},
			"avg_completion_rate": bson.M{"$round": bson.A{"$avg_completion_rate", 2}},
			"total_reading_time":  bson.M{"$round": bson.A{"$total_reading_time", 0}},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		logger.Log.Errorw("club stats aggregation failed", "club_id", clubID, "err", err)
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.ClubStats
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &models.ClubStats{}, nil
	}
	return &results[0], nil
}

// Trending ranks books by recent activity. The score weighs the number of
// distinct readers by their average completion rate.
func (r *AnalyticsRepository) Trending(ctx context.Context, limit int64) ([]models.TrendingBook, error) {
	since := time.Now().Add(-trendingWindow)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"last_activity": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id":                 "$book_id",
			"readers":             bson.M{"$addToSet": "$user_id"},
			"avg_completion_rate": bson.M{"$avg": "$completion_rate"},
			"total_reading_time":  bson.M{"$sum": "$total_reading_time"},
		}}},
		{{Key: "$project", Value: bson.M{
			"readers_count":       bson.M{"$size": "$readers"},
			"avg_completion_rate": bson.M{"$round": bson.A{"$avg_completion_rate", 2}},
			"total_reading_time":  bson.M{"$round": bson.A{"$total_reading_time", 0}},
			"trending_score": bson.M{"$multiply": bson.A{
				bson.M{"$size": "$readers"},
				bson.M{"$divide": bson.A{"$avg_completion_rate", 10}},
			}},
		}}},
		{{Key: "$sort", Value: bson.M{"trending_score": -1}}},
		{{Key: "$limit", Value: limit}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		logger.Log.Errorw("trending aggregation failed", "err", err)
		return nil, err
	}
	defer cur.Close(ctx)

	var books []models.TrendingBook
	if err := cur.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// Count returns the total number of analytics documents.
func (r *AnalyticsRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
