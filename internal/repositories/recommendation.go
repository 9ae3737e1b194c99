package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/models"
)

const recommendationsCollection = "book_recommendations"

// RecommendationRepository stores scored book suggestions per user.
type RecommendationRepository struct {
	col *mongo.Collection
}

func NewRecommendationRepository(db *mongo.Database) *RecommendationRepository {
	return &RecommendationRepository{col: db.Collection(recommendationsCollection)}
}

// EnsureRecommendationIndexes creates the unique (user, book) index and the
// score-ordered lookup index.
func EnsureRecommendationIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(recommendationsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "book_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "score", Value: -1}}},
	})
	return err
}

// Upsert inserts or replaces the recommendation keyed by (user, book).
func (r *RecommendationRepository) Upsert(ctx context.Context, rec *models.BookRecommendation) (*models.BookRecommendation, error) {
	now := time.Now()

	filter := bson.M{"user_id": rec.UserID, "book_id": rec.BookID}
	update := bson.M{
		"$set": bson.M{
			"title":      rec.Title,
			"author":     rec.Author,
			"genre":      rec.Genre,
			"score":      rec.Score,
			"reason":     rec.Reason,
			"based_on":   rec.BasedOn,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc models.BookRecommendation
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		logger.Log.Errorw("recommendation upsert failed",
			"user_id", rec.UserID, "book_id", rec.BookID, "err", err)
		return nil, err
	}
	return &doc, nil
}

// ListByUser returns the user's recommendations, highest score first.
func (r *RecommendationRepository) ListByUser(ctx context.Context, userID string, limit int64) ([]models.BookRecommendation, error) {
	return r.list(ctx, bson.M{"user_id": userID}, limit)
}

// ListByGenre returns the user's recommendations within one genre,
// highest score first.
func (r *RecommendationRepository) ListByGenre(ctx context.Context, userID, genre string, limit int64) ([]models.BookRecommendation, error) {
	return r.list(ctx, bson.M{"user_id": userID, "genre": genre}, limit)
}

func (r *RecommendationRepository) list(ctx context.Context, filter bson.M, limit int64) ([]models.BookRecommendation, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "score", Value: -1}}).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		logger.Log.Errorw("recommendations list failed", "filter", filter, "err", err)
		return nil, err
	}
	defer cur.Close(ctx)

	var recs []models.BookRecommendation
	if err := cur.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// Delete removes one recommendation. Reports whether a document was deleted.
func (r *RecommendationRepository) Delete(ctx context.Context, userID, bookID string) (bool, error) {
	err := r.col.FindOneAndDelete(ctx, bson.M{"user_id": userID, "book_id": bookID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		logger.Log.Errorw("recommendation delete failed", "user_id", userID, "book_id", bookID, "err", err)
		return false, err
	}
	return true, nil
}

// Count returns the total number of recommendation documents.
func (r *RecommendationRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
