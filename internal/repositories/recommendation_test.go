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

func TestRecommendationRepository_Upsert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns stored document", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "user_id", Value: "user-1"},
			{Key: "book_id", Value: "book-1"},
			{Key: "title", Value: "Dune"},
			{Key: "genre", Value: "sci-fi"},
			{Key: "score", Value: 92.0},
		}}))

		repo := &RecommendationRepository{col: mt.Coll}
		doc, err := repo.Upsert(context.Background(), &models.BookRecommendation{
			UserID: "user-1",
			BookID: "book-1",
			Title:  "Dune",
			Genre:  "sci-fi",
			Score:  92,
		})
		assert.NoError(t, err)
		assert.NotNil(t, doc)
		assert.Equal(t, "Dune", doc.Title)
		assert.Equal(t, 92.0, doc.Score)
	})
}

func TestRecommendationRepository_ListByGenre(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("filtered list", func(mt *mtest.T) {
		first := mtest.CreateCursorResponse(1, "testdb.book_recommendations", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "user_id", Value: "user-1"},
			{Key: "book_id", Value: "book-1"},
			{Key: "genre", Value: "sci-fi"},
			{Key: "score", Value: 92.0},
		})
		killCursors := mtest.CreateCursorResponse(0, "testdb.book_recommendations", mtest.NextBatch)
		mt.AddMockResponses(first, killCursors)

		repo := &RecommendationRepository{col: mt.Coll}
		recs, err := repo.ListByGenre(context.Background(), "user-1", "sci-fi", 10)
		assert.NoError(t, err)
		assert.Len(t, recs, 1)
		assert.Equal(t, "sci-fi", recs[0].Genre)
	})
}

func TestRecommendationRepository_Delete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deleted", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "user_id", Value: "user-1"},
			{Key: "book_id", Value: "book-1"},
		}}))

		repo := &RecommendationRepository{col: mt.Coll}
		deleted, err := repo.Delete(context.Background(), "user-1", "book-1")
		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	mt.Run("missing document", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		repo := &RecommendationRepository{col: mt.Coll}
		deleted, err := repo.Delete(context.Background(), "user-1", "book-404")
		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}
