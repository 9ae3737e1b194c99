package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookRecommendation is a scored book suggestion for one user.
// The (user_id, book_id) pair is unique; upserts replace the score in place.
type BookRecommendation struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    string             `json:"user_id" bson:"user_id"`
	BookID    string             `json:"book_id" bson:"book_id"`
	Title     string             `json:"title" bson:"title"`
	Author    string             `json:"author" bson:"author"`
	Genre     string             `json:"genre" bson:"genre"`
	Score     float64            `json:"score" bson:"score"` // 0..100
	Reason    string             `json:"reason" bson:"reason"`
	BasedOn   []string           `json:"based_on,omitempty" bson:"based_on,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
