package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReadingAnalytics tracks per-user reading statistics for one book inside
// one club. The (user_id, club_id, book_id) triple is unique; repeated
// upserts update the metrics in place and bump sessions_count.
type ReadingAnalytics struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID             string             `json:"user_id" bson:"user_id"`
	ClubID             string             `json:"club_id" bson:"club_id"`
	BookID             string             `json:"book_id" bson:"book_id"`
	ReadingSpeed       float64            `json:"reading_speed" bson:"reading_speed"`             // pages per day
	AvgSessionDuration float64            `json:"avg_session_duration" bson:"avg_session_duration"` // minutes
	TotalReadingTime   float64            `json:"total_reading_time" bson:"total_reading_time"`   // minutes
	CompletionRate     float64            `json:"completion_rate" bson:"completion_rate"`         // 0..100
	SessionsCount      int64              `json:"sessions_count" bson:"sessions_count"`
	LastActivity       time.Time          `json:"last_activity" bson:"last_activity"`
	CreatedAt          time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" bson:"updated_at"`
}

// SessionMetrics carries the mutable part of an analytics upsert.
type SessionMetrics struct {
	ReadingSpeed       float64 `json:"reading_speed"`
	AvgSessionDuration float64 `json:"avg_session_duration"`
	TotalReadingTime   float64 `json:"total_reading_time"`
	CompletionRate     float64 `json:"completion_rate"`
}

// AnalyticsSummary is the per-user aggregate over all tracked books.
type AnalyticsSummary struct {
	TotalBooks        int64   `json:"total_books" bson:"total_books"`
	AvgReadingSpeed   float64 `json:"avg_reading_speed" bson:"avg_reading_speed"`
	AvgCompletionRate float64 `json:"avg_completion_rate" bson:"avg_completion_rate"`
	TotalReadingTime  float64 `json:"total_reading_time" bson:"total_reading_time"`
	TotalSessions     int64   `json:"total_sessions" bson:"total_sessions"`
}

// TopReader is one row of the global reading-time ranking.
type TopReader struct {
	Rank              int     `json:"rank" bson:"-"`
	UserID            string  `json:"user_id" bson:"_id"`
	TotalReadingTime  float64 `json:"total_reading_time" bson:"total_reading_time"`
	BooksRead         int64   `json:"books_read" bson:"books_read"`
	AvgCompletionRate float64 `json:"avg_completion_rate" bson:"avg_completion_rate"`
}

// ClubStats summarizes reading activity across one club.
type ClubStats struct {
	TotalMembers      int64   `json:"total_members" bson:"total_members"`
	TotalBooks        int64   `json:"total_books" bson:"total_books"`
	AvgReadingSpeed   float64 `json:"avg_reading_speed" bson:"avg_reading_speed"`
	AvgCompletionRate float64 `json:"avg_completion_rate" bson:"avg_completion_rate"`
	TotalReadingTime  float64 `json:"total_reading_time" bson:"total_reading_time"`
}

// TrendingBook ranks books by recent reader activity.
type TrendingBook struct {
	BookID            string  `json:"book_id" bson:"_id"`
	ReadersCount      int64   `json:"readers_count" bson:"readers_count"`
	AvgCompletionRate float64 `json:"avg_completion_rate" bson:"avg_completion_rate"`
	TotalReadingTime  float64 `json:"total_reading_time" bson:"total_reading_time"`
	TrendingScore     float64 `json:"trending_score" bson:"trending_score"`
}

// GlobalStats is the payload of the global stats endpoint.
type GlobalStats struct {
	TotalAnalytics       int64       `json:"total_analytics"`
	TotalRecommendations int64       `json:"total_recommendations"`
	TopReaders           []TopReader `json:"top_readers"`
}
