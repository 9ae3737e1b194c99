package services

import (
	"context"
	"errors"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/models"
)

// Recommendation errors.
var (
	ErrRecommendationNotFound = errors.New("recommendation not found")
	ErrInvalidScore           = errors.New("score must be between 0 and 100")
)

const (
	defaultRecommendationLimit = 10
	maxRecommendationLimit     = 50
)

// RecommendationWriter defines write operations for recommendations.
type RecommendationWriter interface {
	Upsert(ctx context.Context, rec *models.BookRecommendation) (*models.BookRecommendation, error)
	Delete(ctx context.Context, userID, bookID string) (bool, error)
}

// RecommendationReader defines read operations for recommendations.
type RecommendationReader interface {
	ListByUser(ctx context.Context, userID string, limit int64) ([]models.BookRecommendation, error)
	ListByGenre(ctx context.Context, userID, genre string, limit int64) ([]models.BookRecommendation, error)
}

// RecommendationService manages scored book suggestions.
type RecommendationService struct {
	writer RecommendationWriter
	reader RecommendationReader
}

// NewRecommendationService creates a new RecommendationService.
func NewRecommendationService(writer RecommendationWriter, reader RecommendationReader) *RecommendationService {
	return &RecommendationService{writer: writer, reader: reader}
}

// Upsert stores a recommendation keyed by (user, book).
func (s *RecommendationService) Upsert(ctx context.Context, rec *models.BookRecommendation) (*models.BookRecommendation, error) {
	if rec.Score < 0 || rec.Score > 100 {
		return nil, ErrInvalidScore
	}

	stored, err := s.writer.Upsert(ctx, rec)
	if err != nil {
		logger.Log.Errorw("failed to upsert recommendation",
			"user_id", rec.UserID, "book_id", rec.BookID, "err", err)
		return nil, err
	}
	return stored, nil
}

// ListByUser returns the user's recommendations, highest score first.
// The limit is clamped to 1..50 with a default of 10.
func (s *RecommendationService) ListByUser(ctx context.Context, userID string, limit int) ([]models.BookRecommendation, error) {
	return s.reader.ListByUser(ctx, userID, clampLimit(limit))
}

// ListByGenre returns the user's recommendations within one genre.
func (s *RecommendationService) ListByGenre(ctx context.Context, userID, genre string, limit int) ([]models.BookRecommendation, error) {
	return s.reader.ListByGenre(ctx, userID, genre, clampLimit(limit))
}

// Delete removes one recommendation.
func (s *RecommendationService) Delete(ctx context.Context, userID, bookID string) error {
	deleted, err := s.writer.Delete(ctx, userID, bookID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRecommendationNotFound
	}
	return nil
}

func clampLimit(limit int) int64 {
	if limit <= 0 {
		return defaultRecommendationLimit
	}
	if limit > maxRecommendationLimit {
		return maxRecommendationLimit
	}
	return int64(limit)
}
