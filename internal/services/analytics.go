package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/models"
)

// ErrInvalidMetrics is returned when session metrics are out of range.
var ErrInvalidMetrics = errors.New("session metrics out of range")

// AnalyticsWriter defines the upsert operation for analytics records.
type AnalyticsWriter interface {
	Upsert(ctx context.Context, userID, clubID, bookID string, metrics models.SessionMetrics) (*models.ReadingAnalytics, error)
}

// AnalyticsReader defines read operations for analytics records.
type AnalyticsReader interface {
	ListByUser(ctx context.Context, userID, clubID string) ([]models.ReadingAnalytics, error)
	UserSummary(ctx context.Context, userID string) (*models.AnalyticsSummary, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AnalyticsService records reading sessions and serves per-user analytics.
type AnalyticsService struct {
	writer      AnalyticsWriter
	reader      AnalyticsReader
	kafkaWriter KafkaWriter
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(writer AnalyticsWriter, reader AnalyticsReader, kafkaWriter KafkaWriter) *AnalyticsService {
	return &AnalyticsService{
		writer:      writer,
		reader:      reader,
		kafkaWriter: kafkaWriter,
	}
}

// RecordSession upserts the analytics record for the (user, club, book)
// triple and publishes a session event. The store increments the session
// counter atomically; repeated calls never create duplicate records.
func (s *AnalyticsService) RecordSession(ctx context.Context, userID, clubID, bookID string, metrics models.SessionMetrics) (*models.ReadingAnalytics, error) {
	if metrics.CompletionRate < 0 || metrics.CompletionRate > 100 ||
		metrics.ReadingSpeed < 0 || metrics.AvgSessionDuration < 0 || metrics.TotalReadingTime < 0 {
		return nil, ErrInvalidMetrics
	}

	doc, err := s.writer.Upsert(ctx, userID, clubID, bookID, metrics)
	if err != nil {
		logger.Log.Errorw("failed to upsert analytics",
			"user_id", userID, "club_id", clubID, "book_id", bookID, "err", err)
		return nil, err
	}

	s.publishSessionEvent(ctx, doc)
	return doc, nil
}

// publishSessionEvent publishes a reading-session event to Kafka.
// Publishing is best effort; failures are logged and never surfaced.
func (s *AnalyticsService) publishSessionEvent(ctx context.Context, doc *models.ReadingAnalytics) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping session event", "user_id", doc.UserID)
		return
	}

	event := models.ReadingSessionEvent{
		EventID:          uuid.NewString(),
		Timestamp:        time.Now().Unix(),
		UserID:           doc.UserID,
		ClubID:           doc.ClubID,
		BookID:           doc.BookID,
		ReadingSpeed:     doc.ReadingSpeed,
		CompletionRate:   doc.CompletionRate,
		TotalReadingTime: doc.TotalReadingTime,
		SessionsCount:    doc.SessionsCount,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal session event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(doc.UserID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish session event", "event_id", event.EventID, "error", err)
	}
}

// ListByUser returns the user's analytics records, optionally narrowed to
// one club.
func (s *AnalyticsService) ListByUser(ctx context.Context, userID, clubID string) ([]models.ReadingAnalytics, error) {
	return s.reader.ListByUser(ctx, userID, clubID)
}

// Summary aggregates a user's analytics rows. A user with no rows gets a
// zero-value summary rather than an error.
func (s *AnalyticsService) Summary(ctx context.Context, userID string) (*models.AnalyticsSummary, error) {
	return s.reader.UserSummary(ctx, userID)
}
