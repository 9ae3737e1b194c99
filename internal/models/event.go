package models

// ReadingSessionEvent is published to Kafka whenever an analytics record
// is upserted. Publishing is best effort and never fails the request.
type ReadingSessionEvent struct {
	EventID          string  `json:"event_id"`
	Timestamp        int64   `json:"timestamp"`
	UserID           string  `json:"user_id"`
	ClubID           string  `json:"club_id"`
	BookID           string  `json:"book_id"`
	ReadingSpeed     float64 `json:"reading_speed"`
	CompletionRate   float64 `json:"completion_rate"`
	TotalReadingTime float64 `json:"total_reading_time"`
	SessionsCount    int64   `json:"sessions_count"`
}
