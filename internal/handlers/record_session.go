package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/middlewares"
	"github.com/bookclubhq/bookclub-server/internal/models"
	"github.com/bookclubhq/bookclub-server/internal/services"
)

// SessionRecorder defines the interface that the service must implement.
type SessionRecorder interface {
	RecordSession(ctx context.Context, userID, clubID, bookID string, metrics models.SessionMetrics) (*models.ReadingAnalytics, error)
}

// RecordSessionRequest represents the JSON body for recording a reading session
// swagger:model RecordSessionRequest
type RecordSessionRequest struct {
	// Club ID
	// required: true
	ClubID string `json:"club_id"`

	// Book ID
	// required: true
	BookID string `json:"book_id"`

	// Pages per day
	ReadingSpeed float64 `json:"reading_speed"`

	// Minutes per session
	AvgSessionDuration float64 `json:"avg_session_duration"`

	// Total minutes spent reading
	TotalReadingTime float64 `json:"total_reading_time"`

	// Completion percentage, 0..100
	CompletionRate float64 `json:"completion_rate"`
}

// NewRecordSessionHandler returns an HTTP handler for recording a reading
// session. The record is always written for the authenticated user.
// @Summary Record a reading session
// @Description Upserts the analytics record for the caller's (club, book) pair and bumps the session counter. Repeated calls never create duplicates.
// @Tags analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recordSessionRequest body handlers.RecordSessionRequest true "Session metrics"
// @Success 201 {object} handlers.Response "Analytics record"
// @Failure 400 {object} handlers.Response "Missing IDs or metrics out of range"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Router /analytics [post]
func NewRecordSessionHandler(svc SessionRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())

		var req RecordSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.ClubID == "" || req.BookID == "" {
			writeError(w, http.StatusBadRequest, "club_id and book_id are required")
			return
		}

		metrics := models.SessionMetrics{
			ReadingSpeed:       req.ReadingSpeed,
			AvgSessionDuration: req.AvgSessionDuration,
			TotalReadingTime:   req.TotalReadingTime,
			CompletionRate:     req.CompletionRate,
		}

		doc, err := svc.RecordSession(r.Context(), claims.UserID, req.ClubID, req.BookID, metrics)
		if err != nil {
			switch err {
			case services.ErrInvalidMetrics:
				writeError(w, http.StatusBadRequest, "Session metrics out of range")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeData(w, http.StatusCreated, "Session recorded successfully", doc)
	}
}
