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

// RecommendationUpserter defines the interface that the service must implement.
type RecommendationUpserter interface {
	Upsert(ctx context.Context, rec *models.BookRecommendation) (*models.BookRecommendation, error)
}

// CreateRecommendationRequest represents the JSON body for storing a
// recommendation
// swagger:model CreateRecommendationRequest
type CreateRecommendationRequest struct {
	// Book ID
	// required: true
	BookID string `json:"book_id"`

	// Book title
	Title string `json:"title"`

	// Book author
	Author string `json:"author"`

	// Genre
	Genre string `json:"genre"`

	// Score, 0..100
	// required: true
	Score float64 `json:"score"`

	// Why this book was suggested
	Reason string `json:"reason"`

	// Book IDs the suggestion was derived from
	BasedOn []string `json:"based_on"`
}

// NewCreateRecommendationHandler returns an HTTP handler for storing a
// recommendation for the authenticated user.
// @Summary Store a book recommendation
// @Description Upserts a scored suggestion keyed by (user, book). A repeated book replaces the earlier score.
// @Tags recommendations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createRecommendationRequest body handlers.CreateRecommendationRequest true "Recommendation"
// @Success 201 {object} handlers.Response "Stored recommendation"
// @Failure 400 {object} handlers.Response "Missing book ID or score out of range"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Router /recommendations [post]
func NewCreateRecommendationHandler(svc RecommendationUpserter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())

		var req CreateRecommendationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.BookID == "" {
			writeError(w, http.StatusBadRequest, "book_id is required")
			return
		}

		rec := &models.BookRecommendation{
			UserID:  claims.UserID,
			BookID:  req.BookID,
			Title:   req.Title,
			Author:  req.Author,
			Genre:   req.Genre,
			Score:   req.Score,
			Reason:  req.Reason,
			BasedOn: req.BasedOn,
		}

		stored, err := svc.Upsert(r.Context(), rec)
		if err != nil {
			switch err {
			case services.ErrInvalidScore:
				writeError(w, http.StatusBadRequest, "Score must be between 0 and 100")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeData(w, http.StatusCreated, "Recommendation stored successfully", stored)
	}
}
