package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/middlewares"
	"github.com/bookclubhq/bookclub-server/internal/models"
	"github.com/bookclubhq/bookclub-server/internal/services"
)

// ProgressSaver defines the interface that the service must implement.
type ProgressSaver interface {
	SaveProgress(ctx context.Context, clubID uuid.UUID, userID, bookID string, currentPage, totalPages int) (*models.ReadingProgress, error)
}

// SaveProgressRequest represents the JSON body for a progress update
// swagger:model SaveProgressRequest
type SaveProgressRequest struct {
	// Book ID
	// required: true
	BookID string `json:"book_id"`

	// Current page, 0..total_pages
	// required: true
	CurrentPage int `json:"current_page"`

	// Total pages in the book
	// required: true
	TotalPages int `json:"total_pages"`
}

// NewSaveProgressHandler returns an HTTP handler for updating the caller's
// reading position in a club book.
// @Summary Save reading progress
// @Description Upserts the caller's position in one book. The completion percentage is derived from the page counts. Members only.
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param clubID path string true "Club ID"
// @Param saveProgressRequest body handlers.SaveProgressRequest true "Progress"
// @Success 200 {object} handlers.Response "Stored progress"
// @Failure 400 {object} handlers.Response "Malformed IDs or page counts out of range"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Failure 403 {object} handlers.Response "Caller is not a member"
// @Router /clubs/{clubID}/progress [put]
func NewSaveProgressHandler(svc ProgressSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())

		clubID, err := uuid.Parse(chi.URLParam(r, "clubID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid club ID")
			return
		}

		var req SaveProgressRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.BookID == "" {
			writeError(w, http.StatusBadRequest, "book_id is required")
			return
		}

		progress, err := svc.SaveProgress(r.Context(), clubID, claims.UserID, req.BookID, req.CurrentPage, req.TotalPages)
		if err != nil {
			switch err {
			case services.ErrInvalidProgress:
				writeError(w, http.StatusBadRequest, "Invalid reading progress")
			case services.ErrNotMember:
				writeError(w, http.StatusForbidden, "Not a member of this club")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeData(w, http.StatusOK, "Progress saved successfully", progress)
	}
}
