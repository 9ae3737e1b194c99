package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/models"
	"github.com/bookclubhq/bookclub-server/internal/services"
)

// ProgressLister defines the interface that the service must implement.
type ProgressLister interface {
	ListProgress(ctx context.Context, clubID uuid.UUID) ([]models.ReadingProgress, error)
}

// NewListProgressHandler returns an HTTP handler for every member's
// progress in one club.
// @Summary List club reading progress
// @Description Returns each member's position in the club's books.
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param clubID path string true "Club ID"
// @Success 200 {object} handlers.Response "Progress rows"
// @Failure 400 {object} handlers.Response "Malformed club ID"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Failure 404 {object} handlers.Response "Unknown club"
// @Router /clubs/{clubID}/progress [get]
func NewListProgressHandler(svc ProgressLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clubID, err := uuid.Parse(chi.URLParam(r, "clubID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid club ID")
			return
		}

		rows, err := svc.ListProgress(r.Context(), clubID)
		if err != nil {
			switch err {
			case services.ErrClubNotFound:
				writeError(w, http.StatusNotFound, "Club not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeList(w, "", rows, len(rows))
	}
}
