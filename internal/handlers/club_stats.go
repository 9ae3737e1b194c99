package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/models"
)

// ClubStatsGetter defines the interface that the service must implement.
type ClubStatsGetter interface {
	Club(ctx context.Context, clubID string) (*models.ClubStats, error)
}

// NewClubStatsHandler returns an HTTP handler for one club's aggregate
// statistics.
// @Summary Get club statistics
// @Description Returns member, book and reading-time aggregates for one club. A club with no activity gets zero values.
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param clubID path string true "Club ID"
// @Success 200 {object} handlers.Response "Club statistics"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Router /stats/club/{clubID} [get]
func NewClubStatsHandler(svc ClubStatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clubID := chi.URLParam(r, "clubID")

		stats, err := svc.Club(r.Context(), clubID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeData(w, http.StatusOK, "", stats)
	}
}
