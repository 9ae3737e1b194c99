package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/models"
)

// SummaryGetter defines the interface that the service must implement.
type SummaryGetter interface {
	Summary(ctx context.Context, userID string) (*models.AnalyticsSummary, error)
}

// NewAnalyticsSummaryHandler returns an HTTP handler for a user's
// aggregate reading summary.
// @Summary Get a user's reading summary
// @Description Aggregates the user's analytics records into totals and averages. A user with no records gets a zero-value summary. Owner or admin only.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param userID path string true "User ID"
// @Success 200 {object} handlers.Response "Summary"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Failure 403 {object} handlers.Response "Not the owner and not an admin"
// @Router /analytics/{userID}/summary [get]
func NewAnalyticsSummaryHandler(svc SummaryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")

		summary, err := svc.Summary(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeData(w, http.StatusOK, "", summary)
	}
}
