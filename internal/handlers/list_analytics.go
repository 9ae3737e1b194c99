package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/models"
)

// AnalyticsLister defines the interface that the service must implement.
type AnalyticsLister interface {
	ListByUser(ctx context.Context, userID, clubID string) ([]models.ReadingAnalytics, error)
}

// NewListAnalyticsHandler returns an HTTP handler for a user's analytics
// records.
// @Summary List a user's analytics
// @Description Returns the user's analytics records, most recent activity first, optionally narrowed to one club. Owner or admin only.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param userID path string true "User ID"
// @Param clubId query string false "Restrict to one club"
// @Success 200 {object} handlers.Response "Analytics records"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Failure 403 {object} handlers.Response "Not the owner and not an admin"
// @Router /analytics/{userID} [get]
func NewListAnalyticsHandler(svc AnalyticsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		clubID := r.URL.Query().Get("clubId")

		docs, err := svc.ListByUser(r.Context(), userID, clubID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeList(w, "", docs, len(docs))
	}
}
