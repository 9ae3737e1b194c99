package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/models"
)

// RecommendationLister defines the interface that the service must implement.
type RecommendationLister interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]models.BookRecommendation, error)
}

// NewListRecommendationsHandler returns an HTTP handler for a user's
// recommendations.
// @Summary List a user's recommendations
// @Description Returns the user's recommendations, highest score first. The limit defaults to 10 and is capped at 50. Owner or admin only.
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Param userID path string true "User ID"
// @Param limit query int false "Maximum number of results"
// @Success 200 {object} handlers.Response "Recommendations"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Failure 403 {object} handlers.Response "Not the owner and not an admin"
// @Router /recommendations/{userID} [get]
func NewListRecommendationsHandler(svc RecommendationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		recs, err := svc.ListByUser(r.Context(), userID, limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeList(w, "", recs, len(recs))
	}
}
