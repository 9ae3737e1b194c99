package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/services"
)

// RecommendationDeleter defines the interface that the service must implement.
type RecommendationDeleter interface {
	Delete(ctx context.Context, userID, bookID string) error
}

// NewDeleteRecommendationHandler returns an HTTP handler for removing one
// recommendation.
// @Summary Delete a recommendation
// @Description Removes the recommendation for one (user, book) pair. Owner or admin only.
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Param userID path string true "User ID"
// @Param bookID path string true "Book ID"
// @Success 200 {object} handlers.Response "Recommendation deleted"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Failure 403 {object} handlers.Response "Not the owner and not an admin"
// @Failure 404 {object} handlers.Response "Unknown recommendation"
// @Router /recommendations/{userID}/{bookID} [delete]
func NewDeleteRecommendationHandler(svc RecommendationDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		bookID := chi.URLParam(r, "bookID")

		err := svc.Delete(r.Context(), userID, bookID)
		if err != nil {
			switch err {
			case services.ErrRecommendationNotFound:
				writeError(w, http.StatusNotFound, "Recommendation not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeData(w, http.StatusOK, "Recommendation deleted successfully", nil)
	}
}
