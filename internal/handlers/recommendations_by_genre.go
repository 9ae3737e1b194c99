package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/models"
)

// GenreRecommendationLister defines the interface that the service must implement.
type GenreRecommendationLister interface {
	ListByGenre(ctx context.Context, userID, genre string, limit int) ([]models.BookRecommendation, error)
}

// NewRecommendationsByGenreHandler returns an HTTP handler for a user's
// recommendations within one genre.
// @Summary List a user's recommendations by genre
// @Description Returns the user's recommendations in the named genre, highest score first. Owner or admin only.
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Param userID path string true "User ID"
// @Param genre query string true "Genre"
// @Param limit query int false "Maximum number of results"
// @Success 200 {object} handlers.Response "Recommendations"
// @Failure 400 {object} handlers.Response "Missing genre"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Failure 403 {object} handlers.Response "Not the owner and not an admin"
// @Router /recommendations/{userID}/by-genre [get]
func NewRecommendationsByGenreHandler(svc GenreRecommendationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		genre := r.URL.Query().Get("genre")
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		if genre == "" {
			writeError(w, http.StatusBadRequest, "genre is required")
			return
		}

		recs, err := svc.ListByGenre(r.Context(), userID, genre, limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeList(w, "", recs, len(recs))
	}
}
