package handlers

import (
	"context"
	"net/http"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/models"
)

// TrendingGetter defines the interface that the service must implement.
type TrendingGetter interface {
	Trending(ctx context.Context) ([]models.TrendingBook, error)
}

// NewTrendingBooksHandler returns an HTTP handler for the trending-book
// ranking.
// @Summary Get trending books
// @Description Returns the books with the most reader activity over the last 30 days, ranked by trending score. Results are cached for five minutes.
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.Response "Trending books"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Router /stats/trending [get]
func NewTrendingBooksHandler(svc TrendingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trending, err := svc.Trending(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeList(w, "", trending, len(trending))
	}
}
