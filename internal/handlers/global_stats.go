package handlers

import (
	"context"
	"net/http"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/models"
)

// GlobalStatsGetter defines the interface that the service must implement.
type GlobalStatsGetter interface {
	Global(ctx context.Context) (*models.GlobalStats, error)
}

// NewGlobalStatsHandler returns an HTTP handler for platform-wide stats.
// @Summary Get global statistics
// @Description Returns platform-wide record counts and the top-reader ranking. Results are cached for one minute.
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.Response "Global statistics"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Router /stats/global [get]
func NewGlobalStatsHandler(svc GlobalStatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Global(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		for i := range stats.TopReaders {
			stats.TopReaders[i].Rank = i + 1
		}

		writeData(w, http.StatusOK, "", stats)
	}
}
