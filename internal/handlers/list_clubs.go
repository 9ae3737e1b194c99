package handlers

import (
	"context"
	"net/http"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/models"
)

// ClubLister defines the interface that the service must implement.
type ClubLister interface {
	List(ctx context.Context) ([]models.Club, error)
}

// NewListClubsHandler returns an HTTP handler for the club listing.
// @Summary List clubs
// @Description Returns all clubs with their member counts.
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.Response "Clubs"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Router /clubs [get]
func NewListClubsHandler(svc ClubLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clubs, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeList(w, "", clubs, len(clubs))
	}
}
