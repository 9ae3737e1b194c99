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

// ClubGetter defines the interface that the service must implement.
type ClubGetter interface {
	Get(ctx context.Context, clubID uuid.UUID) (*models.Club, []models.ClubMember, error)
}

// ClubData is the payload of a single-club response.
// swagger:model ClubData
type ClubData struct {
	Club    *models.Club        `json:"club"`
	Members []models.ClubMember `json:"members"`
}

// NewGetClubHandler returns an HTTP handler for one club and its members.
// @Summary Get a club
// @Description Returns the club and its membership list.
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param clubID path string true "Club ID"
// @Success 200 {object} handlers.Response "Club with members"
// @Failure 400 {object} handlers.Response "Malformed club ID"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Failure 404 {object} handlers.Response "Unknown club"
// @Router /clubs/{clubID} [get]
func NewGetClubHandler(svc ClubGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clubID, err := uuid.Parse(chi.URLParam(r, "clubID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid club ID")
			return
		}

		club, members, err := svc.Get(r.Context(), clubID)
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

		writeData(w, http.StatusOK, "", ClubData{Club: club, Members: members})
	}
}
