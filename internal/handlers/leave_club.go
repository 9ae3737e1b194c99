package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/middlewares"
	"github.com/bookclubhq/bookclub-server/internal/services"
)

// ClubLeaver defines the interface that the service must implement.
type ClubLeaver interface {
	Leave(ctx context.Context, clubID uuid.UUID, userID string) error
}

// NewLeaveClubHandler returns an HTTP handler for leaving a club.
// @Summary Leave a club
// @Description Removes the authenticated user from the club.
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param clubID path string true "Club ID"
// @Success 200 {object} handlers.Response "Left"
// @Failure 400 {object} handlers.Response "Malformed club ID or not a member"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Router /clubs/{clubID}/leave [delete]
func NewLeaveClubHandler(svc ClubLeaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())

		clubID, err := uuid.Parse(chi.URLParam(r, "clubID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid club ID")
			return
		}

		err = svc.Leave(r.Context(), clubID, claims.UserID)
		if err != nil {
			switch err {
			case services.ErrNotMember:
				writeError(w, http.StatusBadRequest, "Not a member of this club")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeData(w, http.StatusOK, "Left club successfully", nil)
	}
}
