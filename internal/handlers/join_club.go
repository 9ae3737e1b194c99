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

// ClubJoiner defines the interface that the service must implement.
type ClubJoiner interface {
	Join(ctx context.Context, clubID uuid.UUID, userID string) error
}

// NewJoinClubHandler returns an HTTP handler for joining a club.
// @Summary Join a club
// @Description Adds the authenticated user to the club as a member.
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param clubID path string true "Club ID"
// @Success 200 {object} handlers.Response "Joined"
// @Failure 400 {object} handlers.Response "Malformed club ID or already a member"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Failure 404 {object} handlers.Response "Unknown club"
// @Router /clubs/{clubID}/join [post]
func NewJoinClubHandler(svc ClubJoiner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())

		clubID, err := uuid.Parse(chi.URLParam(r, "clubID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid club ID")
			return
		}

		err = svc.Join(r.Context(), clubID, claims.UserID)
		if err != nil {
			switch err {
			case services.ErrClubNotFound:
				writeError(w, http.StatusNotFound, "Club not found")
			case services.ErrAlreadyMember:
				writeError(w, http.StatusBadRequest, "Already a member of this club")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeData(w, http.StatusOK, "Joined club successfully", nil)
	}
}
