package handlers

import (
	"context"
	"net/http"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/middlewares"
	"github.com/bookclubhq/bookclub-server/internal/models"
	"github.com/bookclubhq/bookclub-server/internal/services"
)

// ProfileGetter defines the interface that the service must implement.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID string) (*models.User, error)
}

// NewMeHandler returns an HTTP handler for the caller's own profile.
// @Summary Get own profile
// @Description Returns the authenticated user's profile. Credential fields are never included.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.Response "Profile"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Failure 404 {object} handlers.Response "User no longer exists"
// @Router /auth/me [get]
func NewMeHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())

		user, err := svc.GetProfile(r.Context(), claims.UserID)
		if err != nil {
			switch err {
			case services.ErrUserNotFound:
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeData(w, http.StatusOK, "", user)
	}
}
