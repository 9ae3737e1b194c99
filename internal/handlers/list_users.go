package handlers

import (
	"context"
	"net/http"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/models"
)

// UserLister defines the interface that the service must implement.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// NewListUsersHandler returns an HTTP handler for the admin user listing.
// @Summary List users
// @Description Returns the newest user accounts, credential fields excluded. Admin only.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.Response "Users"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Failure 403 {object} handlers.Response "Caller is not an admin"
// @Router /auth/users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeList(w, "", users, len(users))
	}
}
