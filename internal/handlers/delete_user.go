package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/services"
)

// UserDeleter defines the interface that the service must implement.
type UserDeleter interface {
	DeleteUser(ctx context.Context, userID string) error
}

// NewDeleteUserHandler returns an HTTP handler for removing a user account.
// @Summary Delete a user
// @Description Removes the user account. Admin only.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Param userID path string true "User ID"
// @Success 200 {object} handlers.Response "User deleted"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Failure 403 {object} handlers.Response "Caller is not an admin"
// @Failure 404 {object} handlers.Response "Unknown user"
// @Router /auth/users/{userID} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")

		err := svc.DeleteUser(r.Context(), userID)
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

		writeData(w, http.StatusOK, "User deleted successfully", nil)
	}
}
