package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/middlewares"
	"github.com/bookclubhq/bookclub-server/internal/services"
)

// PasswordChanger defines the interface that the service must implement.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

// ChangePasswordRequest represents the JSON body for a password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// Current password
	// required: true
	CurrentPassword string `json:"current_password"`

	// New password, at least 6 characters
	// required: true
	NewPassword string `json:"new_password"`
}

// NewChangePasswordHandler returns an HTTP handler for password changes.
// @Summary Change own password
// @Description Verifies the current password and replaces it with a hash of the new one.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param changePasswordRequest body handlers.ChangePasswordRequest true "Password change request"
// @Success 200 {object} handlers.Response "Password changed"
// @Failure 400 {object} handlers.Response "Validation failure or wrong current password"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Router /auth/change-password [put]
func NewChangePasswordHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if !validPassword(req.NewPassword) {
			writeError(w, http.StatusBadRequest, "Password must be at least 6 characters")
			return
		}

		err := svc.ChangePassword(r.Context(), claims.UserID, req.CurrentPassword, req.NewPassword)
		if err != nil {
			switch err {
			case services.ErrWrongPassword:
				writeError(w, http.StatusBadRequest, "Current password is incorrect")
			case services.ErrUserNotFound:
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeData(w, http.StatusOK, "Password changed successfully", nil)
	}
}
