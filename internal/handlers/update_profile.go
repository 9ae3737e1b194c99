package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/middlewares"
	"github.com/bookclubhq/bookclub-server/internal/models"
	"github.com/bookclubhq/bookclub-server/internal/services"
)

// ProfileUpdater defines the interface that the service must implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID string, fullName, bio, avatar *string) (*models.User, error)
}

// UpdateProfileRequest represents the JSON body for a profile update.
// Absent fields are left untouched.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// Full name
	// default: Jane Reader
	FullName *string `json:"full_name"`

	// Short bio
	Bio *string `json:"bio"`

	// Avatar URL
	Avatar *string `json:"avatar"`
}

// NewUpdateProfileHandler returns an HTTP handler for profile updates.
// @Summary Update own profile
// @Description Sets the provided profile fields on the authenticated user. Omitted fields keep their current values.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile fields to change"
// @Success 200 {object} handlers.Response "Updated profile"
// @Failure 400 {object} handlers.Response "Validation failure"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Router /auth/profile [put]
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.FullName != nil && len(*req.FullName) > maxFullNameLength {
			writeError(w, http.StatusBadRequest, "Full name is too long")
			return
		}
		if req.Bio != nil && len(*req.Bio) > maxBioLength {
			writeError(w, http.StatusBadRequest, "Bio is too long")
			return
		}

		user, err := svc.UpdateProfile(r.Context(), claims.UserID, req.FullName, req.Bio, req.Avatar)
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

		writeData(w, http.StatusOK, "Profile updated successfully", user)
	}
}
