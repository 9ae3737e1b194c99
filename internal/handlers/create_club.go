package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/middlewares"
	"github.com/bookclubhq/bookclub-server/internal/models"
)

// ClubCreator defines the interface that the service must implement.
type ClubCreator interface {
	Create(ctx context.Context, ownerID, name, description, genre string) (*models.Club, error)
}

// CreateClubRequest represents the JSON body for creating a club
// swagger:model CreateClubRequest
type CreateClubRequest struct {
	// Club name
	// required: true
	// default: Mystery Mondays
	Name string `json:"name"`

	// Description
	Description string `json:"description"`

	// Genre
	// default: mystery
	Genre string `json:"genre"`
}

// NewCreateClubHandler returns an HTTP handler for creating a club.
// @Summary Create a club
// @Description Creates a reading club. The caller becomes its owner and first member.
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createClubRequest body handlers.CreateClubRequest true "Club"
// @Success 201 {object} handlers.Response "Created club"
// @Failure 400 {object} handlers.Response "Missing club name"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Router /clubs [post]
func NewCreateClubHandler(svc ClubCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())

		var req CreateClubRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.Name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}

		club, err := svc.Create(r.Context(), claims.UserID, req.Name, req.Description, req.Genre)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeData(w, http.StatusCreated, "Club created successfully", club)
	}
}
