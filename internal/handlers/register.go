package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/models"
	"github.com/bookclubhq/bookclub-server/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password, fullName string) (*models.User, *services.TokenPair, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: jane_reader
	Username string `json:"username"`

	// Email
	// required: true
	// default: jane@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Full name
	// default: Jane Reader
	FullName string `json:"full_name"`
}

// RegisterData is the payload of a successful registration.
// swagger:model RegisterData
type RegisterData struct {
	User         *models.User `json:"user"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a member account. Username and email are unique; the password is hashed before storing. Returns the profile with an access/refresh token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.Response "User successfully registered"
// @Failure 400 {object} handlers.Response "Validation failure or duplicate username/email"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		switch {
		case !validUsername(req.Username):
			writeError(w, http.StatusBadRequest, "Username must be 3-30 characters of letters, digits and underscores")
			return
		case !validEmail(req.Email):
			writeError(w, http.StatusBadRequest, "Invalid email address")
			return
		case !validPassword(req.Password):
			writeError(w, http.StatusBadRequest, "Password must be at least 6 characters")
			return
		case len(req.FullName) > maxFullNameLength:
			writeError(w, http.StatusBadRequest, "Full name is too long")
			return
		}

		user, pair, err := svc.Register(r.Context(), req.Username, req.Email, req.Password, req.FullName)
		if err != nil {
			switch err {
			case services.ErrEmailTaken:
				writeError(w, http.StatusBadRequest, "Email already registered")
			case services.ErrUsernameTaken:
				writeError(w, http.StatusBadRequest, "Username already taken")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeData(w, http.StatusCreated, "User registered successfully", RegisterData{
			User:         user,
			Token:        pair.Token,
			RefreshToken: pair.RefreshToken,
		})
	}
}
