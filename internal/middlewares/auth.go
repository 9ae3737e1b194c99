package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookclubhq/bookclub-server/internal/jwt"
	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/models"
)

// Tokener defines the minimal token operations needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type contextKey struct{}

var claimsKey = contextKey{}

// ClaimsFromContext returns the claims attached by AuthMiddleware,
// or nil when the request was not authenticated.
func ClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey).(*jwt.Claims)
	return claims
}

// ContextWithClaims attaches claims to the context the way AuthMiddleware
// does.
func ContextWithClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

type authErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(authErrorResponse{Success: false, Message: message})
}

// AuthMiddleware extracts and verifies the bearer token and attaches the
// decoded claims to the request context. Verification is stateless; every
// failure is terminal for the request.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("unauthorized request", "path", r.URL.Path, "err", err)
				writeAuthError(w, http.StatusUnauthorized, "No token provided. Please login first.")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("token rejected", "path", r.URL.Path, "err", err)
				writeAuthError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClaims(ctx, claims)))
		})
	}
}

// RequireAdmin rejects requests whose attached claims do not carry the
// admin role. Must run after AuthMiddleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil || claims.Role != string(models.RoleAdmin) {
			writeAuthError(w, http.StatusForbidden, "Access denied. Admin privileges required.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireOwnerOrAdmin rejects requests unless the claims user id matches
// the named URL parameter, or the caller is an admin. Must run after
// AuthMiddleware.
func RequireOwnerOrAdmin(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFromContext(r.Context())
			if claims == nil {
				writeAuthError(w, http.StatusUnauthorized, "No token provided. Please login first.")
				return
			}

			requested := chi.URLParam(r, param)
			if claims.UserID != requested && claims.Role != string(models.RoleAdmin) {
				writeAuthError(w, http.StatusForbidden, "Access denied. You can only access your own data.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
