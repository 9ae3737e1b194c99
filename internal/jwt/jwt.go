package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token errors returned by parsing and extraction.
var (
	ErrMissingAuthHeader = errors.New("authorization header missing")
	ErrMalformedHeader   = errors.New("invalid authorization header format")
	ErrInvalidToken      = errors.New("invalid or expired token")
)

// Claims is the payload embedded in every issued token. It is enough to
// authorize a request without a database round trip.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256-signed bearer tokens.
type JWT struct {
	secretKey  string
	accessExp  time.Duration
	refreshExp time.Duration
}

// Option configures a JWT instance.
type Option func(*JWT)

// WithSecretKey sets the signing secret.
func WithSecretKey(secret string) Option {
	return func(j *JWT) { j.secretKey = secret }
}

// WithAccessExpiration sets the access token lifetime.
func WithAccessExpiration(exp time.Duration) Option {
	return func(j *JWT) { j.accessExp = exp }
}

// WithRefreshExpiration sets the refresh token lifetime.
func WithRefreshExpiration(exp time.Duration) Option {
	return func(j *JWT) { j.refreshExp = exp }
}

// New creates a JWT instance. Defaults: 7 day access tokens,
// 30 day refresh tokens.
func New(opts ...Option) *JWT {
	j := &JWT{
		accessExp:  7 * 24 * time.Hour,
		refreshExp: 30 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a signed access token carrying the user id, email and role.
func (j *JWT) Generate(ctx context.Context, userID, email, role string) (string, error) {
	return j.sign(userID, email, role, j.accessExp)
}

// GenerateRefresh creates a signed refresh token from the same claims shape.
func (j *JWT) GenerateRefresh(ctx context.Context, userID, email, role string) (string, error) {
	return j.sign(userID, email, role, j.refreshExp)
}

func (j *JWT) sign(userID, email, role string, exp time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// GetClaims verifies the token signature and expiry and returns the payload.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

// Validate checks the token signature and expiry.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the bearer token from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrMalformedHeader
	}

	return parts[1], nil
}
