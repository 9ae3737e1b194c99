package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndGetClaims(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithAccessExpiration(time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, "user-1", "alice@example.com", "member")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "member", claims.Role)
}

func TestJWT_RefreshTokenCarriesSameClaims(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithRefreshExpiration(time.Hour))
	ctx := context.Background()

	refresh, err := j.GenerateRefresh(ctx, "user-2", "bob@example.com", "admin")
	assert.NoError(t, err)

	claims, err := j.GetClaims(ctx, refresh)
	assert.NoError(t, err)
	assert.Equal(t, "user-2", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithAccessExpiration(-time.Minute)) // already expired
	ctx := context.Background()

	token, err := j.Generate(ctx, "user-3", "eve@example.com", "member")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	err = j.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	err := j.Validate(ctx, "invalid.token.string")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()

	token, err := New(WithSecretKey("secret-a")).Generate(ctx, "user-4", "x@y.com", "member")
	assert.NoError(t, err)

	_, err = New(WithSecretKey("secret-b")).GetClaims(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing header", header: "", wantErr: ErrMissingAuthHeader},
		{name: "wrong scheme", header: "Basic abc", wantErr: ErrMalformedHeader},
		{name: "no token", header: "Bearer", wantErr: ErrMalformedHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			got, err := j.GetTokenFromRequest(ctx, r)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
