package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/models"
)

// Error variables
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByIDWithPassword(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	UpdateProfile(ctx context.Context, id string, fullName, bio, avatar *string) (*models.User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) (bool, error)
}

// TokenIssuer defines an interface for issuing signed token pairs.
type TokenIssuer interface {
	Generate(ctx context.Context, userID, email, role string) (string, error)
	GenerateRefresh(ctx context.Context, userID, email, role string) (string, error)
}

// TokenPair bundles the access and refresh tokens issued on registration
// and login.
type TokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService handles registration, login, profile management and the
// admin user operations. Passwords are hashed here and never stored or
// logged in plaintext.
type AuthService struct {
	reader UserReader
	writer UserWriter
	tokens TokenIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenIssuer) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		tokens: tokens,
	}
}

// Register creates a member account and issues a token pair.
func (svc *AuthService) Register(ctx context.Context, username, email, password, fullName string) (*models.User, *TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := svc.reader.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, nil, err
	}
	if existing != nil {
		if existing.Email == email {
			return nil, nil, ErrEmailTaken
		}
		return nil, nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     fullName,
		Role:         models.RoleMember,
	}

	id, err := svc.writer.Save(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to save user", "username", username, "err", err)
		return nil, nil, err
	}
	user.ID = id
	user.PasswordHash = ""

	pair, err := svc.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Login verifies credentials, stamps the login time and issues a token
// pair. Unknown email and wrong password are indistinguishable to the
// caller.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "email", email)
		return nil, nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := svc.writer.UpdateLastLogin(ctx, user.ID.Hex(), now); err != nil {
		return nil, nil, err
	}
	user.LastLogin = &now
	user.PasswordHash = ""

	pair, err := svc.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (svc *AuthService) issueTokens(ctx context.Context, user *models.User) (*TokenPair, error) {
	token, err := svc.tokens.Generate(ctx, user.ID.Hex(), user.Email, string(user.Role))
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return nil, err
	}

	refresh, err := svc.tokens.GenerateRefresh(ctx, user.ID.Hex(), user.Email, string(user.Role))
	if err != nil {
		logger.Log.Errorw("failed to generate refresh token", "err", err)
		return nil, err
	}

	return &TokenPair{Token: token, RefreshToken: refresh}, nil
}

// GetProfile returns the user's own profile.
func (svc *AuthService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile sets the provided profile fields. Nil pointers leave
// fields untouched.
func (svc *AuthService) UpdateProfile(ctx context.Context, userID string, fullName, bio, avatar *string) (*models.User, error) {
	user, err := svc.writer.UpdateProfile(ctx, userID, fullName, bio, avatar)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ChangePassword verifies the current password and stores a hash of the
// new one.
func (svc *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := svc.reader.GetByIDWithPassword(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	return svc.writer.UpdatePassword(ctx, userID, string(hashed))
}

// ListUsers returns the newest users for the admin listing.
func (svc *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return svc.reader.List(ctx)
}

// DeleteUser removes a user account.
func (svc *AuthService) DeleteUser(ctx context.Context, userID string) error {
	deleted, err := svc.writer.Delete(ctx, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}
