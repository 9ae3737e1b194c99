package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/bookclubhq/bookclub-server/internal/models"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		username  string
		email     string
		setupMock func(reader *MockUserReader, writer *MockUserWriter, tokens *MockTokenIssuer)
		wantErr   error
	}{
		{
			name:     "success",
			username: "reader42",
			email:    "Reader42@Example.com",
			setupMock: func(reader *MockUserReader, writer *MockUserWriter, tokens *MockTokenIssuer) {
				reader.EXPECT().
					GetByUsernameOrEmail(gomock.Any(), "reader42", "reader42@example.com").
					Return(nil, nil)
				writer.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(primitive.NewObjectID(), nil)
				tokens.EXPECT().
					Generate(gomock.Any(), gomock.Any(), "reader42@example.com", "member").
					Return("access-token", nil)
				tokens.EXPECT().
					GenerateRefresh(gomock.Any(), gomock.Any(), "reader42@example.com", "member").
					Return("refresh-token", nil)
			},
		},
		{
			name:     "email taken",
			username: "reader42",
			email:    "taken@example.com",
			setupMock: func(reader *MockUserReader, writer *MockUserWriter, tokens *MockTokenIssuer) {
				reader.EXPECT().
					GetByUsernameOrEmail(gomock.Any(), "reader42", "taken@example.com").
					Return(&models.User{Username: "someoneelse", Email: "taken@example.com"}, nil)
			},
			wantErr: ErrEmailTaken,
		},
		{
			name:     "username taken",
			username: "reader42",
			email:    "new@example.com",
			setupMock: func(reader *MockUserReader, writer *MockUserWriter, tokens *MockTokenIssuer) {
				reader.EXPECT().
					GetByUsernameOrEmail(gomock.Any(), "reader42", "new@example.com").
					Return(&models.User{Username: "reader42", Email: "other@example.com"}, nil)
			},
			wantErr: ErrUsernameTaken,
		},
		{
			name:     "save fails",
			username: "reader42",
			email:    "new@example.com",
			setupMock: func(reader *MockUserReader, writer *MockUserWriter, tokens *MockTokenIssuer) {
				reader.EXPECT().
					GetByUsernameOrEmail(gomock.Any(), "reader42", "new@example.com").
					Return(nil, nil)
				writer.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(primitive.NilObjectID, errors.New("insert failed"))
			},
			wantErr: errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewMockUserReader(ctrl)
			writer := NewMockUserWriter(ctrl)
			tokens := NewMockTokenIssuer(ctrl)
			tt.setupMock(reader, writer, tokens)

			svc := NewAuthService(reader, writer, tokens)
			user, pair, err := svc.Register(context.Background(), tt.username, tt.email, "secret123", "Full Name")

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				assert.Nil(t, pair)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, user)
			require.NotNil(t, pair)
			assert.Equal(t, "reader42@example.com", user.Email)
			assert.Equal(t, models.RoleMember, user.Role)
			assert.Empty(t, user.PasswordHash)
			assert.Equal(t, "access-token", pair.Token)
			assert.Equal(t, "refresh-token", pair.RefreshToken)
		})
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUserReader(ctrl)
	writer := NewMockUserWriter(ctrl)
	tokens := NewMockTokenIssuer(ctrl)

	reader.EXPECT().GetByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	writer.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) (primitive.ObjectID, error) {
			assert.NotEqual(t, "secret123", user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
			return primitive.NewObjectID(), nil
		})
	tokens.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("t", nil)
	tokens.EXPECT().GenerateRefresh(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("r", nil)

	svc := NewAuthService(reader, writer, tokens)
	_, _, err := svc.Register(context.Background(), "reader42", "reader42@example.com", "secret123", "")
	require.NoError(t, err)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	userID := primitive.NewObjectID()
	stored := func() *models.User {
		return &models.User{
			ID:           userID,
			Username:     "reader42",
			Email:        "reader42@example.com",
			PasswordHash: string(hash),
			Role:         models.RoleMember,
		}
	}

	tests := []struct {
		name      string
		email     string
		password  string
		setupMock func(reader *MockUserReader, writer *MockUserWriter, tokens *MockTokenIssuer)
		wantErr   error
	}{
		{
			name:     "success",
			email:    "Reader42@example.com ",
			password: "secret123",
			setupMock: func(reader *MockUserReader, writer *MockUserWriter, tokens *MockTokenIssuer) {
				reader.EXPECT().
					GetByEmail(gomock.Any(), "reader42@example.com").
					Return(stored(), nil)
				writer.EXPECT().
					UpdateLastLogin(gomock.Any(), userID.Hex(), gomock.Any()).
					Return(nil)
				tokens.EXPECT().
					Generate(gomock.Any(), userID.Hex(), "reader42@example.com", "member").
					Return("access-token", nil)
				tokens.EXPECT().
					GenerateRefresh(gomock.Any(), userID.Hex(), "reader42@example.com", "member").
					Return("refresh-token", nil)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "secret123",
			setupMock: func(reader *MockUserReader, writer *MockUserWriter, tokens *MockTokenIssuer) {
				reader.EXPECT().
					GetByEmail(gomock.Any(), "nobody@example.com").
					Return(nil, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "reader42@example.com",
			password: "not-the-password",
			setupMock: func(reader *MockUserReader, writer *MockUserWriter, tokens *MockTokenIssuer) {
				reader.EXPECT().
					GetByEmail(gomock.Any(), "reader42@example.com").
					Return(stored(), nil)
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewMockUserReader(ctrl)
			writer := NewMockUserWriter(ctrl)
			tokens := NewMockTokenIssuer(ctrl)
			tt.setupMock(reader, writer, tokens)

			svc := NewAuthService(reader, writer, tokens)
			user, pair, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Nil(t, pair)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Empty(t, user.PasswordHash)
			assert.NotNil(t, user.LastLogin)
			assert.WithinDuration(t, time.Now(), *user.LastLogin, time.Minute)
			assert.Equal(t, "access-token", pair.Token)
		})
	}
}

func TestAuthService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUserReader(ctrl)
	svc := NewAuthService(reader, NewMockUserWriter(ctrl), NewMockTokenIssuer(ctrl))

	id := primitive.NewObjectID()
	reader.EXPECT().GetByID(gomock.Any(), id.Hex()).Return(&models.User{ID: id, Username: "reader42"}, nil)

	user, err := svc.GetProfile(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, "reader42", user.Username)

	reader.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)
	user, err = svc.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, user)
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	tests := []struct {
		name      string
		current   string
		setupMock func(reader *MockUserReader, writer *MockUserWriter)
		wantErr   error
	}{
		{
			name:    "success",
			current: "old-password",
			setupMock: func(reader *MockUserReader, writer *MockUserWriter) {
				reader.EXPECT().
					GetByIDWithPassword(gomock.Any(), "user-1").
					Return(&models.User{PasswordHash: string(hash)}, nil)
				writer.EXPECT().
					UpdatePassword(gomock.Any(), "user-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, newHash string) error {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("new-password")))
						return nil
					})
			},
		},
		{
			name:    "wrong current password",
			current: "guess",
			setupMock: func(reader *MockUserReader, writer *MockUserWriter) {
				reader.EXPECT().
					GetByIDWithPassword(gomock.Any(), "user-1").
					Return(&models.User{PasswordHash: string(hash)}, nil)
			},
			wantErr: ErrWrongPassword,
		},
		{
			name:    "user not found",
			current: "old-password",
			setupMock: func(reader *MockUserReader, writer *MockUserWriter) {
				reader.EXPECT().
					GetByIDWithPassword(gomock.Any(), "user-1").
					Return(nil, nil)
			},
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewMockUserReader(ctrl)
			writer := NewMockUserWriter(ctrl)
			tt.setupMock(reader, writer)

			svc := NewAuthService(reader, writer, NewMockTokenIssuer(ctrl))
			err := svc.ChangePassword(context.Background(), "user-1", tt.current, "new-password")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAuthService_DeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockUserWriter(ctrl)
	svc := NewAuthService(NewMockUserReader(ctrl), writer, NewMockTokenIssuer(ctrl))

	writer.EXPECT().Delete(gomock.Any(), "user-1").Return(true, nil)
	assert.NoError(t, svc.DeleteUser(context.Background(), "user-1"))

	writer.EXPECT().Delete(gomock.Any(), "user-2").Return(false, nil)
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), "user-2"), ErrUserNotFound)
}
