package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-prompt-keeper/internal/config"
	"github.com/MKhiriev/go-prompt-keeper/internal/crypto"
	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/internal/mock"
	"github.com/MKhiriev/go-prompt-keeper/internal/store"
	"github.com/MKhiriev/go-prompt-keeper/internal/utils"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

var testAppConfig = config.App{
	TokenSignKey:  "sign-key",
	TokenIssuer:   "prompt-keeper",
	TokenDuration: time.Hour,
	Version:       "1.0.0",
}

func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	return NewAuthService(users, hasher, testAppConfig, logger.Nop()), users, hasher
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, users, hasher := newTestAuthSvc(t)
	ctx := context.Background()

	hasher.EXPECT().Hash("secret").Return("$argon2id$hash", nil)
	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.NotEmpty(t, u.ID, "владелец получает новый id")
			assert.Equal(t, "alice", u.Login)
			assert.Equal(t, "$argon2id$hash", u.PasswordHash)
			assert.Empty(t, u.Password, "пароль не должен уходить в хранилище")
			return u, nil
		},
	)

	got, err := svc.RegisterUser(ctx, models.User{Login: " alice ", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Login)
	assert.NotEmpty(t, got.ID)
}

func TestAuthService_RegisterUser_Errors(t *testing.T) {
	storeErr := errors.New("connection reset")

	tests := []struct {
		name    string
		user    models.User
		setup   func(users *mock.MockUserRepository, hasher *mock.MockPasswordHasher)
		wantErr error
	}{
		{
			name:    "empty login",
			user:    models.User{Login: "  ", Password: "secret"},
			setup:   func(*mock.MockUserRepository, *mock.MockPasswordHasher) {},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:    "empty password",
			user:    models.User{Login: "alice"},
			setup:   func(*mock.MockUserRepository, *mock.MockPasswordHasher) {},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name: "login taken",
			user: models.User{Login: "alice", Password: "secret"},
			setup: func(users *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				hasher.EXPECT().Hash("secret").Return("h", nil)
				users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)
			},
			wantErr: ErrLoginAlreadyExists,
		},
		{
			name: "storage failure",
			user: models.User{Login: "alice", Password: "secret"},
			setup: func(users *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				hasher.EXPECT().Hash("secret").Return("h", nil)
				users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, storeErr)
			},
			wantErr: storeErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, hasher := newTestAuthSvc(t)
			tt.setup(users, hasher)

			_, err := svc.RegisterUser(context.Background(), tt.user)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	stored := models.User{ID: "owner-1", Login: "alice", PasswordHash: "h"}

	tests := []struct {
		name    string
		setup   func(users *mock.MockUserRepository, hasher *mock.MockPasswordHasher)
		wantErr error
	}{
		{
			name: "success",
			setup: func(users *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				users.EXPECT().FindUserByLogin(gomock.Any(), gomock.Any()).Return(stored, nil)
				hasher.EXPECT().Verify("secret", "h").Return(true, nil)
			},
		},
		{
			name: "unknown login",
			setup: func(users *mock.MockUserRepository, _ *mock.MockPasswordHasher) {
				users.EXPECT().FindUserByLogin(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
			},
			wantErr: ErrWrongPassword,
		},
		{
			name: "wrong password",
			setup: func(users *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				users.EXPECT().FindUserByLogin(gomock.Any(), gomock.Any()).Return(stored, nil)
				hasher.EXPECT().Verify("secret", "h").Return(false, nil)
			},
			wantErr: ErrWrongPassword,
		},
		{
			name: "broken hash",
			setup: func(users *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				users.EXPECT().FindUserByLogin(gomock.Any(), gomock.Any()).Return(stored, nil)
				hasher.EXPECT().Verify("secret", "h").Return(false, crypto.ErrInvalidPasswordHash)
			},
			wantErr: crypto.ErrInvalidPasswordHash,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, hasher := newTestAuthSvc(t)
			tt.setup(users, hasher)

			got, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "secret"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "owner-1", got.ID)
		})
	}
}

// ── tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{ID: "owner-1"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", parsed.OwnerID)
}

func TestAuthService_ParseToken_Errors(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)
	ctx := context.Background()

	expired, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, "owner-1", -time.Minute, testAppConfig.TokenSignKey)
	require.NoError(t, err)
	foreign, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, "owner-1", time.Hour, "other-key")
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "expired", token: expired.SignedString, wantErr: ErrTokenIsExpired},
		{name: "wrong signature", token: foreign.SignedString, wantErr: ErrTokenIsExpiredOrInvalid},
		{name: "garbage", token: "abc.def.ghi", wantErr: ErrTokenIsExpiredOrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
