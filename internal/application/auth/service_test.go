package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/yetkin-kariyer/botfleet/internal/domain/session"
	sessionMocks "github.com/yetkin-kariyer/botfleet/internal/domain/session/mocks"
	"github.com/yetkin-kariyer/botfleet/internal/domain/user"
	userMocks "github.com/yetkin-kariyer/botfleet/internal/domain/user/mocks"
)

func newService(t *testing.T) (*Service, *userMocks.MockRepository, *sessionMocks.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := userMocks.NewMockRepository(ctrl)
	sessions := sessionMocks.NewMockRepository(ctrl)
	return NewService(users, sessions, time.Hour, zerolog.Nop()), users, sessions
}

func adminUser(t *testing.T, password string) *user.User {
	t.Helper()
	hash, err := user.HashPassword(password)
	require.NoError(t, err)
	return &user.User{
		UserID:       uuid.New(),
		Username:     "fleet.admin",
		PasswordHash: hash,
		Role:         user.RoleAdmin,
		Status:       user.StatusActive,
	}
}

func TestService_Login(t *testing.T) {
	svc, users, sessions := newService(t)
	u := adminUser(t, "S3cure!Passw0rd")

	users.EXPECT().GetByUsername(gomock.Any(), "fleet.admin").Return(u, nil)
	sessions.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *session.Session) error {
			assert.Equal(t, u.UserID, s.UserID)
			assert.NotEmpty(t, s.TokenHash)
			return nil
		})

	result, err := svc.Login(context.Background(), "Fleet.Admin ", "S3cure!Passw0rd")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	// The raw token is never what we persist.
	assert.NotEqual(t, result.Token, result.Session.TokenHash)
}

func TestService_LoginWrongPassword(t *testing.T) {
	svc, users, _ := newService(t)
	u := adminUser(t, "S3cure!Passw0rd")

	users.EXPECT().GetByUsername(gomock.Any(), "fleet.admin").Return(u, nil)

	_, err := svc.Login(context.Background(), "fleet.admin", "wrong-password")
	require.Error(t, err)
}

func TestService_LoginDisabledUser(t *testing.T) {
	svc, users, _ := newService(t)
	u := adminUser(t, "S3cure!Passw0rd")
	u.Status = user.StatusDisabled

	users.EXPECT().GetByUsername(gomock.Any(), "fleet.admin").Return(u, nil)

	_, err := svc.Login(context.Background(), "fleet.admin", "S3cure!Passw0rd")
	require.Error(t, err)
}

func TestService_AuthenticateExpiredSession(t *testing.T) {
	svc, _, sessions := newService(t)

	expired := &session.Session{
		SessionID: uuid.New(),
		UserID:    uuid.New(),
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
	}
	sessions.EXPECT().GetByTokenHash(gomock.Any(), gomock.Any()).Return(expired, nil)
	sessions.EXPECT().DeleteByTokenHash(gomock.Any(), gomock.Any()).Return(nil)

	_, _, err := svc.Authenticate(context.Background(), "some-token")
	require.Error(t, err)
}

func TestService_BootstrapOnlyOnce(t *testing.T) {
	svc, users, _ := newService(t)

	users.EXPECT().Count(gomock.Any()).Return(1, nil)

	_, err := svc.Bootstrap(context.Background(), "fleet.admin", "S3cure!Passw0rd")
	require.Error(t, err)
}

func TestService_Bootstrap(t *testing.T) {
	svc, users, _ := newService(t)

	users.EXPECT().Count(gomock.Any()).Return(0, nil)
	users.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *user.User) error {
			assert.Equal(t, user.RoleAdmin, u.Role)
			assert.Equal(t, "fleet.admin", u.Username)
			assert.NotEmpty(t, u.PasswordHash)
			return nil
		})

	u, err := svc.Bootstrap(context.Background(), "Fleet.Admin", "S3cure!Passw0rd")
	require.NoError(t, err)
	assert.True(t, u.IsActive())
}
