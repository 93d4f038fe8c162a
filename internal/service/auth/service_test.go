package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teleka/teleka-taxi/internal/domain/types"
	"github.com/teleka/teleka-taxi/pkg/logger"
)

func newService() *Service {
	return NewService("admin", "admin123", "test-secret", time.Hour, logger.InitLogger("test", logger.LevelError))
}

func TestLogin(t *testing.T) {
	svc := newService()

	session, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	assert.NotEmpty(t, session.Token)
	assert.Equal(t, types.RoleOperator.String(), session.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, time.Minute)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, types.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "root", "admin123")
	assert.ErrorIs(t, err, types.ErrInvalidCredentials)
}

func TestVerifyToken(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	session, err := svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)

	op, err := svc.VerifyToken(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", op.Username)
	assert.Equal(t, types.RoleOperator, op.Role)
	assert.False(t, op.IsAnonymous())
}

func TestVerifyToken_Garbage(t *testing.T) {
	svc := newService()

	_, err := svc.VerifyToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, types.ErrInvalidCredentials)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	ctx := context.Background()

	other := NewService("admin", "admin123", "other-secret", time.Hour, logger.InitLogger("test", logger.LevelError))
	session, err := other.Login(ctx, "admin", "admin123")
	require.NoError(t, err)

	_, err = newService().VerifyToken(ctx, session.Token)
	assert.ErrorIs(t, err, types.ErrInvalidCredentials)
}

func TestVerifyToken_Expired(t *testing.T) {
	ctx := context.Background()

	svc := NewService("admin", "admin123", "test-secret", -time.Minute, logger.InitLogger("test", logger.LevelError))
	session, err := svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)

	_, err = svc.VerifyToken(ctx, session.Token)
	assert.ErrorIs(t, err, types.ErrInvalidCredentials)
}
