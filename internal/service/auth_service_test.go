package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brightpath-edu/counseling-scheduler/internal/config"
	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
	"github.com/brightpath-edu/counseling-scheduler/internal/repository"
	apperrors "github.com/brightpath-edu/counseling-scheduler/pkg/util"
)

func testAuthService(t *testing.T) *AuthService {
	t.Helper()
	store, err := repository.NewSeededMemoryStore(4)
	require.NoError(t, err)
	cfg := config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 5, ProviderName: "aad"}
	return NewAuthService(cfg, store.Users(), nil, zap.NewNop())
}

func TestLogin_Success(t *testing.T) {
	svc := testAuthService(t)

	identity, token, exp, err := svc.Login(context.Background(), "admin1", "password")
	require.NoError(t, err)
	assert.Equal(t, "3", identity.ID)
	assert.Equal(t, "Admin User", identity.Name)
	assert.Equal(t, domain.RoleAdmin, identity.PrimaryRole())
	assert.NotEmpty(t, token)
	assert.False(t, exp.IsZero())
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := testAuthService(t)

	_, _, _, err := svc.Login(context.Background(), "admin1", "wrong")
	require.Error(t, err)

	var de *apperrors.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "INVALID_CREDENTIALS", de.Code)
}

func TestLogin_UnknownUserSameError(t *testing.T) {
	svc := testAuthService(t)

	_, _, _, err := svc.Login(context.Background(), "ghost", "password")
	require.Error(t, err)

	var de *apperrors.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "INVALID_CREDENTIALS", de.Code)
}

func TestProviderLogin(t *testing.T) {
	svc := testAuthService(t)

	identity, token, _, err := svc.ProviderLogin(context.Background(), "aad")
	require.NoError(t, err)
	assert.Equal(t, "220701230", identity.ID)
	assert.Equal(t, domain.RoleAdmin, identity.PrimaryRole())
	assert.NotEmpty(t, token)

	_, _, _, err = svc.ProviderLogin(context.Background(), "github")
	assert.Error(t, err)
}
