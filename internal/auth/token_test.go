package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 5)

	identity := &domain.Identity{ID: "3", Name: "Admin User", Roles: []domain.Role{domain.RoleAdmin}}
	token, exp, err := tm.GenerateToken(identity)
	require.NoError(t, err)
	require.False(t, exp.IsZero())

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "3", claims.SubjectID)
	assert.Equal(t, "Admin User", claims.Name)
	assert.Equal(t, domain.RoleAdmin, claims.Identity().PrimaryRole())
	assert.NotEmpty(t, claims.ID)
}

func TestParseToken_WrongSecret(t *testing.T) {
	tm := NewTokenManager("secret", 5)
	token, _, err := tm.GenerateToken(&domain.Identity{ID: "1", Roles: []domain.Role{domain.RoleStudent}})
	require.NoError(t, err)

	other := NewTokenManager("different", 5)
	_, err = other.ParseToken(token)
	assert.Error(t, err)
}
