package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, err := m.GenerateAccessToken("librarian", RoleAdmin)
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "librarian", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestManager_RejectsBadTokens(t *testing.T) {
	m := NewManager("secret", time.Hour)
	token, err := m.GenerateAccessToken("librarian", RoleAdmin)
	require.NoError(t, err)

	_, err = NewManager("other", time.Hour).ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := NewManager("secret", -time.Minute).GenerateAccessToken("librarian", RoleAdmin)
	require.NoError(t, err)
	_, err = m.ValidateAccessToken(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.ValidateAccessToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
