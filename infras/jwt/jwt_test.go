package jwt

import (
	"resort/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(expireMin int) JWT {
	cfg := &config.Config{}
	cfg.App.Name = "resort-test"
	cfg.Auth.Secret = "test-secret"
	cfg.Auth.TokenExpireMin = expireMin
	return New(cfg)
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		svc := newTestService(60)

		token, err := svc.GenerateToken("user-1", "Admin")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "Admin", claims.Role)
		assert.Equal(t, "user-1", claims.Subject)
		assert.NotNil(t, claims.ExpiresAt)
	})

	t.Run("no expiry when expire minutes is zero", func(t *testing.T) {
		svc := newTestService(0)

		token, err := svc.GenerateToken("user-2", "Receptionist")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Nil(t, claims.ExpiresAt)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := newTestService(60)

		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		other := &config.Config{}
		other.App.Name = "resort-test"
		other.Auth.Secret = "other-secret"
		token, err := New(other).GenerateToken("user-3", "Manager")
		require.NoError(t, err)

		_, err = newTestService(60).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("empty identity claims", func(t *testing.T) {
		svc := newTestService(60)

		token, err := svc.GenerateToken("", "")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrEmptyClaims)
	})
}
