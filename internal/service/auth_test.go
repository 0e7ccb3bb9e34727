package service

import (
	"testing"

	"bragnetic-backend/internal/security"

	"github.com/stretchr/testify/assert"
)

const testJWTSecret = "0123456789abcdef0123456789abcdef"

func TestAuthService_Login(t *testing.T) {
	tokens := security.NewTokenManager(testJWTSecret)

	t.Run("Success", func(t *testing.T) {
		svc := NewAuthService("hunter2", tokens)

		token, err := svc.Login("hunter2")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := tokens.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, security.RoleAdmin, claims.Role)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		svc := NewAuthService("hunter2", tokens)

		_, err := svc.Login("hunter3")
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("NotConfigured", func(t *testing.T) {
		svc := NewAuthService("", tokens)

		_, err := svc.Login("anything")
		assert.ErrorIs(t, err, ErrAdminNotConfigured)

		// Even an empty password must not authenticate
		_, err = svc.Login("")
		assert.ErrorIs(t, err, ErrAdminNotConfigured)
	})
}

func TestAuthService_Verify(t *testing.T) {
	tokens := security.NewTokenManager(testJWTSecret)
	svc := NewAuthService("hunter2", tokens)

	t.Run("ValidToken", func(t *testing.T) {
		token, err := svc.Login("hunter2")
		assert.NoError(t, err)
		assert.True(t, svc.Verify(token))
	})

	t.Run("EmptyToken", func(t *testing.T) {
		assert.False(t, svc.Verify(""))
	})

	t.Run("GarbageToken", func(t *testing.T) {
		assert.False(t, svc.Verify("garbage"))
	})

	t.Run("ForeignSignature", func(t *testing.T) {
		other := security.NewTokenManager("ffffffffffffffffffffffffffffffff")
		token, err := other.GenerateAdminToken()
		assert.NoError(t, err)
		assert.False(t, svc.Verify(token))
	})
}
