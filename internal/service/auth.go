package service

import (
	"crypto/subtle"

	"bragnetic-backend/internal/security"
)

type authService struct {
	password string
	tokens   security.TokenManager
}

// NewAuthService wires the shared admin password to the session token
// manager. An empty password makes every login fail with
// ErrAdminNotConfigured rather than silently allowing or denying.
func NewAuthService(password string, tokens security.TokenManager) AuthService {
	return &authService{
		password: password,
		tokens:   tokens,
	}
}

func (s *authService) Login(password string) (string, error) {
	if s.password == "" {
		return "", ErrAdminNotConfigured
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return "", ErrInvalidPassword
	}
	return s.tokens.GenerateAdminToken()
}

func (s *authService) Verify(token string) bool {
	if token == "" {
		return false
	}
	_, err := s.tokens.ValidateToken(token)
	return err == nil
}
