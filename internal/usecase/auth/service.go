package auth

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type PasswordComparer interface {
	Compare(hash string, password string) error
}

type Claims struct {
	Username string
}

type TokenService interface {
	GenerateToken(username string) (string, time.Time, error)
	ParseToken(token string) (*Claims, error)
}

// Service checks logins against the single configured admin account.
// There is no user store: the store has exactly one administrator.
type Service struct {
	adminUser string
	adminHash string
	checker   PasswordComparer
	tokens    TokenService
}

func NewService(adminUser, adminHash string, checker PasswordComparer, tokens TokenService) *Service {
	return &Service{
		adminUser: adminUser,
		adminHash: adminHash,
		checker:   checker,
		tokens:    tokens,
	}
}

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Username  string
}

func (s *Service) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, ErrInvalidCredentials
	}

	if username != s.adminUser {
		return nil, ErrInvalidCredentials
	}
	if err := s.checker.Compare(s.adminHash, in.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateToken(username)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Username:  username,
	}, nil
}
