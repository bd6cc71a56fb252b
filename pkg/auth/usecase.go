package auth

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase describes authentication behavior for the admin console.
// Учётные записи создаются сидированием или конвертацией кандидата,
// публичной регистрации нет.
type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (AuthResult, error)
}

type AuthResult struct {
	User  User
	Token string
}

type authService struct {
	repo   UserRepository
	tokens TokenGenerator
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, tokens TokenGenerator) AuthUseCase {
	return &authService{repo: repo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if !user.Active {
		return AuthResult{}, ErrUserDisabled
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	// Отметка о входе не критична для самого входа.
	now := time.Now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		log.Printf("update last login for %s: %v", user.Email, err)
	} else {
		user.LastLoginAt = &now
	}
	return AuthResult{User: user, Token: token}, nil
}
