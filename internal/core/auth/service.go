// Package auth
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inkwell/internal/domain"
	"inkwell/internal/logger"
	"inkwell/pkg/token"

	"github.com/google/uuid"
)

type service struct {
	repo        domain.UserRepository
	passwords   PasswordScheme
	jwtSecret   string
	tokenExpiry time.Duration
	log         logger.Logger
}

func NewService(
	repo domain.UserRepository,
	passwords PasswordScheme,
	secret string,
	expiry time.Duration,
	log logger.Logger,
) domain.AuthService {
	return &service{
		repo:        repo,
		passwords:   passwords,
		jwtSecret:   secret,
		tokenExpiry: expiry,
		log:         log,
	}
}

func (s *service) Signup(ctx context.Context, req domain.SignupRequest) (*domain.AuthResult, error) {
	hashed, err := s.passwords.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:    req.Email,
		Password: hashed,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	signed, err := token.Generate(map[string]any{
		"id":    user.ID.String(),
		"email": user.Email,
	}, s.jwtSecret, s.tokenExpiry)
	if err != nil {
		return nil, err
	}

	s.log.Info("auth: user signed up", "user_id", user.ID.String())

	return &domain.AuthResult{User: user, Token: signed}, nil
}

func (s *service) Signin(ctx context.Context, req domain.SigninRequest) (*domain.AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.passwords.Compare(user.Password, req.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	signed, err := token.Generate(map[string]any{
		"id": user.ID.String(),
	}, s.jwtSecret, s.tokenExpiry)
	if err != nil {
		return nil, err
	}

	s.log.Info("auth: user signed in", "user_id", user.ID.String())

	return &domain.AuthResult{User: user, Token: signed}, nil
}

func (s *service) Authenticate(tokenString string) (domain.Identity, error) {
	claims, err := token.Validate(tokenString, s.jwtSecret)
	if err != nil {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	rawID, ok := claims["id"].(string)
	if !ok {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	userID, err := uuid.Parse(rawID)
	if err != nil {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	return domain.Identity{UserID: userID}, nil
}
