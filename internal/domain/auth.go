package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// SignupRequest caps the password at 72 bytes, the most bcrypt will hash.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResult struct {
	User  *User
	Token string
}

// Identity is the caller proven by a verified token.
type Identity struct {
	UserID uuid.UUID
}

type Authenticator interface {
	Authenticate(token string) (Identity, error)
}

type AuthService interface {
	Authenticator
	Signup(ctx context.Context, req SignupRequest) (*AuthResult, error)
	Signin(ctx context.Context, req SigninRequest) (*AuthResult, error)
}
