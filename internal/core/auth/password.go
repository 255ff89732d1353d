package auth

import (
	"crypto/subtle"

	"inkwell/internal/config"

	"golang.org/x/crypto/bcrypt"
)

// PasswordScheme turns a raw password into its stored form and checks a
// candidate against it.
type PasswordScheme interface {
	Hash(password string) (string, error)
	Compare(stored, candidate string) bool
}

func NewPasswordScheme(name string) PasswordScheme {
	if name == config.PasswordSchemePlain {
		return plainScheme{}
	}
	return bcryptScheme{cost: bcrypt.DefaultCost}
}

type bcryptScheme struct {
	cost int
}

func (s bcryptScheme) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (s bcryptScheme) Compare(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}

// plainScheme stores passwords as given and compares them verbatim. It only
// exists to serve user rows written by the legacy deployment, which never
// hashed; do not enable it for new data.
type plainScheme struct{}

func (plainScheme) Hash(password string) (string, error) {
	return password, nil
}

func (plainScheme) Compare(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
