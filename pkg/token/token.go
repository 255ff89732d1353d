// Package token signs and verifies HS256 JWTs.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalid = errors.New("token: invalid")

// Generate signs claims with secret. iat is always set; exp is set when
// expiry is positive.
func Generate(claims map[string]any, secret string, expiry time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("token: empty secret")
	}

	now := time.Now()
	mc := jwt.MapClaims{"iat": now.Unix()}
	for k, v := range claims {
		mc[k] = v
	}
	if expiry > 0 {
		mc["exp"] = now.Add(expiry).Unix()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("token: sign failed: %w", err)
	}

	return signed, nil
}

// Validate checks the signature and the time based claims and returns the
// claim set. Every failure is reported as ErrInvalid.
func Validate(tokenString, secret string) (jwt.MapClaims, error) {
	if tokenString == "" || secret == "" {
		return nil, ErrInvalid
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return claims, nil
}
