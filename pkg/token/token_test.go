package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestGenerateAndValidate(t *testing.T) {
	signed, err := Generate(map[string]any{"id": "abc", "email": "a@b.c"}, secret, time.Hour)
	require.NoError(t, err)

	claims, err := Validate(signed, secret)
	require.NoError(t, err)
	assert.Equal(t, "abc", claims["id"])
	assert.Equal(t, "a@b.c", claims["email"])
	assert.Contains(t, claims, "iat")
	assert.Contains(t, claims, "exp")
}

func TestGenerateWithoutExpiry(t *testing.T) {
	signed, err := Generate(map[string]any{"id": "abc"}, secret, 0)
	require.NoError(t, err)

	claims, err := Validate(signed, secret)
	require.NoError(t, err)
	assert.NotContains(t, claims, "exp")
}

func TestGenerateRejectsEmptySecret(t *testing.T) {
	_, err := Generate(map[string]any{"id": "abc"}, "", time.Hour)
	assert.Error(t, err)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	signed, err := Generate(map[string]any{"id": "abc"}, secret, time.Hour)
	require.NoError(t, err)

	_, err = Validate(signed, "other-secret")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidateRejectsExpired(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "abc",
		"exp": time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = Validate(signed, secret)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidateRejectsOtherAlgorithms(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"id": "abc"}).
		SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = Validate(signed, secret)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidateRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := Validate(raw, secret)
		assert.ErrorIs(t, err, ErrInvalid, raw)
	}
}
