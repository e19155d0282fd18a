package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJWT_RoundTrip(t *testing.T) {
	s := NewJWTService("test-secret")

	token, err := s.GenerateToken(42, "learner@example.com", true)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := s.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "learner@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestJWT_WrongSecret(t *testing.T) {
	s := NewJWTService("test-secret")
	token, err := s.GenerateToken(42, "learner@example.com", false)
	assert.NoError(t, err)

	other := NewJWTService("different-secret")
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWT_Garbage(t *testing.T) {
	s := NewJWTService("test-secret")

	_, err := s.ValidateToken("not.a.token")
	assert.Error(t, err)
}
