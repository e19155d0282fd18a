package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("learner@example.com"))
	assert.NoError(t, ValidateEmail("first.last+tag@sub.example.co"))

	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@tld"))
	assert.Error(t, ValidateEmail("spaces in@example.com"))
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("jo"))
	assert.NoError(t, ValidateUsername("Jane Smith"))

	assert.Error(t, ValidateUsername("j"))
	assert.Error(t, ValidateUsername(strings.Repeat("a", 51)))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("Str0ng!pass"))

	// Length
	assert.Error(t, ValidatePassword("Sh0rt!"))
	// Missing character classes
	assert.Error(t, ValidatePassword("alllowercase1!"))
	assert.Error(t, ValidatePassword("ALLUPPERCASE1!"))
	assert.Error(t, ValidatePassword("NoDigitsHere!"))
	assert.Error(t, ValidatePassword("NoSpecials123"))
	// Common passwords are rejected regardless of shape
	assert.Error(t, ValidatePassword("password123"))
}
