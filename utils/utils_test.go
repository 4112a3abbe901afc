package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	cases := map[string]bool{
		"player@example.com":     true,
		"  player@example.com  ": true,
		"":                       false,
		"player":                 false,
		"player@localhost":       false,
		"Player <p@example.com>": false,
		"two@@example.com":       false,
	}
	for email, want := range cases {
		assert.Equal(t, want, IsValidEmail(email), email)
	}
}

func TestRegistrationKey(t *testing.T) {
	a := RegistrationKey(1, "Bob@Example.com ")
	assert.Equal(t, a, RegistrationKey(1, "bob@example.com"))
	assert.NotEqual(t, a, RegistrationKey(2, "bob@example.com"))
	assert.Len(t, a, 64)
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("TOURNAMENT_FINDER_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnvOrDefault("TOURNAMENT_FINDER_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnvOrDefault("TOURNAMENT_FINDER_TEST_MISSING", "fallback"))
}
