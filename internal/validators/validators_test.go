package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ann@example.com", NormalizeEmail("  Ann@Example.COM "))
}

func TestIsEmail(t *testing.T) {
	cases := map[string]bool{
		"ann@example.com":       true,
		"ann@example":           false,
		"Ann <ann@example.com>": false,
		"":                      false,
		"no-at-sign.com":        false,
	}
	for in, want := range cases {
		assert.Equal(t, want, IsEmail(in), in)
	}
}

func TestIsEmailDomainValid_MalformedAddress(t *testing.T) {
	assert.False(t, IsEmailDomainValid("ann"))
	assert.False(t, IsEmailDomainValid("ann@"))
}

func TestIsPhone(t *testing.T) {
	cases := map[string]bool{
		"+91 98765-43210":  true,
		"5551234":          true,
		"555123":           false,
		"555-abc-1234":     false,
		"1234567890123456": false,
	}
	for in, want := range cases {
		assert.Equal(t, want, IsPhone(in), in)
	}
}

func TestIsZipCode(t *testing.T) {
	assert.True(t, IsZipCode("411001"))
	assert.True(t, IsZipCode("SW1A 1AA"))
	assert.True(t, IsZipCode("12345-678"))
	assert.False(t, IsZipCode("12"))
	assert.False(t, IsZipCode("4110#1"))
}
