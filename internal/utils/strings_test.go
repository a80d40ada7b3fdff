package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNumericCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateNumericCode(6)
		require.NoError(t, err)
		assert.Len(t, code, 6)
		assert.Regexp(t, `^[0-9]{6}$`, code)
		seen[code] = true
	}
	assert.Greater(t, len(seen), 1)

	_, err := GenerateNumericCode(0)
	assert.Error(t, err)
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"ana.petrovic@example.com", true},
		{"a@b.rs", true},
		{"user+tag@mail.example.org", true},
		{"", false},
		{"no-at-sign.com", false},
		{".dot@example.com", false},
		{"user@-example.com", false},
		{"user@example", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("+381641234567"))
	assert.True(t, IsValidPhoneNumber("0641234567"))
	assert.False(t, IsValidPhoneNumber("064-123"))
	assert.False(t, IsValidPhoneNumber(""))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "an**********@example.com", MaskEmail("ana.petrovic@example.com"))
	assert.Equal(t, "ab@example.com", MaskEmail("ab@example.com"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}

func TestMaskPhoneNumber(t *testing.T) {
	assert.Equal(t, "********4567", MaskPhoneNumber("+381 64 123 4567"))
	assert.Equal(t, "123", MaskPhoneNumber("123"))
}
