package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     bool
	}{
		{"valid short", "abc", true},
		{"valid mixed", "Alice42", true},
		{"valid max length", strings.Repeat("a", 20), true},
		{"too short", "ab", false},
		{"too long", strings.Repeat("a", 21), false},
		{"empty", "", false},
		{"underscore", "alice_b", false},
		{"space", "alice b", false},
		{"hyphen", "alice-b", false},
		{"unicode letter", "алиса", false},
		{"digits only", "12345", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateUsername(tt.username))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"plain", "alice@example.com", true},
		{"subdomain", "alice@mail.example.co.uk", true},
		{"plus tag", "alice+tag@example.com", true},
		{"dots and percent", "a.b%c@example.org", true},
		{"no at", "alice.example.com", false},
		{"no tld", "alice@example", false},
		{"one-letter tld", "alice@example.c", false},
		{"empty local", "@example.com", false},
		{"empty", "", false},
		{"spaces", "alice @example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateEmail(tt.email))
		})
	}
}
