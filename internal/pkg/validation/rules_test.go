package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"plain address", "a@b.com", true},
		{"dotted local part", "john.doe@school.edu", true},
		{"underscore local part", "john_doe@school.com", true},
		{"missing at", "johndoe.school.com", false},
		{"missing tld", "john@school", false},
		{"long tld rejected", "john@school.museum", false},
		{"uppercase local part", "John@school.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"meets all rules", "Abcdef1!", true},
		{"too short and weak", "abc", false},
		{"no uppercase", "abcdef1!", false},
		{"no lowercase", "ABCDEF1!", false},
		{"no digit", "Abcdefg!", false},
		{"no symbol", "Abcdefg1", false},
		{"too long", "Abcdef1!Abcdef1!abc", false},
		{"disallowed character", "Abcdef1! ", false},
		{"max length ok", "Abcdef1!Abcdef1!ab", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPassword(tt.password))
		})
	}
}
