package validation

import (
	"regexp"
	"strings"
	"unicode"
)

// Validation rule patterns
var (
	// EmailPattern matches a plain local@domain.tld address with an
	// optional single dot or underscore inside the local part.
	EmailPattern = `^[a-z0-9]+[._]?[a-z0-9]+@\w+\.\w{2,3}$`

	// PasswordSymbols is the set of symbols a password may (and must) contain.
	PasswordSymbols = "@$!#%*?&"

	// Password length bounds
	PasswordMinLength = 8
	PasswordMaxLength = 18
)

var emailRegex = regexp.MustCompile(EmailPattern)

// IsValidEmail reports whether the address has a valid shape.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPassword reports whether a password satisfies the policy:
// 8-18 characters, at least one lowercase letter, one uppercase letter,
// one digit and one symbol from PasswordSymbols, with no characters
// outside those classes.
func IsValidPassword(password string) bool {
	if len(password) < PasswordMinLength || len(password) > PasswordMaxLength {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, char := range password {
		switch {
		case char >= 'a' && char <= 'z':
			hasLower = true
		case char >= 'A' && char <= 'Z':
			hasUpper = true
		case unicode.IsDigit(char):
			hasDigit = true
		case strings.ContainsRune(PasswordSymbols, char):
			hasSymbol = true
		default:
			return false
		}
	}

	return hasLower && hasUpper && hasDigit && hasSymbol
}
