package auth

import (
	"strings"
	"unicode/utf8"
)

// MinPasswordLength is the floor enforced on every password, including the
// profile-update path which skips the full complexity check. Length is
// measured in characters, not bytes.
const MinPasswordLength = 8

const specialChars = "!@#$%^&*"

// ValidPassword reports whether a password satisfies the registration policy:
// at least MinPasswordLength characters with at least one lowercase letter,
// one uppercase letter, one digit, and one of !@#$%^&*. Only ASCII letters
// and digits satisfy the class requirements; other runes count toward the
// length only.
func ValidPassword(password string) bool {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return false
	}

	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case 'a' <= r && r <= 'z':
			lower = true
		case 'A' <= r && r <= 'Z':
			upper = true
		case '0' <= r && r <= '9':
			digit = true
		case strings.ContainsRune(specialChars, r):
			special = true
		}
	}
	return lower && upper && digit && special
}
