package password

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// characters accepted as the special-character class
var SPECIAL_CHARS = "@$!%*?&"

var MIN_LENGTH = 8
var MAX_LENGTH = 12

// passwords older than this are flagged as expired on login
var MAX_PASSWORD_AGE = 90 * 24 * time.Hour

type Strength string

const (
	StrengthWeak   Strength = "Weak"
	StrengthFair   Strength = "Fair"
	StrengthGood   Strength = "Good"
	StrengthStrong Strength = "Strong"
)

// ValidateComplexity checks a candidate password against the registration policy:
// 8 to 12 characters, at least one lowercase, uppercase, digit and special
// character, and nothing outside those classes.
func ValidateComplexity(password string) (bool, string) {
	if len(password) < MIN_LENGTH || len(password) > MAX_LENGTH {
		return false, "Password must be between 8 and 12 characters long."
	}

	hasLower, hasUpper, hasDigit, hasSpecial := false, false, false, false
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case strings.ContainsRune(SPECIAL_CHARS, c):
			hasSpecial = true
		default:
			return false, "Password must include uppercase, lowercase, number, and special character."
		}
	}

	if !hasLower || !hasUpper || !hasDigit || !hasSpecial {
		return false, "Password must include uppercase, lowercase, number, and special character."
	}

	return true, ""
}

// AssessStrength gives real-time feedback while the user types a password.
// One point per satisfied check, capped at Strong.
func AssessStrength(password string) Strength {
	score := 0

	if len(password) >= 8 {
		score++
	}
	if len(password) >= 12 {
		score++
	}
	if strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		score++
	}
	if strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyz") {
		score++
	}
	if strings.ContainsAny(password, "0123456789") {
		score++
	}
	if strings.ContainsAny(password, SPECIAL_CHARS) {
		score++
	}

	buckets := []Strength{StrengthWeak, StrengthFair, StrengthGood, StrengthStrong}
	if score > 3 {
		score = 3
	}
	return buckets[score]
}

// CheckHistory reports whether the candidate password may be used, i.e. it does
// not match any previously stored hash. Comparison is one-way, hashes are never
// decrypted.
func CheckHistory(history []string, candidate string) bool {
	for _, oldHash := range history {
		if bcrypt.CompareHashAndPassword([]byte(oldHash), []byte(candidate)) == nil {
			return false
		}
	}
	return true
}

// Expired reports whether a password set at changedAt has outlived the maximum
// password age.
func Expired(changedAt time.Time) bool {
	if changedAt.IsZero() {
		return false
	}
	return time.Since(changedAt) > MAX_PASSWORD_AGE
}
