package utils

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeInput strips all markup from user input. Tags are removed, not
// escaped, so the stored value carries no executable content.
func SanitizeInput(value string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(value))
}

// Patterns treated as a security signal rather than something to clean.
// Checked against the raw submission, independent of sanitization.
var suspiciousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)data:text/html`),
	regexp.MustCompile(`(?i)vbscript:`),
	regexp.MustCompile(`(?i)onload=`),
	regexp.MustCompile(`(?i)onerror=`),
	regexp.MustCompile(`(?i)<iframe`),
	regexp.MustCompile(`(?i)<object`),
	regexp.MustCompile(`(?i)<embed`),
}

// ContainsSuspiciousContent scans raw submitted values for known injection
// markers and returns the first matched pattern for the audit log.
func ContainsSuspiciousContent(values ...string) (bool, string) {
	for _, value := range values {
		for _, pattern := range suspiciousPatterns {
			if pattern.MatchString(value) {
				return true, pattern.String()
			}
		}
	}
	return false, ""
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail reports whether the address has a plausible mailbox shape.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePassword enforces the account password policy. Returns the rule
// violated so the caller can surface it verbatim.
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters long"
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return false, "Password must contain at least one uppercase letter"
	case !hasLower:
		return false, "Password must contain at least one lowercase letter"
	case !hasDigit:
		return false, "Password must contain at least one number"
	case !hasSpecial:
		return false, "Password must contain at least one special character"
	}

	return true, ""
}
