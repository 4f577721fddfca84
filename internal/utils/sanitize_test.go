package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text passes through", "Acme Corp", "Acme Corp"},
		{"script tag is stripped", "<script>alert(1)</script>hello", "hello"},
		{"nested markup is stripped", "<div><b>bold</b> text</div>", "bold text"},
		{"surrounding whitespace is trimmed", "  hello  ", "hello"},
		{"image with handler is stripped", `<img src=x onerror=alert(1)>safe`, "safe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeInput(tt.input))
		})
	}
}

func TestContainsSuspiciousContent(t *testing.T) {
	tests := []struct {
		name       string
		values     []string
		suspicious bool
	}{
		{"clean input", []string{"Acme Corp", "Build a website", "Go"}, false},
		{"script tag", []string{"<script>alert(1)</script>"}, true},
		{"script tag mixed case", []string{"<ScRiPt>x</ScRiPt>"}, true},
		{"javascript url", []string{"javascript:alert(1)"}, true},
		{"onerror handler", []string{`<img src=x onerror=alert(1)>`}, true},
		{"iframe", []string{"before <iframe src=evil> after"}, true},
		{"marker in any value", []string{"clean", "clean", "vbscript:msgbox"}, true},
		{"angle brackets alone are fine", []string{"a < b and b > c"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suspicious, pattern := ContainsSuspiciousContent(tt.values...)
			assert.Equal(t, tt.suspicious, suspicious)
			if tt.suspicious {
				assert.NotEmpty(t, pattern)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("user@example.com"))
	assert.True(t, ValidateEmail("first.last+tag@sub.example.co"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("user@"))
	assert.False(t, ValidateEmail("@example.com"))
	assert.False(t, ValidateEmail("user@example"))
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		ok       bool
		message  string
	}{
		{"valid", "Str0ng!pass", true, ""},
		{"too short", "Ab1!", false, "Password must be at least 8 characters long"},
		{"missing uppercase", "weakpass1!", false, "Password must contain at least one uppercase letter"},
		{"missing lowercase", "WEAKPASS1!", false, "Password must contain at least one lowercase letter"},
		{"missing digit", "Weakpass!!", false, "Password must contain at least one number"},
		{"missing special", "Weakpass11", false, "Password must contain at least one special character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := ValidatePassword(tt.password)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.message, msg)
		})
	}
}
