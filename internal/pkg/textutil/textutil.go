// Package textutil carries the defensive input plumbing shared by both form
// stages: cosmetic formatters for waste codes and phone numbers, comma-tolerant
// decimal parsing and free-text sanitization.
package textutil

import (
	"regexp"
	"strconv"
	"strings"
)

// emailRe is a superficial shape check only; no network verification.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// urlRe blocks javascript: style schemes on image URLs.
var urlRe = regexp.MustCompile(`(?i)^https?://`)

// maxWasteCodeDigits bounds a waste code: 3 groups of 2 digits.
const maxWasteCodeDigits = 6

const (
	maxPhoneDigitsLocal = 9
	maxPhoneDigitsIntl  = 15
)

// FormatWasteCode strips every non-digit, caps at 6 digits and regroups them
// in pairs separated by single spaces. Idempotent; purely cosmetic, no
// registry validation.
func FormatWasteCode(s string) string {
	digits := keepDigits(s)
	if len(digits) > maxWasteCodeDigits {
		digits = digits[:maxWasteCodeDigits]
	}
	return groupDigits(digits, 2)
}

// FormatPhone strips every non-digit, caps at 9 digits and regroups them in
// blocks of 3. A leading + is preserved and raises the cap to 15 digits for
// international numbers. Idempotent.
func FormatPhone(s string) string {
	s = strings.TrimSpace(s)
	intl := strings.HasPrefix(s, "+")
	digits := keepDigits(s)
	max := maxPhoneDigitsLocal
	if intl {
		max = maxPhoneDigitsIntl
	}
	if len(digits) > max {
		digits = digits[:max]
	}
	out := groupDigits(digits, 3)
	if intl && out != "" {
		out = "+" + out
	}
	return out
}

// ParseDecimal parses a user-typed number, accepting a comma as the decimal
// separator. Anything unparseable coerces to 0; it never fails.
func ParseDecimal(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// SanitizeText neutralizes markup by entity-encoding angle brackets and trims
// surrounding whitespace. Applied to every free-text field before staging and
// again before the final insert.
func SanitizeText(s string) string {
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return strings.TrimSpace(s)
}

// IsValidEmail does a shape check matching the form-side rule.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidURL accepts empty (the field is optional) or an http/https URL.
func IsValidURL(url string) bool {
	if url == "" {
		return true
	}
	return urlRe.MatchString(url)
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func groupDigits(digits string, size int) string {
	if digits == "" {
		return ""
	}
	var groups []string
	for i := 0; i < len(digits); i += size {
		end := i + size
		if end > len(digits) {
			end = len(digits)
		}
		groups = append(groups, digits[i:end])
	}
	return strings.Join(groups, " ")
}
