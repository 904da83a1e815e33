package utils

import "strings"

// NormalizePhone strips everything but digits and ensures the number carries
// the given country code. Numbers that already start with the country code
// are left alone, so normalization is idempotent.
func NormalizePhone(raw, countryCode string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	if countryCode != "" && !strings.HasPrefix(digits, countryCode) {
		digits = countryCode + digits
	}
	return digits
}
