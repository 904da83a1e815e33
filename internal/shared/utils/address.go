package utils

import (
	"strings"
	"unicode"
)

// CityFromAddress derives a coarse city label from a free-text address.
// Addresses arrive in forms like "Rua das Flores, 123 - Centro, São Paulo - SP"
// or "Av. Brasil 42, Campinas". The city is taken from the last meaningful
// comma segment, dropping a trailing two-letter state abbreviation.
// Returns "" when nothing usable remains.
func CityFromAddress(address string) string {
	address = strings.TrimSpace(address)
	if address == "" {
		return ""
	}

	segments := strings.Split(address, ",")
	for i := len(segments) - 1; i >= 0; i-- {
		segment := strings.TrimSpace(segments[i])
		if segment == "" || isNumericSegment(segment) {
			continue
		}

		parts := strings.Split(segment, "-")
		for j := len(parts) - 1; j >= 0; j-- {
			part := strings.TrimSpace(parts[j])
			if part == "" || isNumericSegment(part) || isStateAbbreviation(part) {
				continue
			}
			return part
		}
	}

	return ""
}

func isNumericSegment(s string) bool {
	hasDigit := false
	for _, r := range s {
		if unicode.IsDigit(r) {
			hasDigit = true
			continue
		}
		if unicode.IsLetter(r) {
			return false
		}
	}
	return hasDigit
}

func isStateAbbreviation(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
