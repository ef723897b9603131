package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var reDigitsOnly = regexp.MustCompile(`^\d+$`)

// NormalizePhoneNumber trims spaces, removes inner spaces and dashes, and
// guarantees a single leading '+'. Shared-member lookups match on this exact
// form, so every write path must go through here.
func NormalizePhoneNumber(input string) string {
	s := strings.TrimSpace(input)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return ""
	}
	return "+" + s
}

// ValidatePhoneNumber enforces a normalized E.164 form:
// leading '+', digits only, 10..15 digits, country code not starting with 0.
func ValidatePhoneNumber(phoneNumber string) error {
	if strings.TrimSpace(phoneNumber) == "" {
		return fmt.Errorf("phone is required")
	}
	if !strings.HasPrefix(phoneNumber, "+") {
		return fmt.Errorf("phone must start with '+'")
	}
	digits := strings.TrimPrefix(phoneNumber, "+")
	if !reDigitsOnly.MatchString(digits) {
		return fmt.Errorf("phone must contain digits only after '+'")
	}
	if strings.HasPrefix(digits, "0") {
		return fmt.Errorf("phone must include country code (must not start with 0)")
	}
	if len(digits) < 10 || len(digits) > 15 {
		return fmt.Errorf("phone must be 10 to 15 digits in international format")
	}
	return nil
}
