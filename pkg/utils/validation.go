package utils

import (
	"regexp"
	"strings"
)

// MinPasswordLen is the minimum accepted password length on account creation.
const MinPasswordLen = 6

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks if an email address is valid.
func ValidateEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

// ValidatePhone checks an E.164-ish phone number.
func ValidatePhone(phone string) bool {
	e164Regex := regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)
	return e164Regex.MatchString(phone)
}
