package utils

import (
	"regexp"
	"strings"
)

var (
	phonePattern       = regexp.MustCompile(`^(0|\+84)[0-9]{9,10}$`)
	bankAccountPattern = regexp.MustCompile(`^[0-9]{6,16}$`)
	phoneSeparators    = strings.NewReplacer(" ", "", "-", "", ".", "")
)

// NormalizePhone strips the separators people commonly type inside phone numbers.
func NormalizePhone(phone string) string {
	return phoneSeparators.Replace(strings.TrimSpace(phone))
}

// IsPhoneNumber reports whether s looks like a Vietnamese mobile or landline number.
func IsPhoneNumber(s string) bool {
	return phonePattern.MatchString(NormalizePhone(s))
}

// IsBankAccount reports whether s looks like a bank account number.
func IsBankAccount(s string) bool {
	return bankAccountPattern.MatchString(NormalizePhone(s))
}
