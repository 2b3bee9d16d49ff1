package utils

import "strings"

// MaskPhone keeps the first three and last three digits of a phone number.
// Example: "0987654321" -> "098****321"
func MaskPhone(phone string) string {
	if len(phone) <= 6 {
		return "***"
	}
	return phone[:3] + strings.Repeat("*", len(phone)-6) + phone[len(phone)-3:]
}
