package logger

import (
	"strings"

	"github.com/changhyeonkim/cardmask/pkg/cardmask"
)

// Example: john.doe@gmail.com -> j***@gmail.com
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***@***"
	}

	username := parts[0]
	domain := parts[1]

	if len(username) == 0 {
		return "***@" + domain
	}

	// Keep only first character of username
	return username[:1] + "***@" + domain
}

// logCardOptions keeps the last 4 digits and hides the digit count.
var logCardOptions = cardmask.NewOptions(cardmask.WithShowLength(false))

// MaskCard renders a card number for logs.
// Example: 4532-1234-5678-9012 -> ****9012, 1234 -> ****
func MaskCard(number string) string {
	digits := cardmask.Digits(number)
	if digits == "" {
		return ""
	}
	// Short inputs would otherwise be logged verbatim by the bypass rule.
	if len(digits) <= cardmask.DefaultUnmaskedEnd*2 {
		return "****"
	}

	masked, err := cardmask.Mask(digits, logCardOptions)
	if err != nil {
		return "****"
	}
	return masked
}
