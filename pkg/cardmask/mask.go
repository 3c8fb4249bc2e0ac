// Package cardmask formats payment card numbers for display, keeping a
// configurable number of leading and trailing digits and replacing the rest
// with a mask character.
//
// Example:
//
//	masked, err := cardmask.Mask("4532 1234 5678 9012", cardmask.NewOptions(
//	    cardmask.WithUnmaskedStart(4),
//	    cardmask.WithGrouping(cardmask.GroupEvery(4)),
//	))
//	// masked == "4532 **** **** 9012"
//
// All functions are pure and safe for concurrent use.
package cardmask

import (
	"strings"
)

// shortMaskLen caps the hidden run when ShowLength is false.
const shortMaskLen = 4

// Mask masks the card number in input according to o.
//
// Every non-digit character is discarded before masking. Input without
// digits yields "" whatever o holds. The only input-dependent error is
// *ValidationError.
//
// Start from DefaultOptions or NewOptions: the zero Options hides the
// length and leaves no trailing digit visible.
func Mask(input string, o Options) (string, error) {
	digits := Digits(input)
	n := len(digits)
	if n == 0 {
		return "", nil
	}

	if err := o.Validate(); err != nil {
		return "", err
	}

	if o.ValidateInput && (n < MinCardDigits || n > MaxCardDigits) {
		return "", &ValidationError{DigitCount: n}
	}

	// Windows that meet or overlap leave nothing to hide.
	if o.UnmaskedStart+o.UnmaskedEnd >= n {
		return digits, nil
	}

	masked := maskDigits(digits, o.UnmaskedStart, o.UnmaskedEnd, o.maskChar())
	if !o.ShowLength {
		masked = shorten(masked, o.UnmaskedStart, o.UnmaskedEnd, o.maskChar())
	}

	if o.PreserveSpacing && len(digits) != len(input) {
		return respace(input, masked), nil
	}

	if !o.Grouping.IsZero() {
		return applyGrouping(masked, ExpandGrouping(o.Grouping, len(masked))), nil
	}

	return string(masked), nil
}

// MustMask is like Mask but panics on error. Intended for constant inputs.
func MustMask(input string, o Options) string {
	s, err := Mask(input, o)
	if err != nil {
		panic(err)
	}
	return s
}

// IsASCIIDigit reports whether b is one of '0' through '9'.
func IsASCIIDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// Digits returns the ASCII digits of s in order.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if IsASCIIDigit(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// maskDigits requires start+end < len(digits).
func maskDigits(digits string, start, end int, maskChar rune) []rune {
	n := len(digits)
	masked := make([]rune, n)
	for i := 0; i < n; i++ {
		if i < start || i >= n-end {
			masked[i] = rune(digits[i])
		} else {
			masked[i] = maskChar
		}
	}
	return masked
}

func shorten(masked []rune, start, end int, maskChar rune) []rune {
	n := len(masked)
	hidden := n - start - end
	if hidden <= 0 {
		return masked
	}

	out := make([]rune, 0, start+min(shortMaskLen, hidden)+end)
	out = append(out, masked[:start]...)
	for i := 0; i < min(shortMaskLen, hidden); i++ {
		out = append(out, maskChar)
	}
	return append(out, masked[n-end:]...)
}

// respace walks original and substitutes each digit with the next masked
// character, copying separators through. Digits beyond the end of masked
// produce no output.
func respace(original string, masked []rune) string {
	var b strings.Builder
	b.Grow(len(original) + len(masked))

	next := 0
	for i := 0; i < len(original); i++ {
		c := original[i]
		if !IsASCIIDigit(c) {
			b.WriteByte(c)
			continue
		}
		if next < len(masked) {
			b.WriteRune(masked[next])
			next++
		}
	}
	return b.String()
}
