package validator

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	// presetNameRegex matches lower-case preset names
	// Formats: amex-receipt, visa_4_4
	presetNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,49}$`)
)

// ValidateMaskChar accepts exactly one printable, non-digit character.
// A digit mask would be indistinguishable from visible digits.
func ValidateMaskChar(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if utf8.RuneCountInString(s) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsPrint(r) && !unicode.IsDigit(r)
}

// ValidatePresetName validates a preset name used in URLs and CLI flags
func ValidatePresetName(fl validator.FieldLevel) bool {
	return presetNameRegex.MatchString(fl.Field().String())
}
