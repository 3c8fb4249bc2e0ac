package cardmask

import (
	"errors"
	"fmt"
)

const (
	// MinCardDigits and MaxCardDigits bound the digit count accepted when
	// ValidateInput is set.
	MinCardDigits = 13
	MaxCardDigits = 19
)

var (
	// ErrInvalidCardNumber matches every *ValidationError via errors.Is.
	ErrInvalidCardNumber = errors.New("Invalid card number: must be 13-19 digits")

	// ErrInvalidOptions is returned for negative unmasked counts or
	// non-positive group sizes.
	ErrInvalidOptions = errors.New("cardmask: invalid options")
)

// ValidationError is returned when ValidateInput is set and the extracted
// digit count falls outside [MinCardDigits, MaxCardDigits].
type ValidationError struct {
	DigitCount int
}

func (e *ValidationError) Error() string {
	return ErrInvalidCardNumber.Error()
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidCardNumber
}

// Detail includes the offending digit count, for logs.
func (e *ValidationError) Detail() string {
	return fmt.Sprintf("%s (got %d)", ErrInvalidCardNumber.Error(), e.DigitCount)
}

// IsValidationError reports whether err carries a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
