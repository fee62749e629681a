package validate

import "fmt"

// InvalidLengthError reports a VIN whose length is not exactly 17.
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("vin: invalid length %d, expected 17", e.Length)
}

// InvalidCharacterError reports a character outside the permitted VIN
// alphabet, including the forbidden letters I, O and Q.
type InvalidCharacterError struct {
	Position int
	Char     rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("vin: invalid character %q at position %d", e.Char, e.Position)
}

// InvalidCheckDigitError reports a weighted-sum mismatch at position 9,
// raised only when check-digit correction was not requested.
type InvalidCheckDigitError struct {
	Expected byte
	Got      byte
}

func (e *InvalidCheckDigitError) Error() string {
	return fmt.Sprintf("vin: invalid check digit: expected %q, got %q", e.Expected, e.Got)
}
