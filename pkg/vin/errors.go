package vin

import (
	"errors"
	"fmt"

	"github.com/vpicgo/vindecoder/internal/validate"
)

// Sentinel errors for errors.Is checks. Every typed error below unwraps
// to exactly one of these.
var (
	ErrInvalidLength     = errors.New("vin: invalid length")
	ErrInvalidCharacter  = errors.New("vin: invalid character")
	ErrInvalidCheckDigit = errors.New("vin: invalid check digit")
	// ErrSnapshotUnavailable is returned when the bundled reference-data
	// snapshot could not be loaded at first use. It is not recoverable
	// locally.
	ErrSnapshotUnavailable = errors.New("vin: snapshot unavailable")
)

// InvalidLengthError reports a VIN whose length is not exactly 17.
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("vin: invalid length %d, expected 17", e.Length)
}

func (e *InvalidLengthError) Unwrap() error { return ErrInvalidLength }

// InvalidCharacterError reports a character outside the permitted VIN
// alphabet, including the forbidden letters I, O and Q.
type InvalidCharacterError struct {
	Position int
	Char     rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("vin: invalid character %q at position %d", e.Char, e.Position)
}

func (e *InvalidCharacterError) Unwrap() error { return ErrInvalidCharacter }

// InvalidCheckDigitError reports a weighted-sum mismatch at position 9,
// returned only when check-digit correction was not requested.
type InvalidCheckDigitError struct {
	Expected byte
	Got      byte
}

func (e *InvalidCheckDigitError) Error() string {
	return fmt.Sprintf("vin: invalid check digit: expected %q, got %q", e.Expected, e.Got)
}

func (e *InvalidCheckDigitError) Unwrap() error { return ErrInvalidCheckDigit }

// translateError maps an internal/validate error to its exported
// counterpart in this package.
func translateError(err error) error {
	switch e := err.(type) {
	case *validate.InvalidLengthError:
		return &InvalidLengthError{Length: e.Length}
	case *validate.InvalidCharacterError:
		return &InvalidCharacterError{Position: e.Position, Char: e.Char}
	case *validate.InvalidCheckDigitError:
		return &InvalidCheckDigitError{Expected: e.Expected, Got: e.Got}
	default:
		return err
	}
}
