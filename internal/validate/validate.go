// Package validate implements the VIN syntactic validator: length and
// character-set enforcement plus the weighted check-digit algorithm from
// 49 CFR Part 565.
package validate

import (
	"github.com/vpicgo/vindecoder/internal/charset"
)

// Result is the outcome of a successful validation. Canonical is always
// 17 characters, uppercase, and carries a correct check digit in
// position 9 (corrected in place when correction was requested).
type Result struct {
	Canonical string
	Corrected bool
}

// CheckDigit computes the expected check-digit character ('0'-'9' or 'X')
// for a 17-character, already-uppercased VIN. It ignores whatever
// character currently occupies position 9, since that position carries
// weight 0 in the algorithm.
func CheckDigit(vin string) (byte, error) {
	sum := 0
	for i := 0; i < charset.Length; i++ {
		c := vin[i]
		if i == charset.CheckDigitPosition-1 {
			// Position 9's own value never contributes (weight 0); it may
			// hold any placeholder character while still needing the
			// remaining positions validated below.
			continue
		}
		v, ok := charset.Value(c)
		if !ok {
			return 0, &InvalidCharacterError{Position: i + 1, Char: rune(c)}
		}
		sum += v * charset.Weights[i]
	}
	r := sum % 11
	if r == 10 {
		return 'X', nil
	}
	return byte('0' + r), nil
}

// Validate canonicalizes s (uppercasing ASCII letters), enforces length
// and character-set constraints, and checks the weighted check digit.
// When correctCheckDigit is false, a mismatched check digit is reported
// as an *InvalidCheckDigitError. When true, position 9 is replaced with
// the computed value and validation proceeds.
func Validate(s string, correctCheckDigit bool) (Result, error) {
	if len(s) != charset.Length {
		return Result{}, &InvalidLengthError{Length: len(s)}
	}

	buf := []byte(s)
	for i, c := range buf {
		if c > 127 {
			return Result{}, &InvalidCharacterError{Position: i + 1, Char: rune(c)}
		}
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
			buf[i] = c
		}
		if !charset.IsValidChar(c) {
			return Result{}, &InvalidCharacterError{Position: i + 1, Char: rune(c)}
		}
	}

	expected, err := CheckDigit(string(buf))
	if err != nil {
		return Result{}, err
	}

	got := buf[charset.CheckDigitPosition-1]
	corrected := false
	if got != expected {
		if !correctCheckDigit {
			return Result{}, &InvalidCheckDigitError{Expected: expected, Got: got}
		}
		buf[charset.CheckDigitPosition-1] = expected
		corrected = true
	}

	return Result{Canonical: string(buf), Corrected: corrected}, nil
}
