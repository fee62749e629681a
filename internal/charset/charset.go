// Package charset holds the character tables and constants that the VIN
// syntactic core is built on: the permitted alphabet, the transliteration
// table used by the check-digit algorithm, the positional weight vector,
// and the model-year code table.
package charset

// Length is the fixed length of a VIN.
const Length = 17

// CheckDigitPosition is the 1-based position of the check digit.
const CheckDigitPosition = 9

// YearCodePosition is the 1-based position of the model-year code.
const YearCodePosition = 10

// CycleBitPosition is the 1-based position whose alphabetic/numeric class
// disambiguates the 30-year model-year cycle.
const CycleBitPosition = 7

// Weights holds the check-digit weight for each 1-based VIN position,
// Weights[0] is the weight for position 1. Position 9 (the check digit
// itself) carries weight 0.
var Weights = [Length]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

// transliteration maps each permitted letter to its check-digit value.
// I, O and Q are intentionally absent: they are forbidden VIN characters.
var transliteration = map[byte]int{
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7, 'H': 8,
	'J': 1, 'K': 2, 'L': 3, 'M': 4, 'N': 5, 'P': 7, 'R': 9,
	'S': 2, 'T': 3, 'U': 4, 'V': 5, 'W': 6, 'X': 7, 'Y': 8, 'Z': 9,
}

// forbidden holds the letters that are never valid in a VIN.
var forbidden = map[byte]bool{'I': true, 'O': true, 'Q': true}

// IsValidChar reports whether c is a permitted VIN character: a digit, or
// an uppercase letter other than I, O or Q.
func IsValidChar(c byte) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	if c < 'A' || c > 'Z' {
		return false
	}
	return !forbidden[c]
}

// Value returns the transliteration value of c for the check-digit
// algorithm: digits map to themselves, letters map per the table above.
// ok is false for any character outside the permitted alphabet.
func Value(c byte) (value int, ok bool) {
	if c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if v, present := transliteration[c]; present {
		return v, true
	}
	return 0, false
}

// yearCodes maps the position-10 character to the base model year of its
// 30-year cycle (1980-2009). A code not present here, or the digit '0',
// yields an unknown model year.
var yearCodes = map[byte]int{
	'A': 1980, 'B': 1981, 'C': 1982, 'D': 1983, 'E': 1984, 'F': 1985, 'G': 1986, 'H': 1987,
	'J': 1988, 'K': 1989, 'L': 1990, 'M': 1991, 'N': 1992, 'P': 1993, 'R': 1994, 'S': 1995,
	'T': 1996, 'V': 1997, 'W': 1998, 'X': 1999, 'Y': 2000,
	'1': 2001, '2': 2002, '3': 2003, '4': 2004, '5': 2005, '6': 2006, '7': 2007, '8': 2008, '9': 2009,
}

// YearBase returns the base (pre-2010-cycle) year for a position-10 code.
func YearBase(c byte) (year int, ok bool) {
	year, ok = yearCodes[c]
	return
}

// CycleYears is the length, in years, of the model-year ambiguity cycle.
const CycleYears = 30
