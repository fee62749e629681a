// Package modelyear decodes the model year encoded at VIN position 10,
// resolving the 30-year cycle ambiguity using the character at position 7
// and clamping to the snapshot's known maximum year.
package modelyear

import "github.com/vpicgo/vindecoder/internal/charset"

// Unknown is the sentinel model year returned when position 10 is '0' or
// not present in the year-code table.
const Unknown = 0

// Decode returns the four-digit model year for yearChar (VIN position 10)
// and cycleChar (VIN position 7). If yearChar is '0' or unrecognized, it
// returns (Unknown, false). If the disambiguated year exceeds maxYear, it
// is clamped to the highest 30-year cycle not exceeding maxYear.
//
// maxYear <= 0 disables clamping (used when the snapshot carries no
// known epoch).
func Decode(yearChar, cycleChar byte, maxYear int) (year int, ok bool) {
	base, found := charset.YearBase(yearChar)
	if !found {
		return Unknown, false
	}

	year = base
	if isAlpha(cycleChar) {
		year += charset.CycleYears
	}

	if maxYear > 0 {
		for year > maxYear {
			year -= charset.CycleYears
		}
	}

	return year, true
}

func isAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
