// Package resolver selects the matching WMI and pattern rows for a split
// VIN and assembles the element-name -> value mapping those rows assign.
package resolver

import (
	"github.com/vpicgo/vindecoder/internal/fields"
	"github.com/vpicgo/vindecoder/internal/modelyear"
	"github.com/vpicgo/vindecoder/internal/snapshot"
)

// Resolution is the output of resolving a VIN against the snapshot: the
// chosen WMI (zero value if none matched) and the element assignments
// the matching pattern rows produced.
type Resolution struct {
	WMI      snapshot.WMI
	WMIFound bool
	Elements map[string]string
}

// Resolve selects the matching WMI for f per the six-char-before-three-char
// precedence rule, then evaluates patterns under that WMI code in
// precomputed order, assigning each element's value on first match. When
// no WMI record matches, manufacturer/make/vehicle-type fall back to
// empty, but patterns keyed directly under f's 3-char prefix are still
// evaluated -- a pattern row's presence does not depend on a matching
// wmi table record.
func Resolve(snap *snapshot.Snapshot, f fields.Fields, modelYear int) Resolution {
	wmi, found := selectWMI(snap, f)

	res := Resolution{WMI: wmi, WMIFound: found, Elements: make(map[string]string)}

	wmiCode := wmi.WMI
	if !found {
		wmiCode = f.WMI3
	}

	for _, p := range snap.Patterns(wmiCode) {
		if !yearInScope(p.YearFrom, p.YearTo, modelYear) {
			continue
		}
		if !keyMatches(p.KeyPattern, f) {
			continue
		}
		name, ok := snap.ElementName(p.ElementID)
		if !ok {
			continue
		}
		if _, assigned := res.Elements[name]; assigned {
			continue
		}
		res.Elements[name] = p.Value
	}

	return res
}

// selectWMI implements spec §4.5: a six-char manufacturer (WMI3 prefix +
// matching positions 12-14) takes precedence over a mass-market 3-char
// WMI sharing the same prefix.
func selectWMI(snap *snapshot.Snapshot, f fields.Fields) (snapshot.WMI, bool) {
	if w, ok := snap.WMI6(f.WMI3, f.WMI6Suffix); ok {
		return w, true
	}
	if w, ok := snap.WMI3(f.WMI3); ok {
		return w, true
	}
	return snapshot.WMI{}, false
}

// yearInScope reports whether modelYear falls within [yearFrom, yearTo].
// Unbounded endpoints extend to +/-infinity. An UNKNOWN model year only
// matches patterns with no year scope at all (both endpoints unbounded).
func yearInScope(yearFrom, yearTo *int, modelYear int) bool {
	if modelYear == unknownYear {
		return yearFrom == nil && yearTo == nil
	}
	if yearFrom != nil && modelYear < *yearFrom {
		return false
	}
	if yearTo != nil && modelYear > *yearTo {
		return false
	}
	return true
}

// keyMatches reports whether key (matched against VIN positions 4..),
// with '*' as a single-position wildcard, matches f's characters.
func keyMatches(key string, f fields.Fields) bool {
	for i := 0; i < len(key); i++ {
		pos := 4 + i
		if pos > 17 {
			return false
		}
		if key[i] == '*' {
			continue
		}
		if key[i] != f.KeyChar(pos) {
			return false
		}
	}
	return true
}

// unknownYear mirrors modelyear.Unknown for readability at call sites.
const unknownYear = modelyear.Unknown
