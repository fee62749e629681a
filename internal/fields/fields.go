// Package fields partitions a validated 17-character VIN into its WMI,
// VDS, check-digit, and VIS components. Splitting never fails: it is a
// pure function over an already-validated string.
package fields

// Fields is the partitioned view of a VIN. All indices below are
// 1-based VIN positions translated to the corresponding substring.
type Fields struct {
	// Raw is the full 17-character canonical VIN.
	Raw string
	// WMI3 is positions 1-3, the World Manufacturer Identifier.
	WMI3 string
	// WMI6Suffix is positions 12-14, used by specialized (6-char WMI)
	// manufacturers in combination with WMI3.
	WMI6Suffix string
	// VDS is positions 4-8, the Vehicle Descriptor Section.
	VDS string
	// CheckChar is position 9.
	CheckChar byte
	// VIS is positions 10-17, the Vehicle Identifier Section.
	VIS string
	// YearChar is position 10, the model-year code.
	YearChar byte
	// CycleChar is position 7, which disambiguates the 30-year cycle.
	CycleChar byte
	// PlantChar is position 11, the assembly plant code.
	PlantChar byte
}

// Split partitions vin, which must already be a validated 17-character
// canonical VIN, into its component fields.
func Split(vin string) Fields {
	return Fields{
		Raw:        vin,
		WMI3:       vin[0:3],
		WMI6Suffix: vin[11:14],
		VDS:        vin[3:8],
		CheckChar:  vin[8],
		VIS:        vin[9:17],
		YearChar:   vin[9],
		CycleChar:  vin[6],
		PlantChar:  vin[10],
	}
}

// KeyChar returns the VIN character at 1-based position p. Used by the
// pattern resolver to match key_pattern characters against positions that
// may extend past the VDS (up to position 10).
func (f Fields) KeyChar(p int) byte {
	return f.Raw[p-1]
}
