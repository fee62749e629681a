// Package vin is the public facade: validate and decode 17-character
// Vehicle Identification Numbers against the bundled vPIC snapshot.
package vin

import (
	"sync"

	"github.com/vpicgo/vindecoder/internal/assembler"
	"github.com/vpicgo/vindecoder/internal/fields"
	"github.com/vpicgo/vindecoder/internal/modelyear"
	"github.com/vpicgo/vindecoder/internal/resolver"
	"github.com/vpicgo/vindecoder/internal/snapshot"
)

// VIN is a validated, immutable 17-character Vehicle Identification
// Number. Its decoded fields are computed lazily on first access and
// memoized; every accessor thereafter is a pure function of the
// instance.
type VIN struct {
	canonical string
	fields    fields.Fields
	snap      *snapshot.Snapshot

	once    sync.Once
	vehicle assembler.Vehicle
}

func newVIN(canonical string, snap *snapshot.Snapshot) *VIN {
	return &VIN{canonical: canonical, fields: fields.Split(canonical), snap: snap}
}

// String returns the canonical (possibly check-digit-corrected)
// 17-character VIN.
func (v *VIN) String() string {
	return v.canonical
}

func (v *VIN) decode() assembler.Vehicle {
	v.once.Do(func() {
		year, _ := modelyear.Decode(v.fields.YearChar, v.fields.CycleChar, v.snap.MaxYear())
		res := resolver.Resolve(v.snap, v.fields, year)
		v.vehicle = assembler.Assemble(res, year)
	})
	return v.vehicle
}

// WMICode returns the resolved World Manufacturer Identifier, or the
// empty string if none matched the snapshot.
func (v *VIN) WMICode() string { return v.decode().WMICode }

// Manufacturer returns the resolved manufacturer name, or empty.
func (v *VIN) Manufacturer() string { return v.decode().Manufacturer }

// Make returns the resolved make, falling back to the WMI's make when
// no pattern assigned one.
func (v *VIN) Make() string { return v.decode().Make }

// Model returns the resolved model, or empty if unresolved.
func (v *VIN) Model() string { return v.decode().Model }

// Series returns the resolved series, or empty if unresolved.
func (v *VIN) Series() string { return v.decode().Series }

// Trim returns the resolved trim, or empty if unresolved.
func (v *VIN) Trim() string { return v.decode().Trim }

// BodyClass returns the resolved body class, or empty if unresolved.
func (v *VIN) BodyClass() string { return v.decode().BodyClass }

// VehicleType returns the resolved vehicle type, falling back to the
// WMI's vehicle type code when no pattern assigned one.
func (v *VIN) VehicleType() string { return v.decode().VehicleType }

// ModelYear returns the decoded model year, or modelyear.Unknown if
// position 10 was '0' or unrecognized.
func (v *VIN) ModelYear() int { return v.decode().ModelYear }

// PlantCountry returns the resolved assembly plant country, or empty.
func (v *VIN) PlantCountry() string { return v.decode().PlantCountry }

// PlantCity returns the resolved assembly plant city, or empty.
func (v *VIN) PlantCity() string { return v.decode().PlantCity }

// PlantCompany returns the resolved assembly plant company, or empty.
func (v *VIN) PlantCompany() string { return v.decode().PlantCompany }

// PlantState returns the resolved assembly plant state, or empty.
func (v *VIN) PlantState() string { return v.decode().PlantState }

// ElectrificationLevel returns the resolved electrification level, or
// empty if unresolved.
func (v *VIN) ElectrificationLevel() string { return v.decode().ElectrificationLevel }

// Description is "{model_year} {make} {model} {series} {trim}" with
// empty parts elided and single spaces.
func (v *VIN) Description() string { return v.decode().Description }
