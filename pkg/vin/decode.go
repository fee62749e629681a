package vin

import (
	"sync"

	"github.com/vpicgo/vindecoder/internal/config"
	"github.com/vpicgo/vindecoder/internal/observability"
	"github.com/vpicgo/vindecoder/internal/snapshot"
	"github.com/vpicgo/vindecoder/internal/validate"
)

// DecodedVehicle is the fully resolved vehicle record. All string fields
// default to the empty string when the snapshot could not resolve them;
// an unresolved model year is modelyear.Unknown. Neither case is an
// error — only malformed input is.
type DecodedVehicle struct {
	VIN                  string
	WMICode              string
	Manufacturer         string
	Make                 string
	Model                string
	Series               string
	Trim                 string
	BodyClass            string
	VehicleType          string
	ModelYear            int
	PlantCountry         string
	PlantCity            string
	PlantCompany         string
	PlantState           string
	ElectrificationLevel string
	Description          string
}

// Decoder ties the snapshot to the validator and resolver. It holds no
// mutable state past construction and is safe for concurrent use.
type Decoder struct {
	snap *snapshot.Snapshot
	log  *observability.Logger
}

// NewDecoder builds a Decoder over an already-loaded snapshot. A nil
// logger is replaced with one that discards everything.
func NewDecoder(snap *snapshot.Snapshot, log *observability.Logger) *Decoder {
	if log == nil {
		log = observability.Nop()
	}
	return &Decoder{snap: snap, log: log}
}

// Parse validates s (optionally correcting a wrong check digit) and
// returns a VIN without decoding it. Decoding happens lazily on first
// accessor call.
func (d *Decoder) Parse(s string, correctCheckDigit bool) (*VIN, error) {
	result, err := validate.Validate(s, correctCheckDigit)
	if err != nil {
		return nil, translateError(err)
	}
	return newVIN(result.Canonical, d.snap), nil
}

// Decode validates s (without correction) and fully resolves it against
// the snapshot, returning a populated DecodedVehicle. Malformed input
// returns an error; an incomplete snapshot does not.
func (d *Decoder) Decode(s string) (DecodedVehicle, error) {
	v, err := d.Parse(s, false)
	if err != nil {
		return DecodedVehicle{}, err
	}

	vehicle := v.decode()
	if vehicle.Manufacturer == "" {
		d.log.Debug().Str("wmi", v.fields.WMI3).Msg("wmi not resolved against snapshot")
	}

	return DecodedVehicle{
		VIN:                  v.String(),
		WMICode:              vehicle.WMICode,
		Manufacturer:         vehicle.Manufacturer,
		Make:                 vehicle.Make,
		Model:                vehicle.Model,
		Series:               vehicle.Series,
		Trim:                 vehicle.Trim,
		BodyClass:            vehicle.BodyClass,
		VehicleType:          vehicle.VehicleType,
		ModelYear:            vehicle.ModelYear,
		PlantCountry:         vehicle.PlantCountry,
		PlantCity:            vehicle.PlantCity,
		PlantCompany:         vehicle.PlantCompany,
		PlantState:           vehicle.PlantState,
		ElectrificationLevel: vehicle.ElectrificationLevel,
		Description:          vehicle.Description,
	}, nil
}

// VPICVersion returns the version string and release date of the
// snapshot backing this Decoder.
func (d *Decoder) VPICVersion() (version, releaseDate string) {
	return d.snap.VPICVersion()
}

var (
	defaultOnce    sync.Once
	defaultDecoder *Decoder
	defaultErr     error
)

// Default returns the process-wide Decoder, built on first call from
// the environment's configuration (an optional snapshot script override
// plus log level/format) and the embedded vPIC snapshot.
func Default() (*Decoder, error) {
	defaultOnce.Do(func() {
		cfg, err := config.Load("")
		if err != nil {
			defaultErr = err
			return
		}
		log := observability.NewLogger(observability.LogConfig{
			Level:  cfg.Observability.LogLevel,
			Format: cfg.Observability.LogFormat,
		})

		snap, err := snapshot.Default(cfg.Snapshot.ScriptPath, log)
		if err != nil {
			defaultErr = ErrSnapshotUnavailable
			return
		}
		defaultDecoder = NewDecoder(snap, log)
	})
	return defaultDecoder, defaultErr
}

// Parse validates s against the default process-wide Decoder.
func Parse(s string, correctCheckDigit bool) (*VIN, error) {
	d, err := Default()
	if err != nil {
		return nil, err
	}
	return d.Parse(s, correctCheckDigit)
}

// Decode decodes s against the default process-wide Decoder.
func Decode(s string) (DecodedVehicle, error) {
	d, err := Default()
	if err != nil {
		return DecodedVehicle{}, err
	}
	return d.Decode(s)
}

// VPICVersion returns the version and release date of the default
// process-wide snapshot.
func VPICVersion() (version, releaseDate string, err error) {
	d, err := Default()
	if err != nil {
		return "", "", err
	}
	version, releaseDate = d.VPICVersion()
	return version, releaseDate, nil
}
