// Package assembler merges a resolver.Resolution into the decoded
// vehicle fields and formats the vehicle's description string.
package assembler

import (
	"strconv"
	"strings"

	"github.com/vpicgo/vindecoder/internal/modelyear"
	"github.com/vpicgo/vindecoder/internal/resolver"
)

// Vehicle holds every field of a decoded vehicle except the VIN itself,
// which the public facade attaches separately.
type Vehicle struct {
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

// Assemble populates a Vehicle from a pattern resolution and the already
// decoded model year. Manufacturer always comes from the WMI; Make and
// Vehicle Type fall back to the WMI's own fields when no pattern assigned
// them.
func Assemble(res resolver.Resolution, modelYear int) Vehicle {
	v := Vehicle{ModelYear: modelYear}

	if res.WMIFound {
		v.WMICode = res.WMI.WMI
		v.Manufacturer = res.WMI.ManufacturerName
	}

	v.Make = res.Elements["Make"]
	if v.Make == "" {
		v.Make = res.WMI.MakeName
	}
	v.Model = res.Elements["Model"]
	v.Series = res.Elements["Series"]
	v.Trim = res.Elements["Trim"]
	v.BodyClass = res.Elements["Body Class"]
	v.VehicleType = res.Elements["Vehicle Type"]
	if v.VehicleType == "" {
		v.VehicleType = res.WMI.VehicleTypeCode
	}
	v.PlantCountry = res.Elements["Plant Country"]
	v.PlantCity = res.Elements["Plant City"]
	v.PlantCompany = res.Elements["Plant Company Name"]
	v.PlantState = res.Elements["Plant State"]
	v.ElectrificationLevel = res.Elements["Electrification Level"]

	v.Description = describe(modelYear, v.Make, v.Model, v.Series, v.Trim)

	return v
}

// describe joins the non-empty fields among [year, make, model, series,
// trim], in that order, with single spaces.
func describe(modelYear int, make_, model, series, trim string) string {
	parts := make([]string, 0, 5)
	if modelYear != modelyear.Unknown {
		parts = append(parts, strconv.Itoa(modelYear))
	}
	for _, p := range []string{make_, model, series, trim} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
