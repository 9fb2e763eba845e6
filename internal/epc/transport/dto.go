// Package transport provides DTOs for the EPC domain.
package transport

// EpcRecord is the current energy-performance record for a property.
// Numeric fields are pointers: absence of a figure is meaningful and must
// not be collapsed to zero.
type EpcRecord struct {
	CurrentBand string `json:"currentBand"` // A-G

	Address  string `json:"address,omitempty"`
	Postcode string `json:"postcode,omitempty"`

	FloorAreaM2       *float64 `json:"floorAreaM2,omitempty"`
	CO2EmissionsT     *float64 `json:"co2EmissionsTonnes,omitempty"`     // tonnes/year
	EnergyConsumption *float64 `json:"energyConsumptionKwhM2,omitempty"` // kWh/m2/year

	PropertyType  string `json:"propertyType,omitempty"`
	BuiltForm     string `json:"builtForm,omitempty"`
	LodgementDate string `json:"lodgementDate,omitempty"`
}
