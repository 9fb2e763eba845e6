package ports

import "context"

// EpcData contains the EPC fields the analysis domain cares about.
// Numeric figures are pointers: absence is meaningful, never zero.
type EpcData struct {
	CurrentBand       string // A-G
	FloorAreaM2       *float64
	CO2EmissionsT     *float64 // tonnes/year
	EnergyConsumption *float64 // kWh/m2/year
}

// EpcLookup fetches the current energy-performance record for a property.
// A nil record is a legitimate, expected outcome: not every property has one.
type EpcLookup interface {
	GetByAddress(ctx context.Context, address string) (*EpcData, error)
}
