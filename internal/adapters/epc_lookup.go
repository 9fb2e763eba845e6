package adapters

import (
	"context"

	"retrofit_analysis_backend/internal/analysis/ports"
	"retrofit_analysis_backend/internal/epc"
)

// EpcLookupAdapter exposes the EPC module's record lookup to the analysis
// engine.
type EpcLookupAdapter struct {
	svc epc.EpcService
}

func NewEpcLookupAdapter(svc epc.EpcService) *EpcLookupAdapter {
	return &EpcLookupAdapter{svc: svc}
}

func (a *EpcLookupAdapter) GetByAddress(ctx context.Context, address string) (*ports.EpcData, error) {
	record, err := a.svc.GetByAddress(ctx, address)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return &ports.EpcData{
		CurrentBand:       record.CurrentBand,
		FloorAreaM2:       record.FloorAreaM2,
		CO2EmissionsT:     record.CO2EmissionsT,
		EnergyConsumption: record.EnergyConsumption,
	}, nil
}

var _ ports.EpcLookup = (*EpcLookupAdapter)(nil)
