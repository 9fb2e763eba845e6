package service

import (
	"math"
	"strings"

	"retrofit_analysis_backend/internal/analysis/catalog"
	"retrofit_analysis_backend/internal/analysis/ports"
	"retrofit_analysis_backend/internal/analysis/transport"
)

const (
	// goalBand is the minimum EPC band the projection is measured against.
	goalBand = "C"
	// defaultBand stands in when no EPC record is available.
	defaultBand = "D"
)

// bandOrder lists EPC bands worst to best.
var bandOrder = []string{"G", "F", "E", "D", "C", "B", "A"}

func bandIndex(band string) (int, bool) {
	band = strings.ToUpper(strings.TrimSpace(band))
	for i, b := range bandOrder {
		if b == band {
			return i, true
		}
	}
	return 0, false
}

// projectCompliance estimates the property's EPC position after all selected
// improvements are applied. Band uplift steps are summed across improvements
// and rounded to whole bands; the projection never exceeds band A and never
// falls below the current band.
func projectCompliance(epcData *ports.EpcData, defs []catalog.Definition) transport.EnergyCompliance {
	compliance := transport.EnergyCompliance{
		CurrentBand: defaultBand,
		// Defaulted bands are flagged so the caller knows the figure is a
		// national-stock assumption rather than a lodged certificate.
		CurrentBandEstimated: true,
		GoalBand:             goalBand,
	}

	if epcData != nil {
		if _, ok := bandIndex(epcData.CurrentBand); ok {
			compliance.CurrentBand = strings.ToUpper(strings.TrimSpace(epcData.CurrentBand))
			compliance.CurrentBandEstimated = false
		}
		compliance.CurrentCO2EmissionsT = epcData.CO2EmissionsT
		compliance.CurrentEnergyKwhM2 = epcData.EnergyConsumption
	}

	currentIdx, _ := bandIndex(compliance.CurrentBand)

	var upliftSteps float64
	var co2SavingsKg float64
	for _, def := range defs {
		upliftSteps += def.EPCUpliftSteps
		co2SavingsKg += def.AnnualCO2SavingsKg
	}

	projectedIdx := currentIdx + int(math.Round(upliftSteps))
	if projectedIdx > len(bandOrder)-1 {
		projectedIdx = len(bandOrder) - 1
	}
	if projectedIdx < currentIdx {
		projectedIdx = currentIdx
	}
	compliance.ProjectedBand = bandOrder[projectedIdx]

	if compliance.CurrentCO2EmissionsT != nil {
		projected := math.Max(*compliance.CurrentCO2EmissionsT-co2SavingsKg/1000, 0)
		projected = round2(projected)
		compliance.ProjectedCO2EmissionsT = &projected
	}

	goalIdx, _ := bandIndex(goalBand)
	compliance.MeetsGoal = projectedIdx >= goalIdx
	if goalIdx > projectedIdx {
		compliance.BandsToGoal = goalIdx - projectedIdx
	}

	return compliance
}
