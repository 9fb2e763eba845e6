package service

import (
	"fmt"
	"math"

	"retrofit_analysis_backend/internal/analysis/catalog"
	"retrofit_analysis_backend/internal/analysis/transport"
)

// estimateCost prices an improvement from its per-m² rate and the property
// floor area, applying the grant deduction where the catalog defines one.
// The grant never pushes the net cost below the catalog floor.
func estimateCost(def catalog.Definition, floorAreaM2 float64, areaFromEPC bool) (float64, string) {
	gross := def.CostPerM2 * floorAreaM2

	areaSource := "assumed floor area"
	if areaFromEPC {
		areaSource = "EPC floor area"
	}

	if def.GrantDeduction > 0 {
		net := math.Max(gross-def.GrantDeduction, def.MinCostAfterGrant)
		explanation := fmt.Sprintf(
			"%.0f/m² over %.0f m² (%s), less %.0f grant deduction",
			def.CostPerM2, floorAreaM2, areaSource, def.GrantDeduction,
		)
		return round2(net), explanation
	}

	explanation := fmt.Sprintf("%.0f/m² over %.0f m² (%s)", def.CostPerM2, floorAreaM2, areaSource)
	return round2(gross), explanation
}

// estimateROI adjusts the catalog baseline ROI by the feasibility rating.
// With no local evidence at all the baseline is used as-is: the rating is
// LOW for lack of data, not because the area rejects such work.
func estimateROI(def catalog.Definition, feasibility transport.FeasibilityResult, adjustment float64) float64 {
	baseline := def.BaselineROIPercent
	if len(feasibility.Examples) == 0 {
		return round2(baseline)
	}
	switch feasibility.Rating {
	case transport.RatingHigh:
		return round2(baseline * (1 + adjustment))
	case transport.RatingLow:
		return round2(baseline * (1 - adjustment))
	default:
		return round2(baseline)
	}
}

// greenPremium converts an ROI percentage into an absolute value uplift.
func greenPremium(cost, roiPercent float64) float64 {
	return round2(cost * roiPercent / 100)
}

func valueExplanation(feasibility transport.FeasibilityResult, roiPercent float64) string {
	if feasibility.ApprovedExamples > 0 {
		return fmt.Sprintf(
			"Based on %d comparable local approvals; estimated %.1f%% uplift on installation cost",
			feasibility.ApprovedExamples, roiPercent,
		)
	}
	if len(feasibility.Examples) > 0 {
		return fmt.Sprintf(
			"No local approvals found; baseline uplift of %.1f%% adjusted for local outcomes",
			roiPercent,
		)
	}
	return fmt.Sprintf("No local planning evidence; using baseline uplift of %.1f%%", roiPercent)
}

// round2 rounds to two decimal places for money and percentage figures.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
