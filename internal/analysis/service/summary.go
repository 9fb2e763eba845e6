package service

import (
	"fmt"
	"strings"

	"retrofit_analysis_backend/internal/analysis/transport"
)

// buildSummary renders the one-paragraph human-readable conclusion of a
// report. It restates the headline figures already present in the report and
// introduces no new facts.
func buildSummary(report *transport.AnalysisReport) string {
	var b strings.Builder

	names := make([]string, 0, len(report.Improvements))
	highCount := 0
	for _, imp := range report.Improvements {
		names = append(names, imp.DisplayName)
		if imp.Feasibility.Rating == transport.RatingHigh {
			highCount++
		}
	}

	fmt.Fprintf(&b, "Analysis of %d improvement(s) (%s) for %s: estimated total cost %.2f with a projected value increase of %.2f (%.1f%% return).",
		len(report.Improvements),
		strings.Join(names, ", "),
		report.PropertyReference,
		report.TotalCost,
		report.TotalValueIncrease,
		report.TotalROIPercent,
	)

	switch {
	case highCount == len(report.Improvements) && highCount > 0:
		b.WriteString(" Local planning history strongly supports all selected works.")
	case highCount > 0:
		fmt.Fprintf(&b, " Local planning history strongly supports %d of the selected works.", highCount)
	default:
		b.WriteString(" Local planning evidence for these works is limited.")
	}

	if report.Budget > 0 {
		if report.WithinBudget {
			fmt.Fprintf(&b, " The plan fits within the %.2f budget with %.2f to spare.", report.Budget, report.Budget-report.TotalCost)
		} else {
			fmt.Fprintf(&b, " The plan exceeds the %.2f budget by %.2f.", report.Budget, report.TotalCost-report.Budget)
		}
	}

	if report.Compliance.MeetsGoal {
		fmt.Fprintf(&b, " The projected EPC band %s meets the %s goal.", report.Compliance.ProjectedBand, report.Compliance.GoalBand)
	} else {
		fmt.Fprintf(&b, " The projected EPC band %s falls %d band(s) short of the %s goal.",
			report.Compliance.ProjectedBand, report.Compliance.BandsToGoal, report.Compliance.GoalBand)
	}

	return b.String()
}
