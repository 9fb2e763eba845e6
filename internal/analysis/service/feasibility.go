package service

import (
	"sort"
	"strings"

	"retrofit_analysis_backend/internal/analysis/catalog"
	"retrofit_analysis_backend/internal/analysis/ports"
	"retrofit_analysis_backend/internal/analysis/transport"
)

// maxExamples is the number of representative records shown per improvement.
const maxExamples = 3

// conservationMarkers are proposal-text fragments indicating planning
// designations that constrain exterior changes.
var conservationMarkers = []string{
	"conservation area",
	"listed building",
	"article 4",
}

// matchRecords filters planning records whose proposal text matches any of
// the improvement's keywords. Case-insensitive substring, OR across the set.
func matchRecords(records []ports.PlanningRecord, def catalog.Definition) []ports.PlanningRecord {
	matched := make([]ports.PlanningRecord, 0, len(records))
	for _, record := range records {
		proposal := strings.ToLower(record.Proposal)
		for _, keyword := range def.Keywords {
			if strings.Contains(proposal, strings.ToLower(keyword)) {
				matched = append(matched, record)
				break
			}
		}
	}
	return matched
}

// assessFeasibility classifies the matched planning evidence for one
// improvement into a rating, approval-time statistic and example set.
// An empty record set is not an error: it yields rating LOW with zero
// examples and an undefined average time.
func assessFeasibility(records []ports.PlanningRecord, def catalog.Definition, th Thresholds) transport.FeasibilityResult {
	matched := matchRecords(records, def)

	approved := make([]ports.PlanningRecord, 0, len(matched))
	others := make([]ports.PlanningRecord, 0, len(matched))
	for _, record := range matched {
		if record.Decision == ports.DecisionApproved {
			approved = append(approved, record)
		} else {
			others = append(others, record)
		}
	}

	averageTime := averageDecisionDays(approved)

	result := transport.FeasibilityResult{
		Rating:           rate(len(approved), averageTime, th),
		ApprovedExamples: len(approved),
		AverageTimeDays:  averageTime,
		Examples:         selectExamples(approved, others),
	}

	if hasConservationConstraint(matched) {
		result.Qualifier = transport.QualifierConservationConstraint
	}

	return result
}

// rate applies the rating policy. More approvals never lowers the rating.
func rate(approvedCount int, averageTime *float64, th Thresholds) string {
	switch {
	case approvedCount >= th.StrongApprovals:
		return transport.RatingHigh
	case approvedCount >= th.HighApprovals:
		if averageTime == nil || *averageTime <= th.FastDecisionDays {
			return transport.RatingHigh
		}
		return transport.RatingMedium
	case approvedCount >= 1:
		return transport.RatingMedium
	default:
		return transport.RatingLow
	}
}

// averageDecisionDays returns the mean decision time over records that have
// both dates, or nil when no such record exists. Nil means undefined, not zero.
func averageDecisionDays(records []ports.PlanningRecord) *float64 {
	var total float64
	var count int
	for _, record := range records {
		if days, ok := record.DecisionDays(); ok {
			total += days
			count++
		}
	}
	if count == 0 {
		return nil
	}
	mean := total / float64(count)
	return &mean
}

// selectExamples picks up to maxExamples records for display: approved
// records first, most recent decision first, backfilled with the most
// recent non-approved records.
func selectExamples(approved, others []ports.PlanningRecord) []transport.RetrofitExample {
	sortMostRecentFirst(approved)
	sortMostRecentFirst(others)

	picked := make([]ports.PlanningRecord, 0, maxExamples)
	for _, record := range approved {
		if len(picked) == maxExamples {
			break
		}
		picked = append(picked, record)
	}
	for _, record := range others {
		if len(picked) == maxExamples {
			break
		}
		picked = append(picked, record)
	}

	examples := make([]transport.RetrofitExample, 0, len(picked))
	for _, record := range picked {
		examples = append(examples, toExample(record))
	}
	return examples
}

// sortMostRecentFirst orders by decision date descending; undecided records
// sort after decided ones, by submission date descending. Reference breaks
// ties so the ordering is deterministic.
func sortMostRecentFirst(records []ports.PlanningRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		switch {
		case a.DecisionDate != nil && b.DecisionDate != nil:
			if !a.DecisionDate.Equal(*b.DecisionDate) {
				return a.DecisionDate.After(*b.DecisionDate)
			}
		case a.DecisionDate != nil:
			return true
		case b.DecisionDate != nil:
			return false
		default:
			if !a.SubmissionDate.Equal(b.SubmissionDate) {
				return a.SubmissionDate.After(b.SubmissionDate)
			}
		}
		return a.Reference < b.Reference
	})
}

func toExample(record ports.PlanningRecord) transport.RetrofitExample {
	example := transport.RetrofitExample{
		PlanningReference: record.Reference,
		Proposal:          record.Proposal,
		Decision:          string(record.Decision),
		SubmissionDate:    record.SubmissionDate.Format("2006-01-02"),
	}
	if days, ok := record.DecisionDays(); ok {
		example.DecisionTimeDays = &days
	}
	if record.DecisionDate != nil {
		decided := record.DecisionDate.Format("2006-01-02")
		example.DecisionDate = &decided
	}
	return example
}

func hasConservationConstraint(records []ports.PlanningRecord) bool {
	for _, record := range records {
		proposal := strings.ToLower(record.Proposal)
		for _, marker := range conservationMarkers {
			if strings.Contains(proposal, marker) {
				return true
			}
		}
	}
	return false
}
