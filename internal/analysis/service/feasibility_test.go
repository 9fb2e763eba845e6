package service

import (
	"testing"
	"time"

	"retrofit_analysis_backend/internal/analysis/catalog"
	"retrofit_analysis_backend/internal/analysis/ports"
	"retrofit_analysis_backend/internal/analysis/transport"
)

var testThresholds = Thresholds{
	HighApprovals:    3,
	StrongApprovals:  5,
	FastDecisionDays: 60,
	ROIAdjustment:    0.20,
}

func solarDef(t *testing.T) catalog.Definition {
	t.Helper()
	def, err := catalog.MustLoad().Lookup(catalog.TypeSolar)
	if err != nil {
		t.Fatalf("solar lookup failed: %v", err)
	}
	return def
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad date %q: %v", value, err)
	}
	return parsed
}

func approvedRecord(t *testing.T, ref, proposal, submitted, decided string) ports.PlanningRecord {
	t.Helper()
	decision := day(t, decided)
	return ports.PlanningRecord{
		Reference:      ref,
		Proposal:       proposal,
		Decision:       ports.DecisionApproved,
		SubmissionDate: day(t, submitted),
		DecisionDate:   &decision,
	}
}

func refusedRecord(t *testing.T, ref, proposal, submitted, decided string) ports.PlanningRecord {
	t.Helper()
	record := approvedRecord(t, ref, proposal, submitted, decided)
	record.Decision = ports.DecisionRefused
	return record
}

func TestAssessFeasibility_NoMatchesIsLowWithoutError(t *testing.T) {
	records := []ports.PlanningRecord{
		approvedRecord(t, "X/1", "rear extension with pitched roof", "2024-01-01", "2024-02-15"),
	}

	result := assessFeasibility(records, solarDef(t), testThresholds)

	if result.Rating != transport.RatingLow {
		t.Fatalf("expected LOW, got %s", result.Rating)
	}
	if result.ApprovedExamples != 0 {
		t.Fatalf("expected 0 approved examples, got %d", result.ApprovedExamples)
	}
	if result.AverageTimeDays != nil {
		t.Fatalf("expected undefined average time, got %f", *result.AverageTimeDays)
	}
	if len(result.Examples) != 0 {
		t.Fatalf("expected no examples, got %d", len(result.Examples))
	}
}

func TestAssessFeasibility_StrongApprovalsIsHighDespiteSlowDecisions(t *testing.T) {
	records := make([]ports.PlanningRecord, 0, 5)
	for i := 0; i < 5; i++ {
		// Each decision took well over the fast-decision threshold.
		records = append(records, approvedRecord(t,
			"S/"+string(rune('1'+i)), "installation of solar panels", "2023-01-01", "2023-07-01"))
	}

	result := assessFeasibility(records, solarDef(t), testThresholds)

	if result.Rating != transport.RatingHigh {
		t.Fatalf("expected HIGH with %d approvals, got %s", len(records), result.Rating)
	}
}

func TestAssessFeasibility_ThreeFastApprovalsIsHigh(t *testing.T) {
	records := []ports.PlanningRecord{
		approvedRecord(t, "S/1", "solar pv array on roof", "2024-01-01", "2024-02-01"),
		approvedRecord(t, "S/2", "photovoltaic installation", "2024-02-01", "2024-03-10"),
		approvedRecord(t, "S/3", "solar panels to rear elevation", "2024-03-01", "2024-04-15"),
	}

	result := assessFeasibility(records, solarDef(t), testThresholds)

	if result.Rating != transport.RatingHigh {
		t.Fatalf("expected HIGH, got %s", result.Rating)
	}
	if result.AverageTimeDays == nil || *result.AverageTimeDays > testThresholds.FastDecisionDays {
		t.Fatalf("expected fast average, got %v", result.AverageTimeDays)
	}
}

func TestAssessFeasibility_ThreeSlowApprovalsIsMedium(t *testing.T) {
	records := []ports.PlanningRecord{
		approvedRecord(t, "S/1", "solar panels", "2023-01-01", "2023-06-01"),
		approvedRecord(t, "S/2", "solar pv", "2023-02-01", "2023-08-01"),
		approvedRecord(t, "S/3", "photovoltaic panels", "2023-03-01", "2023-09-01"),
	}

	result := assessFeasibility(records, solarDef(t), testThresholds)

	if result.Rating != transport.RatingMedium {
		t.Fatalf("expected MEDIUM for slow approvals, got %s", result.Rating)
	}
}

func TestAssessFeasibility_UndefinedAverageDoesNotBlockHigh(t *testing.T) {
	// Approved but timings unknown: treat as not-slow rather than penalizing.
	records := []ports.PlanningRecord{
		{Reference: "S/1", Proposal: "solar panels", Decision: ports.DecisionApproved, SubmissionDate: day(t, "2024-01-01")},
		{Reference: "S/2", Proposal: "solar pv", Decision: ports.DecisionApproved, SubmissionDate: day(t, "2024-02-01")},
		{Reference: "S/3", Proposal: "photovoltaic", Decision: ports.DecisionApproved, SubmissionDate: day(t, "2024-03-01")},
	}

	result := assessFeasibility(records, solarDef(t), testThresholds)

	if result.Rating != transport.RatingHigh {
		t.Fatalf("expected HIGH with undefined average, got %s", result.Rating)
	}
	if result.AverageTimeDays != nil {
		t.Fatalf("expected undefined average time, got %f", *result.AverageTimeDays)
	}
}

func TestAssessFeasibility_SingleApprovalIsMedium(t *testing.T) {
	records := []ports.PlanningRecord{
		approvedRecord(t, "S/1", "solar panels", "2024-01-01", "2024-02-01"),
	}

	result := assessFeasibility(records, solarDef(t), testThresholds)

	if result.Rating != transport.RatingMedium {
		t.Fatalf("expected MEDIUM for one approval, got %s", result.Rating)
	}
}

func TestAssessFeasibility_OnlyRefusalsIsLowWithExamples(t *testing.T) {
	records := []ports.PlanningRecord{
		refusedRecord(t, "S/1", "solar panels to front elevation", "2024-01-01", "2024-03-01"),
		refusedRecord(t, "S/2", "solar pv array", "2024-02-01", "2024-04-01"),
	}

	result := assessFeasibility(records, solarDef(t), testThresholds)

	if result.Rating != transport.RatingLow {
		t.Fatalf("expected LOW, got %s", result.Rating)
	}
	if result.AverageTimeDays != nil {
		t.Fatal("expected undefined average: refusals never count toward it")
	}
	if len(result.Examples) != 2 {
		t.Fatalf("expected refusals as examples, got %d", len(result.Examples))
	}
}

func TestAssessFeasibility_ConservationQualifier(t *testing.T) {
	records := []ports.PlanningRecord{
		approvedRecord(t, "S/1", "solar panels within the conservation area", "2024-01-01", "2024-02-01"),
	}

	result := assessFeasibility(records, solarDef(t), testThresholds)

	if result.Qualifier != transport.QualifierConservationConstraint {
		t.Fatalf("expected conservation qualifier, got %q", result.Qualifier)
	}
}

func TestAssessFeasibility_QualifierDetectsListedBuilding(t *testing.T) {
	records := []ports.PlanningRecord{
		refusedRecord(t, "S/1", "solar PV on Listed Building roof", "2024-01-01", "2024-02-01"),
	}

	result := assessFeasibility(records, solarDef(t), testThresholds)

	if result.Qualifier != transport.QualifierConservationConstraint {
		t.Fatalf("expected conservation qualifier, got %q", result.Qualifier)
	}
}

func TestAssessFeasibility_ExamplesPreferApprovedMostRecentFirst(t *testing.T) {
	records := []ports.PlanningRecord{
		approvedRecord(t, "S/OLD", "solar panels", "2022-01-01", "2022-02-01"),
		approvedRecord(t, "S/NEW", "solar panels", "2024-01-01", "2024-02-01"),
		approvedRecord(t, "S/MID", "solar panels", "2023-01-01", "2023-02-01"),
		approvedRecord(t, "S/ANCIENT", "solar panels", "2021-01-01", "2021-02-01"),
		refusedRecord(t, "S/REFUSED", "solar panels", "2025-01-01", "2025-02-01"),
	}

	result := assessFeasibility(records, solarDef(t), testThresholds)

	if len(result.Examples) != 3 {
		t.Fatalf("expected 3 examples, got %d", len(result.Examples))
	}
	wantOrder := []string{"S/NEW", "S/MID", "S/OLD"}
	for i, want := range wantOrder {
		if result.Examples[i].PlanningReference != want {
			t.Fatalf("expected example %d to be %s, got %s", i, want, result.Examples[i].PlanningReference)
		}
	}
}

func TestAssessFeasibility_ExamplesBackfillWithNonApproved(t *testing.T) {
	records := []ports.PlanningRecord{
		refusedRecord(t, "S/R2", "solar panels", "2023-01-01", "2023-03-01"),
		approvedRecord(t, "S/A1", "solar panels", "2024-01-01", "2024-02-01"),
		refusedRecord(t, "S/R1", "solar panels", "2024-03-01", "2024-05-01"),
	}

	result := assessFeasibility(records, solarDef(t), testThresholds)

	if len(result.Examples) != 3 {
		t.Fatalf("expected 3 examples, got %d", len(result.Examples))
	}
	if result.Examples[0].PlanningReference != "S/A1" {
		t.Fatalf("expected approved record first, got %s", result.Examples[0].PlanningReference)
	}
	if result.Examples[1].PlanningReference != "S/R1" || result.Examples[2].PlanningReference != "S/R2" {
		t.Fatalf("expected refusals by recency, got %s then %s",
			result.Examples[1].PlanningReference, result.Examples[2].PlanningReference)
	}
}

func TestMatchRecords_CaseInsensitiveSubstring(t *testing.T) {
	records := []ports.PlanningRecord{
		approvedRecord(t, "S/1", "INSTALLATION OF SOLAR PANELS AND BATTERY", "2024-01-01", "2024-02-01"),
		approvedRecord(t, "S/2", "single storey rear extension", "2024-01-01", "2024-02-01"),
	}

	matched := matchRecords(records, solarDef(t))

	if len(matched) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matched))
	}
	if matched[0].Reference != "S/1" {
		t.Fatalf("expected S/1, got %s", matched[0].Reference)
	}
}

func TestRate_MoreApprovalsNeverLowersRating(t *testing.T) {
	slow := 120.0
	previous := transport.RatingLow
	order := map[string]int{transport.RatingLow: 0, transport.RatingMedium: 1, transport.RatingHigh: 2}

	for approvals := 0; approvals <= 8; approvals++ {
		rating := rate(approvals, &slow, testThresholds)
		if order[rating] < order[previous] {
			t.Fatalf("rating dropped from %s to %s at %d approvals", previous, rating, approvals)
		}
		previous = rating
	}
}
