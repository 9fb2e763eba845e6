// Package transport provides DTOs for the planning domain.
package transport

import "time"

// Decision is the normalized outcome of a planning application.
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRefused  Decision = "refused"
	DecisionPending  Decision = "pending"
	DecisionUnknown  Decision = "unknown"
)

// Location is a WGS84 point.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PlanningRecord is one historical planning application near a property.
// Records are immutable once fetched and scoped to a single analysis request.
type PlanningRecord struct {
	Reference      string     `json:"reference"`
	Proposal       string     `json:"proposal"`
	Decision       Decision   `json:"decision"`
	SubmissionDate time.Time  `json:"submissionDate"`
	DecisionDate   *time.Time `json:"decisionDate,omitempty"`
	Location       *Location  `json:"location,omitempty"`
	EPCBand        string     `json:"epcBand,omitempty"`
}

// DecisionDays returns the days between submission and decision,
// or false when the record is undecided.
func (r PlanningRecord) DecisionDays() (float64, bool) {
	if r.DecisionDate == nil || r.SubmissionDate.IsZero() {
		return 0, false
	}
	return r.DecisionDate.Sub(r.SubmissionDate).Hours() / 24, true
}
