// Package ports defines the interfaces the analysis engine uses to reach
// external data sources. Implementations are provided by the composition
// root and wrap the planning, EPC and geocode services.
package ports

import (
	"context"
	"time"
)

// Decision is the normalized outcome of a planning application.
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRefused  Decision = "refused"
	DecisionPending  Decision = "pending"
	DecisionUnknown  Decision = "unknown"
)

// PlanningRecord is one historical planning application as the analysis
// domain sees it. Immutable once fetched; scoped to a single request.
type PlanningRecord struct {
	Reference      string
	Proposal       string
	Decision       Decision
	SubmissionDate time.Time
	DecisionDate   *time.Time // absent while undecided
	Latitude       *float64
	Longitude      *float64
	EPCBand        string // associated band, when the source provides one
}

// DecisionDays returns the days between submission and decision,
// or false when the record is undecided or lacks a submission date.
func (r PlanningRecord) DecisionDays() (float64, bool) {
	if r.DecisionDate == nil || r.SubmissionDate.IsZero() {
		return 0, false
	}
	return r.DecisionDate.Sub(r.SubmissionDate).Hours() / 24, true
}

// PlanningSearcher fetches planning applications within a configured radius
// of a point. An empty slice is a legitimate result; it must not drop a
// record's reference or dates when the source provides them.
type PlanningSearcher interface {
	SearchNearby(ctx context.Context, latitude, longitude float64) ([]PlanningRecord, error)
}
