// Package adapters maps module services onto the ports other domains
// consume. Each adapter translates transport types at the boundary so
// domains never import each other's DTOs.
package adapters

import (
	"context"

	"retrofit_analysis_backend/internal/analysis/ports"
	"retrofit_analysis_backend/internal/planning"
)

// PlanningSearcherAdapter exposes the planning module's nearby search to the
// analysis engine.
type PlanningSearcherAdapter struct {
	svc planning.PlanningService
}

func NewPlanningSearcherAdapter(svc planning.PlanningService) *PlanningSearcherAdapter {
	return &PlanningSearcherAdapter{svc: svc}
}

func (a *PlanningSearcherAdapter) SearchNearby(ctx context.Context, latitude, longitude float64) ([]ports.PlanningRecord, error) {
	records, err := a.svc.SearchNearby(ctx, latitude, longitude)
	if err != nil {
		return nil, err
	}

	out := make([]ports.PlanningRecord, 0, len(records))
	for _, record := range records {
		mapped := ports.PlanningRecord{
			Reference:      record.Reference,
			Proposal:       record.Proposal,
			Decision:       ports.Decision(record.Decision),
			SubmissionDate: record.SubmissionDate,
			DecisionDate:   record.DecisionDate,
			EPCBand:        record.EPCBand,
		}
		if record.Location != nil {
			lat, lng := record.Location.Latitude, record.Location.Longitude
			mapped.Latitude = &lat
			mapped.Longitude = &lng
		}
		out = append(out, mapped)
	}
	return out, nil
}

var _ ports.PlanningSearcher = (*PlanningSearcherAdapter)(nil)
