// Package planning provides the planning-application bounded context.
// This file defines the public interfaces exposed to other domains.
package planning

import (
	"context"

	"retrofit_analysis_backend/internal/planning/transport"
)

// PlanningService defines the public interface for planning searches.
// Other domains should depend on this interface, not the concrete implementation.
type PlanningService interface {
	// SearchNearby fetches planning applications within the configured
	// radius of a point. An empty slice is a legitimate result.
	SearchNearby(ctx context.Context, latitude, longitude float64) ([]transport.PlanningRecord, error)
}
