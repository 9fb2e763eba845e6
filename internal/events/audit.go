package events

import (
	"context"

	platformevents "retrofit_analysis_backend/platform/events"
	"retrofit_analysis_backend/platform/logger"
)

// NewAnalysisAuditHandler returns a handler that writes one audit log line
// per completed analysis. Subscribed at process start; keeps a durable trace
// of every report served without coupling the engine to logging concerns.
func NewAnalysisAuditHandler(log *logger.Logger) Handler {
	return HandlerFunc(func(ctx context.Context, event platformevents.Event) error {
		completed, ok := event.(AnalysisCompleted)
		if !ok {
			return nil
		}
		log.WithContext(ctx).Info("analysis_completed",
			"property_reference", completed.PropertyReference,
			"improvements", completed.Improvements,
			"total_cost", completed.TotalCost,
			"total_roi_percent", completed.TotalROIPercent,
			"warnings", len(completed.Warnings),
			"duration_ms", completed.DurationMs,
		)
		return nil
	})
}
