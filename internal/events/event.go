// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	platformevents "retrofit_analysis_backend/platform/events"
)

// Event name constants.
const (
	EventAnalysisCompleted = "analysis.completed"
)

// AnalysisCompleted is published after every successful retrofit analysis.
// Subscribers must not mutate the payload.
type AnalysisCompleted struct {
	platformevents.BaseEvent
	PropertyReference string   `json:"propertyReference"`
	Improvements      []string `json:"improvements"`
	TotalCost         float64  `json:"totalCost"`
	TotalROIPercent   float64  `json:"totalRoiPercent"`
	Warnings          []string `json:"warnings,omitempty"`
	DurationMs        float64  `json:"durationMs"`
}

// EventName returns the unique event identifier.
func (e AnalysisCompleted) EventName() string {
	return EventAnalysisCompleted
}
