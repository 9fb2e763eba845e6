// Package analysis is the retrofit analysis module: it evaluates the cost,
// value uplift, planning feasibility and EPC impact of energy-efficiency
// improvements for a single property.
package analysis

import (
	"context"

	"retrofit_analysis_backend/internal/analysis/transport"
)

// AnalysisService is the module's public surface, consumed by the HTTP
// handler and the CLI.
type AnalysisService interface {
	Analyze(ctx context.Context, req transport.AnalyzeRequest) (*transport.AnalysisReport, error)
}
