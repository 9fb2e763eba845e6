// Package planning provides the planning-application bounded context module.
// This file defines the module that encapsulates all planning search setup.
package planning

import (
	"retrofit_analysis_backend/internal/planning/client"
	"retrofit_analysis_backend/internal/planning/service"
	"retrofit_analysis_backend/platform/config"
	"retrofit_analysis_backend/platform/logger"
)

// Module is the planning bounded context module.
type Module struct {
	service *service.Service
	enabled bool
}

// NewModule creates and initializes the planning module.
// Returns a disabled module if the IBex API is not configured; the analysis
// engine then runs with empty planning evidence (graceful degradation).
func NewModule(cfg config.PlanningConfig, log *logger.Logger) *Module {
	if !cfg.IsPlanningEnabled() {
		log.Info("planning module disabled: IBEX_API_KEY not configured")
		return &Module{enabled: false}
	}

	apiClient := client.New(cfg.GetIbexAPIKey(), cfg.GetIbexBaseURL(), log)
	svc := service.New(apiClient, cfg.GetPlanningRadiusMeters(), cfg.GetPlanningYearsBack(), log)

	log.Info("planning module initialized",
		"radius_m", cfg.GetPlanningRadiusMeters(),
		"years_back", cfg.GetPlanningYearsBack())

	return &Module{
		service: svc,
		enabled: true,
	}
}

// Service returns the planning search service for external use.
// Returns nil if the module is disabled.
func (m *Module) Service() *service.Service {
	if m == nil || !m.enabled {
		return nil
	}
	return m.service
}

// IsEnabled returns true if the planning module is configured and enabled.
func (m *Module) IsEnabled() bool {
	return m != nil && m.enabled
}
