// Package epc provides the EPC bounded context module.
// This file defines the module that encapsulates all EPC lookup setup.
package epc

import (
	"retrofit_analysis_backend/internal/epc/client"
	"retrofit_analysis_backend/internal/epc/service"
	"retrofit_analysis_backend/platform/config"
	"retrofit_analysis_backend/platform/logger"
)

// Module is the EPC bounded context module.
type Module struct {
	service *service.Service
	enabled bool
}

// NewModule creates and initializes the EPC module.
// Returns a disabled module when the register API is not configured; the
// compliance projector then falls back to its documented default band.
func NewModule(cfg config.EPCConfig, log *logger.Logger) *Module {
	if !cfg.IsEPCEnabled() {
		log.Info("epc module disabled: EPC_API_KEY not configured")
		return &Module{enabled: false}
	}

	apiClient := client.New(cfg.GetEPCAPIKey(), cfg.GetEPCBaseURL(), log)
	svc := service.New(apiClient, log)

	log.Info("epc module initialized")

	return &Module{
		service: svc,
		enabled: true,
	}
}

// Service returns the EPC lookup service for external use.
// Returns nil if the module is disabled.
func (m *Module) Service() *service.Service {
	if m == nil || !m.enabled {
		return nil
	}
	return m.service
}

// IsEnabled returns true if the EPC module is configured and enabled.
func (m *Module) IsEnabled() bool {
	return m != nil && m.enabled
}
