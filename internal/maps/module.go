// Package maps delivers the map-provider configuration to the frontend.
// The token is an injected process-start config value, never fetched
// mid-computation.
package maps

import (
	apphttp "retrofit_analysis_backend/internal/http"
	"retrofit_analysis_backend/platform/config"
	"retrofit_analysis_backend/platform/logger"
)

// Module wires the map configuration HTTP route.
type Module struct {
	handler *Handler
}

func NewModule(cfg config.MapsConfig, log *logger.Logger) *Module {
	if !cfg.IsMapsEnabled() {
		log.Info("maps module: MAP_PROVIDER_TOKEN not configured, serving empty token")
	}
	return &Module{handler: NewHandler(cfg)}
}

func (m *Module) Name() string {
	return "maps"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/maps/config", m.handler.GetConfig)
}

var _ apphttp.Module = (*Module)(nil)
