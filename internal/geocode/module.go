package geocode

import (
	apphttp "retrofit_analysis_backend/internal/http"
	"retrofit_analysis_backend/platform/logger"
)

// Module wires the postcode lookup HTTP routes.
type Module struct {
	service *Service
	handler *Handler
}

func NewModule(log *logger.Logger) *Module {
	svc := NewService(log)
	h := NewHandler(svc)
	return &Module{service: svc, handler: h}
}

func (m *Module) Name() string {
	return "geocode"
}

// Service returns the geocoding service for use by other modules.
func (m *Module) Service() *Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/geocode", m.handler.Lookup)
}

var _ apphttp.Module = (*Module)(nil)
