package analysis

import (
	"retrofit_analysis_backend/internal/analysis/catalog"
	"retrofit_analysis_backend/internal/analysis/handler"
	"retrofit_analysis_backend/internal/analysis/ports"
	"retrofit_analysis_backend/internal/analysis/service"
	apphttp "retrofit_analysis_backend/internal/http"
	"retrofit_analysis_backend/platform/config"
	platformevents "retrofit_analysis_backend/platform/events"
	"retrofit_analysis_backend/platform/logger"
	"retrofit_analysis_backend/platform/validator"
)

// Module wires the analysis engine and its HTTP route.
type Module struct {
	service *service.Service
	handler *handler.Handler
}

// NewModule builds the analysis module. The planning and EPC ports may be
// nil when their modules are disabled; analyses then degrade to warnings.
func NewModule(
	cat *catalog.Catalog,
	planning ports.PlanningSearcher,
	epc ports.EpcLookup,
	resolver ports.AddressResolver,
	bus platformevents.Bus,
	cfg config.AnalysisConfig,
	log *logger.Logger,
	validate *validator.Validator,
) *Module {
	svc := service.New(cat, planning, epc, resolver, bus, cfg, log)
	return &Module{
		service: svc,
		handler: handler.NewHandler(svc, validate),
	}
}

func (m *Module) Name() string {
	return "analysis"
}

// Service returns the analysis service for non-HTTP callers.
func (m *Module) Service() *service.Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/analysis", m.handler.Analyze)
}

var _ apphttp.Module = (*Module)(nil)
