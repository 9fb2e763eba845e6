package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"retrofit_analysis_backend/internal/adapters"
	"retrofit_analysis_backend/internal/analysis"
	"retrofit_analysis_backend/internal/analysis/catalog"
	"retrofit_analysis_backend/internal/analysis/ports"
	"retrofit_analysis_backend/internal/epc"
	"retrofit_analysis_backend/internal/events"
	"retrofit_analysis_backend/internal/geocode"
	apphttp "retrofit_analysis_backend/internal/http"
	"retrofit_analysis_backend/internal/http/router"
	"retrofit_analysis_backend/internal/maps"
	"retrofit_analysis_backend/internal/planning"
	"retrofit_analysis_backend/platform/config"
	"retrofit_analysis_backend/platform/logger"
	"retrofit_analysis_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)
	eventBus.Subscribe(events.EventAnalysisCompleted, events.NewAnalysisAuditHandler(log))

	// Shared validator instance for dependency injection
	val := validator.New()

	// Static improvement catalog, embedded at build time
	improvementCatalog := catalog.MustLoad()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	geocodeModule := geocode.NewModule(log)
	planningModule := planning.NewModule(cfg, log)
	epcModule := epc.NewModule(cfg, log)
	mapsModule := maps.NewModule(cfg, log)

	// Anti-corruption layer: the analysis engine sees ports, not module DTOs.
	// Disabled modules wire as nil ports and degrade to report warnings.
	var planningSearcher ports.PlanningSearcher
	if planningModule.IsEnabled() {
		planningSearcher = adapters.NewPlanningSearcherAdapter(planningModule.Service())
	}
	var epcLookup ports.EpcLookup
	if epcModule.IsEnabled() {
		epcLookup = adapters.NewEpcLookupAdapter(epcModule.Service())
	}
	addressResolver := adapters.NewAddressResolverAdapter(geocodeModule.Service())

	analysisModule := analysis.NewModule(
		improvementCatalog,
		planningSearcher,
		epcLookup,
		addressResolver,
		eventBus,
		cfg,
		log,
		val,
	)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Modules: []apphttp.Module{
			analysisModule,
			geocodeModule,
			mapsModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
