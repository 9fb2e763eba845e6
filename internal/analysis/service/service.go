// Package service implements the retrofit analysis engine: feasibility
// classification of planning history, cost and value estimation, and EPC
// band projection, assembled into a single report.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"retrofit_analysis_backend/internal/analysis/catalog"
	"retrofit_analysis_backend/internal/analysis/ports"
	"retrofit_analysis_backend/internal/analysis/transport"
	"retrofit_analysis_backend/internal/events"
	"retrofit_analysis_backend/platform/apperr"
	"retrofit_analysis_backend/platform/config"
	platformevents "retrofit_analysis_backend/platform/events"
	"retrofit_analysis_backend/platform/logger"
)

// Sentinel errors for request-shape failures. Detect with errors.Is.
var (
	ErrEmptyImprovementSet      = errors.New("no improvements selected")
	ErrDuplicateImprovementType = errors.New("duplicate improvement type")
)

// Warnings attached to reports built on partial data. An adapter failure
// degrades the report, it never fails the request.
const (
	warnPlanningUnavailable = "planning data unavailable; feasibility reflects no local evidence"
	warnEPCUnavailable      = "EPC data unavailable; using assumed floor area and band"
)

// Thresholds are the tunables of the feasibility and ROI policy.
type Thresholds struct {
	HighApprovals    int     // approvals needed for HIGH when decisions are fast
	StrongApprovals  int     // approvals granting HIGH regardless of speed
	FastDecisionDays float64 // mean decision time considered fast
	ROIAdjustment    float64 // fractional ROI swing per rating tier
}

func thresholdsFrom(cfg config.AnalysisConfig) Thresholds {
	return Thresholds{
		HighApprovals:    cfg.GetHighApprovals(),
		StrongApprovals:  cfg.GetStrongApprovals(),
		FastDecisionDays: cfg.GetFastDecisionDays(),
		ROIAdjustment:    cfg.GetROIAdjustment(),
	}
}

// Service runs retrofit analyses. Stateless between requests; safe for
// concurrent use.
type Service struct {
	catalog        *catalog.Catalog
	planning       ports.PlanningSearcher // nil when the module is disabled
	epc            ports.EpcLookup        // nil when the module is disabled
	resolver       ports.AddressResolver
	bus            platformevents.Bus
	log            *logger.Logger
	thresholds     Thresholds
	adapterTimeout time.Duration
}

func New(
	cat *catalog.Catalog,
	planning ports.PlanningSearcher,
	epc ports.EpcLookup,
	resolver ports.AddressResolver,
	bus platformevents.Bus,
	cfg config.AnalysisConfig,
	log *logger.Logger,
) *Service {
	return &Service{
		catalog:        cat,
		planning:       planning,
		epc:            epc,
		resolver:       resolver,
		bus:            bus,
		log:            log,
		thresholds:     thresholdsFrom(cfg),
		adapterTimeout: cfg.GetAdapterTimeout(),
	}
}

// Analyze produces the full retrofit report for one property and improvement
// set. Planning and EPC lookups run concurrently and degrade to report
// warnings on failure; only request-shape problems and an unresolvable
// address fail the call.
func (s *Service) Analyze(ctx context.Context, req transport.AnalyzeRequest) (*transport.AnalysisReport, error) {
	start := time.Now()
	log := s.log.WithContext(ctx)

	defs, err := s.resolveImprovements(req.Improvements)
	if err != nil {
		return nil, err
	}

	point, err := s.resolveLocation(ctx, req)
	if err != nil {
		return nil, err
	}

	records, epcData, warnings := s.fetchEvidence(ctx, log, point, req.PropertyReference)

	floorArea := s.catalog.DefaultFloorAreaM2()
	areaFromEPC := false
	if epcData != nil && epcData.FloorAreaM2 != nil && *epcData.FloorAreaM2 > 0 {
		floorArea = *epcData.FloorAreaM2
		areaFromEPC = true
	}

	report := &transport.AnalysisReport{
		PropertyReference: req.PropertyReference,
		Location:          transport.Location{Latitude: point.Latitude, Longitude: point.Longitude},
		Budget:            req.Budget,
		Improvements:      make([]transport.ImprovementReport, 0, len(defs)),
		Warnings:          warnings,
	}

	for _, def := range defs {
		feasibility := assessFeasibility(records, def, s.thresholds)
		cost, costExplanation := estimateCost(def, floorArea, areaFromEPC)
		roi := estimateROI(def, feasibility, s.thresholds.ROIAdjustment)
		premium := greenPremium(cost, roi)

		report.Improvements = append(report.Improvements, transport.ImprovementReport{
			ImprovementType:     string(def.Type),
			DisplayName:         def.DisplayName,
			EstimatedCost:       cost,
			CostExplanation:     costExplanation,
			EstimatedROIPercent: roi,
			GreenPremiumValue:   premium,
			ValueExplanation:    valueExplanation(feasibility, roi),
			AnnualKwhSavings:    def.AnnualKwhSavings,
			AnnualCO2SavingsKg:  def.AnnualCO2SavingsKg,
			Feasibility:         feasibility,
		})

		report.TotalCost += cost
		report.TotalValueIncrease += premium
		report.TotalAnnualKwhSavings += def.AnnualKwhSavings
		report.TotalAnnualCO2SavingsKg += def.AnnualCO2SavingsKg
	}

	report.TotalCost = round2(report.TotalCost)
	report.TotalValueIncrease = round2(report.TotalValueIncrease)
	if report.TotalCost > 0 {
		// Cost-weighted: expensive improvements pull the blended figure
		// harder than cheap ones.
		report.TotalROIPercent = round2(report.TotalValueIncrease / report.TotalCost * 100)
	}
	report.WithinBudget = req.Budget <= 0 || report.TotalCost <= req.Budget
	report.Compliance = projectCompliance(epcData, defs)
	report.Summary = buildSummary(report)

	s.publishCompleted(ctx, report, time.Since(start))

	return report, nil
}

// resolveImprovements maps the requested type ids onto catalog definitions,
// rejecting empty sets, duplicates and unknown types.
func (s *Service) resolveImprovements(requested []string) ([]catalog.Definition, error) {
	if len(requested) == 0 {
		return nil, apperr.Wrap(apperr.KindValidation,
			"at least one improvement must be selected", ErrEmptyImprovementSet)
	}

	seen := make(map[catalog.Type]struct{}, len(requested))
	defs := make([]catalog.Definition, 0, len(requested))
	for _, raw := range requested {
		t := catalog.Type(raw)
		if _, dup := seen[t]; dup {
			return nil, apperr.Wrap(apperr.KindConflict,
				fmt.Sprintf("improvement %q listed more than once", raw), ErrDuplicateImprovementType)
		}
		seen[t] = struct{}{}

		def, err := s.catalog.Lookup(t)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// resolveLocation prefers caller-supplied coordinates and falls back to
// geocoding the property reference. A failed geocode is a hard error: without
// a location there is no search area.
func (s *Service) resolveLocation(ctx context.Context, req transport.AnalyzeRequest) (ports.Point, error) {
	if req.Latitude != nil && req.Longitude != nil {
		return ports.Point{Latitude: *req.Latitude, Longitude: *req.Longitude}, nil
	}
	if s.resolver == nil {
		return ports.Point{}, apperr.Unavailable("geocoding is not configured and no coordinates were supplied")
	}
	return s.resolver.Resolve(ctx, req.PropertyReference)
}

// fetchEvidence runs the planning and EPC lookups in parallel, each under its
// own timeout. Failures are logged and converted to warnings; the returned
// slices may be empty and the EPC record nil.
func (s *Service) fetchEvidence(ctx context.Context, log *logger.Logger, point ports.Point, address string) ([]ports.PlanningRecord, *ports.EpcData, []string) {
	var (
		records     []ports.PlanningRecord
		epcData     *ports.EpcData
		planningErr error
		epcErr      error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if s.planning == nil {
			planningErr = errors.New("planning search disabled")
			return nil
		}
		fetchCtx, cancel := context.WithTimeout(gctx, s.adapterTimeout)
		defer cancel()
		records, planningErr = s.planning.SearchNearby(fetchCtx, point.Latitude, point.Longitude)
		return nil
	})
	g.Go(func() error {
		if s.epc == nil {
			epcErr = errors.New("EPC lookup disabled")
			return nil
		}
		fetchCtx, cancel := context.WithTimeout(gctx, s.adapterTimeout)
		defer cancel()
		epcData, epcErr = s.epc.GetByAddress(fetchCtx, address)
		return nil
	})
	// Goroutines report through captured error vars, never through the group:
	// a slow or failing adapter must not cancel its sibling.
	_ = g.Wait()

	var warnings []string
	if planningErr != nil {
		log.AdapterDegraded("planning", planningErr)
		records = nil
		warnings = append(warnings, warnPlanningUnavailable)
	}
	if epcErr != nil {
		log.AdapterDegraded("epc", epcErr)
		epcData = nil
		warnings = append(warnings, warnEPCUnavailable)
	}
	return records, epcData, warnings
}

func (s *Service) publishCompleted(ctx context.Context, report *transport.AnalysisReport, elapsed time.Duration) {
	if s.bus == nil {
		return
	}
	types := make([]string, 0, len(report.Improvements))
	for _, imp := range report.Improvements {
		types = append(types, imp.ImprovementType)
	}
	s.bus.Publish(ctx, events.AnalysisCompleted{
		BaseEvent:         platformevents.NewBaseEvent(),
		PropertyReference: report.PropertyReference,
		Improvements:      types,
		TotalCost:         report.TotalCost,
		TotalROIPercent:   report.TotalROIPercent,
		Warnings:          report.Warnings,
		DurationMs:        float64(elapsed.Milliseconds()),
	})
}
