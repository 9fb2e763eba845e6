// Command analyze runs a single retrofit analysis from the command line and
// prints the report as JSON. Useful for smoke-testing API credentials and
// policy tuning without the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"retrofit_analysis_backend/internal/adapters"
	"retrofit_analysis_backend/internal/analysis/catalog"
	"retrofit_analysis_backend/internal/analysis/ports"
	"retrofit_analysis_backend/internal/analysis/service"
	"retrofit_analysis_backend/internal/analysis/transport"
	"retrofit_analysis_backend/internal/epc"
	"retrofit_analysis_backend/internal/geocode"
	"retrofit_analysis_backend/internal/planning"
	"retrofit_analysis_backend/platform/config"
	"retrofit_analysis_backend/platform/logger"
)

func main() {
	ref := flag.String("ref", "", "property reference (postcode), required")
	improvements := flag.String("improvements", "solar", "comma-separated improvement types")
	budget := flag.Float64("budget", 0, "optional budget; 0 means unconstrained")
	lat := flag.Float64("lat", 0, "optional latitude, skips geocoding when set with -lng")
	lng := flag.Float64("lng", 0, "optional longitude")
	flag.Parse()

	if *ref == "" {
		fmt.Fprintln(os.Stderr, "usage: analyze -ref <postcode> [-improvements solar,insulation] [-budget 20000] [-lat .. -lng ..]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting one-shot analysis", "ref", *ref)

	geocodeModule := geocode.NewModule(log)
	planningModule := planning.NewModule(cfg, log)
	epcModule := epc.NewModule(cfg, log)

	var planningSearcher ports.PlanningSearcher
	if planningModule.IsEnabled() {
		planningSearcher = adapters.NewPlanningSearcherAdapter(planningModule.Service())
	}
	var epcLookup ports.EpcLookup
	if epcModule.IsEnabled() {
		epcLookup = adapters.NewEpcLookupAdapter(epcModule.Service())
	}
	addressResolver := adapters.NewAddressResolverAdapter(geocodeModule.Service())

	svc := service.New(catalog.MustLoad(), planningSearcher, epcLookup, addressResolver, nil, cfg, log)

	req := transport.AnalyzeRequest{
		PropertyReference: *ref,
		Budget:            *budget,
		Improvements:      splitImprovements(*improvements),
	}
	if flagWasSet("lat") && flagWasSet("lng") {
		req.Latitude = lat
		req.Longitude = lng
	}

	report, err := svc.Analyze(context.Background(), req)
	if err != nil {
		log.Error("analysis failed", "error", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Error("failed to encode report", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func splitImprovements(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
