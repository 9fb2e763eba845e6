// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// PlanningConfig provides settings for the IBex planning-application API.
type PlanningConfig interface {
	GetIbexAPIKey() string
	GetIbexBaseURL() string
	GetPlanningRadiusMeters() int
	GetPlanningYearsBack() int
	GetAdapterTimeout() time.Duration
	IsPlanningEnabled() bool
}

// EPCConfig provides settings for the EPC register API.
type EPCConfig interface {
	GetEPCAPIKey() string
	GetEPCBaseURL() string
	GetAdapterTimeout() time.Duration
	IsEPCEnabled() bool
}

// MapsConfig provides the map-provider token delivered to the frontend.
type MapsConfig interface {
	GetMapProviderToken() string
	IsMapsEnabled() bool
}

// AnalysisConfig provides the tunable policy constants of the analysis engine.
type AnalysisConfig interface {
	GetHighApprovals() int
	GetStrongApprovals() int
	GetFastDecisionDays() float64
	GetROIAdjustment() float64
	GetAdapterTimeout() time.Duration
}

// =============================================================================
// Config Struct
// =============================================================================

// Config holds all application configuration loaded from the environment.
type Config struct {
	Env            string
	HTTPAddr       string
	CORSAllowAll   bool
	CORSOrigins    []string
	CORSAllowCreds bool

	IbexAPIKey           string
	IbexBaseURL          string
	PlanningRadiusMeters int
	PlanningYearsBack    int

	EPCAPIKey  string
	EPCBaseURL string

	MapProviderToken string

	AdapterTimeout   time.Duration
	HighApprovals    int
	StrongApprovals  int
	FastDecisionDays float64
	ROIAdjustment    float64
}

// Load reads configuration from the environment (and .env when present).
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:            getEnv("APP_ENV", "development"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:   corsAllowAll,
		CORSOrigins:    corsOrigins,
		CORSAllowCreds: strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),

		IbexAPIKey:           getEnv("IBEX_API_KEY", ""),
		IbexBaseURL:          getEnv("IBEX_BASE_URL", "https://ibex.seractech.co.uk"),
		PlanningRadiusMeters: getInt("PLANNING_RADIUS_METERS", 500),
		PlanningYearsBack:    getInt("PLANNING_YEARS_BACK", 3),

		EPCAPIKey:  getEnv("EPC_API_KEY", ""),
		EPCBaseURL: getEnv("EPC_BASE_URL", "https://epc.opendatacommunities.org/api/v1/domestic/search"),

		MapProviderToken: getEnv("MAP_PROVIDER_TOKEN", ""),

		AdapterTimeout:   mustDuration(getEnv("ADAPTER_TIMEOUT", "10s")),
		HighApprovals:    getInt("FEASIBILITY_HIGH_APPROVALS", 3),
		StrongApprovals:  getInt("FEASIBILITY_STRONG_APPROVALS", 5),
		FastDecisionDays: getFloat("FEASIBILITY_FAST_DECISION_DAYS", 60),
		ROIAdjustment:    getFloat("ROI_FEASIBILITY_ADJUSTMENT", 0.20),
	}

	if cfg.PlanningRadiusMeters <= 0 {
		return nil, fmt.Errorf("PLANNING_RADIUS_METERS must be positive")
	}
	if cfg.ROIAdjustment < 0 || cfg.ROIAdjustment >= 1 {
		return nil, fmt.Errorf("ROI_FEASIBILITY_ADJUSTMENT must be in [0, 1)")
	}
	if cfg.StrongApprovals < cfg.HighApprovals {
		return nil, fmt.Errorf("FEASIBILITY_STRONG_APPROVALS must be >= FEASIBILITY_HIGH_APPROVALS")
	}
	if cfg.AdapterTimeout <= 0 {
		return nil, fmt.Errorf("ADAPTER_TIMEOUT must be a positive duration")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

// =============================================================================
// Interface Implementations
// =============================================================================

func (c *Config) GetHTTPAddr() string { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool { return c.CORSAllowCreds }

func (c *Config) GetIbexAPIKey() string { return c.IbexAPIKey }
func (c *Config) GetIbexBaseURL() string { return c.IbexBaseURL }
func (c *Config) GetPlanningRadiusMeters() int { return c.PlanningRadiusMeters }
func (c *Config) GetPlanningYearsBack() int { return c.PlanningYearsBack }
func (c *Config) IsPlanningEnabled() bool { return c.IbexAPIKey != "" }

func (c *Config) GetEPCAPIKey() string { return c.EPCAPIKey }
func (c *Config) GetEPCBaseURL() string { return c.EPCBaseURL }
func (c *Config) IsEPCEnabled() bool { return c.EPCAPIKey != "" }

func (c *Config) GetMapProviderToken() string { return c.MapProviderToken }
func (c *Config) IsMapsEnabled() bool { return c.MapProviderToken != "" }

func (c *Config) GetAdapterTimeout() time.Duration { return c.AdapterTimeout }
func (c *Config) GetHighApprovals() int { return c.HighApprovals }
func (c *Config) GetStrongApprovals() int { return c.StrongApprovals }
func (c *Config) GetFastDecisionDays() float64 { return c.FastDecisionDays }
func (c *Config) GetROIAdjustment() float64 { return c.ROIAdjustment }

// =============================================================================
// Helpers
// =============================================================================

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	val := getEnv(key, "")
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getFloat(key string, fallback float64) float64 {
	val := getEnv(key, "")
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
