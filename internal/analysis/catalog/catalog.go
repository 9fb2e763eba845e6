// Package catalog provides the static improvement reference data used by the
// analysis engine. The table is declarative: classification keywords, cost
// rates and savings live in catalog.yaml, not in code.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"retrofit_analysis_backend/platform/apperr"

	"gopkg.in/yaml.v3"
)

// Type identifies one of the supported improvement types.
type Type string

const (
	TypeSolar      Type = "solar"
	TypeInsulation Type = "insulation"
	TypeWindows    Type = "windows"
	TypeHeatPump   Type = "heat_pump"
)

// ErrUnknownImprovementType marks lookups for types outside the catalog.
// Callers detect it with errors.Is.
var ErrUnknownImprovementType = errors.New("unknown improvement type")

//go:embed catalog.yaml
var catalogYAML []byte

// Definition is the static reference data for one improvement type.
// Read-only, process-wide, never mutated at request time.
type Definition struct {
	Type        Type   `yaml:"type"`
	DisplayName string `yaml:"display_name"`

	// Keywords classify a planning proposal as relevant to this type.
	// Matching is case-insensitive substring, OR across the set.
	Keywords []string `yaml:"keywords"`

	CostPerM2          float64 `yaml:"cost_per_m2"`
	BaselineROIPercent float64 `yaml:"baseline_roi_percent"`
	AnnualKwhSavings   float64 `yaml:"annual_kwh_savings"`
	AnnualCO2SavingsKg float64 `yaml:"annual_co2_savings_kg"`
	EPCUpliftSteps     float64 `yaml:"epc_uplift_steps"`

	// Grant applied to the installed cost, with a floor on the net amount.
	// Zero values mean no grant applies.
	GrantDeduction    float64 `yaml:"grant_deduction"`
	MinCostAfterGrant float64 `yaml:"min_cost_after_grant"`
}

type catalogFile struct {
	DefaultFloorAreaM2 float64      `yaml:"default_floor_area_m2"`
	Improvements       []Definition `yaml:"improvements"`
}

// Catalog is the loaded improvement table.
type Catalog struct {
	defs             map[Type]Definition
	order            []Type
	defaultFloorArea float64
}

// Load parses and validates the embedded catalog table.
func Load() (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(catalogYAML, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if file.DefaultFloorAreaM2 <= 0 {
		return nil, fmt.Errorf("catalog: default_floor_area_m2 must be positive")
	}
	if len(file.Improvements) == 0 {
		return nil, fmt.Errorf("catalog: no improvements defined")
	}

	defs := make(map[Type]Definition, len(file.Improvements))
	order := make([]Type, 0, len(file.Improvements))
	for _, def := range file.Improvements {
		if def.Type == "" {
			return nil, fmt.Errorf("catalog: improvement with empty type")
		}
		if _, exists := defs[def.Type]; exists {
			return nil, fmt.Errorf("catalog: duplicate improvement type %q", def.Type)
		}
		if len(def.Keywords) == 0 {
			return nil, fmt.Errorf("catalog: improvement %q has no keywords", def.Type)
		}
		if def.CostPerM2 < 0 || def.AnnualKwhSavings < 0 || def.AnnualCO2SavingsKg < 0 || def.EPCUpliftSteps < 0 {
			return nil, fmt.Errorf("catalog: improvement %q has negative figures", def.Type)
		}
		defs[def.Type] = def
		order = append(order, def.Type)
	}

	return &Catalog{
		defs:             defs,
		order:            order,
		defaultFloorArea: file.DefaultFloorAreaM2,
	}, nil
}

// MustLoad loads the embedded catalog or panics. For use at process start,
// where a malformed table is unrecoverable.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the definition for the given improvement type.
// Fails with ErrUnknownImprovementType (kind validation) for ids outside
// the supported set.
func (c *Catalog) Lookup(t Type) (Definition, error) {
	def, ok := c.defs[t]
	if !ok {
		return Definition{}, apperr.Wrap(apperr.KindValidation,
			fmt.Sprintf("unknown improvement type: %q", t), ErrUnknownImprovementType)
	}
	return def, nil
}

// Types returns the supported improvement types in catalog order.
func (c *Catalog) Types() []Type {
	out := make([]Type, len(c.order))
	copy(out, c.order)
	return out
}

// DefaultFloorAreaM2 is the floor area assumed when no EPC figure exists.
func (c *Catalog) DefaultFloorAreaM2() float64 {
	return c.defaultFloorArea
}
