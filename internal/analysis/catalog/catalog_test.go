package catalog

import (
	"errors"
	"testing"
)

func TestLoad_EmbeddedCatalogIsValid(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("expected embedded catalog to load, got %v", err)
	}
	if c.DefaultFloorAreaM2() <= 0 {
		t.Fatalf("expected positive default floor area, got %f", c.DefaultFloorAreaM2())
	}

	types := c.Types()
	want := []Type{TypeSolar, TypeInsulation, TypeWindows, TypeHeatPump}
	if len(types) != len(want) {
		t.Fatalf("expected %d types, got %d", len(want), len(types))
	}
	for i, typ := range want {
		if types[i] != typ {
			t.Fatalf("expected type %q at position %d, got %q", typ, i, types[i])
		}
	}
}

func TestLookup_KnownType(t *testing.T) {
	c := MustLoad()

	def, err := c.Lookup(TypeSolar)
	if err != nil {
		t.Fatalf("expected solar lookup to succeed, got %v", err)
	}
	if def.Type != TypeSolar {
		t.Fatalf("expected type solar, got %q", def.Type)
	}
	if def.DisplayName == "" {
		t.Fatal("expected non-empty display name")
	}
	if len(def.Keywords) == 0 {
		t.Fatal("expected keywords for solar")
	}
	if def.CostPerM2 <= 0 {
		t.Fatalf("expected positive cost rate, got %f", def.CostPerM2)
	}
}

func TestLookup_UnknownTypeReturnsSentinel(t *testing.T) {
	c := MustLoad()

	_, err := c.Lookup(Type("swimming_pool"))
	if err == nil {
		t.Fatal("expected error for unknown type")
	}
	if !errors.Is(err, ErrUnknownImprovementType) {
		t.Fatalf("expected ErrUnknownImprovementType, got %v", err)
	}
}

func TestLoad_HeatPumpCarriesGrant(t *testing.T) {
	c := MustLoad()

	def, err := c.Lookup(TypeHeatPump)
	if err != nil {
		t.Fatalf("expected heat_pump lookup to succeed, got %v", err)
	}
	if def.GrantDeduction <= 0 {
		t.Fatalf("expected heat pump grant deduction, got %f", def.GrantDeduction)
	}
	if def.MinCostAfterGrant <= 0 {
		t.Fatalf("expected minimum net cost after grant, got %f", def.MinCostAfterGrant)
	}
}
