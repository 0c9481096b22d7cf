package catalog

import (
	"skydesk/pkg/model"
	"testing"
)

func TestGenerateReferenceLayout(t *testing.T) {
	units := Default()

	if len(units) != 24 {
		t.Fatalf("expected 24 units, got %d", len(units))
	}

	tests := []struct {
		id       string
		category model.Category
		price    int
	}{
		{"A-01", model.CategoryHotDesk, 399},
		{"A-12", model.CategoryHotDesk, 399},
		{"B-01", model.CategoryDedicatedDesk, 800},
		{"B-08", model.CategoryDedicatedDesk, 800},
		{"C-01", model.CategoryPrivateCabin, 25000},
		{"C-04", model.CategoryPrivateCabin, 25000},
	}

	byID := Index(units)
	for _, tt := range tests {
		unit, ok := byID[tt.id]
		if !ok {
			t.Errorf("unit %s missing from catalog", tt.id)
			continue
		}
		if unit.Category != tt.category {
			t.Errorf("unit %s: category = %q, want %q", tt.id, unit.Category, tt.category)
		}
		if unit.BasePrice != tt.price {
			t.Errorf("unit %s: price = %d, want %d", tt.id, unit.BasePrice, tt.price)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	first := Default()
	second := Default()

	if len(first) != len(second) {
		t.Fatalf("catalog size changed between invocations: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("unit %d differs between invocations: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestGenerateNoDuplicateIDs(t *testing.T) {
	units := Default()

	seen := make(map[string]model.Category)
	for _, unit := range units {
		if prev, ok := seen[unit.ID]; ok {
			t.Errorf("duplicate id %s (categories %q and %q)", unit.ID, prev, unit.Category)
		}
		seen[unit.ID] = unit.Category
	}
}

func TestUnitIDZeroPadding(t *testing.T) {
	tests := []struct {
		prefix string
		index  int
		want   string
	}{
		{"A", 1, "A-01"},
		{"A", 12, "A-12"},
		{"S", 48, "S-48"},
		{"C", 4, "C-04"},
	}

	for _, tt := range tests {
		if got := UnitID(tt.prefix, tt.index); got != tt.want {
			t.Errorf("UnitID(%q, %d) = %q, want %q", tt.prefix, tt.index, got, tt.want)
		}
	}
}

func TestGenerateEmptyZones(t *testing.T) {
	if units := Generate(nil); len(units) != 0 {
		t.Errorf("expected empty catalog for nil zones, got %d units", len(units))
	}
}
