package academic

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()
	if table.Len() != 6 {
		t.Fatalf("expected 6 groups, got %d", table.Len())
	}

	want := []int{10, 15, 20, 25, 30, 45}
	for i, g := range table.Groups() {
		if g.UnitMinutes != want[i] {
			t.Errorf("group %d (%s): unit %d, want %d", i, g.Label, g.UnitMinutes, want[i])
		}
		if g.Description == "" || len(g.Features) == 0 {
			t.Errorf("group %d (%s) is missing descriptive text", i, g.Label)
		}
	}
}

func TestTableGroupOutOfRange(t *testing.T) {
	table := DefaultTable()
	for _, idx := range []int{-1, 6, 100} {
		if _, err := table.Group(idx); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Group(%d): expected ErrInvalidArgument, got %v", idx, err)
		}
		if _, err := table.ToAcademic(60, idx); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ToAcademic(60, %d): expected ErrInvalidArgument, got %v", idx, err)
		}
	}
}

func TestTableConversions(t *testing.T) {
	table := DefaultTable()

	got, err := table.ToAcademic(60, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 4 {
		t.Errorf("ToAcademic(60, 3-4 years) = %v, want 4", got)
	}

	mins, err := table.ToRegular(2, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mins != 90 {
		t.Errorf("ToRegular(2, 7-18 years) = %d, want 90", mins)
	}
}

func TestTableIsImmutable(t *testing.T) {
	table := DefaultTable()

	g, _ := table.Group(0)
	g.Features[0] = "changed"
	g.UnitMinutes = 99

	again, _ := table.Group(0)
	if again.Features[0] == "changed" || again.UnitMinutes == 99 {
		t.Error("Group returned shared storage")
	}

	groups := table.Groups()
	groups[1].Label = "changed"
	if l, _ := table.Group(1); l.Label == "changed" {
		t.Error("Groups returned shared storage")
	}
}

func TestNewTableValidation(t *testing.T) {
	tests := []struct {
		name   string
		groups []AgeGroup
	}{
		{"empty", nil},
		{"zero unit", []AgeGroup{{Label: "a", UnitMinutes: 0}}},
		{"negative unit", []AgeGroup{{Label: "a", UnitMinutes: -10}}},
		{"missing label", []AgeGroup{{Label: " ", UnitMinutes: 10}}},
		{"decreasing", []AgeGroup{{Label: "a", UnitMinutes: 20}, {Label: "b", UnitMinutes: 15}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTable(tt.groups); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}

	if _, err := NewTable([]AgeGroup{{Label: "a", UnitMinutes: 20}, {Label: "b", UnitMinutes: 20}}); err != nil {
		t.Errorf("equal units should be allowed: %v", err)
	}
}

func TestLoadTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "groups.yaml")
	data := `groups:
  - label: "toddlers"
    unit_minutes: 12
    description: "short"
    features: ["play"]
  - label: "teens"
    unit_minutes: 40
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 groups, got %d", table.Len())
	}
	g, _ := table.Group(0)
	if g.Label != "toddlers" || g.UnitMinutes != 12 || len(g.Features) != 1 {
		t.Errorf("unexpected group: %+v", g)
	}

	if _, err := LoadTable(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseTableRejectsInvalid(t *testing.T) {
	if _, err := ParseTable([]byte("groups: [")); err == nil {
		t.Error("expected parse error")
	}
	bad := "groups:\n  - label: x\n    unit_minutes: 0\n"
	if _, err := ParseTable([]byte(bad)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}
