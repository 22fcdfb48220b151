package academic

import (
	"errors"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestClassifyProgramBoundaries(t *testing.T) {
	tests := []struct {
		hours float64
		tier  int
	}{
		{0, 0},
		{15.9, 0},
		{16, 1},
		{35.9, 1},
		{36, 2},
		{71.9, 2},
		{72, 3},
		{143.9, 3},
		{144, 4},
		{287.9, 4},
		{288, 5},
		{100000, 5},
	}
	for _, tt := range tests {
		level, err := ClassifyProgram(tt.hours)
		if err != nil {
			t.Fatalf("ClassifyProgram(%v): unexpected error: %v", tt.hours, err)
		}
		if level.Tier != tt.tier {
			t.Errorf("ClassifyProgram(%v) = tier %d, want %d", tt.hours, level.Tier, tt.tier)
		}
	}
}

func TestClassifyProgramInvalid(t *testing.T) {
	for _, v := range []float64{-0.1, -16, math.NaN(), math.Inf(1)} {
		if _, err := ClassifyProgram(v); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ClassifyProgram(%v): expected ErrInvalidArgument, got %v", v, err)
		}
	}
}

func TestLevelsAreContiguous(t *testing.T) {
	ls := Levels()
	if len(ls) != 6 {
		t.Fatalf("expected 6 levels, got %d", len(ls))
	}
	if ls[0].Min != 0 {
		t.Errorf("first level starts at %v, want 0", ls[0].Min)
	}
	for i := 1; i < len(ls); i++ {
		if ls[i].Min != ls[i-1].Max {
			t.Errorf("level %d starts at %v, previous ends at %v", i, ls[i].Min, ls[i-1].Max)
		}
		if ls[i].Tier != i {
			t.Errorf("level %d has tier %d", i, ls[i].Tier)
		}
	}
	if !ls[len(ls)-1].Unbounded() {
		t.Error("last level should be unbounded")
	}

	ls[0].Name = "changed"
	if Levels()[0].Name == "changed" {
		t.Error("Levels returned shared storage")
	}
}

func TestClassifyProgramMonotonic(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("higher hours never classify lower", prop.ForAll(
		func(a, b float64) bool {
			if a > b {
				a, b = b, a
			}
			la, err := ClassifyProgram(a)
			if err != nil {
				return false
			}
			lb, err := ClassifyProgram(b)
			if err != nil {
				return false
			}
			return la.Tier <= lb.Tier && la.Contains(a) && lb.Contains(b)
		},
		gen.Float64Range(0, 1000),
		gen.Float64Range(0, 1000),
	))

	properties.TestingRun(t)
}
