// Package report turns raw calculator input into display-ready results for
// the command line and the web page.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"acadcalc/internal/academic"
)

// ShowLevelFrom is the smallest academic-hour total for which a program level
// is displayed next to a result.
const ShowLevelFrom = 16.0

// Mode selects the conversion direction.
type Mode string

const (
	ToAcademic Mode = "to-academic"
	ToRegular  Mode = "to-regular"
)

// ParseMode accepts the mode names plus a few short aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "to-academic", "academic", "a":
		return ToAcademic, nil
	case "to-regular", "regular", "r":
		return ToRegular, nil
	}
	return "", fmt.Errorf("unknown mode %q (to-academic or to-regular)", s)
}

// Input is what the user typed.
type Input struct {
	Mode     Mode
	Hours    float64
	Minutes  float64
	Academic float64
	Group    int
}

// TotalMinutes is Hours and Minutes combined.
func (in Input) TotalMinutes() float64 {
	return in.Hours*60 + in.Minutes
}

// Clamp pulls out-of-range form values back into range: hours and academic
// hours at zero or above, minutes within [0,59].
func Clamp(in Input) Input {
	in.Hours = clamp(in.Hours, 0, math.Inf(1))
	in.Minutes = clamp(in.Minutes, 0, 59)
	in.Academic = clamp(in.Academic, 0, math.Inf(1))
	return in
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Result is one computed conversion, formatted for display.
type Result struct {
	Mode       Mode
	GroupIndex int
	Group      academic.AgeGroup

	TotalMinutes float64
	Academic     float64

	RegularMinutes int
	RegularHours   int
	RegularMins    int

	// Level is set only when Academic reaches ShowLevelFrom in ToAcademic mode.
	Level *academic.ProgramLevel
}

// Build runs the conversion for in against table.
func Build(table *academic.Table, in Input) (*Result, error) {
	g, err := table.Group(in.Group)
	if err != nil {
		return nil, err
	}

	res := &Result{Mode: in.Mode, GroupIndex: in.Group, Group: g}

	switch in.Mode {
	case ToAcademic:
		res.TotalMinutes = in.TotalMinutes()
		res.Academic, err = academic.RegularToAcademic(res.TotalMinutes, float64(g.UnitMinutes))
		if err != nil {
			return nil, err
		}
		if res.Academic >= ShowLevelFrom {
			level, err := academic.ClassifyProgram(res.Academic)
			if err != nil {
				return nil, err
			}
			res.Level = &level
		}
	case ToRegular:
		res.Academic = in.Academic
		res.RegularMinutes, err = academic.AcademicToRegular(in.Academic, float64(g.UnitMinutes))
		if err != nil {
			return nil, err
		}
		res.RegularHours, res.RegularMins = academic.SplitMinutes(res.RegularMinutes)
	default:
		return nil, fmt.Errorf("unknown mode %q", in.Mode)
	}

	return res, nil
}

// AcademicText is the academic-hour value without trailing zeros.
func (r *Result) AcademicText() string {
	return FormatNumber(r.Academic)
}

// RegularText is the regular time as "1h 30m", or "45m" under an hour.
func (r *Result) RegularText() string {
	return FormatHM(r.RegularMinutes)
}

// Formula shows how the result was derived.
func (r *Result) Formula() string {
	if r.Mode == ToRegular {
		return fmt.Sprintf("%s ac.h × %d min = %d min", FormatNumber(r.Academic), r.Group.UnitMinutes, r.RegularMinutes)
	}
	return fmt.Sprintf("%s min = %s × %d min", FormatNumber(r.TotalMinutes), FormatNumber(r.Academic), r.Group.UnitMinutes)
}

// Describe returns a one-line summary used for link previews.
func Describe(r *Result) string {
	if r.Mode == ToRegular {
		return fmt.Sprintf("%s academic hours for %s (%d min each) = %s of regular time.",
			r.AcademicText(), r.Group.Label, r.Group.UnitMinutes, r.RegularText())
	}
	s := fmt.Sprintf("%s min for %s (%d min each) = %s academic hours.",
		FormatNumber(r.TotalMinutes), r.Group.Label, r.Group.UnitMinutes, r.AcademicText())
	if r.Level != nil {
		s += fmt.Sprintf(" %s (%s).", r.Level.Name, r.Level.Range)
	}
	return s
}

// FormatNumber prints v with as few decimals as needed.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatHM prints whole minutes as "1h 30m"; the hour part is omitted when zero.
func FormatHM(min int) string {
	h, m := academic.SplitMinutes(min)
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// Print writes r in the command-line layout.
func Print(w io.Writer, r *Result) {
	fmt.Fprintf(w, "Age group: %s %s (academic hour = %d min)\n", r.Group.Icon, r.Group.Label, r.Group.UnitMinutes)
	if r.Mode == ToRegular {
		fmt.Fprintf(w, "Regular time: %s\n", r.RegularText())
	} else {
		fmt.Fprintf(w, "Academic hours: %s\n", r.AcademicText())
	}
	fmt.Fprintf(w, "  %s\n", r.Formula())
	if r.Level != nil {
		fmt.Fprintf(w, "Program level: %s %s (%s)\n", r.Level.Icon, r.Level.Name, r.Level.Range)
		fmt.Fprintf(w, "  %s\n", r.Level.Description)
	}
}

// PrintGroups lists every age group in table.
func PrintGroups(w io.Writer, table *academic.Table) {
	for i, g := range table.Groups() {
		fmt.Fprintf(w, "[%d] %s %s: academic hour = %d min\n", i, g.Icon, g.Label, g.UnitMinutes)
		if g.Description != "" {
			fmt.Fprintf(w, "    %s\n", g.Description)
		}
		if len(g.Features) > 0 {
			fmt.Fprintf(w, "    %s\n", strings.Join(g.Features, ", "))
		}
	}
}

// PrintLevels lists the program levels.
func PrintLevels(w io.Writer) {
	for _, l := range academic.Levels() {
		fmt.Fprintf(w, "%s %-18s %-15s %s\n", l.Icon, l.Name, l.Range, l.Description)
	}
}
