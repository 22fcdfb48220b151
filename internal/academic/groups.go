package academic

import (
	"fmt"
	"strings"
)

// AgeGroup is one developmental bracket and the length of its academic hour.
type AgeGroup struct {
	Label       string   `yaml:"label" json:"label"`
	Icon        string   `yaml:"icon" json:"icon,omitempty"`
	UnitMinutes int      `yaml:"unit_minutes" json:"unit_minutes"`
	Description string   `yaml:"description" json:"description"`
	Features    []string `yaml:"features" json:"features"`
}

// Table is an ordered, read-only list of age groups. The index into the
// list is the group's identifier.
type Table struct {
	groups []AgeGroup
}

var defaultGroups = []AgeGroup{
	{
		Label:       "1.5-3 years",
		Icon:        "👶",
		UnitMinutes: 10,
		Description: "Nursery age. Sessions are play-based with frequent changes of activity.",
		Features:    []string{"Short sessions", "Play format", "Frequent breaks"},
	},
	{
		Label:       "3-4 years",
		Icon:        "🧒",
		UnitMinutes: 15,
		Description: "Younger preschool. Children in clubs and sections learn to hold attention for longer.",
		Features:    []string{"Attention building", "Creative tasks", "Socialization"},
	},
	{
		Label:       "4-5 years",
		Icon:        "👦",
		UnitMinutes: 20,
		Description: "Middle preschool. Active growth of cognitive abilities in studios and sections.",
		Features:    []string{"Cognitive activity", "Speech development", "Creativity"},
	},
	{
		Label:       "5-6 years",
		Icon:        "🧑",
		UnitMinutes: 25,
		Description: "Older preschool. Preparatory programs in supplementary education centers.",
		Features:    []string{"School readiness", "Perseverance", "Basic skills"},
	},
	{
		Label:       "6-7 years",
		Icon:        "👨",
		UnitMinutes: 30,
		Description: "Pre-school year. Adapting to structured sessions in clubs and sections.",
		Features:    []string{"Study skills", "Discipline", "Group work"},
	},
	{
		Label:       "7-18 years",
		Icon:        "🎓",
		UnitMinutes: 45,
		Description: "School age. A full academic hour for supplementary education programs.",
		Features:    []string{"Specialized courses", "In-depth study", "Career guidance"},
	},
}

var defaultTable = mustTable(defaultGroups)

// DefaultTable returns the built-in six-group table.
func DefaultTable() *Table {
	return defaultTable
}

// NewTable validates groups and returns a table holding its own copy.
func NewTable(groups []AgeGroup) (*Table, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: age group table is empty", ErrInvalidArgument)
	}

	prev := 0
	for i, g := range groups {
		if strings.TrimSpace(g.Label) == "" {
			return nil, fmt.Errorf("%w: age group %d has no label", ErrInvalidArgument, i)
		}
		if g.UnitMinutes <= 0 {
			return nil, fmt.Errorf("%w: age group %q: unit minutes must be > 0, got %d", ErrInvalidArgument, g.Label, g.UnitMinutes)
		}
		if g.UnitMinutes < prev {
			return nil, fmt.Errorf("%w: age group %q: unit minutes %d is below previous group's %d", ErrInvalidArgument, g.Label, g.UnitMinutes, prev)
		}
		prev = g.UnitMinutes
	}

	t := &Table{groups: make([]AgeGroup, len(groups))}
	for i, g := range groups {
		t.groups[i] = copyGroup(g)
	}
	return t, nil
}

func mustTable(groups []AgeGroup) *Table {
	t, err := NewTable(groups)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of groups.
func (t *Table) Len() int {
	return len(t.groups)
}

// Group returns the group at index.
func (t *Table) Group(index int) (AgeGroup, error) {
	if index < 0 || index >= len(t.groups) {
		return AgeGroup{}, fmt.Errorf("%w: age group index %d out of range [0,%d)", ErrInvalidArgument, index, len(t.groups))
	}
	return copyGroup(t.groups[index]), nil
}

// Groups returns a copy of all groups in order.
func (t *Table) Groups() []AgeGroup {
	out := make([]AgeGroup, len(t.groups))
	for i, g := range t.groups {
		out[i] = copyGroup(g)
	}
	return out
}

// ToAcademic converts regular minutes to academic hours for the group at index.
func (t *Table) ToAcademic(totalMinutes float64, index int) (float64, error) {
	g, err := t.Group(index)
	if err != nil {
		return 0, err
	}
	return RegularToAcademic(totalMinutes, float64(g.UnitMinutes))
}

// ToRegular converts academic hours to whole regular minutes for the group at index.
func (t *Table) ToRegular(academicHours float64, index int) (int, error) {
	g, err := t.Group(index)
	if err != nil {
		return 0, err
	}
	return AcademicToRegular(academicHours, float64(g.UnitMinutes))
}

func copyGroup(g AgeGroup) AgeGroup {
	if g.Features != nil {
		g.Features = append([]string(nil), g.Features...)
	}
	return g
}
