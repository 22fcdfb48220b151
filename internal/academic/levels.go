package academic

import (
	"fmt"
	"math"
)

// ProgramLevel is a band of total academic hours, [Min, Max).
type ProgramLevel struct {
	Tier        int     `json:"tier"`
	Name        string  `json:"name"`
	Range       string  `json:"range"`
	Description string  `json:"description"`
	Icon        string  `json:"icon,omitempty"`
	Min         float64 `json:"min"`
	Max         float64 `json:"-"`
}

// Unbounded reports whether the level has no upper limit.
func (l ProgramLevel) Unbounded() bool {
	return math.IsInf(l.Max, 1)
}

// Contains reports whether hours falls inside the level.
func (l ProgramLevel) Contains(hours float64) bool {
	return hours >= l.Min && hours < l.Max
}

var levels = []ProgramLevel{
	{Tier: 0, Name: "Introductory level", Range: "under 16 ac.h.", Icon: "🔍", Min: 0, Max: 16, Description: "A short first look at the subject"},
	{Tier: 1, Name: "Introductory level", Range: "16-36 ac.h.", Icon: "🔍", Min: 16, Max: 36, Description: "First grasp of the basics"},
	{Tier: 2, Name: "Basic level", Range: "36-72 ac.h.", Icon: "📚", Min: 36, Max: 72, Description: "Systematic study of the subject"},
	{Tier: 3, Name: "Advanced level", Range: "72-144 ac.h.", Icon: "🎯", Min: 72, Max: 144, Description: "In-depth study with practice"},
	{Tier: 4, Name: "Specialized level", Range: "144-288 ac.h.", Icon: "🏆", Min: 144, Max: 288, Description: "Professional preparation"},
	{Tier: 5, Name: "Expert level", Range: "288+ ac.h.", Icon: "⭐", Min: 288, Max: math.Inf(1), Description: "Expert mastery"},
}

// Levels returns all program levels, lowest first.
func Levels() []ProgramLevel {
	return append([]ProgramLevel(nil), levels...)
}

// ClassifyProgram returns the level whose range contains academicHours.
// Values under 16 yield tier 0; whether to show it is up to the caller.
func ClassifyProgram(academicHours float64) (ProgramLevel, error) {
	if err := checkAmount("academic hours", academicHours); err != nil {
		return ProgramLevel{}, err
	}
	for _, l := range levels {
		if l.Contains(academicHours) {
			return l, nil
		}
	}
	// unreachable: the last level is unbounded
	return ProgramLevel{}, fmt.Errorf("%w: no program level for %v", ErrInvalidArgument, academicHours)
}
