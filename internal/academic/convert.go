// Package academic converts between regular clock time and academic hours
// and classifies programs by their academic-hour volume.
//
// All functions are pure. Invalid input is reported with an error wrapping
// ErrInvalidArgument; nothing is clamped.
package academic

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is wrapped by every error this package returns.
var ErrInvalidArgument = errors.New("invalid argument")

// RegularToAcademic converts totalMinutes of clock time into academic hours of
// unitMinutes each, rounded to one decimal place. Halves round away from zero.
func RegularToAcademic(totalMinutes, unitMinutes float64) (float64, error) {
	if err := checkUnit(unitMinutes); err != nil {
		return 0, err
	}
	if err := checkAmount("total minutes", totalMinutes); err != nil {
		return 0, err
	}
	a := math.Round(totalMinutes/unitMinutes*10) / 10
	if math.IsInf(a, 0) {
		return 0, fmt.Errorf("%w: %v minutes at %v per unit is out of range", ErrInvalidArgument, totalMinutes, unitMinutes)
	}
	return a, nil
}

// AcademicToRegular converts academicHours into whole minutes of clock time.
func AcademicToRegular(academicHours, unitMinutes float64) (int, error) {
	if err := checkUnit(unitMinutes); err != nil {
		return 0, err
	}
	if err := checkAmount("academic hours", academicHours); err != nil {
		return 0, err
	}
	r := math.Round(academicHours * unitMinutes)
	// float64(math.MaxInt) rounds up to 2^63, which no int can hold
	if r >= float64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %v academic hours at %v minutes each is out of range", ErrInvalidArgument, academicHours, unitMinutes)
	}
	return int(r), nil
}

// SplitMinutes decomposes a non-negative minute count into whole hours and
// remaining minutes.
func SplitMinutes(total int) (hours, minutes int) {
	return total / 60, total % 60
}

func checkUnit(unitMinutes float64) error {
	if math.IsNaN(unitMinutes) || math.IsInf(unitMinutes, 0) || unitMinutes <= 0 {
		return fmt.Errorf("%w: unit minutes must be > 0, got %v", ErrInvalidArgument, unitMinutes)
	}
	return nil
}

func checkAmount(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidArgument, name, v)
	}
	if v < 0 {
		return fmt.Errorf("%w: %s must be >= 0, got %v", ErrInvalidArgument, name, v)
	}
	return nil
}
