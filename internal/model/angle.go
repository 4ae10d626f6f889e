package model

import (
	"math"
	"strings"

	"github.com/fabian2000/exath-go/internal/exerr"
)

// AngleMode selects the unit used by the trigonometric family.
type AngleMode int

const (
	Deg AngleMode = iota
	Rad
	Grad
)

var angleModeNames = map[AngleMode]string{
	Deg: "Deg", Rad: "Rad", Grad: "Grad",
}

func (m AngleMode) String() string {
	if name, ok := angleModeNames[m]; ok {
		return name
	}
	return "Rad"
}

// Cycle advances Deg->Rad->Grad->Deg, matching the calculator's mode button.
func (m AngleMode) Cycle() AngleMode {
	switch m {
	case Deg:
		return Rad
	case Rad:
		return Grad
	default:
		return Deg
	}
}

// ToRadians converts a value expressed in this mode's unit to radians.
func (m AngleMode) ToRadians(v float64) float64 {
	switch m {
	case Deg:
		return v * math.Pi / 180
	case Grad:
		return v * math.Pi / 200
	default:
		return v
	}
}

// FromRadians converts a radian value to this mode's unit.
func (m AngleMode) FromRadians(v float64) float64 {
	switch m {
	case Deg:
		return v * 180 / math.Pi
	case Grad:
		return v * 200 / math.Pi
	default:
		return v
	}
}

// ParseAngleMode accepts case-insensitive "deg"/"rad"/"grad" at the
// binding boundary; integer codes are simply the AngleMode values themselves.
func ParseAngleMode(s string) (AngleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deg":
		return Deg, nil
	case "rad", "":
		return Rad, nil
	case "grad":
		return Grad, nil
	default:
		return Rad, exerr.Parse("unknown angle mode: %q", s)
	}
}
