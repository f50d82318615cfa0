package style

import (
	"github.com/turtacn/CineStyle-Engine/pkg/errors"
)

// Blend interpolates linearly between two style vectors.  weight is the
// primary vector's influence: 1 reproduces primary exactly, 0 reproduces
// secondary exactly.  The blend is defined over the axis set shared by both
// inputs, so display axes survive only when both parents carry them.
//
// weight is accepted over the full [0, 1] domain; values outside it are
// clamped rather than rejected (user gestures and sliders are imprecise but
// legitimate input).  Interface layers may impose narrower UI ranges on top.
func Blend(primary, secondary Vector, weight float64) (Vector, error) {
	if !comparisonCompatible(primary, secondary) {
		return nil, errors.New(errors.ErrCodeStyleAxisMismatch,
			"blend requires vectors sharing the comparison axis set")
	}
	if weight < 0 {
		weight = 0
	} else if weight > 1 {
		weight = 1
	}
	out := make(Vector, len(primary))
	for _, axis := range sharedAxes(primary, secondary) {
		out[axis] = primary[axis]*weight + secondary[axis]*(1-weight)
	}
	return out, nil
}
