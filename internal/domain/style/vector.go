// Package style defines the directorial style vector model and the pure
// computations over it: distance, genre-aware scoring, blending, and
// classification.  Everything in this package is stateless and safe for
// concurrent use; all functions allocate fresh outputs and never mutate
// their inputs.
package style

import (
	"sort"

	"github.com/turtacn/CineStyle-Engine/pkg/errors"
)

// Axis is one named numeric dimension of a directorial style.
type Axis string

const (
	AxisScale         Axis = "scale"
	AxisSpectacle     Axis = "spectacle"
	AxisStructure     Axis = "structure"
	AxisGenreFluidity Axis = "genreFluidity"
	AxisEmotion       Axis = "emotion"

	// Display-only axes.  Rendered in the radar UI but never part of
	// distance, quadrant, or ranking math.
	AxisPacing  Axis = "pacing"
	AxisTexture Axis = "texture"
)

// ComparisonAxes is the closed set of axes used by distance and quadrant
// computations.  It is deliberately distinct from AllAxes: adding a new
// display axis must never silently change match results.
var ComparisonAxes = []Axis{
	AxisScale,
	AxisSpectacle,
	AxisStructure,
	AxisGenreFluidity,
	AxisEmotion,
}

// AllAxes is the full recognized axis set, comparison axes first.
var AllAxes = []Axis{
	AxisScale,
	AxisSpectacle,
	AxisStructure,
	AxisGenreFluidity,
	AxisEmotion,
	AxisPacing,
	AxisTexture,
}

// AxisMin and AxisMax bound the conventional value domain.  Producers are
// expected to stay within [0, 10] but the model does not clamp on read:
// out-of-range values from a miscalibrated upstream are treated as valid
// extreme styles, not as errors.
const (
	AxisMin = 0.0
	AxisMax = 10.0
)

// IsComparisonAxis reports whether a participates in distance and quadrant
// computations.
func IsComparisonAxis(a Axis) bool {
	for _, c := range ComparisonAxes {
		if c == a {
			return true
		}
	}
	return false
}

// Vector is a fixed-axis style point: a mapping from every axis in
// ComparisonAxes (and optionally the display axes) to a numeric value.
// Two Vectors are comparable only when they agree on the comparison axis set.
type Vector map[Axis]float64

// NewVector validates values against the comparison axis set and returns a
// defensive copy.  Every comparison axis must be present; display axes are
// optional.  Unrecognized keys are rejected so that typos in catalog data
// surface at load time rather than as silently-ignored axes.
func NewVector(values map[Axis]float64) (Vector, error) {
	if values == nil {
		return nil, errors.New(errors.ErrCodeStyleVectorInvalid, "style vector must not be nil")
	}
	for _, a := range ComparisonAxes {
		if _, ok := values[a]; !ok {
			return nil, errors.New(errors.ErrCodeStyleVectorInvalid,
				"style vector is missing a recognized axis").WithDetail("axis=" + string(a))
		}
	}
	recognized := make(map[Axis]bool, len(AllAxes))
	for _, a := range AllAxes {
		recognized[a] = true
	}
	v := make(Vector, len(values))
	for a, val := range values {
		if !recognized[a] {
			return nil, errors.New(errors.ErrCodeStyleAxisUnknown,
				"unknown style axis").WithDetail("axis=" + string(a))
		}
		v[a] = val
	}
	return v, nil
}

// MustVector is NewVector that panics on error.  Reserved for static catalog
// data and test fixtures where a failure is a programming mistake.
func MustVector(values map[Axis]float64) Vector {
	v, err := NewVector(values)
	if err != nil {
		panic(err)
	}
	return v
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	for a, val := range v {
		out[a] = val
	}
	return out
}

// Axes returns the axes present in v in deterministic (sorted) order.
func (v Vector) Axes() []Axis {
	out := make([]Axis, 0, len(v))
	for a := range v {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Equal reports whether v and other hold exactly the same value on every
// axis of the same axis set.
func (v Vector) Equal(other Vector) bool {
	if len(v) != len(other) {
		return false
	}
	for a, val := range v {
		o, ok := other[a]
		if !ok || o != val {
			return false
		}
	}
	return true
}

// comparisonCompatible reports whether both vectors carry the full
// comparison axis set.
func comparisonCompatible(a, b Vector) bool {
	for _, axis := range ComparisonAxes {
		if _, ok := a[axis]; !ok {
			return false
		}
		if _, ok := b[axis]; !ok {
			return false
		}
	}
	return true
}

// sharedAxes returns the axes present in both vectors in deterministic order.
func sharedAxes(a, b Vector) []Axis {
	out := make([]Axis, 0, len(a))
	for _, axis := range AllAxes {
		_, inA := a[axis]
		_, inB := b[axis]
		if inA && inB {
			out = append(out, axis)
		}
	}
	return out
}
