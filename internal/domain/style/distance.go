package style

import (
	"math"
	"strings"

	"github.com/turtacn/CineStyle-Engine/pkg/errors"
)

// Genre-aware scoring constants.  Each genre shared between a film and a
// director's known work discounts the style distance by 15%, floored at 40%
// of the base distance so that a long list of genre matches can never make a
// wildly mismatched style the closest.
const (
	GenreAffinityStep  = 0.15
	GenreDiscountFloor = 0.4
)

// Distance returns the Euclidean distance between a and b over the
// comparison axis set only.  Display axes are excluded so that a
// script-derived vector and a catalog vector never disagree on the axes
// being compared.
//
// Properties: symmetric, non-negative, zero iff a == b on every comparison
// axis.  Returns ErrCodeStyleAxisMismatch when either vector lacks part of
// the comparison axis set.
func Distance(a, b Vector) (float64, error) {
	if !comparisonCompatible(a, b) {
		return 0, errors.New(errors.ErrCodeStyleAxisMismatch,
			"style vectors have incompatible axis sets")
	}
	var sum float64
	for _, axis := range ComparisonAxes {
		d := a[axis] - b[axis]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// GenreOverlap counts the film genres present in knownFor, using
// case-insensitive exact matching.  Duplicate film genres count once.
func GenreOverlap(filmGenres, knownFor []string) int {
	if len(filmGenres) == 0 || len(knownFor) == 0 {
		return 0
	}
	known := make(map[string]bool, len(knownFor))
	for _, g := range knownFor {
		known[strings.ToLower(strings.TrimSpace(g))] = true
	}
	seen := make(map[string]bool, len(filmGenres))
	overlap := 0
	for _, g := range filmGenres {
		key := strings.ToLower(strings.TrimSpace(g))
		if known[key] && !seen[key] {
			seen[key] = true
			overlap++
		}
	}
	return overlap
}

// GenreAwareDistance computes the style distance between target and a
// director's vector, discounted by genre overlap between the film and the
// director's known work:
//
//	base * max(GenreDiscountFloor, 1 - GenreAffinityStep*overlap)
//
// With no film genres the base distance is returned unchanged.  This is a
// bounded multiplicative adjustment of Distance, not a separate metric; the
// 0.15 step and 0.4 floor are fixed for output parity with earlier releases.
func GenreAwareDistance(target, director Vector, knownFor, filmGenres []string) (float64, error) {
	base, err := Distance(target, director)
	if err != nil {
		return 0, err
	}
	if len(filmGenres) == 0 {
		return base, nil
	}
	bonus := GenreAffinityStep * float64(GenreOverlap(filmGenres, knownFor))
	factor := math.Max(GenreDiscountFloor, 1-bonus)
	return base * factor, nil
}
