package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuadrantOf(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want Quadrant
	}{
		{
			name: "intimate_classical",
			v:    MustVector(fullValues(2, 2, 2, 2, 5)),
			want: QuadrantIntimateClassical,
		},
		{
			name: "intimate_experimental",
			v:    MustVector(fullValues(2, 2, 8, 8, 5)),
			want: QuadrantIntimateExperimental,
		},
		{
			name: "epic_classical",
			v:    MustVector(fullValues(8, 8, 2, 2, 5)),
			want: QuadrantEpicClassical,
		},
		{
			name: "epic_experimental",
			v:    MustVector(fullValues(8, 8, 8, 8, 5)),
			want: QuadrantEpicExperimental,
		},
		{
			name: "boundary_maps_to_epic_experimental",
			v:    MustVector(fullValues(5, 5, 5, 5, 5)),
			want: QuadrantEpicExperimental,
		},
		{
			name: "composite_boundary_from_mixed_values",
			// x = (4+6)/2 = 5 exactly, y = (9+0)/2 = 4.5.
			v:    MustVector(fullValues(4, 6, 9, 0, 5)),
			want: QuadrantEpicClassical,
		},
		{
			name: "just_under_midpoint",
			v:    MustVector(fullValues(4.9, 4.9, 4.9, 4.9, 5)),
			want: QuadrantIntimateClassical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuadrantOf(tt.v))
		})
	}
}

func TestQuadrantOf_Totality(t *testing.T) {
	known := map[Quadrant]bool{
		QuadrantIntimateClassical:    true,
		QuadrantIntimateExperimental: true,
		QuadrantEpicClassical:        true,
		QuadrantEpicExperimental:     true,
	}
	for scale := 0.0; scale <= 10; scale += 2.5 {
		for structure := 0.0; structure <= 10; structure += 2.5 {
			v := MustVector(fullValues(scale, scale, structure, structure, 5))
			assert.True(t, known[QuadrantOf(v)])
		}
	}
}

func TestQuadrant_Label(t *testing.T) {
	assert.Equal(t, "Epic / Experimental", QuadrantEpicExperimental.Label())
	assert.Equal(t, "Intimate / Classical", QuadrantIntimateClassical.Label())
	assert.Equal(t, "Unknown", Quadrant("bogus").Label())
}

func TestCompositeAxes(t *testing.T) {
	v := MustVector(fullValues(4, 6, 9, 0, 5))
	assert.InDelta(t, 5.0, CompositeX(v), testEpsilon)
	assert.InDelta(t, 4.5, CompositeY(v), testEpsilon)
}

func TestEmotionTierForValue(t *testing.T) {
	tests := []struct {
		value float64
		want  EmotionTier
	}{
		{0, TierRestrained},
		{3.99, TierRestrained},
		{4.0, TierBalanced},
		{6.99, TierBalanced},
		{7.0, TierIntense},
		{10, TierIntense},
		{12.5, TierIntense}, // out-of-range input still classifies
		{-1, TierRestrained},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EmotionTierForValue(tt.value), "value %v", tt.value)
	}
}

func TestEmotionTierOf(t *testing.T) {
	assert.Equal(t, TierBalanced, EmotionTierOf(MustVector(fullValues(1, 1, 1, 1, 5))))
	assert.Equal(t, TierIntense, EmotionTierOf(MustVector(fullValues(1, 1, 1, 1, 9))))
}
