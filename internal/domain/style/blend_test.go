package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/turtacn/CineStyle-Engine/pkg/errors"
)

func TestBlend_Endpoints(t *testing.T) {
	p := MustVector(fullValues(8, 8, 2, 2, 5))
	s := MustVector(fullValues(2, 2, 8, 8, 5))

	atOne, err := Blend(p, s, 1)
	require.NoError(t, err)
	assert.True(t, atOne.Equal(p))

	atZero, err := Blend(p, s, 0)
	require.NoError(t, err)
	assert.True(t, atZero.Equal(s))
}

func TestBlend_ScaleAxisAtPointSeven(t *testing.T) {
	// 8*0.7 + 2*0.3 = 6.2 on the scale axis.
	p := MustVector(fullValues(8, 8, 2, 2, 5))
	s := MustVector(fullValues(2, 2, 8, 8, 5))

	out, err := Blend(p, s, 0.7)
	require.NoError(t, err)
	assert.InDelta(t, 6.2, out[AxisScale], testEpsilon)
}

func TestBlend_Monotonicity(t *testing.T) {
	p := MustVector(fullValues(9, 1, 4, 4, 8))
	s := MustVector(fullValues(3, 1, 4, 4, 2))

	prev := -1.0
	for w := 0.0; w <= 1.0; w += 0.05 {
		out, err := Blend(p, s, w)
		require.NoError(t, err)
		// p[scale] > s[scale]: increasing weight never decreases the result.
		assert.GreaterOrEqual(t, out[AxisScale]+testEpsilon, prev)
		prev = out[AxisScale]
	}
}

func TestBlend_WeightClamped(t *testing.T) {
	p := MustVector(fullValues(8, 8, 2, 2, 5))
	s := MustVector(fullValues(2, 2, 8, 8, 5))

	below, err := Blend(p, s, -0.5)
	require.NoError(t, err)
	assert.True(t, below.Equal(s))

	above, err := Blend(p, s, 1.5)
	require.NoError(t, err)
	assert.True(t, above.Equal(p))
}

func TestBlend_SharedAxesOnly(t *testing.T) {
	p := MustVector(fullValues(8, 8, 2, 2, 5))
	p[AxisPacing] = 6

	s := MustVector(fullValues(2, 2, 8, 8, 5))
	s[AxisPacing] = 2
	s[AxisTexture] = 9

	out, err := Blend(p, s, 0.5)
	require.NoError(t, err)

	// Shared display axis blends; the one-sided axis is dropped.
	assert.InDelta(t, 4.0, out[AxisPacing], testEpsilon)
	_, hasTexture := out[AxisTexture]
	assert.False(t, hasTexture)
}

func TestBlend_AxisMismatch(t *testing.T) {
	p := MustVector(fullValues(8, 8, 2, 2, 5))
	_, err := Blend(p, Vector{AxisScale: 1}, 0.5)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.ErrCodeStyleAxisMismatch))
}
