package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/turtacn/CineStyle-Engine/pkg/errors"
)

const testEpsilon = 1e-9

// fullValues returns a complete comparison axis mapping for tests.
func fullValues(scale, spectacle, structure, fluidity, emotion float64) map[Axis]float64 {
	return map[Axis]float64{
		AxisScale:         scale,
		AxisSpectacle:     spectacle,
		AxisStructure:     structure,
		AxisGenreFluidity: fluidity,
		AxisEmotion:       emotion,
	}
}

func TestNewVector(t *testing.T) {
	v, err := NewVector(fullValues(8, 8, 2, 2, 5))
	require.NoError(t, err)
	assert.Equal(t, 8.0, v[AxisScale])
	assert.Equal(t, 5.0, v[AxisEmotion])
}

func TestNewVector_MissingAxis(t *testing.T) {
	values := fullValues(8, 8, 2, 2, 5)
	delete(values, AxisEmotion)

	_, err := NewVector(values)
	assert.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.ErrCodeStyleVectorInvalid))
}

func TestNewVector_NilInput(t *testing.T) {
	_, err := NewVector(nil)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.ErrCodeStyleVectorInvalid))
}

func TestNewVector_UnknownAxis(t *testing.T) {
	values := fullValues(8, 8, 2, 2, 5)
	values[Axis("grandeur")] = 3

	_, err := NewVector(values)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.ErrCodeStyleAxisUnknown))
}

func TestNewVector_DisplayAxesOptional(t *testing.T) {
	values := fullValues(8, 8, 2, 2, 5)
	values[AxisPacing] = 6
	values[AxisTexture] = 3

	v, err := NewVector(values)
	require.NoError(t, err)
	assert.Len(t, v, 7)
}

func TestNewVector_OutOfRangePassesThrough(t *testing.T) {
	// A miscalibrated upstream producer can exceed [0, 10]; the model keeps
	// the value instead of clamping or erroring.
	v, err := NewVector(fullValues(12.3, -1, 2, 2, 5))
	require.NoError(t, err)
	assert.Equal(t, 12.3, v[AxisScale])
	assert.Equal(t, -1.0, v[AxisSpectacle])
}

func TestNewVector_DefensiveCopy(t *testing.T) {
	values := fullValues(1, 2, 3, 4, 5)
	v, err := NewVector(values)
	require.NoError(t, err)

	values[AxisScale] = 99
	assert.Equal(t, 1.0, v[AxisScale])
}

func TestVector_Clone(t *testing.T) {
	v := MustVector(fullValues(1, 2, 3, 4, 5))
	c := v.Clone()
	c[AxisScale] = 9
	assert.Equal(t, 1.0, v[AxisScale])
	assert.Equal(t, 9.0, c[AxisScale])
}

func TestVector_Equal(t *testing.T) {
	a := MustVector(fullValues(1, 2, 3, 4, 5))
	b := MustVector(fullValues(1, 2, 3, 4, 5))
	c := MustVector(fullValues(1, 2, 3, 4, 6))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	withDisplay := a.Clone()
	withDisplay[AxisPacing] = 5
	assert.False(t, a.Equal(withDisplay))
}

func TestVector_AxesDeterministic(t *testing.T) {
	v := MustVector(fullValues(1, 2, 3, 4, 5))
	assert.Equal(t, v.Axes(), v.Axes())
	assert.Len(t, v.Axes(), 5)
}

func TestIsComparisonAxis(t *testing.T) {
	assert.True(t, IsComparisonAxis(AxisScale))
	assert.True(t, IsComparisonAxis(AxisEmotion))
	assert.False(t, IsComparisonAxis(AxisPacing))
	assert.False(t, IsComparisonAxis(AxisTexture))
}

func TestMustVector_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustVector(map[Axis]float64{AxisScale: 1})
	})
}
