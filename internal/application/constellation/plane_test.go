package constellation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/CineStyle-Engine/internal/domain/director"
	"github.com/turtacn/CineStyle-Engine/internal/domain/style"
)

func planeVector(t *testing.T, scale, spectacle, structure, fluidity, emotion float64) style.Vector {
	t.Helper()
	v, err := style.NewVector(map[style.Axis]float64{
		style.AxisScale:         scale,
		style.AxisSpectacle:     spectacle,
		style.AxisStructure:     structure,
		style.AxisGenreFluidity: fluidity,
		style.AxisEmotion:       emotion,
	})
	require.NoError(t, err)
	return v
}

func TestToScreen_Corners(t *testing.T) {
	// Data origin renders bottom-left, inset by the pad.
	sx, sy := ToScreen(0, 0)
	assert.InDelta(t, PlanePad, sx, testEpsilon)
	assert.InDelta(t, MapHeight-PlanePad, sy, testEpsilon)

	// Max data point renders top-right.
	sx, sy = ToScreen(10, 10)
	assert.InDelta(t, MapWidth-PlanePad, sx, testEpsilon)
	assert.InDelta(t, PlanePad, sy, testEpsilon)

	// Plane center.
	sx, sy = ToScreen(5, 5)
	assert.InDelta(t, MapWidth/2, sx, testEpsilon)
	assert.InDelta(t, MapHeight/2, sy, testEpsilon)
}

func TestToScreen_YInverted(t *testing.T) {
	_, low := ToScreen(5, 2)
	_, high := ToScreen(5, 8)
	assert.Greater(t, low, high)
}

func TestProjectVector_UsesCompositeAxes(t *testing.T) {
	v := planeVector(t, 8, 6, 4, 2, 5)
	sx, sy := ProjectVector(v)
	wantX, wantY := ToScreen(7, 3)
	assert.InDelta(t, wantX, sx, testEpsilon)
	assert.InDelta(t, wantY, sy, testEpsilon)
}

func TestBuildFrame(t *testing.T) {
	catalog, err := director.NewCatalog([]director.Profile{
		{
			ID:      "d1",
			Name:    "First",
			Cluster: director.ClusterClassicist,
			Vector:  planeVector(t, 8, 8, 2, 2, 5),
		},
		{
			ID:      "d2",
			Name:    "Second",
			Cluster: director.ClusterVisionary,
			Vector:  planeVector(t, 2, 2, 8, 8, 5),
		},
	})
	require.NoError(t, err)

	target := planeVector(t, 5, 5, 5, 5, 5)
	blend := planeVector(t, 6, 6, 4, 4, 5)
	viewport := ViewportState{Zoom: 5}

	frame := BuildFrame(catalog, target, blend, viewport)
	require.Len(t, frame.Points, 4)

	// Catalog points come first in declaration order, then target, then
	// blend.
	assert.Equal(t, PointKindDirector, frame.Points[0].Kind)
	assert.Equal(t, "d1", frame.Points[0].ID)
	assert.Equal(t, "d2", frame.Points[1].ID)
	assert.Equal(t, PointKindTarget, frame.Points[2].Kind)
	assert.Equal(t, PointKindBlend, frame.Points[3].Kind)

	assert.Equal(t, style.QuadrantEpicClassical, frame.Points[0].Quadrant)

	assert.InDelta(t, 120.0, frame.ViewBoxW, testEpsilon)
	assert.InDelta(t, 76.0, frame.ViewBoxH, testEpsilon)
}

func TestBuildFrame_NoOptionalVectors(t *testing.T) {
	frame := BuildFrame(nil, nil, nil, DefaultViewport())
	assert.Empty(t, frame.Points)
	assert.InDelta(t, MapWidth, frame.ViewBoxW, testEpsilon)
	assert.InDelta(t, MapHeight, frame.ViewBoxH, testEpsilon)
}
