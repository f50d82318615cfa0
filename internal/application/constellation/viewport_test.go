package constellation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEpsilon = 1e-9

func TestDefaultViewport(t *testing.T) {
	s := DefaultViewport()
	assert.Equal(t, ZoomMin, s.Zoom)
	assert.Zero(t, s.PanX)
	assert.Zero(t, s.PanY)
	assert.False(t, s.Dragging)
}

func TestViewBox_ShrinksWithZoom(t *testing.T) {
	s := ViewportState{Zoom: 5}
	x, y, w, h := s.ViewBox()
	assert.InDelta(t, 0.0, x, testEpsilon)
	assert.InDelta(t, 0.0, y, testEpsilon)
	assert.InDelta(t, 120.0, w, testEpsilon)
	assert.InDelta(t, 76.0, h, testEpsilon)
}

func TestApply_WheelZoomsAndClamps(t *testing.T) {
	s := DefaultViewport()

	// Scroll up zooms in one step at a time.
	s = Apply(s, WheelEvent{DeltaY: -1})
	assert.InDelta(t, 1.25, s.Zoom, testEpsilon)

	for i := 0; i < 100; i++ {
		s = Apply(s, WheelEvent{DeltaY: -1})
	}
	assert.InDelta(t, ZoomMax, s.Zoom, testEpsilon)

	for i := 0; i < 100; i++ {
		s = Apply(s, WheelEvent{DeltaY: 1})
	}
	assert.InDelta(t, ZoomMin, s.Zoom, testEpsilon)
}

func TestApply_ZoomOutReclampsPan(t *testing.T) {
	// Pan to the far corner at max zoom, then zoom all the way back out.
	// The window then covers the full plane, so pan must collapse to (0,0).
	s := ViewportState{Zoom: ZoomMax, PanX: MapWidth - MapWidth/ZoomMax, PanY: MapHeight - MapHeight/ZoomMax}

	for i := 0; i < 16; i++ {
		s = Apply(s, WheelEvent{DeltaY: 1})
	}
	assert.InDelta(t, ZoomMin, s.Zoom, testEpsilon)
	assert.InDelta(t, 0.0, s.PanX, testEpsilon)
	assert.InDelta(t, 0.0, s.PanY, testEpsilon)
}

func TestApply_DragPansInverse(t *testing.T) {
	s := ViewportState{Zoom: 2, PanX: 100, PanY: 50}

	s = Apply(s, DragStartEvent{X: 300, Y: 200})
	require.True(t, s.Dragging)

	// Rendered surface matches the plane size, so one pixel equals
	// 1/zoom plane units.  Dragging right by 40px moves the window left
	// by 20 units.
	s = Apply(s, DragMoveEvent{X: 340, Y: 200, RenderedWidth: MapWidth, RenderedHeight: MapHeight})
	assert.InDelta(t, 80.0, s.PanX, testEpsilon)
	assert.InDelta(t, 50.0, s.PanY, testEpsilon)

	s = Apply(s, DragEndEvent{})
	assert.False(t, s.Dragging)

	// Moves after drag end change nothing.
	before := s
	s = Apply(s, DragMoveEvent{X: 0, Y: 0, RenderedWidth: MapWidth, RenderedHeight: MapHeight})
	assert.Equal(t, before, s)
}

func TestApply_DragStartOnPointDoesNotPan(t *testing.T) {
	s := ViewportState{Zoom: 2, PanX: 100, PanY: 50}

	s = Apply(s, DragStartEvent{X: 300, Y: 200, OnPoint: true})
	assert.False(t, s.Dragging)

	s = Apply(s, DragMoveEvent{X: 340, Y: 240, RenderedWidth: MapWidth, RenderedHeight: MapHeight})
	assert.InDelta(t, 100.0, s.PanX, testEpsilon)
	assert.InDelta(t, 50.0, s.PanY, testEpsilon)
}

func TestApply_DragClampsAtPlaneEdge(t *testing.T) {
	s := ViewportState{Zoom: 2}

	s = Apply(s, DragStartEvent{X: 500, Y: 300})
	// Drag far left: window wants to move right past the plane edge.
	s = Apply(s, DragMoveEvent{X: -5000, Y: 300, RenderedWidth: MapWidth, RenderedHeight: MapHeight})
	assert.InDelta(t, MapWidth-MapWidth/2, s.PanX, testEpsilon)
}

func TestApply_Reset(t *testing.T) {
	s := ViewportState{Zoom: 4, PanX: 200, PanY: 100, Dragging: true}
	s = Apply(s, ResetEvent{})
	assert.Equal(t, DefaultViewport(), s)
}

func TestApply_ClampInvariantUnderRandomGestures(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := DefaultViewport()

	for i := 0; i < 2000; i++ {
		var ev GestureEvent
		switch rng.Intn(5) {
		case 0:
			ev = WheelEvent{DeltaY: rng.Float64()*2 - 1}
		case 1:
			ev = DragStartEvent{X: rng.Float64() * MapWidth, Y: rng.Float64() * MapHeight, OnPoint: rng.Intn(4) == 0}
		case 2:
			ev = DragMoveEvent{
				X:              rng.Float64()*2000 - 500,
				Y:              rng.Float64()*2000 - 500,
				RenderedWidth:  MapWidth,
				RenderedHeight: MapHeight,
			}
		case 3:
			ev = DragEndEvent{}
		case 4:
			ev = ResetEvent{}
		}
		s = Apply(s, ev)

		x, y, w, h := s.ViewBox()
		require.GreaterOrEqual(t, s.Zoom, ZoomMin)
		require.LessOrEqual(t, s.Zoom, ZoomMax)
		require.GreaterOrEqual(t, x, 0.0)
		require.GreaterOrEqual(t, y, 0.0)
		require.LessOrEqual(t, x+w, MapWidth+testEpsilon)
		require.LessOrEqual(t, y+h, MapHeight+testEpsilon)
		require.GreaterOrEqual(t, s.PanX, 0.0)
		require.LessOrEqual(t, s.PanX, MapWidth-MapWidth/s.Zoom+testEpsilon)
		require.GreaterOrEqual(t, s.PanY, 0.0)
		require.LessOrEqual(t, s.PanY, MapHeight-MapHeight/s.Zoom+testEpsilon)
	}
}
