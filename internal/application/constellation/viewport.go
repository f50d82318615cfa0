// Package constellation renders style space: it projects catalog directors,
// the target vector, and blend results onto a fixed 2D plane and maintains
// per-session pan/zoom viewport state driven by user gestures.
package constellation

// Logical plane dimensions.  All viewport math happens in this coordinate
// space; the rendering layer scales the plane to whatever pixel surface it
// has available.
const (
	MapWidth  = 600.0
	MapHeight = 380.0

	// PlanePad insets projected points so axis labels and boundary markers
	// do not clip at the plane edge.
	PlanePad = 40.0

	ZoomMin   = 1.0
	ZoomMax   = 5.0
	WheelStep = 0.25
)

// ViewportState is the visible window over the logical plane.  Zoom and pan
// are always held within valid range; gesture input is clamped, never
// rejected.
type ViewportState struct {
	Zoom float64 `json:"zoom"`
	PanX float64 `json:"panX"`
	PanY float64 `json:"panY"`

	Dragging bool    `json:"dragging"`
	PointerX float64 `json:"-"`
	PointerY float64 `json:"-"`
}

// DefaultViewport is the fit view: the whole plane visible at zoom 1.
func DefaultViewport() ViewportState {
	return ViewportState{Zoom: ZoomMin}
}

// ViewBox returns the clamped visible window (origin and size) in plane
// coordinates.  The window shrinks as zoom grows.
func (s ViewportState) ViewBox() (x, y, w, h float64) {
	zoom := clamp(s.Zoom, ZoomMin, ZoomMax)
	w = MapWidth / zoom
	h = MapHeight / zoom
	x = clamp(s.PanX, 0, MapWidth-w)
	y = clamp(s.PanY, 0, MapHeight-h)
	return x, y, w, h
}

// GestureEvent is one unit of user input.  Apply consumes events and returns
// the next state; events never fail.
type GestureEvent interface {
	// Kind names the gesture for logging and metrics.
	Kind() string
}

// WheelEvent zooms.  Negative DeltaY (scrolling up) zooms in by one step.
type WheelEvent struct {
	DeltaY float64 `json:"deltaY"`
}

func (WheelEvent) Kind() string { return "wheel" }

// DragStartEvent begins a pan.  OnPoint marks a pointer-down that landed on
// a director node; those clicks select rather than pan, so no drag starts.
type DragStartEvent struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	OnPoint bool    `json:"onPoint"`
}

func (DragStartEvent) Kind() string { return "drag_start" }

// DragMoveEvent continues a pan.  RenderedWidth/RenderedHeight give the
// pixel size of the surface the pointer moves over, so the pixel delta can
// be converted back into plane units at the current zoom.
type DragMoveEvent struct {
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	RenderedWidth  float64 `json:"renderedWidth"`
	RenderedHeight float64 `json:"renderedHeight"`
}

func (DragMoveEvent) Kind() string { return "drag_move" }

// DragEndEvent finishes a pan.
type DragEndEvent struct{}

func (DragEndEvent) Kind() string { return "drag_end" }

// ResetEvent restores the fit view.
type ResetEvent struct{}

func (ResetEvent) Kind() string { return "reset" }

// Apply is the viewport state machine: (state, event) -> state.  It is pure
// and framework-independent.  Pan is reclamped on every transition because a
// zoom-out can invalidate a pan position that was legal at higher zoom.
func Apply(s ViewportState, ev GestureEvent) ViewportState {
	switch e := ev.(type) {
	case WheelEvent:
		step := WheelStep
		if e.DeltaY > 0 {
			step = -WheelStep
		}
		s.Zoom = clamp(s.Zoom+step, ZoomMin, ZoomMax)

	case DragStartEvent:
		if e.OnPoint {
			s.Dragging = false
			break
		}
		s.Dragging = true
		s.PointerX = e.X
		s.PointerY = e.Y

	case DragMoveEvent:
		if !s.Dragging {
			break
		}
		rw, rh := e.RenderedWidth, e.RenderedHeight
		if rw <= 0 {
			rw = MapWidth
		}
		if rh <= 0 {
			rh = MapHeight
		}
		zoom := clamp(s.Zoom, ZoomMin, ZoomMax)
		scaleX := (MapWidth / zoom) / rw
		scaleY := (MapHeight / zoom) / rh
		// Dragging the surface right moves the window left.
		s.PanX -= (e.X - s.PointerX) * scaleX
		s.PanY -= (e.Y - s.PointerY) * scaleY
		s.PointerX = e.X
		s.PointerY = e.Y

	case DragEndEvent:
		s.Dragging = false

	case ResetEvent:
		return DefaultViewport()
	}

	s.Zoom = clamp(s.Zoom, ZoomMin, ZoomMax)
	s.PanX = clamp(s.PanX, 0, MapWidth-MapWidth/s.Zoom)
	s.PanY = clamp(s.PanY, 0, MapHeight-MapHeight/s.Zoom)
	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
