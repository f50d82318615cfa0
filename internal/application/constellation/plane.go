package constellation

import (
	"github.com/turtacn/CineStyle-Engine/internal/domain/director"
	"github.com/turtacn/CineStyle-Engine/internal/domain/style"
)

// Point kinds distinguish catalog directors from the computed markers so the
// rendering layer can style them differently.
const (
	PointKindDirector = "director"
	PointKindTarget   = "target"
	PointKindBlend    = "blend"
)

// Point is one projected marker on the plane.
type Point struct {
	Kind     string           `json:"kind"`
	ID       string           `json:"id,omitempty"`
	Label    string           `json:"label,omitempty"`
	Cluster  director.Cluster `json:"cluster,omitempty"`
	Quadrant style.Quadrant   `json:"quadrant"`
	X        float64          `json:"x"`
	Y        float64          `json:"y"`
}

// Frame is everything the rendering layer needs for one paint: projected
// points plus the current viewport window.
type Frame struct {
	Points   []Point       `json:"points"`
	Viewport ViewportState `json:"viewport"`
	ViewBoxX float64       `json:"viewBoxX"`
	ViewBoxY float64       `json:"viewBoxY"`
	ViewBoxW float64       `json:"viewBoxW"`
	ViewBoxH float64       `json:"viewBoxH"`
}

// ToScreen maps a point from the data domain [0,10] x [0,10] into plane
// coordinates, inset by PlanePad.  The Y axis inverts: data y=0 renders at
// the bottom of the plane, y=10 at the top.
func ToScreen(axisX, axisY float64) (sx, sy float64) {
	sx = PlanePad + (axisX/10.0)*(MapWidth-2*PlanePad)
	sy = MapHeight - PlanePad - (axisY/10.0)*(MapHeight-2*PlanePad)
	return sx, sy
}

// ProjectVector projects a style vector onto the plane via its composite
// axes.
func ProjectVector(v style.Vector) (sx, sy float64) {
	return ToScreen(style.CompositeX(v), style.CompositeY(v))
}

// BuildFrame projects the catalog plus the optional target and blend vectors
// under the given viewport.  Catalog points keep declaration order.
func BuildFrame(catalog *director.Catalog, target, blend style.Vector, viewport ViewportState) *Frame {
	frame := &Frame{Viewport: viewport}
	frame.ViewBoxX, frame.ViewBoxY, frame.ViewBoxW, frame.ViewBoxH = viewport.ViewBox()

	if catalog != nil {
		catalog.Each(func(_ int, p director.Profile) bool {
			sx, sy := ProjectVector(p.Vector)
			frame.Points = append(frame.Points, Point{
				Kind:     PointKindDirector,
				ID:       p.ID,
				Label:    p.Name,
				Cluster:  p.Cluster,
				Quadrant: style.QuadrantOf(p.Vector),
				X:        sx,
				Y:        sy,
			})
			return true
		})
	}
	if target != nil {
		sx, sy := ProjectVector(target)
		frame.Points = append(frame.Points, Point{
			Kind:     PointKindTarget,
			Label:    "Target",
			Quadrant: style.QuadrantOf(target),
			X:        sx,
			Y:        sy,
		})
	}
	if blend != nil {
		sx, sy := ProjectVector(blend)
		frame.Points = append(frame.Points, Point{
			Kind:     PointKindBlend,
			Label:    "Blend",
			Quadrant: style.QuadrantOf(blend),
			X:        sx,
			Y:        sy,
		})
	}
	return frame
}
