// Package canvas defines the abstract 2D drawing surface games render onto.
// Coordinates are logical pixels on a fixed Width x Height surface; hosts
// decide how those pixels reach an actual display.
package canvas

import "github.com/vovakirdan/rain-run/internal/core"

// Logical surface size shared by every backend.
const (
	Width  = 720.0
	Height = 280.0
)

// Point is a position in logical surface coordinates.
type Point struct {
	X, Y float64
}

// Surface is the set of primitive draw operations a renderer may use.
// Implementations keep a translation stack manipulated by Save, Restore
// and Translate; every other call is relative to the current translation.
type Surface interface {
	Clear()
	FillRect(x, y, w, h float64, c core.Color)
	StrokeRect(x, y, w, h float64, c core.Color, lineWidth float64)
	FillEllipse(cx, cy, rx, ry float64, c core.Color)
	StrokeEllipse(cx, cy, rx, ry float64, c core.Color, lineWidth float64)
	FillPath(p *Path, c core.Color)
	StrokePath(p *Path, c core.Color, lineWidth float64)
	Save()
	Restore()
	Translate(dx, dy float64)
}

// FillCircle fills a full arc of radius r.
func FillCircle(s Surface, cx, cy, r float64, c core.Color) {
	s.FillEllipse(cx, cy, r, r, c)
}

// Line strokes a single straight segment.
func Line(s Surface, x0, y0, x1, y1 float64, c core.Color, lineWidth float64) {
	p := NewPath()
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	s.StrokePath(p, c, lineWidth)
}
