package canvas

import "github.com/vovakirdan/rain-run/internal/core"

// Op names recorded by Recorder.
const (
	OpClear         = "clear"
	OpFillRect      = "fill_rect"
	OpStrokeRect    = "stroke_rect"
	OpFillEllipse   = "fill_ellipse"
	OpStrokeEllipse = "stroke_ellipse"
	OpFillPath      = "fill_path"
	OpStrokePath    = "stroke_path"
)

// Op is one recorded draw call. Bounds are in surface coordinates with the
// translation at call time already applied.
type Op struct {
	Name   string
	Color  core.Color
	Bounds core.RectF
}

// Recorder is a Surface that logs draw calls instead of drawing them.
type Recorder struct {
	Ops    []Op
	stack  []Point
	offset Point
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Reset drops all recorded ops and transforms.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.stack = r.stack[:0]
	r.offset = Point{}
}

// Count returns how many ops with the given name were recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Depth returns the current Save nesting depth.
func (r *Recorder) Depth() int {
	return len(r.stack)
}

func (r *Recorder) add(name string, c core.Color, x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{
		Name:   name,
		Color:  c,
		Bounds: core.NewRectF(x+r.offset.X, y+r.offset.Y, w, h),
	})
}

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Name: OpClear, Bounds: core.NewRectF(0, 0, Width, Height)})
}

func (r *Recorder) FillRect(x, y, w, h float64, c core.Color) {
	r.add(OpFillRect, c, x, y, w, h)
}

func (r *Recorder) StrokeRect(x, y, w, h float64, c core.Color, _ float64) {
	r.add(OpStrokeRect, c, x, y, w, h)
}

func (r *Recorder) FillEllipse(cx, cy, rx, ry float64, c core.Color) {
	r.add(OpFillEllipse, c, cx-rx, cy-ry, 2*rx, 2*ry)
}

func (r *Recorder) StrokeEllipse(cx, cy, rx, ry float64, c core.Color, _ float64) {
	r.add(OpStrokeEllipse, c, cx-rx, cy-ry, 2*rx, 2*ry)
}

func (r *Recorder) FillPath(p *Path, c core.Color) {
	r.addPath(OpFillPath, p, c)
}

func (r *Recorder) StrokePath(p *Path, c core.Color, _ float64) {
	r.addPath(OpStrokePath, p, c)
}

func (r *Recorder) addPath(name string, p *Path, c core.Color) {
	minX, minY, maxX, maxY, ok := p.Bounds()
	if !ok {
		return
	}
	r.add(name, c, minX, minY, maxX-minX, maxY-minY)
}

func (r *Recorder) Save() {
	r.stack = append(r.stack, r.offset)
}

func (r *Recorder) Restore() {
	if len(r.stack) == 0 {
		return
	}
	r.offset = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Recorder) Translate(dx, dy float64) {
	r.offset.X += dx
	r.offset.Y += dy
}

var _ Surface = (*Recorder)(nil)
