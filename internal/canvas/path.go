package canvas

// curveSteps is the number of segments a quadratic curve flattens into.
const curveSteps = 8

type segKind uint8

const (
	segMove segKind = iota
	segLine
	segQuad
	segClose
)

type segment struct {
	kind segKind
	ctrl Point
	to   Point
}

// Path is a sequence of move, line and quadratic-curve commands.
type Path struct {
	segs []segment
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.segs = append(p.segs, segment{kind: segMove, to: Point{x, y}})
}

// LineTo adds a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.segs = append(p.segs, segment{kind: segLine, to: Point{x, y}})
}

// QuadTo adds a quadratic Bezier segment with control point (cx, cy).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.segs = append(p.segs, segment{kind: segQuad, ctrl: Point{cx, cy}, to: Point{x, y}})
}

// Close joins the current subpath back to its first point.
func (p *Path) Close() {
	p.segs = append(p.segs, segment{kind: segClose})
}

// Empty reports whether the path has no commands.
func (p *Path) Empty() bool {
	return p == nil || len(p.segs) == 0
}

// Polylines flattens the path into one polyline per subpath, offset by
// (dx, dy). Closed subpaths repeat their first point at the end.
func (p *Path) Polylines(dx, dy float64) [][]Point {
	if p.Empty() {
		return nil
	}

	var (
		out   [][]Point
		cur   []Point
		start Point
		pen   Point
	)
	flush := func() {
		if len(cur) > 0 {
			out = append(out, cur)
		}
		cur = nil
	}

	for _, s := range p.segs {
		switch s.kind {
		case segMove:
			flush()
			start, pen = s.to, s.to
			cur = []Point{{pen.X + dx, pen.Y + dy}}
		case segLine:
			if cur == nil {
				cur = []Point{{pen.X + dx, pen.Y + dy}}
			}
			pen = s.to
			cur = append(cur, Point{pen.X + dx, pen.Y + dy})
		case segQuad:
			if cur == nil {
				cur = []Point{{pen.X + dx, pen.Y + dy}}
			}
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				u := 1 - t
				x := u*u*pen.X + 2*u*t*s.ctrl.X + t*t*s.to.X
				y := u*u*pen.Y + 2*u*t*s.ctrl.Y + t*t*s.to.Y
				cur = append(cur, Point{x + dx, y + dy})
			}
			pen = s.to
		case segClose:
			if cur != nil {
				cur = append(cur, Point{start.X + dx, start.Y + dy})
				pen = start
			}
		}
	}
	flush()
	return out
}

// Bounds returns the bounding box of the flattened path.
func (p *Path) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	for _, line := range p.Polylines(0, 0) {
		for _, pt := range line {
			if !ok {
				minX, maxX, minY, maxY = pt.X, pt.X, pt.Y, pt.Y
				ok = true
				continue
			}
			minX = min(minX, pt.X)
			maxX = max(maxX, pt.X)
			minY = min(minY, pt.Y)
			maxY = max(maxY, pt.Y)
		}
	}
	return minX, minY, maxX, maxY, ok
}
