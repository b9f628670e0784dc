package canvas

import (
	"math"

	"github.com/vovakirdan/rain-run/internal/core"
)

// Glyphs used when rasterizing onto a character grid.
const (
	GlyphFill    = '█'
	GlyphHoriz   = '─'
	GlyphVert    = '│'
	GlyphRising  = '╱'
	GlyphFalling = '╲'
	GlyphOutline = '•'
)

// Raster draws onto a rectangular region of a core.Screen, scaling the
// logical surface to fit. Shapes cover every cell they touch, so small
// features never vanish at low resolution.
type Raster struct {
	dst    *core.Screen
	region core.Rect
	sx, sy float64
	offset Point
	stack  []Point
}

// NewRaster maps the logical surface onto region of dst.
func NewRaster(dst *core.Screen, region core.Rect) *Raster {
	r := &Raster{dst: dst}
	r.SetRegion(region)
	return r
}

// SetRegion changes the target region, e.g. after a terminal resize.
func (r *Raster) SetRegion(region core.Rect) {
	r.region = region
	r.sx = float64(region.W) / Width
	r.sy = float64(region.H) / Height
}

// Region returns the target region.
func (r *Raster) Region() core.Rect {
	return r.region
}

// cell converts a logical point to a grid cell relative to the region.
func (r *Raster) cell(x, y float64) (int, int) {
	return int(math.Floor((x + r.offset.X) * r.sx)), int(math.Floor((y + r.offset.Y) * r.sy))
}

func (r *Raster) plot(col, row int, glyph rune, c core.Color) {
	x, y := r.region.X+col, r.region.Y+row
	if !r.region.Contains(x, y) {
		return
	}
	r.dst.SetCell(x, y, glyph, c)
}

// span returns the inclusive cell range touched by [a, a+size) along one axis.
func span(a, size, scale float64) (int, int) {
	lo := int(math.Floor(a * scale))
	hi := int(math.Ceil((a+size)*scale)) - 1
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func (r *Raster) Clear() {
	for row := 0; row < r.region.H; row++ {
		for col := 0; col < r.region.W; col++ {
			r.plot(col, row, ' ', core.ColorDefault)
		}
	}
}

func (r *Raster) FillRect(x, y, w, h float64, c core.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	c0, c1 := span(x+r.offset.X, w, r.sx)
	r0, r1 := span(y+r.offset.Y, h, r.sy)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.plot(col, row, GlyphFill, c)
		}
	}
}

func (r *Raster) StrokeRect(x, y, w, h float64, c core.Color, _ float64) {
	if w <= 0 || h <= 0 {
		return
	}
	p := NewPath()
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	r.StrokePath(p, c, 1)
}

func (r *Raster) FillEllipse(cx, cy, rx, ry float64, c core.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	c0, c1 := span(cx-rx+r.offset.X, 2*rx, r.sx)
	r0, r1 := span(cy-ry+r.offset.Y, 2*ry, r.sy)
	filled := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			// cell center back in local logical space
			px := (float64(col)+0.5)/r.sx - r.offset.X
			py := (float64(row)+0.5)/r.sy - r.offset.Y
			dx, dy := (px-cx)/rx, (py-cy)/ry
			if dx*dx+dy*dy <= 1 {
				r.plot(col, row, GlyphFill, c)
				filled = true
			}
		}
	}
	if !filled {
		col, row := r.cell(cx, cy)
		r.plot(col, row, GlyphFill, c)
	}
}

func (r *Raster) StrokeEllipse(cx, cy, rx, ry float64, c core.Color, _ float64) {
	if rx <= 0 || ry <= 0 {
		return
	}
	const samples = 24
	for i := 0; i < samples; i++ {
		a := 2 * math.Pi * float64(i) / samples
		col, row := r.cell(cx+rx*math.Cos(a), cy+ry*math.Sin(a))
		r.plot(col, row, GlyphOutline, c)
	}
}

func (r *Raster) FillPath(p *Path, c core.Color) {
	polys := p.Polylines(r.offset.X, r.offset.Y)
	if len(polys) == 0 {
		return
	}
	minX, minY, maxX, maxY, _ := p.Bounds()
	c0, c1 := span(minX+r.offset.X, maxX-minX, r.sx)
	r0, r1 := span(minY+r.offset.Y, maxY-minY, r.sy)
	filled := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			pt := Point{(float64(col) + 0.5) / r.sx, (float64(row) + 0.5) / r.sy}
			if insideAny(polys, pt) {
				r.plot(col, row, GlyphFill, c)
				filled = true
			}
		}
	}
	if !filled {
		col, row := r.cell((minX+maxX)/2, (minY+maxY)/2)
		r.plot(col, row, GlyphFill, c)
	}
}

// insideAny applies the even-odd rule across all subpaths.
func insideAny(polys [][]Point, pt Point) bool {
	inside := false
	for _, poly := range polys {
		n := len(poly)
		for i, j := 0, n-1; i < n; j, i = i, i+1 {
			a, b := poly[i], poly[j]
			if (a.Y > pt.Y) != (b.Y > pt.Y) &&
				pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
				inside = !inside
			}
		}
	}
	return inside
}

func (r *Raster) StrokePath(p *Path, c core.Color, _ float64) {
	for _, line := range p.Polylines(r.offset.X, r.offset.Y) {
		if len(line) == 1 {
			r.plot(int(math.Floor(line[0].X*r.sx)), int(math.Floor(line[0].Y*r.sy)), GlyphOutline, c)
			continue
		}
		for i := 1; i < len(line); i++ {
			r.segment(line[i-1], line[i], c)
		}
	}
}

// segment walks a line in cell space, choosing a glyph from its slope.
func (r *Raster) segment(a, b Point, c core.Color) {
	ax, ay := a.X*r.sx, a.Y*r.sy
	bx, by := b.X*r.sx, b.Y*r.sy
	dx, dy := bx-ax, by-ay

	var glyph rune
	switch adx, ady := math.Abs(dx), math.Abs(dy); {
	case ady < 0.5*adx:
		glyph = GlyphHoriz
	case adx < 0.5*ady:
		glyph = GlyphVert
	case dx*dy > 0:
		glyph = GlyphFalling
	default:
		glyph = GlyphRising
	}

	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))*2)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		r.plot(int(math.Floor(ax+dx*t)), int(math.Floor(ay+dy*t)), glyph, c)
	}
}

func (r *Raster) Save() {
	r.stack = append(r.stack, r.offset)
}

func (r *Raster) Restore() {
	if len(r.stack) == 0 {
		return
	}
	r.offset = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Raster) Translate(dx, dy float64) {
	r.offset.X += dx
	r.offset.Y += dy
}

var _ Surface = (*Raster)(nil)
