package rainrun

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/rain-run/internal/canvas"
	"github.com/vovakirdan/rain-run/internal/core"
)

// Pool sizes and parallax factors.
const (
	NearDecorCount = 6
	FarDecorCount  = 4
	RainDropCount  = 180

	nearScroll = 18 // pixels per speed-second
	farScroll  = 10
	nearLift   = 36 // decor baseline above the ground line
	farLift    = 52
	decorExit  = -60

	streakCount   = 10
	streakSpacing = 120
	streakScroll  = 30

	healthBarW = 44
	healthBarH = 6
)

// DecorKind is the shape of a background ornament.
type DecorKind string

const (
	DecorTree      DecorKind = "tree"
	DecorStructure DecorKind = "structure"
)

// Layer is a parallax depth.
type Layer int

const (
	LayerNear Layer = iota
	LayerFar
)

// Decor is one recycled background ornament.
type Decor struct {
	X, Y, W, H float64
	Kind       DecorKind
	Layer      Layer
}

type rainDrop struct {
	x, y   float64
	length float64
	fall   float64
}

// Scenery is the parallax renderer. It owns everything purely visual: the
// rain, two fixed-size decor arenas, the run cycle and its own random
// source. Nothing it does feeds back into the simulation.
type Scenery struct {
	near    [NearDecorCount]Decor
	far     [FarDecorCount]Decor
	rain    [RainDropCount]rainDrop
	phase   float64
	scroll  float64
	groundY float64
	rng     *rand.Rand
}

// NewScenery builds a populated scene.
func NewScenery(seed int64, groundY float64) *Scenery {
	s := &Scenery{groundY: groundY}
	s.Reset(seed)
	return s
}

// Reset repopulates rain and decor and rewinds the animation.
func (s *Scenery) Reset(seed int64) {
	s.rng = rand.New(rand.NewPCG(uint64(seed), 0x5eed))
	s.phase = 0
	s.scroll = 0

	for i := range s.rain {
		s.rain[i] = rainDrop{
			x:      s.rng.Float64() * canvas.Width,
			y:      s.rng.Float64() * canvas.Height,
			length: s.rng.Float64()*15 + 10,
			fall:   s.rng.Float64()*3 + 1,
		}
	}
	s.populate(s.near[:], LayerNear)
	s.populate(s.far[:], LayerFar)
}

func (s *Scenery) populate(arena []Decor, layer Layer) {
	slot := canvas.Width / float64(len(arena))
	for i := range arena {
		arena[i].Layer = layer
		s.reshape(&arena[i])
		arena[i].X = float64(i)*slot + s.rng.Float64()*30
	}
}

// reshape draws a fresh archetype and size for d.
func (s *Scenery) reshape(d *Decor) {
	if s.rng.Float64() < 0.6 {
		d.Kind = DecorTree
		d.W = 20 + s.rng.Float64()*10
		d.H = 24 + s.rng.Float64()*16
	} else {
		d.Kind = DecorStructure
		d.W = 26 + s.rng.Float64()*14
		d.H = 20 + s.rng.Float64()*12
	}
	lift := float64(nearLift)
	if d.Layer == LayerFar {
		lift = farLift
	}
	d.Y = s.groundY - lift
}

// Advance moves the scene forward by dt at the given effective speed.
func (s *Scenery) Advance(dt, speed float64) {
	s.phase += dt * (6 + speed)
	s.scroll += dt * speed * streakScroll

	// rain is tuned in pixels per 60Hz frame
	step := dt * 60
	for i := range s.rain {
		d := &s.rain[i]
		d.x -= 1.5 * step
		d.y += d.fall * 4 * step
		if d.y > canvas.Height+20 {
			d.y = -10
			d.x = s.rng.Float64() * canvas.Width
		}
		if d.x < -20 {
			d.x = canvas.Width + 10
		}
	}

	s.move(s.far[:], speed*farScroll*dt)
	s.move(s.near[:], speed*nearScroll*dt)
}

func (s *Scenery) move(arena []Decor, dx float64) {
	for i := range arena {
		d := &arena[i]
		d.X -= dx
		if d.X < decorExit {
			d.X = canvas.Width + s.rng.Float64()*80
			s.reshape(d)
		}
	}
}

// Decor returns copies of both arenas, near first.
func (s *Scenery) Decor() (near, far []Decor) {
	return append([]Decor(nil), s.near[:]...), append([]Decor(nil), s.far[:]...)
}

// Draw emits one frame: background streaks, ground, rain, far then near
// decor, obstacles and finally the runner.
func (s *Scenery) Draw(dst canvas.Surface, runner Runner, bodyH float64, health float64, obstacles []Obstacle) {
	dst.Clear()
	s.drawBackdrop(dst)
	for i := range s.far {
		drawDecor(dst, s.far[i])
	}
	for i := range s.near {
		drawDecor(dst, s.near[i])
	}
	for _, ob := range obstacles {
		drawObstacle(dst, ob)
	}
	s.drawRunner(dst, runner, bodyH, health)
}

func (s *Scenery) drawBackdrop(dst canvas.Surface) {
	w, h := canvas.Width, canvas.Height
	shift := math.Mod(s.scroll, streakSpacing)
	for i := 0; i < streakCount; i++ {
		x := math.Mod(float64(i*streakSpacing)-shift+w, w)
		canvas.Line(dst, x, h, x-20, h-40, core.ColorNight, 2)
	}

	canvas.Line(dst, 0, s.groundY+1, w, s.groundY+1, core.ColorSlate, 3)

	for _, d := range s.rain {
		canvas.Line(dst, d.x, d.y, d.x-3, d.y+d.length, core.ColorGray, 1.5)
	}
}

// peak returns a closed triangle with its apex centered over [x, x+w].
func peak(x, base, apex, w float64) *canvas.Path {
	p := canvas.NewPath()
	p.MoveTo(x, base)
	p.LineTo(x+w*0.5, apex)
	p.LineTo(x+w, base)
	p.Close()
	return p
}

func drawDecor(dst canvas.Surface, d Decor) {
	tint := core.ColorSky
	if d.Layer == LayerFar {
		tint = core.ColorBlue
	}

	switch d.Kind {
	case DecorTree:
		dst.FillRect(d.X+d.W*0.45, d.Y+d.H*0.3, d.W*0.1, d.H*0.7, core.ColorSlate)
		crown := peak(d.X, d.Y+d.H*0.3, d.Y, d.W)
		dst.FillPath(crown, tint)
		dst.StrokePath(crown, core.ColorBrightBlue, 1)
	default:
		dst.FillRect(d.X, d.Y+d.H*0.2, d.W, d.H*0.8, core.ColorIndigo)
		dst.StrokeRect(d.X, d.Y+d.H*0.2, d.W, d.H*0.8, core.ColorBrightBlue, 1)
		roof := peak(d.X, d.Y+d.H*0.2, d.Y, d.W)
		dst.FillPath(roof, tint)
		dst.StrokePath(roof, core.ColorBrightBlue, 1)
	}
}

func drawObstacle(dst canvas.Surface, ob Obstacle) {
	x, y, w, h := ob.X, ob.Y, ob.W, ob.H
	if ob.Kind == KindLow {
		peel := canvas.NewPath()
		peel.MoveTo(x, y+h)
		peel.QuadTo(x+w*0.5, y-h*0.2, x+w, y+h)
		peel.LineTo(x+w*0.7, y+h*0.7)
		peel.LineTo(x+w*0.3, y+h*0.7)
		peel.Close()
		dst.FillPath(peel, core.ColorAmber)
		return
	}

	dst.FillEllipse(x+w*0.5, y+h*0.5, w*0.5, h*0.5, core.ColorBlue)
	wings := canvas.NewPath()
	wings.MoveTo(x+w*0.2, y+h*0.4)
	wings.LineTo(x+w*0.6, y+h*0.2)
	wings.MoveTo(x+w*0.8, y+h*0.4)
	wings.LineTo(x+w*0.4, y+h*0.2)
	dst.StrokePath(wings, core.ColorBrightBlue, 2)
}

// healthColor maps remaining health (0..1) to the bar color.
func healthColor(frac float64) core.Color {
	switch {
	case frac > 0.6:
		return core.ColorGreen
	case frac > 0.3:
		return core.ColorAmber
	default:
		return core.ColorRed
	}
}

func (s *Scenery) drawRunner(dst canvas.Surface, r Runner, bodyH, health float64) {
	var jx, jy float64
	if r.Shake > 0 {
		jx = (s.rng.Float64() - 0.5) * 3
		jy = (s.rng.Float64() - 0.5) * 2
	}

	dst.Save()
	defer dst.Restore()
	dst.Translate(r.X+jx, s.groundY-r.Y+jy)

	dst.FillRect(-6, -bodyH, 12, bodyH, core.ColorSky)
	canvas.FillCircle(dst, 0, -bodyH-8, 8, core.ColorSky)

	health = core.ClampF(health, 0, 1)
	barX, barY := -healthBarW/2.0, -bodyH-22
	dst.FillRect(barX, barY, healthBarW, healthBarH, core.ColorGray)
	dst.FillRect(barX, barY, healthBarW*health, healthBarH, healthColor(health))
	dst.StrokeRect(barX, barY, healthBarW, healthBarH, core.ColorSlate, 1)

	shoulder := -math.Min(20, bodyH-8)
	limbs := canvas.NewPath()
	limbs.MoveTo(0, shoulder)
	limbs.LineTo(12*math.Sin(s.phase), -10)
	limbs.MoveTo(0, shoulder)
	limbs.LineTo(-12*math.Sin(s.phase), -5)
	limbs.MoveTo(0, 0)
	limbs.LineTo(10*math.Cos(s.phase), 18)
	limbs.MoveTo(0, 0)
	limbs.LineTo(-10*math.Cos(s.phase+0.8), 20)
	dst.StrokePath(limbs, core.ColorSky, 3)
}
