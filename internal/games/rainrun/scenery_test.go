package rainrun

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/rain-run/internal/canvas"
	"github.com/vovakirdan/rain-run/internal/core"
)

func TestSceneryPoolsRecycleInPlace(t *testing.T) {
	s := NewScenery(7, 200)
	nearBefore, farBefore := s.Decor()

	for i := 0; i < 5000; i++ {
		s.Advance(frameDT, 6)
	}
	near, far := s.Decor()

	if len(near) != NearDecorCount || len(far) != FarDecorCount {
		t.Fatalf("pool sizes changed: %d/%d", len(near), len(far))
	}
	for _, d := range append(near, far...) {
		if d.W <= 0 || d.H <= 0 {
			t.Errorf("decor with non-positive size: %+v", d)
		}
		if d.X < decorExit || d.X > canvas.Width+80 {
			t.Errorf("decor outside the recycle band: %+v", d)
		}
	}
	for i := range near {
		if near[i].Layer != LayerNear || near[i].Y != 200-nearLift {
			t.Errorf("near decor %d on wrong layer: %+v", i, near[i])
		}
	}
	for i := range far {
		if far[i].Layer != LayerFar || far[i].Y != 200-farLift {
			t.Errorf("far decor %d on wrong layer: %+v", i, far[i])
		}
	}
	if reflect.DeepEqual(nearBefore, near) || reflect.DeepEqual(farBefore, far) {
		t.Error("decor should have been recycled with new shapes")
	}
}

func TestSceneryDecorShapes(t *testing.T) {
	s := NewScenery(11, 200)
	for i := 0; i < 500; i++ {
		d := Decor{Layer: LayerNear}
		s.reshape(&d)
		switch d.Kind {
		case DecorTree:
			if d.W < 20 || d.W > 30 || d.H < 24 || d.H > 40 {
				t.Fatalf("tree out of range: %+v", d)
			}
		case DecorStructure:
			if d.W < 26 || d.W > 40 || d.H < 20 || d.H > 32 {
				t.Fatalf("structure out of range: %+v", d)
			}
		default:
			t.Fatalf("unknown kind %q", d.Kind)
		}
	}
}

func TestRenderEmitsLayers(t *testing.T) {
	g := newTestGame(t, 1)
	isolate(g)
	rec := canvas.NewRecorder()

	g.Render(rec)
	if len(rec.Ops) == 0 || rec.Ops[0].Name != canvas.OpClear {
		t.Fatal("render should start by clearing the surface")
	}
	if rec.Depth() != 0 {
		t.Errorf("unbalanced Save/Restore, depth %d", rec.Depth())
	}
	// runner head only
	if n := rec.Count(canvas.OpFillEllipse); n != 1 {
		t.Errorf("FillEllipse count = %d, expected 1", n)
	}
	// one crown or roof per decor element
	if n := rec.Count(canvas.OpFillPath); n != NearDecorCount+FarDecorCount {
		t.Errorf("FillPath count = %d", n)
	}
	// streaks, ground, rain, decor outlines, runner limbs
	if n := rec.Count(canvas.OpStrokePath); n < streakCount+1+RainDropCount+1 {
		t.Errorf("StrokePath count = %d, too few", n)
	}

	isolate(g, bird(g, 1, 400), peel(g, 2, 500))
	rec.Reset()
	g.Render(rec)
	if n := rec.Count(canvas.OpFillEllipse); n != 2 {
		t.Errorf("FillEllipse count with a bird = %d, expected 2", n)
	}
	if n := rec.Count(canvas.OpFillPath); n != NearDecorCount+FarDecorCount+1 {
		t.Errorf("FillPath count with a peel = %d", n)
	}
}

func TestRenderDoesNotMutateGameplay(t *testing.T) {
	g := newTestGame(t, 4)
	for i := 0; i < 200; i++ {
		g.Step(core.NewInputFrame(), frameDT)
	}
	before := g.Snapshot()

	rec := canvas.NewRecorder()
	for i := 0; i < 5; i++ {
		g.Render(rec)
	}
	g.Render(nil)

	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("Render changed gameplay state")
	}
}

func TestRunnerFollowsHeight(t *testing.T) {
	g := newTestGame(t, 1)
	isolate(g)
	g.runner.Y = 40
	rec := canvas.NewRecorder()
	g.Render(rec)

	var body core.RectF
	for _, op := range rec.Ops {
		if op.Name == canvas.OpFillRect && op.Color == core.ColorSky {
			body = op.Bounds
		}
	}
	// body bottom sits at ground - height
	if body.Bottom() != 160 || body.X != 114 {
		t.Errorf("runner body at %+v, expected bottom 160", body)
	}
}

func TestHealthColor(t *testing.T) {
	tests := []struct {
		frac     float64
		expected core.Color
	}{
		{1, core.ColorGreen},
		{0.61, core.ColorGreen},
		{0.6, core.ColorAmber},
		{0.31, core.ColorAmber},
		{0.3, core.ColorRed},
		{0, core.ColorRed},
	}
	for _, tc := range tests {
		if got := healthColor(tc.frac); got != tc.expected {
			t.Errorf("healthColor(%v) = %v, expected %v", tc.frac, got, tc.expected)
		}
	}
}

func TestFrameAdvancesScenery(t *testing.T) {
	g := newTestGame(t, 1)
	rec := canvas.NewRecorder()
	g.Attach(rec)

	phase := g.scenery.phase
	if !g.Frame(frameDT) {
		t.Fatal("Frame should keep running")
	}
	if g.scenery.phase <= phase {
		t.Error("scenery phase should advance")
	}
	if g.Frames() != 1 {
		t.Errorf("Frames() = %d", g.Frames())
	}
}
