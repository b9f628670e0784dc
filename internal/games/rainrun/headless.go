package rainrun

import (
	"time"

	"github.com/vovakirdan/rain-run/internal/canvas"
	"github.com/vovakirdan/rain-run/internal/frame"
)

// Simulate runs up to frames frames without a display, at a fixed rate of
// fps frames per second on synthetic timestamps. Script frames count fires
// from the game's current frame, paused ones included, and each is applied
// once before the fire it names. Draw calls go to a Recorder that is cleared
// every frame; the last frame's calls are returned along with the number
// of frames run. The run ends early at game over.
func Simulate(g *Game, script Script, frames, fps int) (int, *canvas.Recorder) {
	if fps <= 0 {
		fps = 60
	}
	rec := canvas.NewRecorder()
	g.Attach(rec)

	queue := frame.NewQueue()
	driver := frame.NewDriver(queue, func(dt float64) bool {
		rec.Reset()
		return g.Frame(dt)
	}, g.cfg.Physics.MaxDelta)
	driver.Start()
	defer driver.Stop()

	step := time.Second / time.Duration(fps)
	var ts time.Duration
	start, ran := g.Frames(), 0
	for ran < frames && queue.Pending() {
		script.Apply(start+ran, g.controls)
		queue.Fire(ts)
		ts += step
		ran++
	}
	return ran, rec
}
