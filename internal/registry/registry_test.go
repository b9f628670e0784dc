package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/rain-run/internal/canvas"
	"github.com/vovakirdan/rain-run/internal/core"
)

type nopInput struct{}

func (nopInput) Tap()        {}
func (nopInput) Jump()       {}
func (nopInput) CrouchDown() {}
func (nopInput) CrouchUp()   {}
func (nopInput) Faster()     {}
func (nopInput) Slower()     {}
func (nopInput) Pause()      {}

type stubGame struct {
	id, title string
}

func (g stubGame) ID() string             { return g.id }
func (g stubGame) Title() string          { return g.title }
func (stubGame) Reset(core.RuntimeConfig) {}
func (stubGame) Render(canvas.Surface)    {}
func (stubGame) State() core.GameState    { return core.GameState{} }
func (stubGame) Input() Input             { return nopInput{} }
func (stubGame) Attach(canvas.Surface)    {}
func (stubGame) Frame(float64) bool       { return false }
func (stubGame) Step(core.InputFrame, float64) core.StepResult {
	return core.StepResult{}
}

func TestRegisterListCreate(t *testing.T) {
	Register("zz_test_b", func() Game { return stubGame{"zz_test_b", "B"} })
	Register("zz_test_a", func() Game { return stubGame{"zz_test_a", "A"} })

	if !Exists("zz_test_a") || Exists("zz_test_missing") {
		t.Error("Exists should report registered ids only")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "zz_test_") {
			ids = append(ids, info.ID+"="+info.Title)
		}
	}
	if strings.Join(ids, ",") != "zz_test_a=A,zz_test_b=B" {
		t.Errorf("List() = %v, expected sorted ids with titles", ids)
	}

	g, err := Create("zz_test_b")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.Title() != "B" {
		t.Errorf("created game title = %q", g.Title())
	}

	if _, err := Create("zz_test_missing"); err == nil {
		t.Error("Create() should fail for unknown ids")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_test_dup", func() Game { return stubGame{"zz_test_dup", "Dup"} })

	defer func() {
		if recover() == nil {
			t.Error("registering the same id twice should panic")
		}
	}()
	Register("zz_test_dup", func() Game { return stubGame{"zz_test_dup", "Dup"} })
}
