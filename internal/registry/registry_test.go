package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-slide/internal/core"
)

type stubGame struct {
	id    string
	title string
	opts  Options
}

func (s *stubGame) ID() string                           { return s.id }
func (s *stubGame) Title() string                        { return s.title }
func (s *stubGame) Reset(core.RuntimeConfig)             {}
func (s *stubGame) Resize(int, int)                      {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen)                  {}
func (s *stubGame) State() core.GameState                { return core.GameState{} }
func (s *stubGame) Abandon()                             {}

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub", func(opts Options) Game {
		return &stubGame{id: "zz_stub", title: "Stub", opts: opts}
	})

	if !Exists("zz_stub") {
		t.Fatal("Exists() should report registered variant")
	}

	g, err := Create("zz_stub", Options{Player: "ada"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if stub := g.(*stubGame); stub.opts.Player != "ada" {
		t.Errorf("options not passed to factory, player = %q", stub.opts.Player)
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
			if info.Title != "Stub" {
				t.Errorf("Title = %q, expected Stub", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include registered variant")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func(Options) Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func(Options) Game { return &stubGame{id: "zz_dup"} })
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_variant", Options{})
	if !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Create() error = %v, expected ErrUnknownVariant", err)
	}
}
