package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-pinball/internal/core"
)

type stubGame struct{ id, title string }

func (g *stubGame) ID() string               { return g.id }
func (g *stubGame) Title() string            { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Render(*core.Screen)      {}
func (g *stubGame) State() core.GameState    { return core.GameState{} }

func (g *stubGame) Tick(core.InputState, time.Duration) core.StepResult {
	return core.StepResult{}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub", func() Game { return &stubGame{id: "stub", title: "Stub"} })

	if !Exists("stub") {
		t.Error("Exists returned false for a registered game")
	}

	game, err := Create("stub")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if game.ID() != "stub" || game.Title() != "Stub" {
		t.Errorf("created game = %q/%q, expected stub/Stub", game.ID(), game.Title())
	}

	// Each Create returns a fresh instance.
	other, _ := Create("stub")
	if game == other {
		t.Error("Create returned a shared instance")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create of unknown game must fail")
	}
	if Exists("no-such-game") {
		t.Error("Exists returned true for an unregistered game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup", func() Game { return &stubGame{id: "dup", title: "Dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration did not panic")
		}
	}()
	Register("dup", func() Game { return &stubGame{id: "dup", title: "Dup"} })
}

func TestListSorted(t *testing.T) {
	Register("bbb", func() Game { return &stubGame{id: "bbb", title: "B"} })
	Register("aaa", func() Game { return &stubGame{id: "aaa", title: "A"} })

	games := List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID >= games[i].ID {
			t.Errorf("List not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}
}
