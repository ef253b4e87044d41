package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/arcade-portal/internal/config"
	"github.com/vovakirdan/arcade-portal/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

type configurableStub struct {
	stubGame
	store *config.Store
}

func (g *configurableStub) UseStore(s *config.Store) { g.store = s }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("stub-a should be registered")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q, expected stub-a", g.ID())
	}

	info, ok := Lookup("stub-a")
	if !ok || info.Title != "Stub stub-a" {
		t.Errorf("Lookup = %+v, %v", info, ok)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("expected ErrUnknownGame, got %v", err)
	}
	if _, ok := Lookup("no-such-game"); ok {
		t.Error("Lookup should fail for unknown id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
}

func TestListSorted(t *testing.T) {
	Register("stub-z", func() Game { return &stubGame{id: "stub-z"} })
	Register("stub-c", func() Game { return &stubGame{id: "stub-c"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List not sorted: %v", list)
		}
	}
}

func TestCreateWithStore(t *testing.T) {
	Register("stub-cfg", func() Game { return &configurableStub{stubGame: stubGame{id: "stub-cfg"}} })

	s, err := config.NewStore(t.TempDir(), config.DifficultyHard)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	g, err := CreateWithStore("stub-cfg", s)
	if err != nil {
		t.Fatalf("CreateWithStore: %v", err)
	}
	if got := g.(*configurableStub).store; got != s {
		t.Errorf("store not bound: got %p, want %p", got, s)
	}

	if _, err := CreateWithStore("missing", s); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("CreateWithStore(missing) error = %v, want ErrUnknownGame", err)
	}
}
