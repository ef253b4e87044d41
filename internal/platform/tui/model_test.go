package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-portal/internal/core"
	"github.com/vovakirdan/arcade-portal/internal/storage"
)

// scriptedGame reports whatever state the test sets and counts calls.
type scriptedGame struct {
	state  core.GameState
	resets int
	steps  []core.InputFrame
}

func (g *scriptedGame) ID() string               { return "scripted" }
func (g *scriptedGame) Title() string            { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "SCRIPTED") }
func (g *scriptedGame) State() core.GameState    { return g.state }
func (g *scriptedGame) Controls() string         { return "R: Restart" }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Clone())
	return core.StepResult{State: g.state}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm
}

func TestModelForwardsKeysOnTick(t *testing.T) {
	g := &scriptedGame{state: core.NewGameState(0, 0, core.StatusPlaying)}
	m := NewModel(g, nil, testConfig())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = send(t, m, runeKey(' '))
	m = send(t, m, TickMsg{})
	m = send(t, m, TickMsg{})

	if len(g.steps) != 2 {
		t.Fatalf("game stepped %d times, want 2", len(g.steps))
	}
	if !g.steps[0].Has(core.ActionLeft) || !g.steps[0].Has(core.ActionJump) {
		t.Errorf("first frame = %v, want Left and Jump", g.steps[0].Actions)
	}
	if len(g.steps[1].Actions) != 0 {
		t.Errorf("second frame = %v, want empty", g.steps[1].Actions)
	}
}

func TestModelRestartResets(t *testing.T) {
	g := &scriptedGame{state: core.NewGameState(10, 0, core.StatusPlaying)}
	m := NewModel(g, nil, testConfig())

	m = send(t, m, runeKey('r'))
	send(t, m, TickMsg{})

	if g.resets != 1 {
		t.Errorf("Reset called %d times, want 1", g.resets)
	}
	if len(g.steps) != 0 {
		t.Errorf("restart tick should not step the game, got %d steps", len(g.steps))
	}
}

func TestModelBackOnlyWhenNotPlaying(t *testing.T) {
	g := &scriptedGame{state: core.NewGameState(0, 0, core.StatusPlaying)}
	m := NewModel(g, nil, testConfig())
	m = send(t, m, TickMsg{})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("Back should be ignored while playing")
	}

	g.state = core.NewGameState(0, 0, core.StatusPaused)
	m = send(t, m, TickMsg{})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("Back should leave a paused game")
	}
	if m.View() != "" {
		t.Error("View should be empty after leaving")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&scriptedGame{}, nil, testConfig())

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !next.(Model).IsQuitting() {
		t.Error("model should be quitting")
	}
}

func TestModelRecordsFinishedRoundOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	g := &scriptedGame{state: core.NewGameState(50, 0, core.StatusGameOver)}
	m := NewModel(g, store, testConfig())

	m = send(t, m, TickMsg{})
	send(t, m, TickMsg{})

	scores, err := store.AllScores("scripted")
	if err != nil {
		t.Fatalf("AllScores: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 50 {
		t.Errorf("scores = %v, want a single 50", scores)
	}
}

func TestModelViewKeepsHintRow(t *testing.T) {
	m := NewModel(&scriptedGame{}, nil, testConfig())

	view := m.View()
	lines := strings.Split(view, "\n")

	if len(lines) != 10 {
		t.Fatalf("view has %d lines, want 10", len(lines))
	}
	if !strings.Contains(lines[0], "SCRIPTED") {
		t.Errorf("first line = %q, want game output", lines[0])
	}
	if !strings.Contains(lines[9], "R: Restart") {
		t.Errorf("last line = %q, want control hint", lines[9])
	}
}

func TestModelResizeDoesNotReset(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, nil, testConfig())

	m = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	if g.resets != 0 {
		t.Errorf("resize reset the game %d times", g.resets)
	}
	if m.screen.Width() != 60 || m.screen.Height() != 19 {
		t.Errorf("screen = %dx%d, want 60x19", m.screen.Width(), m.screen.Height())
	}
}
