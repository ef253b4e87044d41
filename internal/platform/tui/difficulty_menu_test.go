package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-portal/internal/config"
)

func TestDifficultyModelSelect(t *testing.T) {
	m := NewDifficultyModel("Snake", config.DifficultyNormal, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(DifficultyModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("select should end the picker")
	}

	got := next.(DifficultyModel).Selected()
	if got == nil || *got != config.DifficultyHard {
		t.Errorf("Selected() = %v, want hard", got)
	}
}

func TestDifficultyModelStartsOnCurrent(t *testing.T) {
	m := NewDifficultyModel("Pacman", config.DifficultyFixed, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := next.(DifficultyModel).Selected(); got == nil || *got != config.DifficultyFixed {
		t.Errorf("Selected() = %v, want fixed", got)
	}
}

func TestDifficultyModelBack(t *testing.T) {
	m := NewDifficultyModel("Arkanoid", "", 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	d := next.(DifficultyModel)
	if !d.WantsBack() || d.Selected() != nil {
		t.Errorf("WantsBack() = %v, Selected() = %v; want true, nil", d.WantsBack(), d.Selected())
	}
}

func TestSpaced(t *testing.T) {
	if got := spaced("Snake"); got != "S N A K E" {
		t.Errorf("spaced = %q", got)
	}
}
