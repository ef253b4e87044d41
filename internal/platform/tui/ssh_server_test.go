package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return sm
}

// pick moves the menu cursor onto gameID and confirms it.
func pick(t *testing.T, m SessionModel, gameID string) SessionModel {
	t.Helper()
	idx := -1
	for i, it := range m.menu.items {
		if it.GameID == gameID {
			idx = i
		}
	}
	if idx < 0 {
		t.Fatalf("%s not in menu", gameID)
	}
	for i := 0; i < idx; i++ {
		m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	return sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestSessionPuzzleSkipsDifficulty(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "tester")
	m = pick(t, m, "fifteen")

	if m.screen != screenGame {
		t.Fatalf("screen = %d, want game", m.screen)
	}
	if m.gameID != "fifteen" || m.game == nil {
		t.Fatalf("game not started: id=%q", m.gameID)
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.game != nil {
		t.Errorf("esc outside a round should return to the menu, screen = %d", m.screen)
	}
}

func TestSessionDifficultyThenGame(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "tester")
	m = pick(t, m, "snake")

	if m.screen != screenDifficulty {
		t.Fatalf("screen = %d, want difficulty", m.screen)
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %d, want game", m.screen)
	}
	if m.game.game.ID() != "snake" {
		t.Errorf("running %q, want snake", m.game.game.ID())
	}
}

func TestSessionDifficultyBack(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "tester")
	m = pick(t, m, "snake")
	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.screen != screenMenu {
		t.Errorf("screen = %d, want menu", m.screen)
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "tester")
	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %d, want scores", m.screen)
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %d, want menu", m.screen)
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "tester")
	m = sendSession(t, m, runeKey('q'))

	if !m.quitting {
		t.Error("q in the menu should quit")
	}
	if m.View() != "" {
		t.Errorf("View after quit = %q, want empty", m.View())
	}
}
