package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-portal/internal/registry"
	"github.com/vovakirdan/arcade-portal/internal/storage"
)

const maxScores = 100

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	emptyBoardStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
)

// scoreboardKeys are the scoreboard bindings, shown by the help bar.
type scoreboardKeys struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next game")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev game")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// leaderboard is the ranked history of one game. Puzzles rank solves by
// moves, every other game ranks rounds by score.
type leaderboard struct {
	columns []table.Column
	rows    []table.Row
	summary string
}

func loadLeaderboard(store *storage.Store, gameID string) leaderboard {
	if isPuzzle(gameID) {
		return puzzleBoard(store, gameID)
	}
	return scoreBoard(store, gameID)
}

// isPuzzle reports whether a game's results are ranked by moves.
func isPuzzle(gameID string) bool {
	g, err := registry.Create(gameID)
	if err != nil {
		return false
	}
	_, ok := g.(storage.Solver)
	return ok
}

func scoreBoard(store *storage.Store, gameID string) leaderboard {
	lb := leaderboard{columns: []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 14},
	}}
	if store == nil {
		return lb
	}

	if scores, err := store.TopScores(gameID, maxScores); err == nil {
		for i, s := range scores {
			lb.rows = append(lb.rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}
	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		lb.summary = fmt.Sprintf("%d rounds  ·  best %d  ·  avg %.0f", stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
	return lb
}

func puzzleBoard(store *storage.Store, gameID string) leaderboard {
	lb := leaderboard{columns: []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Moves", Width: 8},
		{Title: "Time", Width: 7},
		{Title: "Date", Width: 14},
	}}
	if store == nil {
		return lb
	}

	results, err := store.BestPuzzleResults(gameID, maxScores)
	if err != nil {
		return lb
	}
	for i, r := range results {
		lb.rows = append(lb.rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Moves),
			formatSeconds(r.Seconds),
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	if len(results) > 0 {
		lb.summary = fmt.Sprintf("%d solves  ·  best %d moves in %s", len(results), results[0].Moves, formatSeconds(results[0].Seconds))
	}
	return lb
}

// formatSeconds renders a duration as m:ss.
func formatSeconds(s int) string {
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// ScoreboardModel shows the leaderboard of one game at a time, with tabs
// to switch games.
type ScoreboardModel struct {
	games     []registry.GameInfo
	current   int
	store     *storage.Store
	board     leaderboard
	table     table.Model
	help      help.Model
	keys      scoreboardKeys
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		help:   help.New(),
		keys:   newScoreboardKeys(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.show(0)
	return m
}

// show loads the leaderboard of the game at index i.
func (m *ScoreboardModel) show(i int) {
	if len(m.games) == 0 {
		m.table = m.newTable()
		return
	}
	m.current = i
	m.board = loadLeaderboard(m.store, m.games[i].ID)
	m.table = m.newTable()
}

func (m ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns(m.board.columns),
		table.WithRows(m.board.rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			if n := len(m.games); n > 0 {
				m.show((m.current + 1) % n)
			}
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			if n := len(m.games); n > 0 {
				m.show((m.current + n - 1) % n)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render("H I G H   S C O R E S"), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.current {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(g.Title)
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	var body string
	if len(m.board.rows) == 0 {
		body = emptyBoardStyle.Render("No results recorded yet.\nPlay a round to get on the board!")
	} else {
		body = m.table.View()
	}
	for _, line := range strings.Split(boardFrameStyle.Render(body), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.board.summary != "" {
		b.WriteString(centerText(hintStyle.Render(m.board.summary), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(hintStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
