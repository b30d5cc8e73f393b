package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile-launcher/internal/registry"
	"github.com/vovakirdan/tile-launcher/internal/storage"
)

// Scoreboard layout
const (
	minWidthForSidebar = 80
	sidebarWidth       = 24
	maxScores          = 100
)

// scoreView selects what the scoreboard table lists.
type scoreView int

const (
	viewRuns   scoreView = iota // best runs
	viewLevels                  // per-level records
)

func (v scoreView) title() string {
	if v == viewLevels {
		return "LEVEL RECORDS"
	}
	return "HIGH SCORES"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextGame   key.Binding
	PrevGame   key.Binding
	ToggleView key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.ToggleView, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.ToggleView, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		NextGame:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next game")),
		PrevGame:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev game")),
		ToggleView: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "runs/levels")),
		Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardMuted  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardModel shows stored runs and level records per game.
type ScoreboardModel struct {
	games   []registry.GameInfo
	current int
	view    scoreView
	store   *storage.Store

	scores  []storage.ScoreEntry
	records []storage.LevelRecord
	stats   *storage.GameStats

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard over every registered game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.rebuildTable()
	m.load()
	return m
}

func (m *ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

func (m *ScoreboardModel) columns() []table.Column {
	if m.view == viewLevels {
		return []table.Column{
			{Title: "Level", Width: 18},
			{Title: "Clears", Width: 7},
			{Title: "Best tries", Width: 10},
			{Title: "Best score", Width: 10},
		}
	}
	dateWidth := 14
	if avail := m.width - 4 - sidebarWidth - 3; m.wide() && avail > 48 {
		dateWidth = min(avail-30, 20)
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Level", Width: 6},
		{Title: "Date", Width: dateWidth},
	}
}

func (m *ScoreboardModel) rebuildTable() {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
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
	m.table = t
}

// load reads the current game's data. A missing store shows empty tables.
func (m *ScoreboardModel) load() {
	m.scores, m.records, m.stats = nil, nil, nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.current].ID
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if records, err := m.store.LevelRecords(id); err == nil {
			m.records = records
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	var rows []table.Row
	switch m.view {
	case viewLevels:
		for _, r := range m.records {
			rows = append(rows, table.Row{
				r.LevelID,
				fmt.Sprint(r.Clears),
				fmt.Sprint(r.BestAttempts),
				fmt.Sprint(r.BestScore),
			})
		}
	default:
		for i, s := range m.scores {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprint(s.Score),
				fmt.Sprint(s.Level),
				s.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) cycleGame(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.games)) % len(m.games)
	m.load()
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
		case key.Matches(msg, m.keys.NextGame):
			m.cycleGame(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.cycleGame(-1)
			return m, nil
		case key.Matches(msg, m.keys.ToggleView):
			m.view = 1 - m.view
			m.rebuildTable()
			m.fillRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.rebuildTable()
		m.fillRows()
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

	heading := m.view.title()
	if len(m.games) > 0 {
		heading += " - " + m.games[m.current].Title
	}

	var b strings.Builder
	b.WriteString(boardActive.MarginBottom(1).Render(centerText(heading, m.width)))
	b.WriteString("\n\n")

	panel := boardBorder.Render(m.tableContent())
	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", panel))
	} else {
		b.WriteString(centerText(m.gameSwitcher(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(panel, m.width))
	}

	b.WriteString("\n")
	b.WriteString(boardMuted.Render(m.help.View(m.keys)))
	return b.String()
}

// sidebar lists the games with the current one highlighted.
func (m ScoreboardModel) sidebar() string {
	var b strings.Builder
	b.WriteString("Games\n")
	b.WriteString(strings.Repeat("─", sidebarWidth-4))
	b.WriteString("\n")
	for i, g := range m.games {
		line := "  " + truncate(g.Title, sidebarWidth-6)
		if i == m.current {
			line = boardActive.Render("> " + truncate(g.Title, sidebarWidth-6))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return boardBorder.Width(sidebarWidth).Render(b.String())
}

// gameSwitcher is the narrow-screen replacement for the sidebar.
func (m ScoreboardModel) gameSwitcher() string {
	if len(m.games) == 0 {
		return ""
	}
	return fmt.Sprintf("◀ %s ▶  (%d/%d)", m.games[m.current].Title, m.current+1, len(m.games))
}

func (m ScoreboardModel) tableContent() string {
	empty := len(m.scores) == 0
	msg := "No scores recorded yet.\nPlay a game to set a high score!"
	if m.view == viewLevels {
		empty = len(m.records) == 0
		msg = "No levels cleared yet."
	}
	if empty {
		return boardMuted.Italic(true).Padding(2, 4).Render(msg)
	}

	out := m.table.View()
	if m.stats != nil {
		out += "\n" + boardMuted.Render(fmt.Sprintf(
			"%d runs  |  best level %d  |  %d level clears",
			m.stats.GamesCount, m.stats.BestLevel, m.stats.LevelsCleared,
		))
	}
	return out
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
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
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

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
