package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile-launcher/internal/core"
	"github.com/vovakirdan/tile-launcher/internal/storage"
)

// LevelEntry is one row of the level list.
type LevelEntry struct {
	ID   string
	Name string
}

// LevelSelection holds the user's choice from the level selector.
type LevelSelection struct {
	GameID string
	Level  int // 1-based start level
}

// LevelSelectModel lets users choose mode and starting level.
type LevelSelectModel struct {
	gameID        string
	practiceID    string
	levels        []LevelEntry
	records       map[string]storage.LevelRecord
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     LevelSelection
	choosing      bool
	quitting      bool
	back          bool
}

var levelModes = []string{
	"Campaign",
	"Practice (unlimited lives)",
	"Select Level...",
}

// NewLevelSelectModel creates a selector over levels. records may be nil.
func NewLevelSelectModel(gameID, practiceID string, levels []LevelEntry, records []storage.LevelRecord, width, height int) LevelSelectModel {
	byID := make(map[string]storage.LevelRecord, len(records))
	for _, r := range records {
		byID[r.LevelID] = r
	}
	return LevelSelectModel{
		gameID:     gameID,
		practiceID: practiceID,
		levels:     levels,
		records:    byID,
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
		choosing:   true,
	}
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LevelSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}
	return m.handleModeSelectKey(action)
}

func (m LevelSelectModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(levelModes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0:
			m.choosing = false
			m.selection = LevelSelection{GameID: m.gameID, Level: 1}
			return m, tea.Quit
		case 1:
			m.choosing = false
			m.selection = LevelSelection{GameID: m.practiceID, Level: 1}
			return m, tea.Quit
		case 2:
			if len(m.levels) > 0 {
				m.inLevelSelect = true
				m.levelCursor = 0
			}
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m LevelSelectModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = LevelSelection{GameID: m.gameID, Level: m.levelCursor + 1}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the mode/level selection.
func (m LevelSelectModel) View() string {
	if m.quitting || m.back {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewModeSelect()
}

func (m LevelSelectModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle, "T I L E   L A U N C H E R", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("%d levels", len(m.levels)), m.width))
	b.WriteString("\n\n")

	for i, mode := range levelModes {
		if i == m.cursor {
			b.WriteString(centerStyled(selectedStyle, "> "+mode, m.width))
		} else {
			b.WriteString(centerText("  "+mode, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(hintStyle, "Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m LevelSelectModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i, lvl := range m.levels {
		line := fmt.Sprintf("%2d. %-24s", i+1, lvl.Name)
		if r, ok := m.records[lvl.ID]; ok {
			line += fmt.Sprintf(" ✓ best %d tries", r.BestAttempts)
		}
		if i == m.levelCursor {
			b.WriteString(centerStyled(selectedStyle, "> "+line, m.width))
		} else {
			b.WriteString(centerText("  "+line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(hintStyle, "Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m LevelSelectModel) Selected() *LevelSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LevelSelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelSelectModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the level selector and returns the selection,
// or nil if the user went back or quit.
func RunLevelSelector(gameID, practiceID string, levels []LevelEntry, store *storage.Store, cfg core.RuntimeConfig) (*LevelSelection, error) {
	var records []storage.LevelRecord
	if store != nil {
		// best-effort: the list works without records
		records, _ = store.LevelRecords(gameID)
	}

	model := NewLevelSelectModel(gameID, practiceID, levels, records, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: level selector: %w", err)
	}

	m, ok := finalModel.(LevelSelectModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
