package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile-launcher/internal/storage"
)

func sendKeys(m LevelSelectModel, keys ...tea.KeyMsg) LevelSelectModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(LevelSelectModel)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEscape}
)

func testEntries() []LevelEntry {
	return []LevelEntry{{ID: "a", Name: "Alpha"}, {ID: "b", Name: "Bravo"}, {ID: "c", Name: "Charlie"}}
}

func TestLevelSelectModes(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want LevelSelection
	}{
		{"campaign", []tea.KeyMsg{keyEnter}, LevelSelection{GameID: "launch", Level: 1}},
		{"practice", []tea.KeyMsg{keyDown, keyEnter}, LevelSelection{GameID: "launch_practice", Level: 1}},
		{"third level", []tea.KeyMsg{keyDown, keyDown, keyEnter, keyDown, keyDown, keyDown, keyEnter}, LevelSelection{GameID: "launch", Level: 3}},
	}

	for _, tt := range tests {
		m := NewLevelSelectModel("launch", "launch_practice", testEntries(), nil, 80, 24)
		m = sendKeys(m, tt.keys...)
		got := m.Selected()
		if got == nil || *got != tt.want {
			t.Errorf("%s: Selected() = %v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestLevelSelectBack(t *testing.T) {
	m := NewLevelSelectModel("launch", "launch_practice", testEntries(), nil, 80, 24)
	m = sendKeys(m, keyDown, keyDown, keyEnter, keyEsc)
	if m.WantsBack() || m.Selected() != nil {
		t.Fatal("esc in the level list returns to the modes")
	}
	m = sendKeys(m, keyEsc)
	if !m.WantsBack() {
		t.Error("esc in the modes should go back")
	}
}

func TestLevelSelectShowsRecords(t *testing.T) {
	records := []storage.LevelRecord{{LevelID: "b", Clears: 2, BestAttempts: 4, BestScore: 1100}}
	m := NewLevelSelectModel("launch", "launch_practice", testEntries(), records, 80, 24)
	m = sendKeys(m, keyDown, keyDown, keyEnter)

	view := m.View()
	if !strings.Contains(view, "Bravo") || !strings.Contains(view, "best 4 tries") {
		t.Errorf("level list missing record:\n%s", view)
	}
}
