package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grido/internal/core"
	"github.com/vovakirdan/grido/internal/games/grido"
)

func menuAfter(t *testing.T, msgs ...tea.Msg) MenuModel {
	t.Helper()
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuSelection(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	tests := []struct {
		name   string
		msgs   []tea.Msg
		choice MenuChoice
		gameID string
	}{
		{"enter plays", []tea.Msg{enter}, ChoicePlay, grido.Classic.ID},
		{"second entry", []tea.Msg{down, enter}, ChoicePlay, grido.Small.ID},
		{"wraps upwards", []tea.Msg{up, enter}, ChoiceQuit, ""},
		{"help hotkey", []tea.Msg{runeKey('h')}, ChoiceHelp, ""},
		{"scores hotkey", []tea.Msg{runeKey('s')}, ChoiceScores, ""},
		{"small hotkey", []tea.Msg{runeKey('m')}, ChoicePlay, grido.Small.ID},
		{"escape quits", []tea.Msg{tea.KeyMsg{Type: tea.KeyEsc}}, ChoiceQuit, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := menuAfter(t, tt.msgs...)
			c := m.Chosen()
			if c == nil {
				t.Fatal("nothing chosen")
			}
			if c.Choice != tt.choice || c.GameID != tt.gameID {
				t.Errorf("chosen = %+v, want choice %d game %q", *c, tt.choice, tt.gameID)
			}
		})
	}
}

func TestMenuView(t *testing.T) {
	m := menuAfter(t, tea.WindowSizeMsg{Width: 60, Height: 20})
	out := m.View()
	for _, want := range []string{"G R I D - O", "Play", "Help", "Scores", "Quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu missing %q", want)
		}
	}
	if m.Config().ScreenW != 60 {
		t.Errorf("config width = %d, want 60", m.Config().ScreenW)
	}
}

func TestHelpPaging(t *testing.T) {
	m := NewHelpModel(80, 24)
	step := func(msg tea.Msg) {
		next, _ := m.Update(msg)
		m = next.(HelpModel)
	}

	if !strings.Contains(m.View(), "Plain tiles.") {
		t.Error("first page should show the tile catalog")
	}
	step(runeKey('x'))
	if m.Page() != 1 || !strings.Contains(m.View(), "Backspace") {
		t.Errorf("page = %d, want the controls page", m.Page())
	}
	step(tea.KeyMsg{Type: tea.KeyLeft})
	if m.Page() != 0 {
		t.Errorf("left should go back a page")
	}
	step(runeKey('x'))
	step(runeKey('x'))
	if m.View() != "" {
		t.Error("help should close after the last page")
	}
}
