package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grido/internal/games/grido"
)

func TestScoreboardBoards(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("a", grido.Classic.ID, 300, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveScore("b", grido.Small.ID, 50, 0); err != nil {
		t.Fatal(err)
	}

	m := NewScoreboardModel(store, 100, 40)
	if len(m.scores) != 2 || m.stats != nil {
		t.Fatalf("all board: %d scores, stats %v", len(m.scores), m.stats)
	}
	if m.scores[0].Score != 300 {
		t.Errorf("best score = %d, want 300", m.scores[0].Score)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.boards[m.cursor].ID != grido.Classic.ID {
		t.Fatalf("board = %q, want %q", m.boards[m.cursor].ID, grido.Classic.ID)
	}
	if len(m.scores) != 1 || m.stats == nil || m.stats.GamesCount != 1 {
		t.Errorf("classic board: %d scores, stats %+v", len(m.scores), m.stats)
	}

	out := m.View()
	for _, want := range []string{"SESSION SCORES", "Grido", "300"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back to the menu")
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No games finished yet.") {
		t.Error("empty board message missing")
	}
}
