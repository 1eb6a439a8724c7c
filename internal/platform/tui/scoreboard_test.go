package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodge-arcade/internal/storage"
)

func TestScoreboard(t *testing.T) {
	registerScripted()

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runs := []storage.Run{
		{GameID: "scripted", Player: "ann", Score: 30, Outcome: storage.OutcomeWon, Collected: 3, Duration: 40 * time.Second},
		{GameID: "scripted", Player: "bob", Score: 5, Outcome: storage.OutcomeLost, Duration: 9 * time.Second},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)

	rows := m.table.Rows()
	if len(rows) != 2 || rows[0][1] != "30" {
		t.Fatalf("top scores rows = %v, expected 30 first", rows)
	}
	if s := m.summary(); !strings.Contains(s, "games 2") || !strings.Contains(s, "wins 1") {
		t.Errorf("summary() = %q", s)
	}

	next, _ := m.Update(runeKey('r'))
	m = next.(ScoreboardModel)
	rows = m.table.Rows()
	if len(rows) != 2 || rows[0][1] != storage.OutcomeLost || rows[0][4] != "bob" {
		t.Errorf("recent runs rows = %v, expected bob's loss first", rows)
	}
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("View() should show the runs title")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() || cmd == nil {
		t.Error("esc should leave the scoreboard")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if len(m.table.Rows()) != 0 {
		t.Error("scoreboard without storage should be empty")
	}
	if !strings.Contains(m.View(), "Nothing recorded yet") {
		t.Error("empty scoreboard should show a hint")
	}
}
