package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodge-arcade/internal/storage"
)

func TestMenuShowsStoredBest(t *testing.T) {
	registerScripted()

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	if _, err := store.SaveScore("scripted", 77); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	m := NewMenuModel(store, testConfig())
	if len(m.items) == 0 || m.items[0].HighScore != 77 {
		t.Fatalf("items = %+v, expected scripted with best 77", m.items)
	}
	if !strings.Contains(m.View(), "best 77") {
		t.Error("View() should show the stored best")
	}
}

func TestMenuActions(t *testing.T) {
	registerScripted()

	tests := []struct {
		name       string
		msg        tea.KeyMsg
		selected   bool
		scoreboard bool
		quit       bool
	}{
		{"enter selects", tea.KeyMsg{Type: tea.KeyEnter}, true, false, false},
		{"tab opens scoreboard", tea.KeyMsg{Type: tea.KeyTab}, false, true, false},
		{"q quits", runeKey('q'), false, false, true},
		{"down moves only", tea.KeyMsg{Type: tea.KeyDown}, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _ := NewMenuModel(nil, testConfig()).Update(tt.msg)
			m := next.(MenuModel)
			if (m.Selected() != nil) != tt.selected {
				t.Errorf("Selected() = %v, expected selected=%v", m.Selected(), tt.selected)
			}
			if m.WantsScoreboard() != tt.scoreboard {
				t.Errorf("WantsScoreboard() = %v, expected %v", m.WantsScoreboard(), tt.scoreboard)
			}
			if m.IsQuitting() != tt.quit {
				t.Errorf("IsQuitting() = %v, expected %v", m.IsQuitting(), tt.quit)
			}
		})
	}
}

func TestMenuTracksResize(t *testing.T) {
	next, _ := NewMenuModel(nil, testConfig()).Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	cfg := next.(MenuModel).Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() = %+v, expected 120x40", cfg)
	}
}
