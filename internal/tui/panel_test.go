package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Clemens865/microlabs/internal/host"
	"github.com/Clemens865/microlabs/internal/store"
)

func newTestPanel(t *testing.T) (PanelModel, *store.Store, *store.Store, *host.FakeClipboard) {
	t.Helper()
	dir := t.TempDir()
	queue := store.NewStore(filepath.Join(dir, "queue.json"), 10)
	clips := store.NewStore(filepath.Join(dir, "clips.json"), 10)
	clipboard := &host.FakeClipboard{}
	return NewPanelModel(queue, clips, clipboard), queue, clips, clipboard
}

// sized delivers a window size so the model leaves the loading state
func sized(m PanelModel) PanelModel {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(PanelModel)
}

// runInit executes the Init command and applies its message
func runInit(t *testing.T, m PanelModel) PanelModel {
	t.Helper()
	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init() returned no command")
	}
	updated, _ := m.Update(cmd())
	return updated.(PanelModel)
}

// TestPanelLoadsQueueItems tests the initial load populating the list
func TestPanelLoadsQueueItems(t *testing.T) {
	m, queue, _, _ := newTestPanel(t)
	if _, err := queue.Add(store.Item{URL: "https://example.test/a", Title: "Article A"}); err != nil {
		t.Fatal(err)
	}

	m = sized(m)
	m = runInit(t, m)

	if got := len(m.list.Items()); got != 1 {
		t.Fatalf("list has %d items, want 1", got)
	}
	item, ok := m.list.Items()[0].(listItem)
	if !ok || item.Title() != "Article A" {
		t.Errorf("item = %+v, want the queued article", m.list.Items()[0])
	}
}

// TestPanelTabSwitch tests switching between queue and clips
func TestPanelTabSwitch(t *testing.T) {
	m, _, clips, _ := newTestPanel(t)
	if _, err := clips.Add(store.Item{Content: "a saved clip"}); err != nil {
		t.Fatal(err)
	}

	m = sized(m)
	m = runInit(t, m)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(PanelModel)
	if m.tab != TabClips {
		t.Fatalf("tab = %v, want TabClips", m.tab)
	}
	if cmd == nil {
		t.Fatal("tab switch returned no refresh command")
	}

	updated, _ = m.Update(cmd())
	m = updated.(PanelModel)
	if got := len(m.list.Items()); got != 1 {
		t.Errorf("clips list has %d items, want 1", got)
	}
}

// TestPanelCopySelection tests enter writing to the clipboard
func TestPanelCopySelection(t *testing.T) {
	m, queue, _, clipboard := newTestPanel(t)
	if _, err := queue.Add(store.Item{URL: "https://example.test/a", Title: "A"}); err != nil {
		t.Fatal(err)
	}

	m = sized(m)
	m = runInit(t, m)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(PanelModel)
	if cmd == nil {
		t.Fatal("enter returned no command")
	}

	msg := cmd()
	if _, ok := msg.(statusMsg); !ok {
		t.Fatalf("copy produced %T, want a status message", msg)
	}
	if clipboard.Text != "https://example.test/a" {
		t.Errorf("clipboard = %q, want the item URL", clipboard.Text)
	}
}

// TestPanelQuitKeys tests the exit bindings
func TestPanelQuitKeys(t *testing.T) {
	m, _, _, _ := newTestPanel(t)
	m = sized(m)

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("key %v returned no command, want quit", key)
		}
	}
}

// TestPanelViewBeforeSize tests the loading placeholder
func TestPanelViewBeforeSize(t *testing.T) {
	m, _, _, _ := newTestPanel(t)
	if view := m.View(); view == "" {
		t.Error("View() empty before sizing, want a placeholder")
	}
}
