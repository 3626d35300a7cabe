// Package tui provides the interactive panel for browsing the reading
// queue and saved clips.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Clemens865/microlabs/internal/host"
	"github.com/Clemens865/microlabs/internal/store"
)

// Tab identifies which store the panel is showing
type Tab int

const (
	TabQueue Tab = iota
	TabClips
)

// listItem adapts a store.Item to the bubbles list
type listItem struct {
	item store.Item
}

func (i listItem) Title() string {
	if i.item.Title != "" {
		return i.item.Title
	}
	return firstLine(i.item.Content, 60)
}

func (i listItem) Description() string {
	switch {
	case i.item.Summary != "":
		return i.item.Summary
	case i.item.URL != "":
		return i.item.URL
	default:
		return i.item.CreatedAt.Format("2006-01-02 15:04")
	}
}

func (i listItem) FilterValue() string {
	return i.Title() + " " + i.Description()
}

// refreshMsg carries reloaded items for the active tab
type refreshMsg struct {
	items []store.Item
	err   error
}

// statusMsg updates the status line after an action
type statusMsg string

// PanelModel is the bubbletea model for the panel
type PanelModel struct {
	queue     *store.Store
	clips     *store.Store
	clipboard host.Clipboard

	tab    Tab
	list   list.Model
	status string
	err    error

	width  int
	height int
	ready  bool
}

// NewPanelModel creates the panel over the two stores
func NewPanelModel(queue, clips *store.Store, clipboard host.Clipboard) PanelModel {
	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.Title = "Reading Queue"
	l.SetShowHelp(false)

	return PanelModel{
		queue:     queue,
		clips:     clips,
		clipboard: clipboard,
		tab:       TabQueue,
		list:      l,
	}
}

// Init loads the initial tab
func (m PanelModel) Init() tea.Cmd {
	return m.refresh()
}

// activeStore returns the store behind the current tab
func (m PanelModel) activeStore() *store.Store {
	if m.tab == TabClips {
		return m.clips
	}
	return m.queue
}

// refresh reloads the active tab's items
func (m PanelModel) refresh() tea.Cmd {
	s := m.activeStore()
	return func() tea.Msg {
		items, err := s.List()
		return refreshMsg{items: items, err: err}
	}
}

// Update handles messages and updates the model
func (m PanelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.list.SetSize(msg.Width-2, msg.Height-4)

	case refreshMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.items))
		for _, it := range msg.items {
			items = append(items, listItem{item: it})
		}
		return m, m.list.SetItems(items)

	case statusMsg:
		m.status = string(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "tab":
			if m.tab == TabQueue {
				m.tab = TabClips
				m.list.Title = "Clips"
			} else {
				m.tab = TabQueue
				m.list.Title = "Reading Queue"
			}
			m.status = ""
			return m, m.refresh()

		case "enter", "c":
			// Copy the selection: the URL for queue items, the
			// content for clips
			sel, ok := m.list.SelectedItem().(listItem)
			if !ok {
				return m, nil
			}
			text := sel.item.URL
			if m.tab == TabClips {
				text = sel.item.Content
			}
			return m, m.copyToClipboard(text)

		case "d", "delete":
			sel, ok := m.list.SelectedItem().(listItem)
			if !ok {
				return m, nil
			}
			s := m.activeStore()
			id := sel.item.ID
			return m, tea.Sequence(
				func() tea.Msg {
					if err := s.Remove(id); err != nil {
						return statusMsg(fmt.Sprintf("delete failed: %v", err))
					}
					return statusMsg("deleted")
				},
				m.refresh(),
			)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// copyToClipboard writes text to the clipboard as a command
func (m PanelModel) copyToClipboard(text string) tea.Cmd {
	cb := m.clipboard
	return func() tea.Msg {
		if err := cb.Write(text); err != nil {
			return statusMsg(fmt.Sprintf("copy failed: %v", err))
		}
		return statusMsg("copied to clipboard")
	}
}

// View renders the panel
func (m PanelModel) View() string {
	if !m.ready {
		return "loading…"
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("error: %v", m.err))
	}

	help := helpStyle.Render("tab: switch · enter: copy · d: delete · q: quit")
	status := ""
	if m.status != "" {
		status = statusStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), status, help)
}

// firstLine truncates s to its first line, capped at max runes
func firstLine(s string, max int) string {
	for i, r := range s {
		if r == '\n' {
			s = s[:i]
			break
		}
	}
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max]) + "…"
	}
	return s
}
