package apps

import (
	"fmt"
	"strings"

	"github.com/Clemens865/microlabs/internal/host"
	"github.com/Clemens865/microlabs/internal/store"
)

// Clips is the clipboard manager: the current clipboard content is
// captured into a bounded store, deduplicated by content, and any stored
// clip can be restored to the clipboard.
type Clips struct {
	clipboard host.Clipboard
	items     *store.Store
}

// NewClips creates a clipboard manager
func NewClips(clipboard host.Clipboard, items *store.Store) *Clips {
	return &Clips{clipboard: clipboard, items: items}
}

// Capture stores the current clipboard content. Capturing the same
// content twice keeps a single entry; added reports whether a new entry
// was created.
func (c *Clips) Capture() (item *store.Item, added bool, err error) {
	text, err := c.clipboard.Read()
	if err != nil {
		return nil, false, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, false, fmt.Errorf("clipboard is empty")
	}

	entry := store.Item{Content: text}
	added, err = c.items.Add(entry)
	if err != nil {
		return nil, false, err
	}
	return &entry, added, nil
}

// Restore writes a stored clip back to the clipboard
func (c *Clips) Restore(id string) (*store.Item, error) {
	item, err := c.items.Get(id)
	if err != nil {
		return nil, err
	}
	if err := c.clipboard.Write(item.Content); err != nil {
		return nil, err
	}
	return item, nil
}

// List returns stored clips, newest first
func (c *Clips) List() ([]store.Item, error) {
	return c.items.List()
}

// Remove deletes a stored clip
func (c *Clips) Remove(id string) error {
	return c.items.Remove(id)
}

// Clear empties the clip store
func (c *Clips) Clear() error {
	return c.items.Clear()
}
