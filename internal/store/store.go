// Package store provides bounded, file-backed item stores for the reading
// queue and the clipboard manager.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Clemens865/microlabs/internal/config"
)

// DefaultMaxItems caps a store when the configuration does not say otherwise
const DefaultMaxItems = 100

// Item is one stored record. The reading queue fills URL/Title/Summary;
// the clipboard manager fills Content.
type Item struct {
	ID        string    `json:"id"`
	Content   string    `json:"content,omitempty"`
	URL       string    `json:"url,omitempty"`
	Title     string    `json:"title,omitempty"`
	Summary   string    `json:"summary,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// dedupeKey identifies an item's content for duplicate checks
func (it Item) dedupeKey() string {
	if it.URL != "" {
		return it.URL
	}
	return it.Content
}

// Store is a bounded FIFO of items persisted as a JSON file. When the cap
// is exceeded the oldest item is evicted. Inserts deduplicate on content,
// so capturing the same clipboard text twice keeps a single entry.
type Store struct {
	path string
	max  int
	mu   sync.Mutex
}

// NewStore creates a store backed by the given file
func NewStore(path string, max int) *Store {
	if max <= 0 {
		max = DefaultMaxItems
	}
	return &Store{path: path, max: max}
}

// Open creates a store named <name>.json under the config directory
func Open(name string, max int) (*Store, error) {
	dir, err := config.EnsureConfigDir()
	if err != nil {
		return nil, err
	}
	return NewStore(filepath.Join(dir, name+".json"), max), nil
}

// Add inserts an item unless an equal one already exists. It reports
// whether the item was actually added.
func (s *Store) Add(item Item) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load()

	key := item.dedupeKey()
	for _, existing := range items {
		if existing.dedupeKey() == key {
			return false, nil
		}
	}

	if item.ID == "" {
		item.ID = fmt.Sprintf("item-%d", time.Now().UnixNano())
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	items = append(items, item)

	// Evict oldest first when over the cap
	if len(items) > s.max {
		items = items[len(items)-s.max:]
	}

	return true, s.save(items)
}

// List returns all items, newest first
func (s *Store) List() ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load()
	out := make([]Item, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		out = append(out, items[i])
	}
	return out, nil
}

// Get retrieves an item by ID
func (s *Store) Get(id string) (*Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.load() {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, fmt.Errorf("item not found: %s", id)
}

// Remove deletes an item by ID
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load()
	for i, item := range items {
		if item.ID == id {
			items = append(items[:i], items[i+1:]...)
			return s.save(items)
		}
	}
	return fmt.Errorf("item not found: %s", id)
}

// Clear deletes all items
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(nil)
}

// Len returns the number of stored items
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.load())
}

// load reads the backing file. A missing or corrupted file yields an
// empty store rather than an error.
func (s *Store) load() []Item {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	return items
}

func (s *Store) save(items []Item) error {
	if items == nil {
		items = []Item{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal items: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}

	return nil
}
