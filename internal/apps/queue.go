package apps

import (
	"context"
	"fmt"
	"strings"

	"github.com/Clemens865/microlabs/internal/gen"
	"github.com/Clemens865/microlabs/internal/host"
	"github.com/Clemens865/microlabs/internal/store"
)

const queueSummarySystem = `Summarize the page in one sentence under 30 words. Output only the sentence.`

// Queue is the reading queue: pages are fetched, summarized in one line,
// and kept in a bounded store deduplicated by URL.
type Queue struct {
	client  gen.Generator
	fetcher host.PageFetcher
	items   *store.Store
	gate    gate
}

// NewQueue creates a reading queue
func NewQueue(client gen.Generator, fetcher host.PageFetcher, items *store.Store) *Queue {
	return &Queue{client: client, fetcher: fetcher, items: items}
}

// Add fetches the URL, asks for a one-line summary, and stores the entry.
// Re-adding a URL that is already queued is a no-op; added reports
// whether a new entry was created.
func (q *Queue) Add(ctx context.Context, url string) (item *store.Item, added bool, err error) {
	if err := q.gate.acquire(); err != nil {
		return nil, false, err
	}
	defer q.gate.release()

	page, err := q.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch page: %w", err)
	}

	summary := ""
	if strings.TrimSpace(page.Text) != "" {
		result, err := q.client.Generate(gen.Request{
			Prompt:            page.Text,
			SystemInstruction: queueSummarySystem,
			Mode:              gen.ModeText,
		})
		// A failed summary does not block queueing the page
		if err == nil {
			summary = strings.TrimSpace(result.Text)
		}
	}

	title := page.Title
	if title == "" {
		title = url
	}

	entry := store.Item{URL: url, Title: title, Summary: summary}
	added, err = q.items.Add(entry)
	if err != nil {
		return nil, false, err
	}

	return &entry, added, nil
}

// Get returns a queued item by ID
func (q *Queue) Get(id string) (*store.Item, error) {
	return q.items.Get(id)
}

// List returns queued items, newest first
func (q *Queue) List() ([]store.Item, error) {
	return q.items.List()
}

// Remove deletes a queued item
func (q *Queue) Remove(id string) error {
	return q.items.Remove(id)
}

// Clear empties the queue
func (q *Queue) Clear() error {
	return q.items.Clear()
}
