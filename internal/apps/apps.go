// Package apps contains the MicroLabs tools. Each app gathers input,
// issues a single generation call, and shapes the response; transport,
// parsing, and error classification live in internal/gen.
package apps

import (
	"errors"
	"sync"
)

// ErrBusy is returned when an app already has a request in flight. Each
// app instance allows one outstanding generation at a time.
var ErrBusy = errors.New("a request is already in flight")

// gate is the in-flight guard shared by all apps
type gate struct {
	mu   sync.Mutex
	busy bool
}

func (g *gate) acquire() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		return ErrBusy
	}
	g.busy = true
	return nil
}

func (g *gate) release() {
	g.mu.Lock()
	g.busy = false
	g.mu.Unlock()
}

// truncate shortens s for use inside prompts
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
