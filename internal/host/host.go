// Package host wraps the platform facilities the apps lean on: fetching
// page content, watching console-event streams, and the system clipboard.
//
// Every call is fallible and nothing is assumed to arrive synchronously;
// the real implementations guard network work with timeouts, and each
// interface has a fake so apps are tested without touching the platform.
package host

import (
	"context"
	"errors"
)

// Sentinel errors for host call failures
var (
	ErrPageNotFound  = errors.New("page not found")
	ErrFetchDenied   = errors.New("page fetch denied")
	ErrFetchTimeout  = errors.New("page fetch timed out")
	ErrSessionClosed = errors.New("console session is closed")
)

// Page is the readable content extracted from a fetched document
type Page struct {
	URL   string
	Title string
	Text  string
}

// PageFetcher retrieves a URL and extracts its readable content
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*Page, error)
}

// Clipboard reads and writes the system clipboard
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}
