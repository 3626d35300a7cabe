package host

import (
	"bufio"
	"io"
	"regexp"
	"strings"
	"sync"
	"time"
)

// Event is one console-log entry delivered by a Session
type Event struct {
	Level string // "error", "warn", "info", "log", "debug"
	Text  string
	Time  time.Time
}

// levelPrefix matches leading level markers like "[error]" or "WARN:"
var levelPrefix = regexp.MustCompile(`(?i)^\s*\[?(error|warn(?:ing)?|info|debug|log)\]?\s*[:\-]?\s+`)

// parseEvent classifies a raw console line
func parseEvent(line string) Event {
	ev := Event{Level: "log", Text: strings.TrimSpace(line), Time: time.Now()}

	m := levelPrefix.FindStringSubmatch(line)
	if m == nil {
		return ev
	}

	level := strings.ToLower(m[1])
	if level == "warning" {
		level = "warn"
	}
	ev.Level = level
	ev.Text = strings.TrimSpace(line[len(m[0]):])
	return ev
}

// Session is an explicit subscription handle over a console-event source.
// Events flow after Start and cease after Stop; Stop is idempotent and the
// teardown runs exactly once, including on the error path. The events
// channel is closed when the source drains or the session stops.
type Session struct {
	source io.Reader
	events chan Event

	mu       sync.Mutex
	started  bool
	stopped  bool
	stop     chan struct{}
	stopOnce sync.Once
}

// NewSession creates a session over an event source, typically a piped
// devtools or application log
func NewSession(source io.Reader) *Session {
	return &Session{
		source: source,
		events: make(chan Event, 64),
		stop:   make(chan struct{}),
	}
}

// Events returns the delivery channel
func (s *Session) Events() <-chan Event {
	return s.events
}

// Start begins reading the source. Calling Start twice or after Stop
// returns ErrSessionClosed.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started || s.stopped {
		return ErrSessionClosed
	}
	s.started = true

	go s.run()
	return nil
}

func (s *Session) run() {
	defer close(s.events)

	scanner := bufio.NewScanner(s.source)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		select {
		case <-s.stop:
			return
		case s.events <- parseEvent(line):
		}
	}
}

// Stop tears the session down. Safe to call multiple times; only the
// first call has effect.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.stopped = true
		s.mu.Unlock()
		close(s.stop)
	})
}
