package apps

import (
	"fmt"
	"strings"

	"github.com/Clemens865/microlabs/internal/extract"
	"github.com/Clemens865/microlabs/internal/gen"
	"github.com/Clemens865/microlabs/internal/host"
)

const consoleSystem = `You are a debugging assistant. Given console errors and warnings, explain the likely root cause and how to fix it. Structure the answer with a "Summary:" section (one paragraph) and an "Action Items:" bulleted list.`

// maxDiagnoseEvents caps how many events go into one prompt
const maxDiagnoseEvents = 200

// Diagnosis is the AI read on a batch of console events
type Diagnosis struct {
	Summary     string
	ActionItems []string
	Raw         string
}

// ConsoleMonitor collects console events from a session and diagnoses the
// errors and warnings among them.
type ConsoleMonitor struct {
	client gen.Generator
	gate   gate

	events []host.Event
}

// NewConsoleMonitor creates a console monitor
func NewConsoleMonitor(client gen.Generator) *ConsoleMonitor {
	return &ConsoleMonitor{client: client}
}

// Collect drains a started session until its source ends or the session
// is stopped, keeping the delivered events.
func (m *ConsoleMonitor) Collect(session *host.Session) {
	for ev := range session.Events() {
		m.events = append(m.events, ev)
	}
}

// Events returns everything collected so far
func (m *ConsoleMonitor) Events() []host.Event {
	return m.events
}

// Problems returns only the errors and warnings
func (m *ConsoleMonitor) Problems() []host.Event {
	var out []host.Event
	for _, ev := range m.events {
		if ev.Level == "error" || ev.Level == "warn" {
			out = append(out, ev)
		}
	}
	return out
}

// Diagnose asks the model to explain the collected errors and warnings
func (m *ConsoleMonitor) Diagnose() (*Diagnosis, error) {
	if err := m.gate.acquire(); err != nil {
		return nil, err
	}
	defer m.gate.release()

	problems := m.Problems()
	if len(problems) == 0 {
		return nil, fmt.Errorf("no errors or warnings collected")
	}
	if len(problems) > maxDiagnoseEvents {
		problems = problems[len(problems)-maxDiagnoseEvents:]
	}

	var sb strings.Builder
	sb.WriteString("Diagnose these console messages:\n\n")
	for _, ev := range problems {
		fmt.Fprintf(&sb, "[%s] %s\n", ev.Level, ev.Text)
	}

	result, err := m.client.Generate(gen.Request{
		Prompt:            sb.String(),
		SystemInstruction: consoleSystem,
		Mode:              gen.ModeText,
	})
	if err != nil {
		return nil, err
	}

	sections := extract.Extract(result.Text, extract.DefaultPatterns())

	diag := &Diagnosis{Raw: result.Text}
	if s, ok := sections["summary"]; ok {
		diag.Summary = s.Text
	}
	if s, ok := sections["action items"]; ok {
		diag.ActionItems = s.Items
	}

	return diag, nil
}
