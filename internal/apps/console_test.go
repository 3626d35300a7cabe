package apps

import (
	"strings"
	"testing"

	"github.com/Clemens865/microlabs/internal/gen"
	"github.com/Clemens865/microlabs/internal/host"
)

// collectFrom runs a session over the given log text and drains it
func collectFrom(t *testing.T, monitor *ConsoleMonitor, log string) {
	t.Helper()
	session := host.NewSession(strings.NewReader(log))
	if err := session.Start(); err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}
	monitor.Collect(session)
}

// TestConsoleMonitorCollect tests event collection and problem filtering
func TestConsoleMonitorCollect(t *testing.T) {
	mock := &gen.MockClient{Result: textResult("diagnosis")}
	monitor := NewConsoleMonitor(mock)

	collectFrom(t, monitor, "[error] null pointer\n[info] booted\n[warn] slow query\nplain log line\n")

	if got := len(monitor.Events()); got != 4 {
		t.Fatalf("Events() = %d, want 4", got)
	}

	problems := monitor.Problems()
	if len(problems) != 2 {
		t.Fatalf("Problems() = %d, want the error and the warning", len(problems))
	}
	if problems[0].Level != "error" || problems[1].Level != "warn" {
		t.Errorf("Problems() = %+v, want error then warn", problems)
	}
}

// TestConsoleMonitorDiagnose tests the diagnosis request and section recovery
func TestConsoleMonitorDiagnose(t *testing.T) {
	reply := "Summary:\nA null reference in the renderer.\n\nAction Items:\n- Guard the lookup\n- Add a regression test"
	mock := &gen.MockClient{Result: textResult(reply)}
	monitor := NewConsoleMonitor(mock)

	collectFrom(t, monitor, "[error] Cannot read properties of null\n")

	diag, err := monitor.Diagnose()
	if err != nil {
		t.Fatalf("Diagnose() unexpected error: %v", err)
	}

	if !strings.Contains(mock.LastRequest.Prompt, "Cannot read properties of null") {
		t.Errorf("prompt = %q, want the error line included", mock.LastRequest.Prompt)
	}
	if diag.Summary != "A null reference in the renderer." {
		t.Errorf("Summary = %q, want the prose section", diag.Summary)
	}
	if len(diag.ActionItems) != 2 {
		t.Errorf("ActionItems = %v, want two items", diag.ActionItems)
	}
	if diag.Raw != reply {
		t.Errorf("Raw = %q, want the full reply kept", diag.Raw)
	}
}

// TestConsoleMonitorDiagnoseNothingToReport tests the no-problems guard
func TestConsoleMonitorDiagnoseNothingToReport(t *testing.T) {
	mock := &gen.MockClient{Result: textResult("unused")}
	monitor := NewConsoleMonitor(mock)

	collectFrom(t, monitor, "[info] all quiet\nplain line\n")

	if _, err := monitor.Diagnose(); err == nil {
		t.Error("Diagnose() expected error with no errors or warnings")
	}
	if mock.Calls != 0 {
		t.Errorf("generation calls = %d, want 0", mock.Calls)
	}
}

// TestConsoleMonitorDiagnoseCapsEvents tests the prompt size cap
func TestConsoleMonitorDiagnoseCapsEvents(t *testing.T) {
	mock := &gen.MockClient{Result: textResult("diagnosis")}
	monitor := NewConsoleMonitor(mock)

	var sb strings.Builder
	for i := 0; i < maxDiagnoseEvents+50; i++ {
		sb.WriteString("[error] failure number\n")
	}
	collectFrom(t, monitor, sb.String())

	if _, err := monitor.Diagnose(); err != nil {
		t.Fatalf("Diagnose() unexpected error: %v", err)
	}

	lines := strings.Count(mock.LastRequest.Prompt, "[error]")
	if lines != maxDiagnoseEvents {
		t.Errorf("prompt carries %d problem lines, want the cap of %d", lines, maxDiagnoseEvents)
	}
}
