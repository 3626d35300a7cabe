package extract

import (
	"reflect"
	"testing"
)

// TestExtractSpecSections tests the core summary/list recovery
func TestExtractSpecSections(t *testing.T) {
	text := "Summary:\nThe system works well.\n\nAction Items:\n- Fix bug\n- Add test"

	got := Extract(text, DefaultPatterns())

	summary, ok := got["summary"]
	if !ok {
		t.Fatal("summary section missing")
	}
	if summary.Text != "The system works well." {
		t.Errorf("summary.Text = %q, want %q", summary.Text, "The system works well.")
	}
	if summary.Items != nil {
		t.Errorf("summary.Items = %v, want nil for a prose section", summary.Items)
	}

	actions, ok := got["action items"]
	if !ok {
		t.Fatal("action items section missing")
	}
	want := []string{"Fix bug", "Add test"}
	if !reflect.DeepEqual(actions.Items, want) {
		t.Errorf("action items = %v, want %v", actions.Items, want)
	}
}

// TestExtractIsPure tests that extraction is deterministic
func TestExtractIsPure(t *testing.T) {
	text := "Overview: all good\n\nKey Points:\n- one\n- two"
	patterns := DefaultPatterns()

	first := Extract(text, patterns)
	second := Extract(text, patterns)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated extraction differs: %v vs %v", first, second)
	}
}

// TestExtractFirstOccurrenceWins tests duplicate header handling
func TestExtractFirstOccurrenceWins(t *testing.T) {
	text := "Summary: the first one\n\nSummary: the second one"

	got := Extract(text, DefaultPatterns())
	if got["summary"].Text != "the first one" {
		t.Errorf("summary = %q, want the first occurrence", got["summary"].Text)
	}
}

// TestExtractListMarkers tests marker stripping across bullet styles
func TestExtractListMarkers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "dash bullets",
			text: "Action Items:\n- first\n- second",
			want: []string{"first", "second"},
		},
		{
			name: "unicode bullets",
			text: "Action Items:\n• first\n• second",
			want: []string{"first", "second"},
		},
		{
			name: "asterisk bullets",
			text: "Action Items:\n* first\n* second",
			want: []string{"first", "second"},
		},
		{
			name: "numbered with dots",
			text: "Action Items:\n1. first\n2. second",
			want: []string{"first", "second"},
		},
		{
			name: "numbered with parens",
			text: "Action Items:\n1) first\n2) second",
			want: []string{"first", "second"},
		},
		{
			name: "indented bullets",
			text: "Action Items:\n  - first\n  - second",
			want: []string{"first", "second"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text, DefaultPatterns())
			if !reflect.DeepEqual(got["action items"].Items, tt.want) {
				t.Errorf("items = %v, want %v", got["action items"].Items, tt.want)
			}
		})
	}
}

// TestExtractBlankLineEndsList tests list termination
func TestExtractBlankLineEndsList(t *testing.T) {
	text := "Key Points:\n- in the list\n- also in\n\n- not in the list anymore"

	got := Extract(text, DefaultPatterns())
	want := []string{"in the list", "also in"}
	if !reflect.DeepEqual(got["key points"].Items, want) {
		t.Errorf("items = %v, want %v", got["key points"].Items, want)
	}
}

// TestExtractHeaderVariants tests label synonyms and decorations
func TestExtractHeaderVariants(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLabel string
	}{
		{"tldr maps to summary", "TL;DR: short and sweet", "summary"},
		{"tldr without semicolon", "TLDR: short and sweet", "summary"},
		{"overview maps to summary", "Overview: the big picture", "summary"},
		{"case-insensitive", "SUMMARY: shouting works too", "summary"},
		{"markdown header", "## Summary\ncontent here", "summary"},
		{"bold header", "**Summary:**\ncontent here", "summary"},
		{"todos map to action items", "To-dos:\n- do it", "action items"},
		{"next steps map to action items", "Next Steps:\n- do it", "action items"},
		{"highlights map to key points", "Highlights:\n- shiny", "key points"},
		{"takeaways map to key points", "Key Takeaways:\n- learned", "key points"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text, DefaultPatterns())
			if _, ok := got[tt.wantLabel]; !ok {
				t.Errorf("label %q missing, got %v", tt.wantLabel, got)
			}
		})
	}
}

// TestExtractSameLineContent tests content trailing the header
func TestExtractSameLineContent(t *testing.T) {
	got := Extract("Summary: all on one line", DefaultPatterns())
	if got["summary"].Text != "all on one line" {
		t.Errorf("summary = %q, want the same-line content", got["summary"].Text)
	}
}

// TestExtractMultilineProse tests prose collection until the next header
func TestExtractMultilineProse(t *testing.T) {
	text := "Summary:\nFirst sentence.\nSecond sentence.\n\nKey Points:\n- a point"

	got := Extract(text, DefaultPatterns())
	if got["summary"].Text != "First sentence.\nSecond sentence." {
		t.Errorf("summary = %q, want both lines", got["summary"].Text)
	}
	if len(got["key points"].Items) != 1 {
		t.Errorf("key points = %v, want one item", got["key points"].Items)
	}
}

// TestExtractListContinuationLines tests wrapped list items
func TestExtractListContinuationLines(t *testing.T) {
	text := "Action Items:\n- fix the flaky test\n  in the session package\n- ship it"

	got := Extract(text, DefaultPatterns())
	want := []string{"fix the flaky test in the session package", "ship it"}
	if !reflect.DeepEqual(got["action items"].Items, want) {
		t.Errorf("items = %v, want %v", got["action items"].Items, want)
	}
}

// TestExtractNeverFails tests the empty-result contract on hostile input
func TestExtractNeverFails(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty input", ""},
		{"no sections", "just a plain paragraph with nothing to find"},
		{"header with no content", "Summary:"},
		{"header with blank content", "Summary:\n\n\n"},
		{"only whitespace", "   \n\t\n   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text, DefaultPatterns())
			if got == nil {
				t.Fatal("Extract() returned nil, want an empty map")
			}
			for label, section := range got {
				if section.Text == "" && len(section.Items) == 0 {
					t.Errorf("label %q present with no content", label)
				}
			}
		})
	}
}

// TestExtractSummaryInProseNotMatched tests mid-line mentions being ignored
func TestExtractSummaryInProseNotMatched(t *testing.T) {
	text := "The quarterly summary: ignore this one.\n\nNothing else."

	got := Extract(text, DefaultPatterns())
	if _, ok := got["summary"]; ok {
		t.Errorf("summary matched mid-sentence: %v", got)
	}
}

// TestExtractCustomPatterns tests caller-supplied patterns
func TestExtractCustomPatterns(t *testing.T) {
	patterns := []Pattern{NewPattern("risks", `risks?|concerns?`)}

	got := Extract("Risks:\n- the deadline\n- the scope", patterns)
	want := []string{"the deadline", "the scope"}
	if !reflect.DeepEqual(got["risks"].Items, want) {
		t.Errorf("risks = %v, want %v", got["risks"].Items, want)
	}
}
