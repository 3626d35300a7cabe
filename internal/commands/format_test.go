package commands

import (
	"errors"
	"strings"
	"testing"

	apierrors "github.com/Clemens865/microlabs/internal/errors"
)

// TestFormatErrorMessage tests the per-error-type hints
func TestFormatErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		context  string
		wantSubs []string
	}{
		{
			name:     "nil error yields nothing",
			err:      nil,
			context:  "Operation failed",
			wantSubs: nil,
		},
		{
			name:     "credential error suggests configure",
			err:      apierrors.NewCredentialError("run 'microlabs configure' to set one"),
			context:  "Transcription failed",
			wantSubs: []string{"Transcription failed", "microlabs configure"},
		},
		{
			name:     "media type error names supported inputs",
			err:      apierrors.NewMediaTypeError("application/zip"),
			context:  "Transcription failed",
			wantSubs: []string{"application/zip", "images, audio, and PDF"},
		},
		{
			name:     "refusal suggests rephrasing",
			err:      apierrors.NewRefusalError("I can't help with that request."),
			context:  "Edit failed",
			wantSubs: []string{"declined", "Rephrase"},
		},
		{
			name:     "malformed JSON suggests retrying",
			err:      apierrors.NewMalformedJSONError("not json", errors.New("bad")),
			context:  "Citation failed",
			wantSubs: []string{"unparseable JSON"},
		},
		{
			name:     "HTTP error shows status, endpoint and body",
			err:      apierrors.NewHTTPError(429, "https://example.test/v1", "quota", "details"),
			context:  "Request failed",
			wantSubs: []string{"429", "https://example.test/v1", "details"},
		},
		{
			name:     "network error suggests checking the connection",
			err:      apierrors.NewTransportError("https://example.test/v1", "dial", errors.New("refused")),
			context:  "Request failed",
			wantSubs: []string{"internet connection"},
		},
		{
			name:     "plain error gets no hint",
			err:      errors.New("something odd"),
			context:  "Operation failed",
			wantSubs: []string{"something odd"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatErrorMessage(tt.err, tt.context)

			if tt.err == nil {
				if got != "" {
					t.Errorf("formatErrorMessage(nil) = %q, want empty", got)
				}
				return
			}
			for _, sub := range tt.wantSubs {
				if !strings.Contains(got, sub) {
					t.Errorf("message %q missing %q", got, sub)
				}
			}
		})
	}
}

// TestGetTerminalWidthFallback tests the non-TTY default
func TestGetTerminalWidthFallback(t *testing.T) {
	// Under go test stdout is rarely a terminal; either way the result
	// must be positive.
	if width := getTerminalWidth(); width <= 0 {
		t.Errorf("getTerminalWidth() = %d, want positive", width)
	}
}
