package apps

import (
	"errors"
	"testing"

	"github.com/Clemens865/microlabs/internal/host"
)

// TestClipsCapture tests storing the current clipboard content
func TestClipsCapture(t *testing.T) {
	clipboard := &host.FakeClipboard{Text: "copied snippet"}
	clips := NewClips(clipboard, newTestStore(t, 10))

	item, added, err := clips.Capture()
	if err != nil {
		t.Fatalf("Capture() unexpected error: %v", err)
	}
	if !added {
		t.Error("added = false, want a new entry")
	}
	if item.Content != "copied snippet" {
		t.Errorf("Content = %q, want the clipboard text", item.Content)
	}
}

// TestClipsCaptureDeduplicates tests repeat captures keeping one entry
func TestClipsCaptureDeduplicates(t *testing.T) {
	clipboard := &host.FakeClipboard{Text: "same text"}
	store := newTestStore(t, 10)
	clips := NewClips(clipboard, store)

	if _, added, err := clips.Capture(); err != nil || !added {
		t.Fatalf("first Capture() = (%v, %v), want (true, nil)", added, err)
	}
	_, added, err := clips.Capture()
	if err != nil {
		t.Fatalf("second Capture() unexpected error: %v", err)
	}
	if added {
		t.Error("second Capture() added = true, want the duplicate rejected")
	}
	if store.Len() != 1 {
		t.Errorf("store has %d items, want 1", store.Len())
	}
}

// TestClipsCaptureEmptyClipboard tests the empty-clipboard guard
func TestClipsCaptureEmptyClipboard(t *testing.T) {
	clipboard := &host.FakeClipboard{Text: "   \n"}
	clips := NewClips(clipboard, newTestStore(t, 10))

	if _, _, err := clips.Capture(); err == nil {
		t.Error("Capture() expected error for an empty clipboard")
	}
}

// TestClipsCaptureReadFailure tests clipboard errors propagating
func TestClipsCaptureReadFailure(t *testing.T) {
	cause := errors.New("no clipboard available")
	clipboard := &host.FakeClipboard{ReadErr: cause}
	clips := NewClips(clipboard, newTestStore(t, 10))

	if _, _, err := clips.Capture(); !errors.Is(err, cause) {
		t.Errorf("Capture() error = %v, want the read failure", err)
	}
}

// TestClipsRestore tests writing a stored clip back to the clipboard
func TestClipsRestore(t *testing.T) {
	clipboard := &host.FakeClipboard{Text: "original"}
	clips := NewClips(clipboard, newTestStore(t, 10))

	if _, _, err := clips.Capture(); err != nil {
		t.Fatal(err)
	}

	items, _ := clips.List()
	clipboard.Text = "something else meanwhile"

	restored, err := clips.Restore(items[0].ID)
	if err != nil {
		t.Fatalf("Restore() unexpected error: %v", err)
	}
	if restored.Content != "original" {
		t.Errorf("restored.Content = %q, want the stored clip", restored.Content)
	}
	if clipboard.Text != "original" {
		t.Errorf("clipboard = %q, want the clip written back", clipboard.Text)
	}
	if clipboard.Writes != 1 {
		t.Errorf("clipboard writes = %d, want 1", clipboard.Writes)
	}
}

// TestClipsRestoreMissing tests lookup failures
func TestClipsRestoreMissing(t *testing.T) {
	clips := NewClips(&host.FakeClipboard{}, newTestStore(t, 10))

	if _, err := clips.Restore("no-such-id"); err == nil {
		t.Error("Restore() expected error for a missing clip")
	}
}
