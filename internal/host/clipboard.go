package host

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// SystemClipboard is the Clipboard backed by the OS clipboard
type SystemClipboard struct{}

// Ensure SystemClipboard implements Clipboard
var _ Clipboard = (*SystemClipboard)(nil)

func (SystemClipboard) Read() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	return text, nil
}

func (SystemClipboard) Write(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}
