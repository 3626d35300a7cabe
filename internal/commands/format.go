package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/Clemens865/microlabs/internal/config"
	apierrors "github.com/Clemens865/microlabs/internal/errors"
	"github.com/Clemens865/microlabs/internal/host"
	"github.com/Clemens865/microlabs/internal/render"
)

// formatErrorMessage formats an error with additional context from
// structured errors
func formatErrorMessage(err error, context string) string {
	if err == nil {
		return ""
	}

	errorStyle := lipgloss.NewStyle().Foreground(colorError)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	var sb strings.Builder
	sb.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s: %v", context, err)))

	if status := apierrors.GetHTTPStatus(err); status > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  HTTP Status: %d", status)))
	}

	if endpoint := apierrors.GetEndpoint(err); endpoint != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  Endpoint: %s", endpoint)))
	}

	if body := apierrors.GetResponseBody(err); body != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n\n  %s", strings.ReplaceAll(body, "\n", "\n  "))))
	} else {
		switch {
		case apierrors.IsCredentialError(err):
			sb.WriteString(dimStyle.Render("\n  Hint: Run 'microlabs configure' to set your API key"))
		case apierrors.IsMediaTypeError(err):
			sb.WriteString(dimStyle.Render("\n  Hint: Supported inputs are images, audio, and PDF files"))
		case apierrors.IsRefusalError(err):
			sb.WriteString(dimStyle.Render("\n  Hint: The model declined this request. Rephrase and try again"))
		case apierrors.IsMalformedJSONError(err):
			sb.WriteString(dimStyle.Render("\n  Hint: The model returned unparseable JSON. Retrying usually helps"))
		case apierrors.IsTransportError(err):
			sb.WriteString(dimStyle.Render("\n  Hint: Check your internet connection and try again"))
		}
	}

	return sb.String()
}

// getTerminalWidth returns the terminal width or a default value
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // default width
	}
	return width
}

// printMarkdown renders markdown to stdout, falling back to the raw text
func printMarkdown(text string) {
	width := getTerminalWidth() - 4
	if width < 40 {
		width = 40
	}
	if width > 120 {
		width = 120
	}

	opts := render.LoadOptionsFromConfigWithWidth(width)
	rendered, err := render.Markdown(text, opts)
	if err != nil {
		rendered = text
	}
	fmt.Println(strings.TrimRight(rendered, "\n"))
}

// writeOutput saves text to the --output file when given, otherwise
// prints it as rendered markdown
func writeOutput(text string) error {
	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		successMsg := lipgloss.NewStyle().Foreground(colorSuccess).Render(
			fmt.Sprintf("✓ Saved to %s", outputFlag),
		)
		fmt.Fprintln(os.Stderr, successMsg)
		return nil
	}

	printMarkdown(text)
	return nil
}

// finishOutput applies the configured conveniences after a result is
// shown: copy-to-clipboard and verbose timing
func finishOutput(cfg config.Config, text string, started time.Time) {
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	if cfg.CopyToClipboard && strings.TrimSpace(text) != "" {
		if err := (host.SystemClipboard{}).Write(text); err == nil {
			fmt.Fprintln(os.Stderr, dimStyle.Render("copied to clipboard"))
		}
	}

	if cfg.Verbose {
		fmt.Fprintln(os.Stderr, dimStyle.Render(fmt.Sprintf("took %s", time.Since(started).Round(time.Millisecond))))
	}
}
