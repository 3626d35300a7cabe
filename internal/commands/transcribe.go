package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	"github.com/Clemens865/microlabs/internal/apps"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <file>",
	Short: "Transcribe an audio file or PDF with summary and action items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTranscribe(args[0])
	},
}

func init() {
	transcribeCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save transcript to file")
}

func runTranscribe(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	mime := mimetype.Detect(data).String()
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}

	client, cfg, err := buildClient()
	if err != nil {
		return err
	}
	started := time.Now()

	spin := newSpinner("Transcribing")
	spin.start()

	transcript, err := apps.NewTranscriber(client).Run(data, mime)
	if err != nil {
		spin.stopWithError()
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Transcription failed"))
		return fmt.Errorf("transcription failed: %w", err)
	}
	spin.stopWithSuccess("Done")

	if outputFlag != "" {
		return writeOutput(transcript.Text)
	}

	// Show the structured view when sections were recovered, otherwise
	// fall back to the raw transcript
	var sb strings.Builder
	if transcript.Summary != "" {
		sb.WriteString("## Summary\n\n" + transcript.Summary + "\n\n")
	}
	if len(transcript.KeyPoints) > 0 {
		sb.WriteString("## Key Points\n\n")
		for _, p := range transcript.KeyPoints {
			sb.WriteString("- " + p + "\n")
		}
		sb.WriteString("\n")
	}
	if len(transcript.ActionItems) > 0 {
		sb.WriteString("## Action Items\n\n")
		for _, a := range transcript.ActionItems {
			sb.WriteString("- " + a + "\n")
		}
		sb.WriteString("\n")
	}
	if sb.Len() == 0 {
		sb.WriteString(transcript.Text)
	}

	printMarkdown(sb.String())
	finishOutput(cfg, transcript.Text, started)
	return nil
}
