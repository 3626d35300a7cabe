package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Clemens865/microlabs/internal/apps"
	"github.com/Clemens865/microlabs/internal/host"
)

var consoleCmd = &cobra.Command{
	Use:   "console [logfile]",
	Short: "Watch a console-log stream and diagnose its errors",
	Long: `Read console output from a file or stdin, collect errors and
warnings, and ask the model for a diagnosis once the stream ends.

Examples:
  microlabs console devtools.log
  my-app 2>&1 | microlabs console`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var source io.Reader
		if len(args) > 0 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			defer f.Close()
			source = f
		} else {
			stat, _ := os.Stdin.Stat()
			if (stat.Mode() & os.ModeCharDevice) != 0 {
				return fmt.Errorf("no input: pass a log file or pipe console output")
			}
			source = os.Stdin
		}
		return runConsole(source)
	},
}

func runConsole(source io.Reader) error {
	client, cfg, err := buildClient()
	if err != nil {
		return err
	}
	started := time.Now()

	session := host.NewSession(source)
	monitor := apps.NewConsoleMonitor(client)

	if err := session.Start(); err != nil {
		return err
	}
	defer session.Stop()

	// Collect returns when the source drains
	monitor.Collect(session)

	problems := monitor.Problems()
	fmt.Fprintf(os.Stderr, "Collected %d events (%d errors/warnings)\n",
		len(monitor.Events()), len(problems))

	if len(problems) == 0 {
		fmt.Println("No errors or warnings found.")
		return nil
	}

	spin := newSpinner("Diagnosing")
	spin.start()

	diag, err := monitor.Diagnose()
	if err != nil {
		spin.stopWithError()
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Diagnosis failed"))
		return err
	}
	spin.stopWithSuccess("Done")

	var sb strings.Builder
	if diag.Summary != "" {
		sb.WriteString("## Summary\n\n" + diag.Summary + "\n\n")
	}
	if len(diag.ActionItems) > 0 {
		sb.WriteString("## Action Items\n\n")
		for _, a := range diag.ActionItems {
			sb.WriteString("- " + a + "\n")
		}
	}
	if sb.Len() == 0 {
		sb.WriteString(diag.Raw)
	}
	printMarkdown(sb.String())
	finishOutput(cfg, sb.String(), started)
	return nil
}
