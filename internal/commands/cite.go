package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Clemens865/microlabs/internal/apps"
)

var citeStylesFlag []string

var citeCmd = &cobra.Command{
	Use:   "cite [source]",
	Short: "Generate citations for a source",
	Long: `Generate formatted citations for a source described as text, read
from a file, or piped on stdin.

Examples:
  microlabs cite "Donovan & Kernighan, The Go Programming Language, 2015"
  microlabs cite --style APA,Chicago "doi:10.1145/3291874"
  cat abstract.txt | microlabs cite`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readInput(args)
		if err != nil {
			return err
		}
		return runCite(source)
	},
}

func init() {
	citeCmd.Flags().StringSliceVar(&citeStylesFlag, "style", nil, "Citation styles (default APA,MLA,Chicago)")
}

// readInput resolves input from a positional argument or stdin
func readInput(args []string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}

	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	return "", fmt.Errorf("no input: pass a source or pipe it on stdin")
}

func runCite(source string) error {
	client, cfg, err := buildClient()
	if err != nil {
		return err
	}
	started := time.Now()

	spin := newSpinner("Generating citations")
	spin.start()

	citations, err := apps.NewCiter(client).Run(source, citeStylesFlag)
	if err != nil {
		spin.stopWithError()
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Citation generation failed"))
		return fmt.Errorf("citation generation failed: %w", err)
	}
	spin.stopWithSuccess("Done")

	var sb strings.Builder
	for _, c := range citations {
		sb.WriteString(fmt.Sprintf("**%s**\n\n%s\n\n", c.Style, c.Text))
	}
	printMarkdown(sb.String())
	finishOutput(cfg, sb.String(), started)
	return nil
}
