package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Clemens865/microlabs/internal/apps"
)

var researchCmd = &cobra.Command{
	Use:   "research <question>",
	Short: "Research a neighborhood or topic with cited sources",
	Long: `Answer a research question using the search-grounded variant, which
returns source citations alongside the answer.

Examples:
  microlabs research "Is Kreuzberg, Berlin a good area for families?"
  microlabs research "average rent in Alfama, Lisbon"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResearch(args[0])
	},
}

func runResearch(question string) error {
	client, cfg, err := buildClient()
	if err != nil {
		return err
	}
	started := time.Now()

	spin := newSpinner("Researching")
	spin.start()

	report, err := apps.NewResearcher(client).Run(question)
	if err != nil {
		spin.stopWithError()
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Research failed"))
		return err
	}
	spin.stopWithSuccess("Done")

	var sb strings.Builder
	sb.WriteString(report.Answer)
	if len(report.Sources) > 0 {
		sb.WriteString("\n\n## Sources\n\n")
		for _, src := range report.Sources {
			title := src.Title
			if title == "" {
				title = src.URI
			}
			sb.WriteString(fmt.Sprintf("- [%s](%s)\n", title, src.URI))
		}
	}
	printMarkdown(sb.String())
	finishOutput(cfg, sb.String(), started)
	return nil
}
