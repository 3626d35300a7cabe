package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Clemens865/microlabs/internal/apps"
)

var repurposeFormatsFlag []string

var repurposeCmd = &cobra.Command{
	Use:   "repurpose [content]",
	Short: "Rewrite content as tweet, LinkedIn post, and newsletter section",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readInput(args)
		if err != nil {
			return err
		}
		return runRepurpose(content)
	},
}

func init() {
	repurposeCmd.Flags().StringSliceVar(&repurposeFormatsFlag, "formats", nil,
		fmt.Sprintf("Output formats (%s)", strings.Join(apps.RepurposeFormats(), ", ")))
}

func runRepurpose(content string) error {
	client, cfg, err := buildClient()
	if err != nil {
		return err
	}
	started := time.Now()

	spin := newSpinner("Repurposing content")
	spin.start()

	variants, err := apps.NewRepurposer(client).Run(content, repurposeFormatsFlag)
	if err != nil {
		spin.stopWithError()
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Repurposing failed"))
		return fmt.Errorf("repurposing failed: %w", err)
	}
	spin.stopWithSuccess("Done")

	var sb strings.Builder
	for _, v := range variants {
		sb.WriteString(fmt.Sprintf("## %s\n\n%s\n\n", v.Format, v.Text))
	}
	printMarkdown(sb.String())
	finishOutput(cfg, sb.String(), started)
	return nil
}
