package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	"github.com/Clemens865/microlabs/internal/apps"
)

var screencodeInstructionsFlag string

var screencodeCmd = &cobra.Command{
	Use:   "screencode <screenshot>",
	Short: "Convert a UI screenshot to HTML/Tailwind code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScreencode(args[0])
	},
}

func init() {
	screencodeCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save code to file")
	screencodeCmd.Flags().StringVar(&screencodeInstructionsFlag, "instructions", "", "Extra conversion instructions")
}

func runScreencode(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read screenshot: %w", err)
	}

	mime := mimetype.Detect(data).String()

	client, cfg, err := buildClient()
	if err != nil {
		return err
	}
	started := time.Now()

	spin := newSpinner("Generating code")
	spin.start()

	code, err := apps.NewScreenCoder(client).Run(data, mime, screencodeInstructionsFlag)
	if err != nil {
		spin.stopWithError()
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Code generation failed"))
		return err
	}
	spin.stopWithSuccess("Done")

	if outputFlag != "" {
		return writeOutput(code.Code)
	}

	lang := code.Language
	if lang == "" {
		lang = "html"
	}
	printMarkdown(fmt.Sprintf("```%s\n%s\n```", lang, code.Code))
	finishOutput(cfg, code.Code, started)
	return nil
}
