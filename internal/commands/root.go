// Package commands provides the CLI commands for microlabs.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Clemens865/microlabs/internal/config"
	"github.com/Clemens865/microlabs/internal/gen"
)

var (
	// Global flags
	modelFlag   string
	outputFlag  string
	verboseFlag bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "microlabs",
	Short: "A side panel of small AI-powered productivity tools",
	Long: `microlabs is a collection of small AI-powered productivity tools:
transcription, citations, content repurposing, neighborhood research,
a reading queue, a clipboard manager, console-log diagnosis, image
editing, and screenshot-to-code conversion.

Examples:
  microlabs configure                      Set the API key
  microlabs transcribe talk.mp3            Transcribe audio or PDF
  microlabs cite "Smith 2021, Go in Practice"
  microlabs research "Kreuzberg, Berlin"   Grounded research with sources
  microlabs queue add https://example.com  Queue an article to read
  microlabs clips capture                  Save the current clipboard
  microlabs panel                          Browse queue and clips`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("microlabs %s (built %s)\n", Version, BuildTime)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "Model to use (e.g., gemini-2.5-pro)")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Report timing after each command")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(transcribeCmd)
	rootCmd.AddCommand(citeCmd)
	rootCmd.AddCommand(repurposeCmd)
	rootCmd.AddCommand(researchCmd)
	rootCmd.AddCommand(queueCmd)
	rootCmd.AddCommand(clipsCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(imageEditCmd)
	rootCmd.AddCommand(screencodeCmd)
	rootCmd.AddCommand(panelCmd)
}

// getModel returns the model to use (from flag or config)
func getModel() string {
	if modelFlag != "" {
		return modelFlag
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return gen.DefaultModel
	}

	return cfg.DefaultModel
}

// buildClient assembles a generation client from config and credentials
func buildClient() (*gen.Client, config.Config, error) {
	cfg, _ := config.LoadConfig()
	if verboseFlag {
		cfg.Verbose = true
	}

	creds, err := config.LoadCredentials()
	if err != nil {
		return nil, cfg, fmt.Errorf("failed to load credentials: %w", err)
	}

	client, err := gen.NewClient(creds,
		gen.WithModel(getModel()),
		gen.WithRefusalThreshold(cfg.RefusalThreshold),
	)
	if err != nil {
		return nil, cfg, fmt.Errorf("failed to create client: %w", err)
	}

	return client, cfg, nil
}
