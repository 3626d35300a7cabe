package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Clemens865/microlabs/internal/config"
	"github.com/Clemens865/microlabs/internal/gen"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Set the API key and default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if show, _ := cmd.Flags().GetBool("show"); show {
			return showConfig()
		}
		return runConfigure()
	},
}

func init() {
	configureCmd.Flags().Bool("show", false, "Show current configuration")
}

func runConfigure() error {
	cfg, _ := config.LoadConfig()

	creds, err := config.LoadCredentials()
	if err != nil {
		return err
	}

	// API key, read without echo when on a TTY
	fmt.Print("API key")
	if creds.Key() != "" {
		fmt.Print(" (press enter to keep the current one)")
	}
	fmt.Print(": ")

	var key string
	if term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read API key: %w", err)
		}
		key = strings.TrimSpace(string(raw))
	} else {
		reader := bufio.NewReader(os.Stdin)
		line, _ := reader.ReadString('\n')
		key = strings.TrimSpace(line)
	}

	if key != "" {
		if err := creds.Save(key); err != nil {
			return err
		}
		fmt.Println("API key saved.")
	}

	// Default model
	fmt.Printf("Default model [%s] (available: %s): ", cfg.DefaultModel, strings.Join(gen.AllModels(), ", "))
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	if model := strings.TrimSpace(line); model != "" {
		cfg.DefaultModel = model
	}

	if err := config.SaveConfig(cfg); err != nil {
		return err
	}

	fmt.Println("Configuration saved.")
	return nil
}

func showConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	creds, err := config.LoadCredentials()
	if err != nil {
		return err
	}

	keyState := "not set"
	if creds.Key() != "" {
		keyState = "set"
	}

	fmt.Printf("API key:            %s\n", keyState)
	fmt.Printf("Default model:      %s\n", cfg.DefaultModel)
	fmt.Printf("Refusal threshold:  %d\n", cfg.RefusalThreshold)
	fmt.Printf("Max store items:    %d\n", cfg.MaxStoreItems)
	fmt.Printf("Copy to clipboard:  %t\n", cfg.CopyToClipboard)
	fmt.Printf("Verbose:            %t\n", cfg.Verbose)
	return nil
}
