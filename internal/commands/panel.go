package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Clemens865/microlabs/internal/config"
	"github.com/Clemens865/microlabs/internal/host"
	"github.com/Clemens865/microlabs/internal/store"
	"github.com/Clemens865/microlabs/internal/tui"
)

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Browse the reading queue and saved clips interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPanel()
	},
}

func runPanel() error {
	cfg, _ := config.LoadConfig()

	queue, err := store.Open("queue", cfg.MaxStoreItems)
	if err != nil {
		return err
	}
	clips, err := store.Open("clips", cfg.MaxStoreItems)
	if err != nil {
		return err
	}

	model := tui.NewPanelModel(queue, clips, host.SystemClipboard{})
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("panel failed: %w", err)
	}
	return nil
}
