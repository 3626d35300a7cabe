package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Clemens865/microlabs/internal/apps"
	"github.com/Clemens865/microlabs/internal/config"
	"github.com/Clemens865/microlabs/internal/host"
	"github.com/Clemens865/microlabs/internal/store"
)

var clipsCmd = &cobra.Command{
	Use:   "clips",
	Short: "Manage saved clipboard items",
}

var clipsCaptureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Save the current clipboard content",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openClips()
		if err != nil {
			return err
		}

		item, added, err := c.Capture()
		if err != nil {
			return err
		}
		if !added {
			fmt.Println("Already saved.")
			return nil
		}
		fmt.Printf("Saved: %s\n", firstLine(item.Content, 60))
		return nil
	},
}

var clipsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved clips, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openClips()
		if err != nil {
			return err
		}
		items, err := c.List()
		if err != nil {
			return err
		}
		printItems(items, false)
		return nil
	},
}

var clipsRestoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Copy a saved clip back to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openClips()
		if err != nil {
			return err
		}
		item, err := c.Restore(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Restored: %s\n", firstLine(item.Content, 60))
		return nil
	},
}

var clipsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a saved clip",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openClips()
		if err != nil {
			return err
		}
		return c.Remove(args[0])
	},
}

var clipsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved clips",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openClips()
		if err != nil {
			return err
		}
		return c.Clear()
	},
}

func init() {
	clipsCmd.AddCommand(clipsCaptureCmd)
	clipsCmd.AddCommand(clipsListCmd)
	clipsCmd.AddCommand(clipsRestoreCmd)
	clipsCmd.AddCommand(clipsRemoveCmd)
	clipsCmd.AddCommand(clipsClearCmd)
}

// openClips wires the clipboard manager with the system clipboard
func openClips() (*apps.Clips, error) {
	cfg, _ := config.LoadConfig()

	items, err := store.Open("clips", cfg.MaxStoreItems)
	if err != nil {
		return nil, err
	}

	return apps.NewClips(host.SystemClipboard{}, items), nil
}
