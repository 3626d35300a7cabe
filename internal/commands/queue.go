package commands

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/Clemens865/microlabs/internal/apps"
	"github.com/Clemens865/microlabs/internal/host"
	"github.com/Clemens865/microlabs/internal/store"
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Manage the reading queue",
}

var queueAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Fetch, summarize, and queue a page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQueueAdd(args[0])
	},
}

var queueListCmd = &cobra.Command{
	Use:   "list",
	Short: "List queued items, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := openQueue()
		if err != nil {
			return err
		}
		items, err := q.List()
		if err != nil {
			return err
		}
		printItems(items, true)
		return nil
	},
}

var queueOpenCmd = &cobra.Command{
	Use:   "open <id>",
	Short: "Open a queued page in the default browser",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := openQueue()
		if err != nil {
			return err
		}
		item, err := q.Get(args[0])
		if err != nil {
			return err
		}
		if item.URL == "" {
			return fmt.Errorf("item %s has no URL", item.ID)
		}
		return openURL(item.URL)
	},
}

var queueRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a queued item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := openQueue()
		if err != nil {
			return err
		}
		return q.Remove(args[0])
	},
}

var queueClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the reading queue",
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := openQueue()
		if err != nil {
			return err
		}
		return q.Clear()
	},
}

func init() {
	queueCmd.AddCommand(queueAddCmd)
	queueCmd.AddCommand(queueListCmd)
	queueCmd.AddCommand(queueOpenCmd)
	queueCmd.AddCommand(queueRemoveCmd)
	queueCmd.AddCommand(queueClearCmd)
}

// openQueue wires the reading queue with its live collaborators
func openQueue() (*apps.Queue, error) {
	client, cfg, err := buildClient()
	if err != nil {
		return nil, err
	}

	fetcher, err := host.NewFetcher()
	if err != nil {
		return nil, err
	}

	items, err := store.Open("queue", cfg.MaxStoreItems)
	if err != nil {
		return nil, err
	}

	return apps.NewQueue(client, fetcher, items), nil
}

func runQueueAdd(url string) error {
	q, err := openQueue()
	if err != nil {
		return err
	}

	spin := newSpinner("Fetching and summarizing")
	spin.start()

	item, added, err := q.Add(context.Background(), url)
	if err != nil {
		spin.stopWithError()
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Failed to queue page"))
		return err
	}

	if !added {
		spin.stopWithSuccess("Already queued")
		return nil
	}

	spin.stopWithSuccess(fmt.Sprintf("Queued: %s", item.Title))
	if item.Summary != "" {
		fmt.Println(item.Summary)
	}
	return nil
}

// openURL launches the platform's default browser
func openURL(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}

// printItems lists store items in a compact one-per-line format
func printItems(items []store.Item, withURL bool) {
	if len(items) == 0 {
		fmt.Println("(empty)")
		return
	}
	for _, it := range items {
		label := it.Title
		if label == "" {
			label = firstLine(it.Content, 60)
		}
		fmt.Printf("%s  %s\n", it.ID, label)
		if withURL && it.URL != "" {
			fmt.Printf("  %s\n", it.URL)
		}
		if it.Summary != "" {
			fmt.Printf("  %s\n", it.Summary)
		}
	}
}

// firstLine truncates s to its first line, capped at max runes
func firstLine(s string, max int) string {
	for i, r := range s {
		if r == '\n' {
			s = s[:i]
			break
		}
	}
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max]) + "…"
	}
	return s
}
