package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"shoutbox/internal/config"
	"shoutbox/internal/history"
)

var flagPruneOlderThan string

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Trim old entries from the local history",
	Long: `Delete seen markers older than the cutoff and reclaim disk space.

The board itself is untouched; this only clears which sentences the
local client remembers having shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		retention, err := parseSince(flagPruneOlderThan)
		if err != nil {
			return fmt.Errorf("invalid --older-than value: %w", err)
		}

		store, err := history.Open(config.HistoryPath())
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer store.Close()

		deleted, err := store.PruneSeen(retention)
		if err != nil {
			return fmt.Errorf("pruning: %w", err)
		}

		if deleted == 0 {
			fmt.Println("Nothing to prune.")
		} else {
			fmt.Printf("Pruned %d seen marker(s) older than %s.\n", deleted, formatDuration(retention))
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show local history statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := config.HistoryPath()
		store, err := history.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer store.Close()

		count, size, err := store.Stats(dbPath)
		if err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}

		fmt.Printf("History: %s\n", dbPath)
		fmt.Printf("Seen sentences: %d\n", count)
		fmt.Printf("Size: %s\n", formatBytes(size))

		if last, err := store.GetLastOpened(); err == nil && !last.IsZero() {
			fmt.Printf("Last opened: %s\n", last.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	pruneCmd.Flags().StringVar(&flagPruneOlderThan, "older-than", "90d", "age cutoff (e.g., 30d, 720h)")
}

// parseSince reads durations like 7d or 24h; the d suffix is days.
func parseSince(s string) (time.Duration, error) {
	if len(s) > 1 && s[len(s)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(s, "%dd", &days); err == nil {
			return time.Duration(days) * 24 * time.Hour, nil
		}
	}
	return time.ParseDuration(s)
}

func formatDuration(d time.Duration) string {
	days := int(d.Hours() / 24)
	if days > 0 {
		return fmt.Sprintf("%dd", days)
	}
	return fmt.Sprintf("%dh", int(d.Hours()))
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
