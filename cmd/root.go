package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shoutbox/internal/api"
	"shoutbox/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig string
	flagServer string
	flagName   string
)

var rootCmd = &cobra.Command{
	Use:   "shoutbox",
	Short: "TUI client for the sentences board",
	Long:  "shoutbox is a terminal client for a shared sentences board: post a line, browse the feed, filter by category or author, and prune your own posts.",
	RunE:  runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "board server URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagName, "name", "", "author name (overrides config)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(statsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("shoutbox %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

// loadConfig reads the config file and layers the global flags on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagServer != "" {
		cfg.Server = flagServer
	}
	if flagName != "" {
		cfg.Name = flagName
	}
	return cfg, nil
}

func newClient(cfg *config.Config) *api.Client {
	return api.New(cfg.Server, cfg.Timeout())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
