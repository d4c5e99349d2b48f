package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"shoutbox/internal/config"
	"shoutbox/internal/history"
	"shoutbox/internal/logging"
	"shoutbox/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Stdout belongs to the interface, so logs go to a file
	log, closeLog, err := logging.New(cfg.Level(), config.LogPath())
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer closeLog()

	store, err := history.Open(config.HistoryPath())
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer store.Close()

	streak, err := store.UpdateStreak()
	if err != nil {
		log.Warn().Err(err).Msg("updating streak")
	}
	if err := store.SetLastOpened(); err != nil {
		log.Warn().Err(err).Msg("recording open time")
	}

	log.Info().Str("server", cfg.Server).Msg("starting shoutbox")

	return tui.Run(tui.RunOpts{
		Client:  newClient(cfg),
		Store:   store,
		Log:     log,
		Name:    cfg.Name,
		Streak:  streak,
		Timeout: cfg.Timeout(),
		Version: version,
	})
}
