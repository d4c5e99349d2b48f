package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"shoutbox/internal/api"
)

var flagDeleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one of your sentences",
	Long:  "Ask the server to delete a sentence by id. Only the author may delete; anyone else is refused.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		id := args[0]

		if !flagDeleteYes {
			var ok bool
			err := huh.NewConfirm().
				Title("Delete this sentence?").
				Description("id " + id).
				Value(&ok).
				Run()
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Nothing deleted.")
				return nil
			}
		}

		client := newClient(cfg)
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
		defer cancel()

		if err := client.DeleteSentence(ctx, id); err != nil {
			switch {
			case errors.Is(err, api.ErrAuthRequired):
				return fmt.Errorf("%s (visit %s)", api.Message(err), client.LoginURL())
			case errors.Is(err, api.ErrForbidden):
				return errors.New(api.Message(err))
			}
			return err
		}

		fmt.Println("Sentence deleted.")
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&flagDeleteYes, "yes", false, "skip the confirmation prompt")
}
