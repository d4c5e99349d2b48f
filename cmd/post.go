package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"shoutbox/internal/api"
	"shoutbox/internal/board"
)

var flagPostCategory string

var postCmd = &cobra.Command{
	Use:   "post [text]",
	Short: "Post a sentence to the board",
	Long:  "Post a sentence without opening the interface. With no text an interactive form collects the fields.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		draft := board.Draft{
			Text:     strings.Join(args, " "),
			Name:     cfg.Name,
			Category: board.DefaultCategory,
		}
		if flagPostCategory != "" {
			cat, err := board.ParseCategory(flagPostCategory)
			if err != nil {
				return err
			}
			draft.Category = cat
		}

		if draft.Text == "" || strings.TrimSpace(draft.Name) == "" {
			if err := promptDraft(&draft); err != nil {
				return err
			}
		}

		draft = draft.Trimmed()
		if err := draft.Validate(); err != nil {
			return err
		}

		client := newClient(cfg)
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
		defer cancel()

		if err := client.CreateSentence(ctx, draft); err != nil {
			if errors.Is(err, api.ErrAuthRequired) {
				return fmt.Errorf("%s (visit %s)", api.Message(err), client.LoginURL())
			}
			return err
		}

		fmt.Printf("Posted to %s as %s.\n", draft.Category, draft.Name)
		return nil
	},
}

func init() {
	postCmd.Flags().StringVar(&flagPostCategory, "category", "", "category for the sentence (default thoughts)")
}

// promptDraft fills in whatever the command line left empty.
func promptDraft(d *board.Draft) error {
	cat := string(d.Category)
	catOpts := make([]huh.Option[string], 0, len(board.Categories()))
	for _, c := range board.Categories() {
		catOpts = append(catOpts, huh.NewOption(string(c), string(c)))
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Sentence").
				Description(fmt.Sprintf("Up to %d characters", board.MaxTextLen)).
				Value(&d.Text),
			huh.NewInput().
				Title("Name").
				Value(&d.Name),
			huh.NewSelect[string]().
				Title("Category").
				Options(catOpts...).
				Value(&cat),
		),
	).Run()
	if err != nil {
		return err
	}
	d.Category = board.Category(cat)
	return nil
}
