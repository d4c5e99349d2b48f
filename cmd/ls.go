package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"shoutbox/internal/board"
)

var (
	flagLsCategory string
	flagLsUser     string
	flagLsSort     string
	flagLsSearch   string
	flagLsJSON     bool
	flagLsLimit    int
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List sentences from the board",
	Long: `Print the feed to stdout, filtered the same way the interface filters it.

Use --json for machine-readable output (one JSON object per line).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		filters := board.DefaultFilters()
		if flagLsCategory != "" && flagLsCategory != board.All {
			cat, err := board.ParseCategory(flagLsCategory)
			if err != nil {
				return err
			}
			filters.Category = cat
		}
		if flagLsUser != "" {
			filters.User = flagLsUser
		}
		if flagLsSort != "" {
			sort, err := board.ParseSort(flagLsSort)
			if err != nil {
				return err
			}
			filters.Sort = sort
		}
		filters.Search = flagLsSearch

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
		defer cancel()
		sentences, err := newClient(cfg).ListSentences(ctx, filters)
		if err != nil {
			return err
		}
		if flagLsLimit > 0 && len(sentences) > flagLsLimit {
			sentences = sentences[:flagLsLimit]
		}

		if len(sentences) == 0 {
			if !flagLsJSON {
				fmt.Fprintln(os.Stderr, "No sentences found")
			}
			return nil
		}

		// JSON keeps the raw server values; the escaping below is for
		// terminals only
		if flagLsJSON {
			enc := json.NewEncoder(os.Stdout)
			for _, s := range sentences {
				if err := enc.Encode(s); err != nil {
					return err
				}
			}
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tAUTHOR\tCATEGORY\tSENTENCE")
		for _, s := range sentences {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				s.CreatedAt.Format("2006-01-02 15:04"),
				board.Sanitize(s.Name),
				s.Category,
				board.Sanitize(s.Text),
			)
		}
		return w.Flush()
	},
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List the authors on the board",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
		defer cancel()
		users, err := newClient(cfg).ListUsers(ctx)
		if err != nil {
			return err
		}

		if len(users) == 0 {
			fmt.Fprintln(os.Stderr, "No authors yet")
			return nil
		}
		for _, u := range users {
			fmt.Println(board.Sanitize(u))
		}
		return nil
	},
}

func init() {
	lsCmd.Flags().StringVar(&flagLsCategory, "category", "", "only this category (or \"all\")")
	lsCmd.Flags().StringVar(&flagLsUser, "user", "", "only sentences by this author")
	lsCmd.Flags().StringVar(&flagLsSort, "sort", "", "sort order: newest, oldest or author")
	lsCmd.Flags().StringVar(&flagLsSearch, "search", "", "text to search for")
	lsCmd.Flags().BoolVar(&flagLsJSON, "json", false, "output as JSON lines")
	lsCmd.Flags().IntVar(&flagLsLimit, "limit", 0, "show at most this many sentences")
}
