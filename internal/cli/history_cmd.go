package cli

import (
	"fmt"

	"github.com/alexanderramin/tutor/internal/cli/formatter"
	"github.com/spf13/cobra"
)

const defaultHistoryLimit = 20

func newHistoryCmd(app *App) *cobra.Command {
	var user, subject string
	var limit int
	var clearAll, yes bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past questions and answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			username := app.user(user)

			if clearAll {
				if !yes && !promptYesNoIO(app.In, out, fmt.Sprintf("Delete chat history for %s? [y/N]: ", username)) {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
				n, err := app.History.Clear(ctx, username)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Deleted %d messages.\n", n)
				return nil
			}

			entries, err := app.History.List(ctx, username, app.canonicalSubject(subject), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatHistory(entries, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "User to show")
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Only show one subject")
	cmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryLimit, "Most recent messages to show (0 for all)")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "Delete the user's history")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
