package cli

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/tutor/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProgressCmd(app *App) *cobra.Command {
	var user, subject string
	var asJSON, reset, yes bool

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show study progress and mastery per subject",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			username := app.user(user)

			if reset {
				if !yes && !promptYesNoIO(app.In, out, fmt.Sprintf("Delete all progress for %s? [y/N]: ", username)) {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
				n, err := app.Progress.Reset(ctx, username)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Removed progress for %d subjects.\n", n)
				return nil
			}

			if asJSON {
				export, err := app.Progress.Export(ctx, username)
				if err != nil {
					return err
				}
				data, err := json.MarshalIndent(export, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding progress: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			records := app.Progress.GetProgress(ctx, username)
			if subject != "" {
				p, ok := records[app.canonicalSubject(subject)]
				if !ok {
					return fmt.Errorf("no progress for %s in %s", username, subject)
				}
				fmt.Fprint(out, formatter.FormatSessions(p, app.now()))
				return nil
			}
			fmt.Fprint(out, formatter.FormatProgress(username, records, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "User to show")
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "List the sessions of one subject")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the progress export as JSON")
	cmd.Flags().BoolVar(&reset, "reset", false, "Delete the user's progress")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.MarkFlagsMutuallyExclusive("json", "reset")

	return cmd
}
