package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tutor/internal/cli/formatter"
	"github.com/alexanderramin/tutor/internal/contract"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	var subject, user string
	var noRecord, verbose bool

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask one question in a subject",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewAskRequest(app.user(user), app.canonicalSubject(subject), strings.Join(args, " "))
			req.Record = !noRecord

			resp := app.Ask.Ask(cmd.Context(), req)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAnswer(resp, verbose))
			return nil
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Subject to ask in")
	cmd.Flags().StringVarP(&user, "user", "u", "", "User to record progress for")
	cmd.Flags().BoolVar(&noRecord, "no-record", false, "Do not save history or progress")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show match details")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

// canonicalSubject returns the stored spelling of name when the corpus
// knows it, otherwise name unchanged.
func (a *App) canonicalSubject(name string) string {
	name = strings.TrimSpace(name)
	if a.Store == nil {
		return name
	}
	if s, ok := a.Store.Subject(name); ok {
		return s.Name
	}
	return name
}
