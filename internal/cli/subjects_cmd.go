package cli

import (
	"fmt"

	"github.com/alexanderramin/tutor/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSubjectsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "subjects",
		Short: "List the subjects the tutor can answer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSubjects(app.Store))
			return nil
		},
	}
}
