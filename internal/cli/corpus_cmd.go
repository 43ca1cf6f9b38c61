package cli

import (
	"fmt"

	"github.com/alexanderramin/tutor/internal/cli/formatter"
	"github.com/alexanderramin/tutor/internal/dataset"
	"github.com/spf13/cobra"
)

func newCorpusCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Inspect and build the question corpus",
	}

	cmd.AddCommand(
		newCorpusStatsCmd(app),
		newCorpusBuildCmd(app),
	)

	return cmd
}

func newCorpusStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the loaded corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCorpusStats(app.Store))
			return nil
		},
	}
}

func newCorpusBuildCmd(app *App) *cobra.Command {
	var out string
	var download bool
	sources := sourceFlag{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a corpus snapshot from base data and optional downloads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []dataset.BuilderOption{dataset.WithLogger(app.Logger)}
			if download || len(sources) > 0 {
				extra := map[string][]string(sources)
				if download {
					extra = mergeSources(dataset.DefaultSources, app.Config.Download.Sources, sources)
				}
				opts = append(opts,
					dataset.WithSources(extra),
					dataset.WithFetcher(app.fetcher()),
				)
			}

			report, err := dataset.NewBuilder(opts...).BuildSnapshot(cmd.Context(), out)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBuildReport(report, out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Snapshot file to write")
	cmd.Flags().BoolVar(&download, "download", false, "Download the default and configured dataset sources")
	cmd.Flags().Var(sources, "source", "Extra source as Subject=URL (repeatable)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func (a *App) fetcher() dataset.Fetcher {
	if a.Fetcher != nil {
		return a.Fetcher
	}
	return dataset.NewDownloader(a.Config.DownloadTimeout(), a.Config.Download.MaxItems, a.Logger)
}
