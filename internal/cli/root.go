package cli

import (
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/tutor/internal/config"
	"github.com/alexanderramin/tutor/internal/corpus"
	"github.com/alexanderramin/tutor/internal/dataset"
	"github.com/alexanderramin/tutor/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Ask      service.AskService
	Progress service.ProgressService
	History  service.HistoryService
	Store    *corpus.Store
	Config   config.Config
	Logger   *slog.Logger

	// Fetcher downloads dataset sources for corpus builds. Nil uses an
	// HTTP downloader built from Config.
	Fetcher dataset.Fetcher

	// In is read by the chat REPL and confirmation prompts.
	In io.Reader
	// IsInteractive reports whether In is a terminal.
	IsInteractive func() bool
	// ChatHistoryPath stores chat input lines. Empty disables it.
	ChatHistoryPath string

	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// user resolves the --user flag against the configured user.
func (a *App) user(flag string) string {
	if flag != "" {
		return flag
	}
	return a.Config.User
}

// NewRootCmd creates the top-level "tutor" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tutor",
		Short:         "Subject tutor that answers questions from a local corpus",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAskCmd(app),
		newChatCmd(app),
		newSubjectsCmd(app),
		newProgressCmd(app),
		newHistoryCmd(app),
		newCorpusCmd(app),
		newConfigCmd(app),
	)

	return root
}
