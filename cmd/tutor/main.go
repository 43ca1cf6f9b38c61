package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/tutor/internal/cli"
	"github.com/alexanderramin/tutor/internal/config"
	"github.com/alexanderramin/tutor/internal/corpus"
	"github.com/alexanderramin/tutor/internal/db"
	"github.com/alexanderramin/tutor/internal/logging"
	"github.com/alexanderramin/tutor/internal/repository"
	"github.com/alexanderramin/tutor/internal/service"
	"github.com/alexanderramin/tutor/internal/tutor"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closeLog := logging.Setup(cfg.Log.Level, cfg.Log.File, cfg.Log.Dir, os.Stderr)
	defer closeLog()

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and services
	progressRepo := repository.NewSQLiteProgressRepo(database)
	chatRepo := repository.NewSQLiteChatRepo(database)
	uow := db.NewUnitOfWork(database)

	progressSvc := service.NewProgressService(progressRepo, uow, cfg.SessionWindow(), logger)
	historySvc := service.NewHistoryService(chatRepo)

	// Load the corpus; falls back to the built-in one
	store := corpus.LoadOrDefault(ctx, logger, cfg.CorpusPaths...)
	engine := tutor.New(store,
		tutor.WithThreshold(cfg.SimilarityThreshold),
		tutor.WithLogger(logger),
	)

	app := &cli.App{
		Ask:             service.NewAskService(engine, progressSvc, historySvc, logger, service.NewLogUseCaseObserver(logger)),
		Progress:        progressSvc,
		History:         historySvc,
		Store:           store,
		Config:          cfg,
		Logger:          logger,
		In:              os.Stdin,
		ChatHistoryPath: cli.DefaultChatHistoryPath(),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
