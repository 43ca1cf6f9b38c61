package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alexanderramin/tutor/internal/contract"
	"github.com/alexanderramin/tutor/internal/db"
	"github.com/alexanderramin/tutor/internal/domain"
	"github.com/alexanderramin/tutor/internal/repository"
	"github.com/google/uuid"
)

type progressService struct {
	progress repository.ProgressRepo
	uow      db.UnitOfWork
	window   time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// NewProgressService returns a ProgressService grouping questions into
// sessions of the given window. A non-positive window uses domain.SessionWindow.
func NewProgressService(progress repository.ProgressRepo, uow db.UnitOfWork, window time.Duration, logger *slog.Logger) ProgressService {
	if window <= 0 {
		window = domain.SessionWindow
	}
	return &progressService{
		progress: progress,
		uow:      uow,
		window:   window,
		logger:   loggerOrDiscard(logger),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *progressService) Record(ctx context.Context, username, subject, question string) (*domain.SubjectProgress, error) {
	if err := validateOwner(username, subject); err != nil {
		return nil, err
	}
	subject = strings.TrimSpace(subject)
	question = strings.TrimSpace(question)
	now := s.now().Truncate(time.Second)

	var saved *domain.SubjectProgress
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProgress := repository.NewSQLiteProgressRepo(tx)

		p, err := txProgress.Get(ctx, username, subject)
		if errors.Is(err, repository.ErrNotFound) {
			p = domain.NewSubjectProgress(username, subject, now)
		} else if err != nil {
			return err
		}

		p.RecordQuestion(now, s.window, question, func() string { return uuid.New().String() })
		if err := txProgress.Save(ctx, p); err != nil {
			return err
		}
		saved = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("recording progress: %w", err)
	}
	return saved, nil
}

func (s *progressService) RecordProgress(ctx context.Context, username, subject, question string) bool {
	p, err := s.Record(ctx, username, subject, question)
	if err != nil {
		s.logger.WarnContext(ctx, "progress not recorded",
			"user", username, "subject", subject, "error", err)
		return false
	}
	s.logger.DebugContext(ctx, "progress recorded",
		"user", username, "subject", p.Subject,
		"questions_asked", p.QuestionsAsked, "mastery_level", p.MasteryLevel)
	return true
}

func (s *progressService) GetProgress(ctx context.Context, username string) map[string]domain.SubjectProgress {
	out := make(map[string]domain.SubjectProgress)
	records, err := s.progress.ListByUser(ctx, username)
	if err != nil {
		s.logger.WarnContext(ctx, "progress unavailable", "user", username, "error", err)
		return out
	}
	for _, p := range records {
		out[p.Subject] = *p
	}
	return out
}

func (s *progressService) Export(ctx context.Context, username string) (contract.ProgressExport, error) {
	records, err := s.progress.ListByUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("exporting progress: %w", err)
	}
	return contract.NewProgressExport(username, records), nil
}

func (s *progressService) Reset(ctx context.Context, username string) (int, error) {
	if strings.TrimSpace(username) == "" {
		return 0, ErrEmptyUsername
	}
	return s.progress.DeleteByUser(ctx, username)
}
