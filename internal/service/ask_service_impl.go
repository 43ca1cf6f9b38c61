package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/alexanderramin/tutor/internal/contract"
	"github.com/alexanderramin/tutor/internal/domain"
)

type askService struct {
	tutor    Responder
	progress ProgressService
	history  HistoryService
	logger   *slog.Logger
	observer UseCaseObserver
}

// NewAskService answers through tutor and records the exchange. progress and
// history may be nil to skip recording.
func NewAskService(
	tutor Responder,
	progress ProgressService,
	history HistoryService,
	logger *slog.Logger,
	observers ...UseCaseObserver,
) AskService {
	return &askService{
		tutor:    tutor,
		progress: progress,
		history:  history,
		logger:   loggerOrDiscard(logger),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *askService) Ask(ctx context.Context, req contract.AskRequest) (resp contract.AskResponse) {
	startedAt := time.Now()
	fields := map[string]any{
		"subject": req.Subject,
		"record":  req.Record,
	}
	defer func() {
		fields["kind"] = resp.Kind
		fields["strategy"] = resp.Strategy
		fields["request_id"] = resp.RequestID
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "ask",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   len(resp.Warnings) == 0,
			Fields:    fields,
		})
	}()

	user := strings.TrimSpace(req.User)
	if user == "" {
		user = contract.DefaultUser
	}

	r := s.tutor.Respond(req.Question, req.Subject)
	resp = contract.AskResponse{
		Answer:         r.Text,
		RequestID:      r.RequestID,
		Kind:           string(r.Kind),
		Strategy:       r.Strategy,
		MatchedSubject: r.Subject,
		Score:          r.Score,
	}

	if !req.Record || strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Subject) == "" {
		return resp
	}

	if s.history != nil {
		entry := &domain.ChatEntry{
			Username: user,
			Subject:  req.Subject,
			Question: req.Question,
			Answer:   r.Text,
			Kind:     string(r.Kind),
		}
		if err := s.history.Save(ctx, entry); err != nil {
			s.logger.WarnContext(ctx, "history not saved",
				"request_id", r.RequestID, "user", user, "error", err)
			resp.Warnings = append(resp.Warnings, "history not saved")
		}
	}

	if s.progress != nil {
		resp.Recorded = s.progress.RecordProgress(ctx, user, req.Subject, req.Question)
		if !resp.Recorded {
			resp.Warnings = append(resp.Warnings, "progress not recorded")
		}
	}
	return resp
}
