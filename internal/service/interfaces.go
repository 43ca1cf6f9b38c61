package service

import (
	"context"

	"github.com/alexanderramin/tutor/internal/contract"
	"github.com/alexanderramin/tutor/internal/domain"
	"github.com/alexanderramin/tutor/internal/tutor"
)

// Responder produces an answer for a question in a subject.
// *tutor.Tutor implements it.
type Responder interface {
	Respond(question, subject string) tutor.Response
}

type ProgressService interface {
	// Record adds one question to the user's progress in subject.
	Record(ctx context.Context, username, subject, question string) (*domain.SubjectProgress, error)
	// RecordProgress is Record with failures logged instead of returned.
	RecordProgress(ctx context.Context, username, subject, question string) bool
	// GetProgress returns the user's records keyed by subject. Failures
	// yield an empty map.
	GetProgress(ctx context.Context, username string) map[string]domain.SubjectProgress
	Export(ctx context.Context, username string) (contract.ProgressExport, error)
	Reset(ctx context.Context, username string) (int, error)
}

type HistoryService interface {
	Save(ctx context.Context, e *domain.ChatEntry) error
	List(ctx context.Context, username, subject string, limit int) ([]*domain.ChatEntry, error)
	Clear(ctx context.Context, username string) (int, error)
}

type AskService interface {
	Ask(ctx context.Context, req contract.AskRequest) contract.AskResponse
}
