package repository

import (
	"context"

	"github.com/alexanderramin/tutor/internal/domain"
)

// ProgressRepo persists per-subject study progress and its sessions.
type ProgressRepo interface {
	Get(ctx context.Context, username, subject string) (*domain.SubjectProgress, error)
	ListByUser(ctx context.Context, username string) ([]*domain.SubjectProgress, error)
	// Save upserts the progress row and replaces its sessions.
	Save(ctx context.Context, p *domain.SubjectProgress) error
	DeleteByUser(ctx context.Context, username string) (int, error)
}

// ChatRepo persists question and answer history.
type ChatRepo interface {
	Create(ctx context.Context, e *domain.ChatEntry) error
	// List returns the latest limit entries in chronological order. An empty
	// subject lists all subjects; limit <= 0 lists everything.
	List(ctx context.Context, username, subject string, limit int) ([]*domain.ChatEntry, error)
	DeleteByUser(ctx context.Context, username string) (int, error)
}
