package service

import (
	"context"
	"time"

	"github.com/alexanderramin/tutor/internal/domain"
	"github.com/alexanderramin/tutor/internal/repository"
	"github.com/google/uuid"
)

type historyService struct {
	chats repository.ChatRepo
}

func NewHistoryService(chats repository.ChatRepo) HistoryService {
	return &historyService{chats: chats}
}

func (s *historyService) Save(ctx context.Context, e *domain.ChatEntry) error {
	if err := validateOwner(e.Username, e.Subject); err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return s.chats.Create(ctx, e)
}

func (s *historyService) List(ctx context.Context, username, subject string, limit int) ([]*domain.ChatEntry, error) {
	return s.chats.List(ctx, username, subject, limit)
}

func (s *historyService) Clear(ctx context.Context, username string) (int, error) {
	if username == "" {
		return 0, ErrEmptyUsername
	}
	return s.chats.DeleteByUser(ctx, username)
}
