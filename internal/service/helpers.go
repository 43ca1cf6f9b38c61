package service

import (
	"log/slog"
	"strings"
)

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}

func validateOwner(username, subject string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}
	if strings.TrimSpace(subject) == "" {
		return ErrEmptySubject
	}
	return nil
}
