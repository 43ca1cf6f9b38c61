package repository

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/tutor/internal/db"
	"github.com/alexanderramin/tutor/internal/domain"
)

// SQLiteChatRepo implements ChatRepo using a SQLite database.
type SQLiteChatRepo struct {
	db db.DBTX
}

// NewSQLiteChatRepo creates a new SQLiteChatRepo.
func NewSQLiteChatRepo(conn db.DBTX) *SQLiteChatRepo {
	return &SQLiteChatRepo{db: conn}
}

func (r *SQLiteChatRepo) Create(ctx context.Context, e *domain.ChatEntry) error {
	createdAt := nowUTC()
	if !e.CreatedAt.IsZero() {
		createdAt = e.CreatedAt.UTC().Format(time.RFC3339)
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO chat_messages
		(id, username, subject, question, answer, kind, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Username, e.Subject, e.Question, e.Answer, e.Kind, createdAt)
	if err != nil {
		return fmt.Errorf("inserting chat message: %w", err)
	}
	return nil
}

func (r *SQLiteChatRepo) List(ctx context.Context, username, subject string, limit int) ([]*domain.ChatEntry, error) {
	query := `SELECT id, username, subject, question, answer, kind, created_at
		FROM chat_messages WHERE username = ?`
	args := []any{username}
	if subject != "" {
		query += ` AND subject = ? COLLATE NOCASE`
		args = append(args, subject)
	}
	query += ` ORDER BY created_at DESC, rowid DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing chat messages: %w", err)
	}
	defer rows.Close()

	var out []*domain.ChatEntry
	for rows.Next() {
		var e domain.ChatEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Username, &e.Subject, &e.Question, &e.Answer, &e.Kind, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning chat message: %w", err)
		}
		e.CreatedAt = parseTime(createdAt, time.RFC3339)
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	slices.Reverse(out)
	return out, nil
}

func (r *SQLiteChatRepo) DeleteByUser(ctx context.Context, username string) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM chat_messages WHERE username = ?`, username)
	if err != nil {
		return 0, fmt.Errorf("deleting chat messages: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted chat messages: %w", err)
	}
	return int(n), nil
}
