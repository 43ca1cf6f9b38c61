package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tutor/internal/db"
	"github.com/alexanderramin/tutor/internal/domain"
)

// SQLiteProgressRepo implements ProgressRepo using a SQLite database.
type SQLiteProgressRepo struct {
	db db.DBTX
}

// NewSQLiteProgressRepo creates a new SQLiteProgressRepo.
func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn}
}

const progressColumns = `username, subject, questions_asked, mastery_level, last_session, created_at, updated_at`

func (r *SQLiteProgressRepo) Get(ctx context.Context, username, subject string) (*domain.SubjectProgress, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+progressColumns+` FROM subject_progress WHERE username = ? AND subject = ?`,
		username, subject)
	p, err := scanProgress(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("subject progress: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning subject progress: %w", err)
	}
	if err := r.populateSessions(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLiteProgressRepo) ListByUser(ctx context.Context, username string) ([]*domain.SubjectProgress, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+progressColumns+` FROM subject_progress WHERE username = ? ORDER BY subject`,
		username)
	if err != nil {
		return nil, fmt.Errorf("listing subject progress: %w", err)
	}
	defer rows.Close()

	var out []*domain.SubjectProgress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning subject progress: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for _, p := range out {
		if err := r.populateSessions(ctx, p); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *SQLiteProgressRepo) Save(ctx context.Context, p *domain.SubjectProgress) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}

	_, err := r.db.ExecContext(ctx, `INSERT INTO subject_progress (`+progressColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(username, subject) DO UPDATE SET
			questions_asked = excluded.questions_asked,
			mastery_level = excluded.mastery_level,
			last_session = excluded.last_session,
			updated_at = excluded.updated_at`,
		p.Username,
		p.Subject,
		p.QuestionsAsked,
		p.MasteryLevel,
		nullableTimeToString(p.LastSession, time.RFC3339),
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting subject progress: %w", err)
	}

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM progress_sessions WHERE username = ? AND subject = ?`,
		p.Username, p.Subject); err != nil {
		return fmt.Errorf("clearing progress sessions: %w", err)
	}

	for _, s := range p.Sessions {
		_, err := r.db.ExecContext(ctx, `INSERT INTO progress_sessions
			(id, username, subject, started_at, last_activity, duration_sec)
			VALUES (?, ?, ?, ?, ?, ?)`,
			s.ID,
			p.Username,
			p.Subject,
			s.StartedAt.UTC().Format(time.RFC3339),
			s.LastActivity.UTC().Format(time.RFC3339),
			s.DurationSec,
		)
		if err != nil {
			return fmt.Errorf("inserting progress session: %w", err)
		}
		for i, q := range s.Questions {
			if _, err := r.db.ExecContext(ctx, `INSERT INTO progress_session_questions
				(session_id, position, question) VALUES (?, ?, ?)`,
				s.ID, i, q); err != nil {
				return fmt.Errorf("inserting session question: %w", err)
			}
		}
	}
	return nil
}

func (r *SQLiteProgressRepo) DeleteByUser(ctx context.Context, username string) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subject_progress WHERE username = ?`, username)
	if err != nil {
		return 0, fmt.Errorf("deleting subject progress: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted progress: %w", err)
	}
	return int(n), nil
}

func (r *SQLiteProgressRepo) populateSessions(ctx context.Context, p *domain.SubjectProgress) error {
	rows, err := r.db.QueryContext(ctx, `SELECT id, started_at, last_activity, duration_sec
		FROM progress_sessions WHERE username = ? AND subject = ?
		ORDER BY started_at, rowid`,
		p.Username, p.Subject)
	if err != nil {
		return fmt.Errorf("listing progress sessions: %w", err)
	}
	defer rows.Close()

	p.Sessions = nil
	for rows.Next() {
		var s domain.StudySession
		var started, last string
		if err := rows.Scan(&s.ID, &started, &last, &s.DurationSec); err != nil {
			return fmt.Errorf("scanning progress session: %w", err)
		}
		s.StartedAt = parseTime(started, time.RFC3339)
		s.LastActivity = parseTime(last, time.RFC3339)
		p.Sessions = append(p.Sessions, s)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	rows.Close()

	return r.populateQuestions(ctx, p)
}

// populateQuestions fills each session's questions in asking order.
func (r *SQLiteProgressRepo) populateQuestions(ctx context.Context, p *domain.SubjectProgress) error {
	if len(p.Sessions) == 0 {
		return nil
	}
	rows, err := r.db.QueryContext(ctx, `SELECT q.session_id, q.question
		FROM progress_session_questions q
		JOIN progress_sessions s ON s.id = q.session_id
		WHERE s.username = ? AND s.subject = ?
		ORDER BY q.session_id, q.position`,
		p.Username, p.Subject)
	if err != nil {
		return fmt.Errorf("listing session questions: %w", err)
	}
	defer rows.Close()

	index := make(map[string]int, len(p.Sessions))
	for i, s := range p.Sessions {
		index[s.ID] = i
	}
	for rows.Next() {
		var id, q string
		if err := rows.Scan(&id, &q); err != nil {
			return fmt.Errorf("scanning session question: %w", err)
		}
		if i, ok := index[id]; ok {
			p.Sessions[i].Questions = append(p.Sessions[i].Questions, q)
		}
	}
	return rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProgress(s scanner) (*domain.SubjectProgress, error) {
	var p domain.SubjectProgress
	var lastSession sql.NullString
	var createdAt, updatedAt string
	if err := s.Scan(
		&p.Username,
		&p.Subject,
		&p.QuestionsAsked,
		&p.MasteryLevel,
		&lastSession,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}
	p.LastSession = parseNullableTime(lastSession, time.RFC3339)
	p.CreatedAt = parseTime(createdAt, time.RFC3339)
	p.UpdatedAt = parseTime(updatedAt, time.RFC3339)
	return &p, nil
}
