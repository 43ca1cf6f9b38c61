package testutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/tutor/internal/domain"
	"github.com/google/uuid"
)

// Progress options
type ProgressOption func(*domain.SubjectProgress)

// WithQuestions sets the running question count and its mastery level.
func WithQuestions(n int) ProgressOption {
	return func(p *domain.SubjectProgress) {
		p.QuestionsAsked = n
		p.MasteryLevel = domain.MasteryFor(n)
	}
}

// WithSession appends a closed session that started at start and saw questions.
func WithSession(start time.Time, duration time.Duration, questions ...string) ProgressOption {
	return func(p *domain.SubjectProgress) {
		last := start.Add(duration)
		p.Sessions = append(p.Sessions, domain.StudySession{
			ID:           uuid.New().String(),
			StartedAt:    start,
			LastActivity: last,
			Questions:    questions,
			DurationSec:  int(duration.Seconds()),
		})
		if last.After(p.LastSession) {
			p.LastSession = last
		}
	}
}

// SampleQuestions returns n distinct question texts.
func SampleQuestions(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Sample question %d?", i+1)
	}
	return out
}

func NewTestProgress(username, subject string, opts ...ProgressOption) *domain.SubjectProgress {
	now := time.Now().UTC().Truncate(time.Second)
	p := domain.NewSubjectProgress(username, subject, now)
	for _, o := range opts {
		o(p)
	}
	return p
}

// Chat options
type ChatOption func(*domain.ChatEntry)

func WithCreatedAt(t time.Time) ChatOption {
	return func(c *domain.ChatEntry) {
		c.CreatedAt = t
	}
}

func WithKind(kind string) ChatOption {
	return func(c *domain.ChatEntry) {
		c.Kind = kind
	}
}

func NewTestChatEntry(username, subject, question, answer string, opts ...ChatOption) *domain.ChatEntry {
	c := &domain.ChatEntry{
		ID:        uuid.New().String(),
		Username:  username,
		Subject:   subject,
		Question:  question,
		Answer:    answer,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}
