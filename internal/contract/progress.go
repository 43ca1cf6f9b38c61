package contract

import (
	"time"

	"github.com/alexanderramin/tutor/internal/domain"
)

// SessionExport is one study session in the exported progress document.
// Questions lists the texts asked in order and is never null.
type SessionExport struct {
	Timestamp time.Time `json:"timestamp"`
	Questions []string  `json:"questions"`
	Duration  int       `json:"duration"`
}

// SubjectExport is one subject's record in the exported progress document.
type SubjectExport struct {
	Sessions       []SessionExport `json:"sessions"`
	LastSession    *time.Time      `json:"last_session"`
	QuestionsAsked int             `json:"questions_asked"`
	MasteryLevel   int             `json:"mastery_level"`
}

// ProgressExport maps username to subject to record.
type ProgressExport map[string]map[string]SubjectExport

// NewProgressExport builds the export document for one user.
func NewProgressExport(username string, records []*domain.SubjectProgress) ProgressExport {
	subjects := make(map[string]SubjectExport, len(records))
	for _, p := range records {
		sessions := make([]SessionExport, 0, len(p.Sessions))
		for _, s := range p.Sessions {
			sessions = append(sessions, SessionExport{
				Timestamp: s.StartedAt,
				Questions: append([]string{}, s.Questions...),
				Duration:  s.DurationSec,
			})
		}
		var last *time.Time
		if !p.LastSession.IsZero() {
			t := p.LastSession
			last = &t
		}
		subjects[p.Subject] = SubjectExport{
			Sessions:       sessions,
			LastSession:    last,
			QuestionsAsked: p.QuestionsAsked,
			MasteryLevel:   p.MasteryLevel,
		}
	}
	return ProgressExport{username: subjects}
}
