package domain

import "time"

// SessionWindow is how long after the last question a study session stays
// open. A question after the window starts a new session.
const SessionWindow = time.Hour

// MasteryThreshold maps a question count to the mastery level it unlocks.
type MasteryThreshold struct {
	Questions int
	Level     int
}

// MasteryThresholds are ordered by ascending question count.
var MasteryThresholds = []MasteryThreshold{
	{Questions: 10, Level: 20},
	{Questions: 25, Level: 40},
	{Questions: 50, Level: 60},
	{Questions: 100, Level: 80},
	{Questions: 200, Level: 95},
}

// MasteryFor returns the mastery level earned by questionsAsked.
func MasteryFor(questionsAsked int) int {
	level := 0
	for _, th := range MasteryThresholds {
		if questionsAsked >= th.Questions {
			level = th.Level
		}
	}
	return level
}

// StudySession groups questions asked close together in time. Questions
// holds the question texts in the order they were asked.
type StudySession struct {
	ID           string
	StartedAt    time.Time
	LastActivity time.Time
	Questions    []string
	DurationSec  int
}

// QuestionCount returns how many questions the session saw.
func (s StudySession) QuestionCount() int { return len(s.Questions) }

// SubjectProgress is a user's running record for one subject.
type SubjectProgress struct {
	Username       string
	Subject        string
	Sessions       []StudySession
	LastSession    time.Time
	QuestionsAsked int
	MasteryLevel   int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewSubjectProgress returns an empty record.
func NewSubjectProgress(username, subject string, now time.Time) *SubjectProgress {
	return &SubjectProgress{
		Username:  username,
		Subject:   subject,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RecordQuestion adds question, asked at now, to the record. It joins the
// latest session when that session saw activity less than window ago,
// otherwise it opens a new session with newID. Mastery never decreases.
func (p *SubjectProgress) RecordQuestion(now time.Time, window time.Duration, question string, newID func() string) {
	if window <= 0 {
		window = SessionWindow
	}

	n := len(p.Sessions)
	if n > 0 && !p.LastSession.IsZero() && now.Sub(p.LastSession) < window {
		s := &p.Sessions[n-1]
		s.Questions = append(s.Questions, question)
		s.LastActivity = now
		if d := int(now.Sub(s.StartedAt).Seconds()); d > s.DurationSec {
			s.DurationSec = d
		}
	} else {
		p.Sessions = append(p.Sessions, StudySession{
			ID:           newID(),
			StartedAt:    now,
			LastActivity: now,
			Questions:    []string{question},
		})
	}

	p.LastSession = now
	p.QuestionsAsked++
	if level := MasteryFor(p.QuestionsAsked); level > p.MasteryLevel {
		p.MasteryLevel = level
	}
	p.UpdatedAt = now
}

// CurrentSession returns the latest session, if any.
func (p *SubjectProgress) CurrentSession() (StudySession, bool) {
	if len(p.Sessions) == 0 {
		return StudySession{}, false
	}
	return p.Sessions[len(p.Sessions)-1], true
}

// NextMilestone returns the next threshold not yet reached.
func (p *SubjectProgress) NextMilestone() (MasteryThreshold, bool) {
	for _, th := range MasteryThresholds {
		if p.QuestionsAsked < th.Questions {
			return th, true
		}
	}
	return MasteryThreshold{}, false
}
