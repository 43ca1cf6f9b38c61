package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/tutor/internal/domain"
)

const masteryBarWidth = 20

// FormatProgress renders a user's per-subject progress as a table followed by
// the next milestone for each subject.
func FormatProgress(username string, records map[string]domain.SubjectProgress, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("Progress for " + username))
	b.WriteString("\n\n")

	if len(records) == 0 {
		b.WriteString(Dim("No questions recorded yet. Try: tutor ask \"What is physics?\" --subject Physics"))
		b.WriteString("\n")
		return b.String()
	}

	subjects := make([]string, 0, len(records))
	for s := range records {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)

	rows := make([][]string, 0, len(subjects))
	for _, s := range subjects {
		p := records[s]
		rows = append(rows, []string{
			Bold(p.Subject),
			fmt.Sprintf("%d", p.QuestionsAsked),
			fmt.Sprintf("%d", len(p.Sessions)),
			RenderProgress(p.MasteryLevel, masteryBarWidth),
			Dim(HumanTimestamp(p.LastSession, now)),
		})
	}
	b.WriteString(RenderTable([]string{"SUBJECT", "QUESTIONS", "SESSIONS", "MASTERY", "LAST STUDIED"}, rows))

	b.WriteString("\n")
	for _, s := range subjects {
		p := records[s]
		if next, ok := p.NextMilestone(); ok {
			fmt.Fprintf(&b, "%s %s\n", StyleFg.Render(p.Subject+":"),
				Dim(fmt.Sprintf("%d more questions to reach %d%%", next.Questions-p.QuestionsAsked, next.Level)))
		} else {
			fmt.Fprintf(&b, "%s %s\n", StyleFg.Render(p.Subject+":"), StyleGreen.Render("top mastery reached"))
		}
	}
	return b.String()
}

// FormatSessions lists the study sessions of one subject, newest first.
func FormatSessions(p domain.SubjectProgress, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header(p.Subject + " sessions"))
	b.WriteString("\n\n")

	if len(p.Sessions) == 0 {
		b.WriteString(Dim("No sessions yet."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(p.Sessions))
	for i := len(p.Sessions) - 1; i >= 0; i-- {
		s := p.Sessions[i]
		rows = append(rows, []string{
			TruncID(s.ID),
			HumanDate(s.StartedAt, now) + " " + s.StartedAt.Format("15:04"),
			fmt.Sprintf("%d", s.QuestionCount()),
			FormatDuration(s.DurationSec),
		})
	}
	b.WriteString(RenderTable([]string{"ID", "STARTED", "QUESTIONS", "DURATION"}, rows))
	return b.String()
}
