package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/tutor/internal/domain"
)

const (
	historyQuestionWidth = 40
	historyAnswerWidth   = 60
)

// FormatHistory renders chat entries oldest first.
func FormatHistory(entries []*domain.ChatEntry, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("History"))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(Dim("No conversation history."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			Dim(HumanTimestamp(e.CreatedAt, now)),
			e.Subject,
			KindBadge(e.Kind),
			Truncate(e.Question, historyQuestionWidth),
			Truncate(e.Answer, historyAnswerWidth),
		})
	}
	b.WriteString(RenderTable([]string{"WHEN", "SUBJECT", "SOURCE", "QUESTION", "ANSWER"}, rows))
	return b.String()
}
