package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tutor/internal/contract"
)

// FormatAnswer renders an answer with its source badge. Verbose adds the
// match score, strategy and request id.
func FormatAnswer(resp contract.AskResponse, verbose bool) string {
	var b strings.Builder
	b.WriteString(resp.Answer)
	b.WriteString("\n")

	meta := []string{KindBadge(resp.Kind)}
	if resp.MatchedSubject != "" {
		meta = append(meta, Dim(resp.MatchedSubject))
	}
	if verbose {
		if resp.Kind == "match" {
			meta = append(meta, Dim(fmt.Sprintf("score %.2f", resp.Score)))
		}
		if resp.Strategy != "" {
			meta = append(meta, Dim("strategy "+resp.Strategy))
		}
		meta = append(meta, TruncID(resp.RequestID))
	}
	b.WriteString(strings.Join(meta, Dim(" · ")))
	b.WriteString("\n")

	for _, w := range resp.Warnings {
		fmt.Fprintf(&b, "%s %s\n", StyleYellow.Render("!"), Dim(w))
	}
	return b.String()
}
