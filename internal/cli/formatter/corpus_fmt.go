package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tutor/internal/corpus"
	"github.com/alexanderramin/tutor/internal/dataset"
)

// FormatSubjects lists the subjects a store can answer for.
func FormatSubjects(store *corpus.Store) string {
	var b strings.Builder
	b.WriteString(Header("Subjects"))
	b.WriteString("\n\n")
	for _, s := range store.Subjects() {
		fmt.Fprintf(&b, "  %s %s\n", Bold(s.Name), Dim(fmt.Sprintf("(%d questions)", len(s.Pairs))))
	}
	return b.String()
}

// FormatCorpusStats summarises a loaded store.
func FormatCorpusStats(store *corpus.Store) string {
	rows := make([][]string, 0, len(store.Subjects()))
	for _, s := range store.Subjects() {
		rows = append(rows, []string{
			s.Name,
			fmt.Sprintf("%d", len(s.Pairs)),
			fmt.Sprintf("%d", len(s.Rules)),
		})
	}

	var b strings.Builder
	b.WriteString(Header("Corpus"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", Dim("Source:"), store.Origin())
	fmt.Fprintf(&b, "%s %d\n\n", Dim("Pairs: "), store.Len())
	b.WriteString(RenderTable([]string{"SUBJECT", "PAIRS", "RULES"}, rows))
	return b.String()
}

// FormatBuildReport renders what a dataset build produced.
func FormatBuildReport(r dataset.Report, out string) string {
	rows := make([][]string, 0, len(r.Subjects))
	for _, s := range r.Subjects {
		failed := Dim("--")
		if len(s.FailedSources) > 0 {
			failed = StyleRed.Render(fmt.Sprintf("%d", len(s.FailedSources)))
		}
		rows = append(rows, []string{
			s.Subject,
			fmt.Sprintf("%d", s.Base),
			fmt.Sprintf("%d", s.Downloaded),
			fmt.Sprintf("%d", s.Duplicates),
			failed,
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"SUBJECT", "BASE", "DOWNLOADED", "DUPLICATES", "FAILED"}, rows))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d pairs written to %s\n", StyleGreen.Render("✔"), r.Pairs(), out)
	return b.String()
}
