package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/tutor/internal/contract"
	"github.com/alexanderramin/tutor/internal/corpus"
	"github.com/alexanderramin/tutor/internal/dataset"
	"github.com/alexanderramin/tutor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fmtNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestFormatProgress(t *testing.T) {
	records := map[string]domain.SubjectProgress{
		"Physics": {
			Subject:        "Physics",
			QuestionsAsked: 12,
			MasteryLevel:   20,
			LastSession:    fmtNow.Add(-5 * time.Minute),
			Sessions:       []domain.StudySession{{ID: "s1"}, {ID: "s2"}},
		},
		"History": {
			Subject:        "History",
			QuestionsAsked: 250,
			MasteryLevel:   95,
			LastSession:    fmtNow.Add(-2 * time.Hour),
			Sessions:       []domain.StudySession{{ID: "s3"}},
		},
	}

	out := stripANSI(FormatProgress("ada", records, fmtNow))
	assert.Contains(t, out, "PROGRESS FOR ADA")
	assert.Contains(t, out, "Physics")
	assert.Contains(t, out, " 20%")
	assert.Contains(t, out, "5m ago")
	assert.Contains(t, out, "13 more questions to reach 40%")
	assert.Contains(t, out, "History: top mastery reached")
	assert.Less(t, strings.Index(out, "History  "), strings.Index(out, "Physics  "), "subjects sorted")
}

func TestFormatProgress_Empty(t *testing.T) {
	out := stripANSI(FormatProgress("ada", nil, fmtNow))
	assert.Contains(t, out, "No questions recorded yet")
}

func TestFormatSessions_NewestFirst(t *testing.T) {
	p := domain.SubjectProgress{
		Subject: "Physics",
		Sessions: []domain.StudySession{
			{ID: "aaaaaaaa-old", StartedAt: fmtNow.AddDate(0, 0, -1), Questions: []string{"q1", "q2"}, DurationSec: 120},
			{ID: "bbbbbbbb-new", StartedAt: fmtNow.Add(-time.Hour), Questions: []string{"q1", "q2", "q3", "q4", "q5"}, DurationSec: 3900},
		},
	}
	out := stripANSI(FormatSessions(p, fmtNow))
	assert.Contains(t, out, "1h 5m")
	assert.Contains(t, out, "Yesterday")
	assert.Less(t, strings.Index(out, "bbbbbbbb"), strings.Index(out, "aaaaaaaa"))
}

func TestFormatHistory(t *testing.T) {
	entries := []*domain.ChatEntry{
		{Subject: "Physics", Question: "What is physics?", Answer: "Physics is the study of matter.", Kind: "match", CreatedAt: fmtNow.Add(-time.Minute)},
		{Subject: "Mathematics", Question: "2+2", Answer: "4", Kind: "arithmetic", CreatedAt: fmtNow},
	}
	out := stripANSI(FormatHistory(entries, fmtNow))
	assert.Contains(t, out, "● corpus")
	assert.Contains(t, out, "● calculator")
	assert.Contains(t, out, "1m ago")
	assert.Less(t, strings.Index(out, "What is physics?"), strings.Index(out, "2+2"))

	assert.Contains(t, stripANSI(FormatHistory(nil, fmtNow)), "No conversation history.")
}

func TestFormatCorpusStats(t *testing.T) {
	store, err := corpus.NewStore(corpus.Builtin())
	require.NoError(t, err)
	store = store.WithOrigin("built-in")

	out := stripANSI(FormatCorpusStats(store))
	assert.Contains(t, out, "Source: built-in")
	for _, name := range store.SubjectNames() {
		assert.Contains(t, out, name)
	}

	listed := stripANSI(FormatSubjects(store))
	assert.Contains(t, listed, "SUBJECTS")
}

func TestFormatBuildReport(t *testing.T) {
	r := dataset.Report{Subjects: []dataset.SubjectReport{
		{Subject: "Physics", Base: 3, Downloaded: 2, Duplicates: 1},
		{Subject: "Art", Base: 1, FailedSources: []string{"http://x"}},
	}}
	out := stripANSI(FormatBuildReport(r, "corpus.db"))
	assert.Contains(t, out, "6 pairs written to corpus.db")
	assert.Contains(t, out, "DUPLICATES")
}

func TestFormatAnswer(t *testing.T) {
	resp := contract.AskResponse{
		Answer:         "Physics is the study of matter.",
		Kind:           "match",
		MatchedSubject: "Physics",
		Score:          0.87,
		Strategy:       "direct",
		RequestID:      "12345678-abcd",
		Warnings:       []string{"progress not saved"},
	}

	plain := stripANSI(FormatAnswer(resp, false))
	assert.Contains(t, plain, "Physics is the study of matter.\n")
	assert.Contains(t, plain, "● corpus · Physics")
	assert.NotContains(t, plain, "score")
	assert.Contains(t, plain, "! progress not saved")

	verbose := stripANSI(FormatAnswer(resp, true))
	assert.Contains(t, verbose, "score 0.87")
	assert.Contains(t, verbose, "strategy direct")
	assert.Contains(t, verbose, "12345678")
}
