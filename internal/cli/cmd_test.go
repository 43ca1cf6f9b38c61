package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/tutor/internal/config"
	"github.com/alexanderramin/tutor/internal/contract"
	"github.com/alexanderramin/tutor/internal/corpus"
	"github.com/alexanderramin/tutor/internal/repository"
	"github.com/alexanderramin/tutor/internal/service"
	"github.com/alexanderramin/tutor/internal/testutil"
	"github.com/alexanderramin/tutor/internal/tutor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// testApp wires a full App backed by an in-memory DB and the built-in corpus.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	store, err := corpus.NewStore(corpus.Builtin())
	require.NoError(t, err)
	store = store.WithOrigin(corpus.OriginBuiltin)

	tu := tutor.New(store, tutor.WithChooser(tutor.ChooserFunc(func(int) int { return 0 })))
	progress := service.NewProgressService(repository.NewSQLiteProgressRepo(database), uow, time.Hour, nil)
	history := service.NewHistoryService(repository.NewSQLiteChatRepo(database))

	cfg := config.DefaultConfig()
	cfg.User = "tester"

	return &App{
		Ask:      service.NewAskService(tu, progress, history, nil),
		Progress: progress,
		History:  history,
		Store:    store,
		Config:   cfg,
		In:       strings.NewReader(""),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr without styling.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return ansiRE.ReplaceAllString(buf.String(), ""), err
}

func TestAskCmd_AnswersFromCorpus(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "ask", "What is photosynthesis?", "--subject", "science")
	require.NoError(t, err)
	assert.Contains(t, out, "Photosynthesis is the process")
	assert.Contains(t, out, "● corpus")

	records := app.Progress.GetProgress(context.Background(), "tester")
	require.Contains(t, records, "Science", "subject stored with corpus spelling")
	assert.Equal(t, 1, records["Science"].QuestionsAsked)
}

func TestAskCmd_Arithmetic(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "ask", "What", "is", "12", "times", "7?", "-s", "Mathematics", "--user", "ada")
	require.NoError(t, err)
	assert.Contains(t, out, "The answer is 84.")
	assert.Contains(t, out, "● calculator")

	entries, err := app.History.List(context.Background(), "ada", "", 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "What is 12 times 7?", entries[0].Question)
}

func TestAskCmd_NoRecord(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "ask", "What is calculus?", "-s", "Mathematics", "--no-record")
	require.NoError(t, err)

	assert.Empty(t, app.Progress.GetProgress(context.Background(), "tester"))
	entries, err := app.History.List(context.Background(), "tester", "", 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAskCmd_VerboseShowsScore(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "ask", "What is physics?", "-s", "Science", "-v", "--no-record")
	require.NoError(t, err)
	assert.Contains(t, out, "score ")
}

func TestSubjectsCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "subjects")
	require.NoError(t, err)
	for _, name := range []string{"Mathematics", "Science", "History", "Programming"} {
		assert.Contains(t, out, name)
	}
}

func TestProgressCmd_TableAndJSON(t *testing.T) {
	app := testApp(t)
	for i := 0; i < 3; i++ {
		_, err := executeCmd(t, app, "ask", "What is algebra?", "-s", "Mathematics")
		require.NoError(t, err)
	}

	out, err := executeCmd(t, app, "progress")
	require.NoError(t, err)
	assert.Contains(t, out, "PROGRESS FOR TESTER")
	assert.Contains(t, out, "Mathematics")
	assert.Contains(t, out, "7 more questions to reach 20%")

	out, err = executeCmd(t, app, "progress", "--json")
	require.NoError(t, err)
	var export contract.ProgressExport
	require.NoError(t, json.Unmarshal([]byte(out), &export))
	require.Contains(t, export, "tester")
	assert.Equal(t, 3, export["tester"]["Mathematics"].QuestionsAsked)

	out, err = executeCmd(t, app, "progress", "--subject", "mathematics")
	require.NoError(t, err)
	assert.Contains(t, out, "MATHEMATICS SESSIONS")
}

func TestProgressCmd_ResetWithConfirmation(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "ask", "What is algebra?", "-s", "Mathematics")
	require.NoError(t, err)

	app.In = strings.NewReader("n\n")
	out, err := executeCmd(t, app, "progress", "--reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")
	assert.NotEmpty(t, app.Progress.GetProgress(context.Background(), "tester"))

	app.In = strings.NewReader("yes\n")
	out, err = executeCmd(t, app, "progress", "--reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed progress for 1 subjects.")
	assert.Empty(t, app.Progress.GetProgress(context.Background(), "tester"))
}

func TestHistoryCmd_ListFilterAndClear(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "ask", "What is algebra?", "-s", "Mathematics")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "ask", "What is ecology?", "-s", "Science")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "What is algebra?")
	assert.Contains(t, out, "What is ecology?")

	out, err = executeCmd(t, app, "history", "--subject", "science")
	require.NoError(t, err)
	assert.NotContains(t, out, "What is algebra?")
	assert.Contains(t, out, "What is ecology?")

	out, err = executeCmd(t, app, "history", "--clear", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 2 messages.")

	out, err = executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No conversation history.")
}

func TestChatCmd_REPL(t *testing.T) {
	app := testApp(t)
	app.ChatHistoryPath = filepath.Join(t.TempDir(), "chat_history")
	app.In = strings.NewReader("What is 2 + 3?\n/subject science\nWhat is physics?\n/recent\n/quit\nnever asked\n")

	out, err := executeCmd(t, app, "chat", "--subject", "Mathematics")
	require.NoError(t, err)
	assert.Contains(t, out, "CHAT: MATHEMATICS")
	assert.Contains(t, out, "The answer is 5.")
	assert.Contains(t, out, "Switched to Science.")
	assert.Contains(t, out, "Goodbye!")
	assert.NotContains(t, out, "never asked")

	assert.Equal(t,
		[]string{"What is 2 + 3?", "/subject science", "What is physics?", "/recent", "/quit"},
		loadHistoryFromPath(app.ChatHistoryPath))
	assert.Contains(t, out, "  /subject science\n", "/recent lists earlier inputs")

	records := app.Progress.GetProgress(context.Background(), "tester")
	assert.Equal(t, 1, records["Mathematics"].QuestionsAsked)
	assert.Equal(t, 1, records["Science"].QuestionsAsked)
}

func TestChatCmd_EndsOnEOF(t *testing.T) {
	app := testApp(t)
	app.In = strings.NewReader("What is calculus?")

	out, err := executeCmd(t, app, "chat", "-s", "Mathematics", "--no-record")
	require.NoError(t, err)
	assert.Contains(t, out, "Calculus is a branch")
	assert.Empty(t, app.Progress.GetProgress(context.Background(), "tester"))
}

func TestCorpusStatsCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "corpus", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Source: "+corpus.OriginBuiltin)
	assert.Contains(t, out, "Programming")
}

type staticFetcher map[string][]corpus.QAPair

func (f staticFetcher) Fetch(_ context.Context, url string) ([]corpus.QAPair, error) {
	return f[url], nil
}

func TestCorpusBuildCmd_WithSource(t *testing.T) {
	app := testApp(t)
	app.Fetcher = staticFetcher{
		"http://example.test/astro.json": {
			{Question: "What is a light year exactly?", Answer: "The distance light travels in one Julian year."},
		},
	}
	path := filepath.Join(t.TempDir(), "corpus.db")

	out, err := executeCmd(t, app, "corpus", "build", "--out", path, "--source", "Astronomy=http://example.test/astro.json")
	require.NoError(t, err)
	assert.Contains(t, out, "pairs written to "+path)
	assert.Contains(t, out, "Astronomy")

	store, err := corpus.Load(path)
	require.NoError(t, err)
	s, ok := store.Subject("astronomy")
	require.True(t, ok)
	assert.Len(t, s.Pairs, 1)
}

func TestConfigCmd_ShowAndInit(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("TUTOR_CONFIG", path)

	out, err := executeCmd(t, app, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "tester")
	assert.Contains(t, out, "similarity_threshold")

	out, err = executeCmd(t, app, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)
	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = executeCmd(t, app, "config", "init")
	assert.ErrorContains(t, err, "already exists")

	_, err = executeCmd(t, app, "config", "init", "--force")
	assert.NoError(t, err)
}

// ============ NEGATIVE TEST CASES ============

func TestAskCmd_RequiresSubject(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "ask", "What is calculus?")
	assert.ErrorContains(t, err, `required flag(s) "subject" not set`)
}

func TestAskCmd_RequiresQuestion(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "ask", "-s", "Mathematics")
	assert.Error(t, err)
}

func TestChatCmd_NonInteractiveWithoutSubject(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "chat")
	assert.ErrorIs(t, err, errSubjectRequired)
}

func TestProgressCmd_UnknownSubject(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "progress", "--subject", "Astronomy")
	assert.ErrorContains(t, err, "no progress for tester in Astronomy")
}

func TestProgressCmd_JSONAndResetExclusive(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "progress", "--json", "--reset")
	assert.Error(t, err)
}

func TestCorpusBuildCmd_BadSourceFlag(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "corpus", "build", "--out", filepath.Join(t.TempDir(), "c.db"), "--source", "no-equals-sign")
	assert.ErrorContains(t, err, "expected Subject=URL")
}

func TestCorpusBuildCmd_RequiresOut(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "corpus", "build")
	assert.ErrorContains(t, err, `required flag(s) "out" not set`)
}
