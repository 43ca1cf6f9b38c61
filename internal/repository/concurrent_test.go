package repository

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/tutor/internal/db"
	"github.com/alexanderramin/tutor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB creates a file-backed SQLite database in a temp directory.
// Unlike :memory:, a file-backed DB shares state across all connections in the
// pool, which is required to test real concurrent access with WAL mode.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "concurrent_test.db"))
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// TestConcurrentAccess_HistoryReadDuringWrite lists chat history from several
// readers while a single chat session keeps appending.
func TestConcurrentAccess_HistoryReadDuringWrite(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()
	chats := NewSQLiteChatRepo(database)
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			e := testutil.NewTestChatEntry("alice", "Science", fmt.Sprintf("q%d", i), "a",
				testutil.WithCreatedAt(base.Add(time.Duration(i)*time.Second)))
			if err := chats.Create(ctx, e); err != nil {
				t.Errorf("writer: create chat %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				entries, err := chats.List(ctx, "alice", "", 0)
				if err != nil {
					t.Errorf("reader %d: list history: %v", reader, err)
					return
				}
				for _, e := range entries {
					if e.ID == "" || e.Question == "" {
						t.Errorf("reader %d: got partially written entry", reader)
					}
				}
			}
		}(r)
	}

	wg.Wait()

	entries, err := chats.List(ctx, "alice", "", 0)
	require.NoError(t, err)
	assert.Len(t, entries, 20)
}

// TestConcurrentAccess_ProgressReaders checks that many readers see the same
// consistent progress after sequential writes.
func TestConcurrentAccess_ProgressReaders(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()
	progress := NewSQLiteProgressRepo(database)
	start := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	subjects := []string{"Mathematics", "Science", "History", "Programming"}
	for i, s := range subjects {
		p := testutil.NewTestProgress("bob", s,
			testutil.WithQuestions(10*(i+1)),
			testutil.WithSession(start, 20*time.Minute, testutil.SampleQuestions(10*(i+1))...))
		require.NoError(t, progress.Save(ctx, p))
	}

	var wg sync.WaitGroup
	for r := 0; r < 20; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			list, err := progress.ListByUser(ctx, "bob")
			if err != nil {
				t.Errorf("reader %d: list progress: %v", reader, err)
				return
			}
			if len(list) != len(subjects) {
				t.Errorf("reader %d: expected %d subjects, got %d", reader, len(subjects), len(list))
			}
			for _, p := range list {
				if len(p.Sessions) != 1 {
					t.Errorf("reader %d: %s has %d sessions", reader, p.Subject, len(p.Sessions))
				} else if got := p.Sessions[0].QuestionCount(); got != p.QuestionsAsked {
					t.Errorf("reader %d: %s session has %d questions, want %d", reader, p.Subject, got, p.QuestionsAsked)
				}
			}
		}(r)
	}
	wg.Wait()
}
