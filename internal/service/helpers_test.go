package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/tutor/internal/corpus"
	"github.com/alexanderramin/tutor/internal/db"
	"github.com/alexanderramin/tutor/internal/repository"
	"github.com/alexanderramin/tutor/internal/testutil"
	"github.com/alexanderramin/tutor/internal/tutor"
	"github.com/stretchr/testify/require"
)

func setupRepos(t *testing.T) (*sql.DB, repository.ProgressRepo, repository.ChatRepo, db.UnitOfWork) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return database,
		repository.NewSQLiteProgressRepo(database),
		repository.NewSQLiteChatRepo(database),
		testutil.NewTestUoW(database)
}

// clock is a settable time source.
type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newProgressServiceAt(t *testing.T, progress repository.ProgressRepo, uow db.UnitOfWork, start time.Time) (*progressService, *clock) {
	t.Helper()
	c := &clock{t: start}
	svc := NewProgressService(progress, uow, 0, nil).(*progressService)
	svc.now = c.now
	return svc, c
}

func newBuiltinTutor(t *testing.T) *tutor.Tutor {
	t.Helper()
	store, err := corpus.NewStore(corpus.Builtin())
	require.NoError(t, err)
	return tutor.New(store, tutor.WithChooser(tutor.ChooserFunc(func(int) int { return 0 })))
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}
