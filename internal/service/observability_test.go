package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_Levels(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(slog.New(slog.NewTextHandler(&buf, nil)))
	ctx := context.Background()

	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "ask", Success: true, Duration: 3 * time.Millisecond,
		Fields: map[string]any{"subject": "Science", "kind": "match"}})
	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "ask", Success: false})
	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "build", Err: errors.New("boom")})

	out := buf.String()
	assert.Contains(t, out, "level=INFO msg=use_case use_case=ask duration_ms=3 success=true kind=match subject=Science")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "error=boom")
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop([]UseCaseObserver{nil}))

	a, b := &recordingObserver{}, &recordingObserver{}
	assert.Same(t, a, useCaseObserverOrNoop([]UseCaseObserver{nil, a}))

	both := useCaseObserverOrNoop([]UseCaseObserver{a, b})
	both.ObserveUseCase(context.Background(), UseCaseEvent{Name: "ask"})
	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 1)
}

func TestNewLogUseCaseObserver_NilLogger(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
