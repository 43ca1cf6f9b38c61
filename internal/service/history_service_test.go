package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/tutor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryService_SaveAssignsIDAndTime(t *testing.T) {
	_, _, chats, _ := setupRepos(t)
	svc := NewHistoryService(chats)
	ctx := context.Background()

	e := &domain.ChatEntry{Username: "alice", Subject: "Science", Question: "q", Answer: "a"}
	require.NoError(t, svc.Save(ctx, e))
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.CreatedAt.IsZero())

	list, err := svc.List(ctx, "alice", "Science", 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, e.ID, list[0].ID)
}

func TestHistoryService_Clear(t *testing.T) {
	_, _, chats, _ := setupRepos(t)
	svc := NewHistoryService(chats)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, &domain.ChatEntry{Username: "alice", Subject: "Science", Question: "q", Answer: "a"}))
	n, err := svc.Clear(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// ============ NEGATIVE TEST CASES ============

func TestHistoryService_SaveRequiresOwner(t *testing.T) {
	_, _, chats, _ := setupRepos(t)
	svc := NewHistoryService(chats)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Save(ctx, &domain.ChatEntry{Subject: "Science"}), ErrEmptyUsername)
	assert.ErrorIs(t, svc.Save(ctx, &domain.ChatEntry{Username: "alice"}), ErrEmptySubject)

	_, err := svc.Clear(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyUsername)
}
