package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/oklog/ulid/v2"

	"github.com/gashapp/gash-backend/internal/db"
	apperr "github.com/gashapp/gash-backend/internal/errors"
	"github.com/gashapp/gash-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendMessage(t *testing.T, repo *repository.MessageRepository, matchID, sender, content string) db.Message {
	t.Helper()
	msg := db.Message{
		ID:       ulid.Make().String(),
		MatchID:  matchID,
		SenderID: sender,
		Kind:     repository.MessageKindText,
		Content:  content,
	}
	require.NoError(t, repo.Append(context.Background(), &msg))
	return msg
}

func TestAppendAssignsSequence(t *testing.T) {
	dbase := setupTestDB(t)
	repo := repository.NewMessageRepository(dbase)

	first := appendMessage(t, repo, "m1", "elena", "hello")
	second := appendMessage(t, repo, "m1", "marcus", "hi")

	assert.NotZero(t, first.Seq)
	assert.Greater(t, second.Seq, first.Seq)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestListMessagesOrderAndPagination(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewMessageRepository(dbase)

	for i := 1; i <= 5; i++ {
		appendMessage(t, repo, "m1", "elena", fmt.Sprintf("msg %d", i))
	}
	// another conversation must not leak in
	appendMessage(t, repo, "m2", "priya", "other room")

	// first page, oldest first
	msgs, token, err := repo.List(ctx, "m1", "", 3)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.NotEmpty(t, token)
	assert.Equal(t, "msg 1", msgs[0].Content)
	assert.Equal(t, "msg 3", msgs[2].Content)

	// second page continues where the first ended
	msgs, token, err = repo.List(ctx, "m1", token, 3)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Empty(t, token)
	assert.Equal(t, "msg 4", msgs[0].Content)
	assert.Equal(t, "msg 5", msgs[1].Content)
}

func TestListMessagesStableAcrossReads(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewMessageRepository(dbase)

	for i := 1; i <= 4; i++ {
		appendMessage(t, repo, "m1", "marcus", fmt.Sprintf("msg %d", i))
	}

	first, _, err := repo.List(ctx, "m1", "", 10)
	require.NoError(t, err)
	second, _, err := repo.List(ctx, "m1", "", 10)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestGetMessageByID(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewMessageRepository(dbase)

	stored := appendMessage(t, repo, "m1", "elena", "hello")

	got, err := repo.GetByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.Content, got.Content)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, apperr.ErrMessageNotFound)
}
