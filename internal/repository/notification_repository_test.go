package repository_test

import (
	"context"
	"testing"

	"github.com/gashapp/gash-backend/internal/db"
	"github.com/gashapp/gash-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateMatchNotificationsDeduplicates(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewNotificationRepository(dbase)

	match := db.Match{ID: "m1", UserA: "elena", UserB: "marcus"}
	require.NoError(t, repo.CreateMatchNotifications(ctx, match))

	// replayed event writes nothing extra
	require.NoError(t, repo.CreateMatchNotifications(ctx, match))

	var count int64
	require.NoError(t, dbase.Model(&db.Notification{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	notes, err := repo.ListForUser(ctx, "elena")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, repository.NotificationTypeNewMatch, notes[0].Type)
	assert.Equal(t, "You matched with marcus", notes[0].Content)
	assert.False(t, notes[0].Read)
}

func TestMarkNotificationRead(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewNotificationRepository(dbase)

	match := db.Match{ID: "m1", UserA: "elena", UserB: "marcus"}
	require.NoError(t, repo.CreateMatchNotifications(ctx, match))

	notes, err := repo.ListForUser(ctx, "elena")
	require.NoError(t, err)
	require.Len(t, notes, 1)

	require.NoError(t, repo.MarkRead(ctx, notes[0].ID))

	notes, err = repo.ListForUser(ctx, "elena")
	require.NoError(t, err)
	assert.True(t, notes[0].Read)

	err = repo.MarkRead(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
