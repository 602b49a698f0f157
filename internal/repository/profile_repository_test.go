package repository_test

import (
	"context"
	"testing"

	"github.com/gashapp/gash-backend/internal/db"
	apperr "github.com/gashapp/gash-backend/internal/errors"
	"github.com/gashapp/gash-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertCreatesAndUpdates(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	p := db.Profile{ID: "elena", Username: "elena", Bio: "hi", ProfileCompletion: 40}
	require.NoError(t, repo.Upsert(ctx, &p))

	// raise completion, change bio
	p2 := db.Profile{ID: "elena", Username: "elena", Bio: "hello world", ProfileCompletion: 60}
	require.NoError(t, repo.Upsert(ctx, &p2))

	stored, err := repo.Get(ctx, "elena")
	require.NoError(t, err)
	assert.Equal(t, "hello world", stored.Bio)
	assert.Equal(t, uint32(60), stored.ProfileCompletion)
}

func TestUpsertCompletionNeverRegresses(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	require.NoError(t, repo.Upsert(ctx, &db.Profile{ID: "elena", Username: "elena", ProfileCompletion: 60}))

	// stale client sends a lower value
	err := repo.Upsert(ctx, &db.Profile{ID: "elena", Username: "elena", ProfileCompletion: 30})
	assert.ErrorIs(t, err, apperr.ErrCompletionRegression)

	stored, err := repo.Get(ctx, "elena")
	require.NoError(t, err)
	assert.Equal(t, uint32(60), stored.ProfileCompletion)

	// equal value is fine
	assert.NoError(t, repo.Upsert(ctx, &db.Profile{ID: "elena", Username: "elena", ProfileCompletion: 60}))
}

func TestUpsertPreservesServerOwnedFlags(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	require.NoError(t, repo.Upsert(ctx, &db.Profile{ID: "elena", Username: "elena"}))
	require.NoError(t, dbase.Model(&db.Profile{}).Where("id = ?", "elena").
		Updates(map[string]any{"verified": true, "is_premium": true, "password_hash": "h"}).Error)

	// client payload cannot strip flags it does not own
	require.NoError(t, repo.Upsert(ctx, &db.Profile{ID: "elena", Username: "elena", Bio: "updated"}))

	stored, err := repo.Get(ctx, "elena")
	require.NoError(t, err)
	assert.True(t, stored.Verified)
	assert.True(t, stored.IsPremium)
	assert.Equal(t, "h", stored.PasswordHash)
	assert.Equal(t, "updated", stored.Bio)
}

func TestSetPremium(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	require.NoError(t, repo.Upsert(ctx, &db.Profile{ID: "elena", Username: "elena"}))

	p, err := repo.SetPremium(ctx, "elena")
	require.NoError(t, err)
	assert.True(t, p.IsPremium)

	// repeat upgrade is a no-op success
	p, err = repo.SetPremium(ctx, "elena")
	require.NoError(t, err)
	assert.True(t, p.IsPremium)

	_, err = repo.SetPremium(ctx, "nobody")
	assert.ErrorIs(t, err, apperr.ErrProfileNotFound)
}

func TestGetProfileNotFound(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	_, err := repo.Get(ctx, "nobody")
	assert.ErrorIs(t, err, apperr.ErrProfileNotFound)
}
