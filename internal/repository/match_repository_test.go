package repository_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gashapp/gash-backend/internal/db"
	apperr "github.com/gashapp/gash-backend/internal/errors"
	"github.com/gashapp/gash-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalPair(t *testing.T) {
	a, b := repository.CanonicalPair("marcus", "elena")
	assert.Equal(t, "elena", a)
	assert.Equal(t, "marcus", b)

	// already ordered input is unchanged
	a, b = repository.CanonicalPair("elena", "marcus")
	assert.Equal(t, "elena", a)
	assert.Equal(t, "marcus", b)
}

func TestCreateIfAbsentIdempotent(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewMatchRepository(dbase)

	first, created, err := repo.CreateIfAbsent(ctx, "marcus", "elena")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "elena", first.UserA)
	assert.Equal(t, "marcus", first.UserB)

	// same pair in the opposite order resolves to the same row
	second, created, err := repo.CreateIfAbsent(ctx, "elena", "marcus")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
}

// TestCreateIfAbsentConcurrent hammers the same unordered pair from both
// directions at once: no interleaving may ever materialize a second row,
// and every caller must resolve to the one winning match.
func TestCreateIfAbsentConcurrent(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)

	// single connection so SQLite serializes the writes; the callers stay
	// concurrent, which is what exercises the OnConflict + re-select path
	sqlDB, err := dbase.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	repo := repository.NewMatchRepository(dbase)

	const n = 16
	var (
		wg      sync.WaitGroup
		created int32
		results [n]db.Match
		errs    [n]error
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, b := "elena", "marcus"
			if i%2 == 1 {
				a, b = b, a
			}
			m, wasCreated, err := repo.CreateIfAbsent(ctx, a, b)
			results[i], errs[i] = m, err
			if wasCreated {
				atomic.AddInt32(&created, 1)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0].ID, results[i].ID)
	}
	assert.Equal(t, int32(1), created)

	var count int64
	require.NoError(t, dbase.Model(&db.Match{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetByIDNotFound(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewMatchRepository(dbase)

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, apperr.ErrMatchNotFound)
}

func TestListForUser(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewMatchRepository(dbase)

	_, _, err := repo.CreateIfAbsent(ctx, "elena", "marcus")
	require.NoError(t, err)
	_, _, err = repo.CreateIfAbsent(ctx, "elena", "priya")
	require.NoError(t, err)
	_, _, err = repo.CreateIfAbsent(ctx, "marcus", "priya")
	require.NoError(t, err)

	matches, err := repo.ListForUser(ctx, "elena")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	matches, err = repo.ListForUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Len(t, matches, 0)
}
