package matching_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gashapp/gash-backend/internal/app"
	"github.com/gashapp/gash-backend/internal/cache"
	"github.com/gashapp/gash-backend/internal/config"
	"github.com/gashapp/gash-backend/internal/db"
	"github.com/gashapp/gash-backend/internal/events"
	pb "github.com/gashapp/gash-backend/internal/proto/matching"
	"github.com/gashapp/gash-backend/internal/service/matching"
	"github.com/gashapp/gash-backend/internal/textservice"
)

// setupService spins up an in-memory SQLite DB, applies migrations, seeds
// the minimal fixture, starts a miniredis, and wires everything into a
// Matching service instance.
//
// Fixture (db.SeedMinimalTestData):
//   - Profiles: elena, marcus, priya
//   - elena ↔ marcus already liked each other and have a match row
//   - priya → marcus super_like, unreciprocated
//
// Each test gets its own isolated DB + Redis.
func setupService(t *testing.T) (*matching.Service, *miniredis.Miniredis, *gorm.DB) {
	t.Helper()

	// In-memory SQLite
	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	dbase, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{
		NowFunc:                func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	sqlDB, err := dbase.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(dbase))
	require.NoError(t, db.SeedMinimalTestData(dbase))

	// Fake Redis
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()

	redisCache := cache.NewRedisCache(cfg)
	bus := events.NewRedisBus(redisCache.Client)
	text := textservice.New(cfg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil)) // discard logs in tests

	appCtx := app.New(dbase, redisCache, bus, text, logger)
	return matching.NewMatchingService(appCtx), mr, dbase
}

// TestRecordInterestNoMatchYet verifies that a like without a reciprocal
// edge records the interest but creates no match.
func TestRecordInterestNoMatchYet(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	resp, err := svc.RecordInterest(ctx, &pb.RecordInterestRequest{
		ActorUserId:     "elena",
		RecipientUserId: "priya",
		Kind:            "like",
	})
	require.NoError(t, err)

	assert.False(t, resp.IsNewMatch)
	assert.Nil(t, resp.Match)
}

// TestRecordInterestMutual verifies that completing a reciprocal pair
// materializes the match with a canonically ordered pair.
func TestRecordInterestMutual(t *testing.T) {
	ctx := context.Background()
	svc, _, dbase := setupService(t)

	// priya → marcus already exists in the fixture
	resp, err := svc.RecordInterest(ctx, &pb.RecordInterestRequest{
		ActorUserId:     "marcus",
		RecipientUserId: "priya",
		Kind:            "like",
	})
	require.NoError(t, err)

	assert.True(t, resp.IsNewMatch)
	require.NotNil(t, resp.Match)
	assert.Equal(t, "marcus", resp.Match.UserA)
	assert.Equal(t, "priya", resp.Match.UserB)

	// both participants got their notification
	matchID := resp.Match.Id
	for _, user := range []string{"marcus", "priya"} {
		var notes []db.Notification
		require.NoError(t, dbase.Where("user_id = ?", user).Find(&notes).Error)
		require.Len(t, notes, 1)
		require.NotNil(t, notes[0].MatchID)
		assert.Equal(t, matchID, *notes[0].MatchID)
	}
}

// TestRecordInterestLifecycle walks a fresh pair through the whole flow:
// first like, reciprocal like, then a repeated like.
func TestRecordInterestLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	resp, err := svc.RecordInterest(ctx, &pb.RecordInterestRequest{
		ActorUserId:     "zoe",
		RecipientUserId: "aki",
	})
	require.NoError(t, err)
	assert.False(t, resp.IsNewMatch)

	resp, err = svc.RecordInterest(ctx, &pb.RecordInterestRequest{
		ActorUserId:     "aki",
		RecipientUserId: "zoe",
	})
	require.NoError(t, err)
	assert.True(t, resp.IsNewMatch)
	require.NotNil(t, resp.Match)
	assert.Equal(t, "aki", resp.Match.UserA)
	assert.Equal(t, "zoe", resp.Match.UserB)

	_, err = svc.RecordInterest(ctx, &pb.RecordInterestRequest{
		ActorUserId:     "zoe",
		RecipientUserId: "aki",
	})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}

// TestRecordInterestConcurrentReciprocal fires both directions of a fresh
// pair at the same instant: neither call may fail, and exactly one match
// row may exist afterwards no matter how the calls interleave.
func TestRecordInterestConcurrentReciprocal(t *testing.T) {
	ctx := context.Background()
	svc, _, dbase := setupService(t)

	// single connection so SQLite serializes the writes underneath the
	// concurrent callers
	sqlDB, err := dbase.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	pairs := [][2]string{{"zoe", "aki"}, {"aki", "zoe"}}
	for i, p := range pairs {
		wg.Add(1)
		go func(i int, actor, recipient string) {
			defer wg.Done()
			_, errs[i] = svc.RecordInterest(ctx, &pb.RecordInterestRequest{
				ActorUserId:     actor,
				RecipientUserId: recipient,
			})
		}(i, p[0], p[1])
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	var matches []db.Match
	require.NoError(t, dbase.
		Where("user_a = ? AND user_b = ?", "aki", "zoe").
		Find(&matches).Error)
	assert.Len(t, matches, 1)
}

// TestRecordInterestDuplicate verifies that repeating a like fails with
// AlreadyExists and leaves the ledger unchanged.
func TestRecordInterestDuplicate(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	// elena → marcus is already in the fixture
	_, err := svc.RecordInterest(ctx, &pb.RecordInterestRequest{
		ActorUserId:     "elena",
		RecipientUserId: "marcus",
		Kind:            "like",
	})
	require.Error(t, err)
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}

// TestRecordInterestValidation covers self-likes and unknown kinds.
func TestRecordInterestValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	_, err := svc.RecordInterest(ctx, &pb.RecordInterestRequest{
		ActorUserId:     "elena",
		RecipientUserId: "elena",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.RecordInterest(ctx, &pb.RecordInterestRequest{
		ActorUserId:     "elena",
		RecipientUserId: "priya",
		Kind:            "wink",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestListMatches returns the fixture match for both participants.
func TestListMatches(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	resp, err := svc.ListMatches(ctx, &pb.ListMatchesRequest{UserId: "elena"})
	require.NoError(t, err)
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, "elena", resp.Matches[0].UserA)
	assert.Equal(t, "marcus", resp.Matches[0].UserB)

	resp, err = svc.ListMatches(ctx, &pb.ListMatchesRequest{UserId: "priya"})
	require.NoError(t, err)
	assert.Len(t, resp.Matches, 0)
}

// TestListLikedYou checks the liked-you listing for marcus: elena and
// priya, newest first.
func TestListLikedYou(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	resp, err := svc.ListLikedYou(ctx, &pb.ListLikedYouRequest{RecipientUserId: "marcus"})
	require.NoError(t, err)

	require.Len(t, resp.Likers, 2)
	actors := []string{resp.Likers[0].ActorUserId, resp.Likers[1].ActorUserId}
	assert.ElementsMatch(t, []string{"elena", "priya"}, actors)
}

// TestCountLikedYouCache verifies counts come from the DB on a cold cache
// and from Redis afterwards.
func TestCountLikedYouCache(t *testing.T) {
	ctx := context.Background()
	svc, mr, _ := setupService(t)

	// First call → DB
	resp1, err := svc.CountLikedYou(ctx, &pb.CountLikedYouRequest{RecipientUserId: "marcus"})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), resp1.Count)

	// Poison the cache to prove the second read never hits the DB
	mr.Set("likes:count:marcus", "5")

	resp2, err := svc.CountLikedYou(ctx, &pb.CountLikedYouRequest{RecipientUserId: "marcus"})
	require.NoError(t, err)
	assert.Equal(t, uint64(5), resp2.Count)
}

// TestCountLikedYouAfterColdCacheLike guards against counter drift: a like
// landing while the counter key is absent must not seed it at 1, so the
// next count still reflects every like in the DB. Once the counter is warm,
// further likes bump it in place.
func TestCountLikedYouAfterColdCacheLike(t *testing.T) {
	ctx := context.Background()
	svc, mr, _ := setupService(t)

	// marcus already has 2 likers in the fixture; the cache is cold
	_, err := svc.RecordInterest(ctx, &pb.RecordInterestRequest{
		ActorUserId:     "zoe",
		RecipientUserId: "marcus",
	})
	require.NoError(t, err)
	assert.False(t, mr.Exists("likes:count:marcus"))

	resp, err := svc.CountLikedYou(ctx, &pb.CountLikedYouRequest{RecipientUserId: "marcus"})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), resp.Count)

	// counter is warm now, so the next like increments it
	_, err = svc.RecordInterest(ctx, &pb.RecordInterestRequest{
		ActorUserId:     "aki",
		RecipientUserId: "marcus",
	})
	require.NoError(t, err)

	resp, err = svc.CountLikedYou(ctx, &pb.CountLikedYouRequest{RecipientUserId: "marcus"})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), resp.Count)
}
