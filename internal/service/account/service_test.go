package account_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
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
	pb "github.com/gashapp/gash-backend/internal/proto/account"
	"github.com/gashapp/gash-backend/internal/service/account"
	"github.com/gashapp/gash-backend/internal/textservice"
)

// setupService wires an in-memory SQLite DB, miniredis, and the minimal
// fixture into an Account service instance.
func setupService(t *testing.T) (*account.Service, *miniredis.Miniredis, *gorm.DB) {
	t.Helper()

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

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()

	redisCache := cache.NewRedisCache(cfg)
	bus := events.NewRedisBus(redisCache.Client)
	text := textservice.New(cfg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	appCtx := app.New(dbase, redisCache, bus, text, logger)
	return account.NewAccountService(appCtx), mr, dbase
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	resp, err := svc.GetProfile(ctx, &pb.GetProfileRequest{UserId: "elena"})
	require.NoError(t, err)
	assert.Equal(t, "elena", resp.Profile.Username)
	assert.Equal(t, "Ukraine", resp.Profile.Country)
	assert.Equal(t, []string{"uk", "en"}, resp.Profile.Languages)

	_, err = svc.GetProfile(ctx, &pb.GetProfileRequest{UserId: "nobody"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	resp, err := svc.UpdateProfile(ctx, &pb.UpdateProfileRequest{
		Profile: &pb.Profile{
			Id:                "elena",
			Username:          "elena",
			Bio:               "new bio",
			Occupation:        "Designer",
			ProfileCompletion: 80,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "new bio", resp.Profile.Bio)
	assert.Equal(t, uint32(80), resp.Profile.ProfileCompletion)

	// a stale client cannot lower the completion percentage
	_, err = svc.UpdateProfile(ctx, &pb.UpdateProfileRequest{
		Profile: &pb.Profile{Id: "elena", Username: "elena", ProfileCompletion: 20},
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUpdateProfileIgnoresServerOwnedFlags(t *testing.T) {
	ctx := context.Background()
	svc, _, dbase := setupService(t)

	require.NoError(t, dbase.Model(&db.Profile{}).
		Where("id = ?", "elena").
		Update("verified", true).Error)

	resp, err := svc.UpdateProfile(ctx, &pb.UpdateProfileRequest{
		Profile: &pb.Profile{
			Id:        "elena",
			Username:  "elena",
			Verified:  false, // client cannot strip this
			IsPremium: true,  // nor grant this
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Profile.Verified)
	assert.False(t, resp.Profile.IsPremium)
}

func TestUpdateProfileValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	_, err := svc.UpdateProfile(ctx, &pb.UpdateProfileRequest{
		Profile: &pb.Profile{Username: "noid"},
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.UpdateProfile(ctx, &pb.UpdateProfileRequest{
		Profile: &pb.Profile{Id: "x"},
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.UpdateProfile(ctx, &pb.UpdateProfileRequest{
		Profile: &pb.Profile{Id: "x", Username: "x", ProfileCompletion: 150},
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUpgradeToPremium(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	resp, err := svc.UpgradeToPremium(ctx, &pb.UpgradeToPremiumRequest{UserId: "marcus"})
	require.NoError(t, err)
	assert.True(t, resp.Profile.IsPremium)

	// repeat upgrade is a no-op success
	resp, err = svc.UpgradeToPremium(ctx, &pb.UpgradeToPremiumRequest{UserId: "marcus"})
	require.NoError(t, err)
	assert.True(t, resp.Profile.IsPremium)

	_, err = svc.UpgradeToPremium(ctx, &pb.UpgradeToPremiumRequest{UserId: "nobody"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGetSiteConfigDefaults(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	// no row in the DB → built-in defaults
	resp, err := svc.GetSiteConfig(ctx, &pb.GetSiteConfigRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Beyond Borders, Beyond Expectations", resp.Config.HeroTitle)
	assert.False(t, resp.Config.ShowAds)
}

func TestGetSiteConfigCaching(t *testing.T) {
	ctx := context.Background()
	svc, mr, dbase := setupService(t)

	require.NoError(t, dbase.Create(&db.SiteConfig{ID: 1, HeroTitle: "First title"}).Error)
	require.NoError(t, dbase.Create(&db.CustomSection{ID: "s1", Page: "landing", Title: "Stories", Active: true}).Error)

	resp, err := svc.GetSiteConfig(ctx, &pb.GetSiteConfigRequest{})
	require.NoError(t, err)
	assert.Equal(t, "First title", resp.Config.HeroTitle)
	require.Len(t, resp.Config.CustomSections, 1)
	assert.Equal(t, "Stories", resp.Config.CustomSections[0].Title)

	// change the row; the cached config still wins
	require.NoError(t, dbase.Model(&db.SiteConfig{}).Where("id = ?", 1).
		Update("hero_title", "Second title").Error)

	resp, err = svc.GetSiteConfig(ctx, &pb.GetSiteConfigRequest{})
	require.NoError(t, err)
	assert.Equal(t, "First title", resp.Config.HeroTitle)

	// flushing the cache picks up the new row
	mr.FlushAll()
	resp, err = svc.GetSiteConfig(ctx, &pb.GetSiteConfigRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Second title", resp.Config.HeroTitle)
}

func TestNotifications(t *testing.T) {
	ctx := context.Background()
	svc, _, dbase := setupService(t)

	matchID := "m1"
	require.NoError(t, dbase.Create(&db.Notification{
		ID:      "n1",
		UserID:  "elena",
		Type:    "new_match",
		Content: "You matched with marcus",
		MatchID: &matchID,
	}).Error)

	resp, err := svc.ListNotifications(ctx, &pb.ListNotificationsRequest{UserId: "elena"})
	require.NoError(t, err)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, "m1", resp.Notifications[0].MatchId)
	assert.False(t, resp.Notifications[0].Read)

	_, err = svc.MarkNotificationRead(ctx, &pb.MarkNotificationReadRequest{NotificationId: "n1"})
	require.NoError(t, err)

	resp, err = svc.ListNotifications(ctx, &pb.ListNotificationsRequest{UserId: "elena"})
	require.NoError(t, err)
	assert.True(t, resp.Notifications[0].Read)

	_, err = svc.MarkNotificationRead(ctx, &pb.MarkNotificationReadRequest{NotificationId: "missing"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}
