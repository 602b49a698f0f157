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

func TestSiteConfigGet(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewSiteConfigRepository(dbase)

	// no row yet
	_, _, err := repo.Get(ctx)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, dbase.Create(&db.SiteConfig{ID: 1, HeroTitle: "Welcome", ShowAds: true}).Error)
	require.NoError(t, dbase.Create(&[]db.CustomSection{
		{ID: "s1", Page: "landing", Title: "Stories", Active: true},
		{ID: "s2", Page: "landing", Title: "Hidden", Active: false},
		{ID: "s3", Page: "about", Title: "Team", Active: true},
	}).Error)

	cfg, sections, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Welcome", cfg.HeroTitle)
	assert.True(t, cfg.ShowAds)

	// only active sections, ordered by page then title
	require.Len(t, sections, 2)
	assert.Equal(t, "Team", sections[0].Title)
	assert.Equal(t, "Stories", sections[1].Title)
}
