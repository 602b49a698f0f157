package repository

import (
	"context"

	"github.com/gashapp/gash-backend/internal/db"

	"gorm.io/gorm"
)

// SiteConfigRepository reads the CMS-managed configuration. The core never
// writes these rows; the admin surface owns them.
type SiteConfigRepository struct {
	db *gorm.DB
}

// NewSiteConfigRepository creates a new repository bound to the given DB connection.
func NewSiteConfigRepository(database *gorm.DB) *SiteConfigRepository {
	return &SiteConfigRepository{db: database}
}

// Get returns the config row plus the active custom sections. A missing row
// is reported as gorm.ErrRecordNotFound so the service can fall back to
// built-in defaults.
func (r *SiteConfigRepository) Get(ctx context.Context) (db.SiteConfig, []db.CustomSection, error) {
	var cfg db.SiteConfig
	if err := r.db.WithContext(ctx).First(&cfg).Error; err != nil {
		return db.SiteConfig{}, nil, err
	}

	var sections []db.CustomSection
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("page ASC, title ASC").
		Find(&sections).Error
	if err != nil {
		return db.SiteConfig{}, nil, err
	}

	return cfg, sections, nil
}
