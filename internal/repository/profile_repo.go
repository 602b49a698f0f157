package repository

import (
	"context"
	"errors"

	"github.com/gashapp/gash-backend/internal/db"
	apperr "github.com/gashapp/gash-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository provides data access for user profiles.
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new repository bound to the given DB connection.
func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: database}
}

// Get fetches one profile by user id.
func (r *ProfileRepository) Get(ctx context.Context, userID string) (db.Profile, error) {
	var p db.Profile
	err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Profile{}, apperr.ErrProfileNotFound
	}
	return p, err
}

// Upsert inserts or updates the profile row for p.ID.
//
// Behavior:
//   - The completion percentage is monotonic: an update carrying a lower
//     value than what is stored fails with ErrCompletionRegression and
//     writes nothing. Everything runs in one transaction so concurrent
//     onboarding steps cannot interleave a regression through the check.
func (r *ProfileRepository) Upsert(ctx context.Context, p *db.Profile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db.Profile
		err := tx.Where("id = ?", p.ID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// fresh signup
		case err != nil:
			return err
		default:
			if p.ProfileCompletion < existing.ProfileCompletion {
				return apperr.ErrCompletionRegression
			}
			// flags owned by other flows are not client-writable
			p.Verified = existing.Verified
			p.IsPremium = existing.IsPremium
			p.PasswordHash = existing.PasswordHash
		}

		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"first_name", "last_name", "username", "birth_date", "gender",
				"location", "country", "occupation", "education_level", "bio",
				"languages", "profile_completion",
			}),
		}).Create(p).Error
	})
}

// SetPremium flips the premium flag after the external billing collaborator
// confirms the upgrade. Upgrading an already-premium user is a no-op success.
func (r *ProfileRepository) SetPremium(ctx context.Context, userID string) (db.Profile, error) {
	p, err := r.Get(ctx, userID)
	if err != nil {
		return db.Profile{}, err
	}
	if p.IsPremium {
		return p, nil
	}

	err = r.db.WithContext(ctx).
		Model(&db.Profile{}).
		Where("id = ?", userID).
		Update("is_premium", true).Error
	if err != nil {
		return db.Profile{}, err
	}
	p.IsPremium = true
	return p, nil
}
