package repository

import (
	"context"
	"errors"

	"github.com/gashapp/gash-backend/internal/db"
	apperr "github.com/gashapp/gash-backend/internal/errors"
	"github.com/google/uuid"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MatchRepository provides data access for confirmed matches.
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new repository bound to the given DB connection.
func NewMatchRepository(database *gorm.DB) *MatchRepository {
	return &MatchRepository{db: database}
}

// CanonicalPair orders an unordered user pair so that (A,B) and (B,A) map
// to the same storage key.
func CanonicalPair(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}

// CreateIfAbsent materializes the match for an unordered pair exactly once.
//
// Behavior:
//   - The pair is canonicalized before the insert, and the composite unique
//     index on (user_a, user_b) makes the insert race-safe: two reciprocal
//     likes landing in the same instant resolve to a single row.
//   - Losing the race is not an error; the existing match is returned with
//     created=false so callers can suppress duplicate notifications.
//
// Example:
//
//	match, created, err := repo.CreateIfAbsent(ctx, "marcus", "elena")
func (r *MatchRepository) CreateIfAbsent(ctx context.Context, userA, userB string) (db.Match, bool, error) {
	a, b := CanonicalPair(userA, userB)

	match := db.Match{
		ID:    uuid.NewString(),
		UserA: a,
		UserB: b,
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_a"}, {Name: "user_b"}},
			DoNothing: true,
		}).
		Create(&match)
	if res.Error != nil && !errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		return db.Match{}, false, res.Error
	}
	if res.Error == nil && res.RowsAffected == 1 {
		return match, true, nil
	}

	// Lost the race (or the match predates this call): return the winner.
	existing, err := r.GetByPair(ctx, a, b)
	if err != nil {
		return db.Match{}, false, err
	}
	return existing, false, nil
}

// GetByPair fetches the match for a canonicalized pair.
func (r *MatchRepository) GetByPair(ctx context.Context, userA, userB string) (db.Match, error) {
	a, b := CanonicalPair(userA, userB)

	var match db.Match
	err := r.db.WithContext(ctx).
		Where("user_a = ? AND user_b = ?", a, b).
		First(&match).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Match{}, apperr.ErrMatchNotFound
	}
	return match, err
}

// GetByID fetches one match by id.
func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (db.Match, error) {
	var match db.Match
	err := r.db.WithContext(ctx).
		Where("id = ?", matchID).
		First(&match).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Match{}, apperr.ErrMatchNotFound
	}
	return match, err
}

// ListForUser returns all matches the user belongs to, newest first.
func (r *MatchRepository) ListForUser(ctx context.Context, userID string) ([]db.Match, error) {
	var matches []db.Match
	err := r.db.WithContext(ctx).
		Where("user_a = ? OR user_b = ?", userID, userID).
		Order("created_at DESC, id DESC").
		Find(&matches).Error
	return matches, err
}
