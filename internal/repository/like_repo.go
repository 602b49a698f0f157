package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gashapp/gash-backend/internal/db"
	apperr "github.com/gashapp/gash-backend/internal/errors"
	"github.com/gashapp/gash-backend/internal/utils/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Interest kinds accepted by the ledger.
const (
	KindLike      = "like"
	KindSuperLike = "super_like"
)

// LikeRepository is the interest ledger: the append-only record of
// one-directional likes between users.
type LikeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new repository bound to the given DB connection.
func NewLikeRepository(database *gorm.DB) *LikeRepository {
	return &LikeRepository{db: database}
}

// Create inserts the directed like edge from -> to.
//
// Behavior:
//   - Insert-once: if the ordered pair already has a row, the call fails
//     with ErrDuplicateInterest and the existing row is left untouched.
//     Re-liking is not a supported path; clients treat the error as a no-op.
//   - The composite PK makes the insert race-safe without extra locking.
//
// Example:
//
//	repo.Create(ctx, "elena", "marcus", KindLike)
func (r *LikeRepository) Create(ctx context.Context, fromUser, toUser, kind string) error {
	like := db.Like{
		FromUser: fromUser,
		ToUser:   toUser,
		Kind:     kind,
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "from_user"}, {Name: "to_user"}},
			DoNothing: true,
		}).
		Create(&like)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return apperr.ErrDuplicateInterest
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrDuplicateInterest
	}
	return nil
}

// Exists reports whether the directed edge from -> to has been recorded.
// Used for the reciprocity check after an insert.
func (r *LikeRepository) Exists(ctx context.Context, fromUser, toUser string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Like{}).
		Where("from_user = ? AND to_user = ?", fromUser, toUser).
		Count(&count).Error
	return count > 0, err
}

// GetLikers returns users who liked the given recipient, newest first.
//
// Behavior:
//   - Ordered by created_at DESC, from_user DESC.
//   - Supports cursor-based pagination via paginationToken.
//
// Example:
//
//	repo.GetLikers(ctx, "marcus", "", 20) // first 20 people who liked marcus
func (r *LikeRepository) GetLikers(
	ctx context.Context,
	recipientID string,
	paginationToken string,
	limit int,
) ([]db.Like, string, error) {
	var likes []db.Like

	cursor, err := pagination.Decode(paginationToken)
	if err != nil {
		return nil, "", err
	}

	query := r.db.WithContext(ctx).
		Model(&db.Like{}).
		Where("to_user = ?", recipientID).
		Order("created_at DESC, from_user DESC").
		Limit(limit + 1)

	if cursor.ActorID != "" && cursor.CreatedUnix > 0 {
		ts := time.UnixMilli(cursor.CreatedUnix).UTC()
		query = query.Where(
			"(created_at < ? OR (created_at = ? AND from_user < ?))",
			ts, ts, cursor.ActorID,
		)
	}

	if err := query.Find(&likes).Error; err != nil {
		return nil, "", err
	}

	var nextToken string
	if len(likes) > limit {
		last := likes[limit-1]
		nextToken, _ = pagination.Encode(pagination.Cursor{
			ActorID:     last.FromUser,
			CreatedUnix: last.CreatedAt.UnixMilli(),
		})
		likes = likes[:limit]
	}

	return likes, nextToken, nil
}

// CountLikers returns how many users liked the given recipient.
// Used in conjunction with the Redis counter cache (DB is fallback).
func (r *LikeRepository) CountLikers(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Like{}).
		Where("to_user = ?", recipientID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
