package repository

import (
	"context"
	"fmt"

	"github.com/gashapp/gash-backend/internal/db"
	"github.com/google/uuid"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const NotificationTypeNewMatch = "new_match"

// NotificationRepository provides data access for per-user alerts.
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new repository bound to the given DB connection.
func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: database}
}

// CreateMatchNotifications writes one "new match" alert per participant.
//
// Delivery of the triggering event is at-least-once, so the rows are
// deduplicated on (user_id, match_id): replays insert nothing and a match
// alert can never be shown twice.
func (r *NotificationRepository) CreateMatchNotifications(ctx context.Context, match db.Match) error {
	rows := []db.Notification{
		{
			ID:      uuid.NewString(),
			UserID:  match.UserA,
			Type:    NotificationTypeNewMatch,
			Content: fmt.Sprintf("You matched with %s", match.UserB),
			MatchID: &match.ID,
		},
		{
			ID:      uuid.NewString(),
			UserID:  match.UserB,
			Type:    NotificationTypeNewMatch,
			Content: fmt.Sprintf("You matched with %s", match.UserA),
			MatchID: &match.ID,
		},
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "match_id"}},
			DoNothing: true,
		}).
		Create(&rows).Error
}

// ListForUser returns the user's notifications, newest first.
func (r *NotificationRepository) ListForUser(ctx context.Context, userID string) ([]db.Notification, error) {
	var rows []db.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	return rows, err
}

// MarkRead flags one notification as read. Marking an already-read row is a
// no-op success.
func (r *NotificationRepository) MarkRead(ctx context.Context, notificationID string) error {
	var note db.Notification
	err := r.db.WithContext(ctx).
		Where("id = ?", notificationID).
		First(&note).Error
	if err != nil {
		return err
	}
	if note.Read {
		return nil
	}

	return r.db.WithContext(ctx).
		Model(&db.Notification{}).
		Where("id = ?", notificationID).
		Update("read", true).Error
}
