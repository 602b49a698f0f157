package repository

import (
	"context"
	"errors"

	"github.com/gashapp/gash-backend/internal/db"
	apperr "github.com/gashapp/gash-backend/internal/errors"
	"github.com/gashapp/gash-backend/internal/utils/pagination"

	"gorm.io/gorm"
)

// Message kinds accepted by the conversation store.
const (
	MessageKindText  = "text"
	MessageKindVoice = "voice"
	MessageKindImage = "image"
)

// MessageRepository is the append-only conversation log. Ordering within a
// match is the server-assigned seq column; rows are never updated or
// deleted.
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new repository bound to the given DB connection.
func NewMessageRepository(database *gorm.DB) *MessageRepository {
	return &MessageRepository{db: database}
}

// Append persists one message. The database assigns Seq and CreatedAt; the
// stored row is written back into msg so callers can fan it out.
func (r *MessageRepository) Append(ctx context.Context, msg *db.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// GetByID fetches one message by its public (ULID) id.
func (r *MessageRepository) GetByID(ctx context.Context, messageID string) (db.Message, error) {
	var msg db.Message
	err := r.db.WithContext(ctx).
		Where("id = ?", messageID).
		First(&msg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Message{}, apperr.ErrMessageNotFound
	}
	return msg, err
}

// List returns the conversation history for a match in ascending creation
// order.
//
// Behavior:
//   - Total order is seq ASC, which is stable across repeated calls even for
//     messages created within the same millisecond.
//   - Cursor pagination walks forward: the token marks the last seq already
//     delivered.
//
// Example:
//
//	msgs, next, err := repo.List(ctx, matchID, "", 50)
func (r *MessageRepository) List(
	ctx context.Context,
	matchID string,
	paginationToken string,
	limit int,
) ([]db.Message, string, error) {
	var msgs []db.Message

	cursor, err := pagination.Decode(paginationToken)
	if err != nil {
		return nil, "", err
	}

	query := r.db.WithContext(ctx).
		Model(&db.Message{}).
		Where("match_id = ?", matchID).
		Order("seq ASC").
		Limit(limit + 1)

	if cursor.Seq > 0 {
		query = query.Where("seq > ?", cursor.Seq)
	}

	if err := query.Find(&msgs).Error; err != nil {
		return nil, "", err
	}

	var nextToken string
	if len(msgs) > limit {
		last := msgs[limit-1]
		nextToken, _ = pagination.Encode(pagination.Cursor{Seq: last.Seq})
		msgs = msgs[:limit]
	}

	return msgs, nextToken, nil
}
