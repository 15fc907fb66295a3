package repository

import (
	"context"

	"petconnect/internal/infra"
	"petconnect/internal/infra/db"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

const createNotificationSQL = `
INSERT INTO notifications (id, user_id, message, link)
VALUES ($1, $2, $3, $4)
RETURNING id`

func (r *NotificationRepository) Create(ctx context.Context, tx db.DBTX, userID uuid.UUID, message, link string) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createNotificationSQL, uuid.New(), userID, message, link).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create notification", err)
	}
	return id, nil
}

// Matching on user_id keeps the update owner-scoped; re-marking a read
// notification is a no-op success.
const markReadSQL = `
UPDATE notifications SET is_read = true
WHERE id = $1 AND user_id = $2`

func (r *NotificationRepository) MarkRead(ctx context.Context, tx db.DBTX, id, userID uuid.UUID) error {
	tag, err := tx.Exec(ctx, markReadSQL, id, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}

const markAllReadSQL = `
UPDATE notifications SET is_read = true
WHERE user_id = $1 AND is_read = false`

func (r *NotificationRepository) MarkAllRead(ctx context.Context, tx db.DBTX, userID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, markAllReadSQL, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark notifications read", err)
	}
	return tag.RowsAffected(), nil
}
