package readstore

import (
	"context"

	"petconnect/internal/infra"
	"petconnect/internal/infra/db"
	"petconnect/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(dbtx db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: dbtx}
}

const recentNotificationsSQL = `
SELECT id, message, link, is_read, created_at
FROM notifications
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`

func (r *NotificationReadStore) FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	rows, err := r.db.Query(ctx, recentNotificationsSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	result := make([]*queries.NotificationView, 0)
	for rows.Next() {
		var v queries.NotificationView
		if err := rows.Scan(&v.ID, &v.Message, &v.Link, &v.IsRead, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read notification rows", err)
	}
	return result, nil
}

const unreadCountSQL = `
SELECT count(*) FROM notifications
WHERE user_id = $1 AND is_read = false`

func (r *NotificationReadStore) CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, unreadCountSQL, userID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return count, nil
}
