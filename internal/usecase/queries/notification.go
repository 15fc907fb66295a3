package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Link      string    `json:"link,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationQueries interface {
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*NotificationView, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type NotificationReadStore interface {
	FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*NotificationView, error)
	CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationQueriesImpl struct {
	readStore NotificationReadStore
}

func NewNotificationQueries(readStore NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{readStore: readStore}
}

func (q *notificationQueriesImpl) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*NotificationView, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return q.readStore.FindRecentByUser(ctx, userID, int32(limit))
}

func (q *notificationQueriesImpl) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return q.readStore.CountUnreadByUser(ctx, userID)
}
