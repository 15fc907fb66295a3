package response

import (
	"time"

	"petconnect/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Link      string    `json:"link,omitempty"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

func FromNotificationView(v *queries.NotificationView) *NotificationResponse {
	return &NotificationResponse{
		ID:        v.ID,
		Message:   v.Message,
		Link:      v.Link,
		IsRead:    v.IsRead,
		CreatedAt: v.CreatedAt,
	}
}

func FromNotificationViews(views []*queries.NotificationView) []*NotificationResponse {
	out := make([]*NotificationResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromNotificationView(v))
	}
	return out
}
