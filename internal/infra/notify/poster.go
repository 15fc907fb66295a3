package notify

import (
	"context"
	"log/slog"

	"petconnect/internal/usecase/commands"
	"petconnect/internal/usecase/shared"
)

// Poster writes in-app notifications after a lifecycle transition commits.
// Posts are best effort: failures are logged and dropped so a dead
// notification never surfaces as a transition error.
type Poster struct {
	uow shared.UnitOfWork
}

func NewPoster(uow shared.UnitOfWork) commands.NotificationPoster {
	return &Poster{uow: uow}
}

func (p *Poster) Post(ctx context.Context, n commands.Notification) {
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Notifications().Create(ctx, tx.DB(), n.UserID, n.Message, n.Link)
		return err
	})
	if err != nil {
		slog.Warn("failed to post notification",
			"user_id", n.UserID.String(),
			"link", n.Link,
			"error", err.Error())
	}
}
