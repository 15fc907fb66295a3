package commands

import (
	"context"

	"petconnect/internal/infra"
	"petconnect/internal/pkg/errs"
	"petconnect/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationCommands interface {
	MarkRead(ctx context.Context, actor shared.Actor, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, actor shared.Actor) (int64, error)
}

type notificationUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewNotificationUseCase(uow shared.UnitOfWork) NotificationCommands {
	return &notificationUseCaseImpl{uow: uow}
}

// MarkRead is scoped to the owner: the repository matches on both id and
// user id, so someone else's notification just reads as not found.
func (uc *notificationUseCaseImpl) MarkRead(ctx context.Context, actor shared.Actor, notificationID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Notifications().MarkRead(ctx, tx.DB(), notificationID, actor.ID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrNotificationNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *notificationUseCaseImpl) MarkAllRead(ctx context.Context, actor shared.Actor) (int64, error) {
	var updated int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Notifications().MarkAllRead(ctx, tx.DB(), actor.ID)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		updated = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}
