package commands

import (
	"context"

	"petconnect/internal/domain/service"
	"petconnect/internal/infra"
	"petconnect/internal/pkg/errs"
	"petconnect/internal/pkg/patch"
	"petconnect/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateServiceInput struct {
	Name        string
	Category    string
	Description string
	ImageURL    string
	PriceCents  int64
	DurationMin int32
}

type UpdateServiceInput struct {
	Name        *string
	Description *string
	ImageURL    *string
	PriceCents  *int64
	DurationMin *int32
	Available   *bool
}

type CreateServiceResult struct {
	ServiceID uuid.UUID
}

type ServiceCommands interface {
	CreateService(ctx context.Context, actor shared.Actor, in CreateServiceInput) (*CreateServiceResult, error)
	UpdateService(ctx context.Context, actor shared.Actor, serviceID uuid.UUID, in UpdateServiceInput) error
	DeleteService(ctx context.Context, actor shared.Actor, serviceID uuid.UUID) error
}

type serviceUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewServiceUseCase(uow shared.UnitOfWork) ServiceCommands {
	return &serviceUseCaseImpl{uow: uow}
}

func (uc *serviceUseCaseImpl) CreateService(ctx context.Context, actor shared.Actor, in CreateServiceInput) (*CreateServiceResult, error) {
	s, err := service.NewService(
		actor.ID,
		in.Name,
		service.Category(in.Category),
		in.Description,
		in.ImageURL,
		in.PriceCents,
		in.DurationMin,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Services().Create(ctx, tx.DB(), s)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateServiceResult{ServiceID: createdID}, nil
}

func (uc *serviceUseCaseImpl) UpdateService(ctx context.Context, actor shared.Actor, serviceID uuid.UUID, in UpdateServiceInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := loadOwnedService(ctx, tx, serviceID, actor)
		if derr != nil {
			return derr
		}

		priceCents := patch.Coalesce(in.PriceCents, snap.PriceCents)
		durationMin := patch.Coalesce(in.DurationMin, snap.DurationMin)
		name := patch.Coalesce(in.Name, snap.Name)
		if priceCents < 0 {
			return errs.Mark(service.ErrNegativePrice, errs.ErrDomainValidation)
		}
		if durationMin <= 0 {
			return errs.Mark(service.ErrInvalidDuration, errs.ErrDomainValidation)
		}
		if name == "" {
			return errs.Mark(service.ErrEmptyName, errs.ErrDomainValidation)
		}

		updated := service.ReconstructService(
			snap.ID, snap.ShelterID,
			name,
			service.Category(snap.Category),
			patch.Coalesce(in.Description, snap.Description),
			patch.Coalesce(in.ImageURL, snap.ImageURL),
			priceCents,
			durationMin,
			patch.Coalesce(in.Available, snap.Available),
			snap.CreatedAt, snap.UpdatedAt,
		)
		if derr = tx.Services().Update(ctx, tx.DB(), updated); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *serviceUseCaseImpl) DeleteService(ctx context.Context, actor shared.Actor, serviceID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := loadOwnedService(ctx, tx, serviceID, actor); derr != nil {
			return derr
		}
		if derr := tx.Services().Delete(ctx, tx.DB(), serviceID); derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return errs.Mark(derr, errs.ErrInvalidTransition)
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func loadOwnedService(ctx context.Context, tx shared.Tx, serviceID uuid.UUID, actor shared.Actor) (*shared.ServiceSnapshot, error) {
	snap, err := tx.Reads().ServiceByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if snap.ShelterID != actor.ID && !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}
	return snap, nil
}
