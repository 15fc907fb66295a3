package commands

import (
	"context"

	"petconnect/internal/domain/pet"
	"petconnect/internal/infra"
	"petconnect/internal/pkg/errs"
	"petconnect/internal/pkg/patch"
	"petconnect/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreatePetInput struct {
	Name        string
	Species     string
	Breed       string
	AgeMonths   int32
	Gender      string
	Size        string
	Description string
	ImageURL    string
	PriceCents  int64
}

type UpdatePetInput struct {
	Name        *string
	Breed       *string
	AgeMonths   *int32
	Description *string
	ImageURL    *string
	PriceCents  *int64
	Available   *bool
}

type CreatePetResult struct {
	PetID uuid.UUID
}

type PetCommands interface {
	CreatePet(ctx context.Context, actor shared.Actor, in CreatePetInput) (*CreatePetResult, error)
	UpdatePet(ctx context.Context, actor shared.Actor, petID uuid.UUID, in UpdatePetInput) error
	DeletePet(ctx context.Context, actor shared.Actor, petID uuid.UUID) error
}

type petUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewPetUseCase(uow shared.UnitOfWork) PetCommands {
	return &petUseCaseImpl{uow: uow}
}

func (uc *petUseCaseImpl) CreatePet(ctx context.Context, actor shared.Actor, in CreatePetInput) (*CreatePetResult, error) {
	p, err := pet.NewPet(
		actor.ID,
		in.Name,
		pet.Species(in.Species),
		in.Breed,
		in.AgeMonths,
		pet.Gender(in.Gender),
		pet.Size(in.Size),
		in.Description,
		in.ImageURL,
		in.PriceCents,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Pets().Create(ctx, tx.DB(), p)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreatePetResult{PetID: createdID}, nil
}

func (uc *petUseCaseImpl) UpdatePet(ctx context.Context, actor shared.Actor, petID uuid.UUID, in UpdatePetInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := loadOwnedPet(ctx, tx, petID, actor)
		if derr != nil {
			return derr
		}

		priceCents := patch.Coalesce(in.PriceCents, snap.PriceCents)
		ageMonths := patch.Coalesce(in.AgeMonths, snap.AgeMonths)
		if priceCents < 0 {
			return errs.Mark(pet.ErrNegativePrice, errs.ErrDomainValidation)
		}
		if ageMonths < 0 {
			return errs.Mark(pet.ErrNegativeAge, errs.ErrDomainValidation)
		}
		name := patch.Coalesce(in.Name, snap.Name)
		if name == "" {
			return errs.Mark(pet.ErrEmptyName, errs.ErrDomainValidation)
		}

		updated := pet.ReconstructPet(
			snap.ID, snap.ShelterID,
			name,
			pet.Species(snap.Species),
			patch.Coalesce(in.Breed, snap.Breed),
			ageMonths,
			pet.Gender(snap.Gender),
			pet.Size(snap.Size),
			patch.Coalesce(in.Description, snap.Description),
			patch.Coalesce(in.ImageURL, snap.ImageURL),
			priceCents,
			patch.Coalesce(in.Available, snap.Available),
			snap.CreatedAt, snap.UpdatedAt,
		)
		if derr = tx.Pets().Update(ctx, tx.DB(), updated); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *petUseCaseImpl) DeletePet(ctx context.Context, actor shared.Actor, petID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := loadOwnedPet(ctx, tx, petID, actor); derr != nil {
			return derr
		}
		if derr := tx.Pets().Delete(ctx, tx.DB(), petID); derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				// Requests already reference this pet; history must survive.
				return errs.Mark(derr, errs.ErrInvalidTransition)
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func loadOwnedPet(ctx context.Context, tx shared.Tx, petID uuid.UUID, actor shared.Actor) (*shared.PetSnapshot, error) {
	snap, err := tx.Reads().PetByID(ctx, petID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPetNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if snap.ShelterID != actor.ID && !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}
	return snap, nil
}
