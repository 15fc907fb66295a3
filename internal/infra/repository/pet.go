package repository

import (
	"context"

	"petconnect/internal/domain/pet"
	"petconnect/internal/infra"
	"petconnect/internal/infra/db"

	"github.com/google/uuid"
)

type PetRepository struct{}

func NewPetRepository() *PetRepository {
	return &PetRepository{}
}

const createPetSQL = `
INSERT INTO pets (
    id, shelter_id, name, species, breed, age_months, gender, size,
    description, image_url, price_cents, is_available
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`

func (r *PetRepository) Create(ctx context.Context, tx db.DBTX, p *pet.Pet) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createPetSQL,
		p.ID(),
		p.ShelterID(),
		p.Name(),
		p.Species().String(),
		p.Breed(),
		p.AgeMonths(),
		p.Gender().String(),
		p.Size().String(),
		p.Description(),
		p.ImageURL(),
		p.PriceCents(),
		p.IsAvailable(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create pet", err)
	}
	return id, nil
}

const updatePetSQL = `
UPDATE pets SET
    name = $2,
    breed = $3,
    age_months = $4,
    description = $5,
    image_url = $6,
    price_cents = $7,
    is_available = $8,
    updated_at = now()
WHERE id = $1`

func (r *PetRepository) Update(ctx context.Context, tx db.DBTX, p *pet.Pet) error {
	tag, err := tx.Exec(ctx, updatePetSQL,
		p.ID(),
		p.Name(),
		p.Breed(),
		p.AgeMonths(),
		p.Description(),
		p.ImageURL(),
		p.PriceCents(),
		p.IsAvailable(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update pet", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pet not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PetRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete pet", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pet not found", nil, infra.KindNotFound)
	}
	return nil
}

const claimPetSQL = `
UPDATE pets SET
    is_available = false,
    updated_at = now()
WHERE id = $1 AND is_available = true`

// ClaimForAdoption is the atomic availability flip that decides concurrent
// approvals for the same pet. Zero rows means someone else won.
func (r *PetRepository) ClaimForAdoption(ctx context.Context, tx db.DBTX, id uuid.UUID) (bool, error) {
	tag, err := tx.Exec(ctx, claimPetSQL, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim pet for adoption", err)
	}
	return tag.RowsAffected() == 1, nil
}
