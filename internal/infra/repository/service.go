package repository

import (
	"context"

	"petconnect/internal/domain/service"
	"petconnect/internal/infra"
	"petconnect/internal/infra/db"

	"github.com/google/uuid"
)

type ServiceRepository struct{}

func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{}
}

const createServiceSQL = `
INSERT INTO services (
    id, shelter_id, name, category, description, image_url, price_cents, duration_min, is_available
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

func (r *ServiceRepository) Create(ctx context.Context, tx db.DBTX, s *service.Service) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createServiceSQL,
		s.ID(),
		s.ShelterID(),
		s.Name(),
		s.Category().String(),
		s.Description(),
		s.ImageURL(),
		s.PriceCents(),
		s.DurationMin(),
		s.IsAvailable(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create service", err)
	}
	return id, nil
}

const updateServiceSQL = `
UPDATE services SET
    name = $2,
    description = $3,
    image_url = $4,
    price_cents = $5,
    duration_min = $6,
    is_available = $7,
    updated_at = now()
WHERE id = $1`

func (r *ServiceRepository) Update(ctx context.Context, tx db.DBTX, s *service.Service) error {
	tag, err := tx.Exec(ctx, updateServiceSQL,
		s.ID(),
		s.Name(),
		s.Description(),
		s.ImageURL(),
		s.PriceCents(),
		s.DurationMin(),
		s.IsAvailable(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}
