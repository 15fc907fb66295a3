package repository

import (
	"context"

	"petconnect/internal/domain/adoption"
	"petconnect/internal/infra"
	"petconnect/internal/infra/db"

	"github.com/google/uuid"
)

type AdoptionRequestRepository struct{}

func NewAdoptionRequestRepository() *AdoptionRequestRepository {
	return &AdoptionRequestRepository{}
}

const createAdoptionRequestSQL = `
INSERT INTO adoption_requests (
    id, adopter_id, pet_id, message, delivery_address, status, payment_status, payment_amount_cents
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

func (r *AdoptionRequestRepository) Create(ctx context.Context, tx db.DBTX, req *adoption.Request) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createAdoptionRequestSQL,
		req.ID(),
		req.AdopterID(),
		req.PetID(),
		req.Message(),
		req.DeliveryAddress(),
		req.Status().String(),
		req.PaymentStatus().String(),
		req.PaymentAmount().Cents(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create adoption request", err)
	}
	return id, nil
}

const updateAdoptionRequestSQL = `
UPDATE adoption_requests SET
    status = $2,
    payment_status = $3,
    payment_reference = $4,
    payment_date = $5,
    gateway_order_id = $6,
    estimated_delivery_date = $7,
    actual_delivery_date = $8,
    delivery_notes = $9,
    updated_at = now()
WHERE id = $1`

func (r *AdoptionRequestRepository) Update(ctx context.Context, tx db.DBTX, req *adoption.Request) error {
	tag, err := tx.Exec(ctx, updateAdoptionRequestSQL,
		req.ID(),
		req.Status().String(),
		req.PaymentStatus().String(),
		req.PaymentReference(),
		req.PaymentDate(),
		req.GatewayOrderID(),
		req.EstimatedDate(),
		req.ActualDate(),
		req.DeliveryNotes(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update adoption request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("adoption request not found", nil, infra.KindNotFound)
	}
	return nil
}

const rejectPendingSiblingsSQL = `
UPDATE adoption_requests SET
    status = 'rejected',
    updated_at = now()
WHERE pet_id = $1 AND id <> $2 AND status = 'pending'`

func (r *AdoptionRequestRepository) RejectPendingSiblings(ctx context.Context, tx db.DBTX, petID, approvedID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, rejectPendingSiblingsSQL, petID, approvedID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to reject sibling adoption requests", err)
	}
	return tag.RowsAffected(), nil
}
