package readstore

import (
	"context"

	"petconnect/internal/infra"
	"petconnect/internal/infra/db"
	"petconnect/internal/pkg/pgconv"
	"petconnect/internal/usecase/queries"
	"petconnect/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AdoptionRequestReadStore struct {
	db db.DBTX
}

func NewAdoptionRequestReadStore(dbtx db.DBTX) *AdoptionRequestReadStore {
	return &AdoptionRequestReadStore{db: dbtx}
}

const adoptionRequestViewSQL = `
SELECT ar.id, ar.adopter_id, ua.name, ua.email,
       ar.pet_id, p.name, p.shelter_id, us.name,
       ar.message, ar.delivery_address, ar.status, ar.payment_status, ar.payment_amount_cents,
       ar.payment_reference, ar.payment_date, ar.estimated_delivery_date, ar.actual_delivery_date,
       ar.delivery_notes, ar.created_at, ar.updated_at
FROM adoption_requests ar
JOIN users ua ON ua.id = ar.adopter_id
JOIN pets p ON p.id = ar.pet_id
JOIN users us ON us.id = p.shelter_id
WHERE ar.id = $1`

func (r *AdoptionRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AdoptionRequestView, error) {
	var v queries.AdoptionRequestView
	err := r.db.QueryRow(ctx, adoptionRequestViewSQL, id).Scan(
		&v.ID, &v.AdopterID, &v.AdopterName, &v.AdopterEmail,
		&v.PetID, &v.PetName, &v.ShelterID, &v.ShelterName,
		&v.Message, &v.DeliveryAddress, &v.Status, &v.PaymentStatus, &v.PaymentAmount,
		&v.PaymentReference, &v.PaymentDate, &v.EstimatedDate, &v.ActualDate,
		&v.DeliveryNotes, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("adoption request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find adoption request by ID", err)
	}
	return &v, nil
}

const adoptionRequestsByAdopterSQL = `
SELECT ar.id, ar.pet_id, p.name, ua.name, ar.status, ar.payment_status,
       ar.payment_amount_cents, ar.created_at
FROM adoption_requests ar
JOIN pets p ON p.id = ar.pet_id
JOIN users ua ON ua.id = ar.adopter_id
WHERE ar.adopter_id = $1
ORDER BY ar.created_at DESC`

func (r *AdoptionRequestReadStore) FindByAdopter(ctx context.Context, adopterID uuid.UUID) ([]*queries.AdoptionRequestListItem, error) {
	rows, err := r.db.Query(ctx, adoptionRequestsByAdopterSQL, adopterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list adoption requests by adopter", err)
	}
	defer rows.Close()

	return scanAdoptionRequestListItems(rows)
}

const adoptionRequestsByShelterSQL = `
SELECT ar.id, ar.pet_id, p.name, ua.name, ar.status, ar.payment_status,
       ar.payment_amount_cents, ar.created_at
FROM adoption_requests ar
JOIN pets p ON p.id = ar.pet_id
JOIN users ua ON ua.id = ar.adopter_id
WHERE p.shelter_id = $1 AND ($2::text IS NULL OR ar.status = $2)
ORDER BY ar.created_at DESC`

func (r *AdoptionRequestReadStore) FindByShelter(ctx context.Context, shelterID uuid.UUID, statusFilter *string) ([]*queries.AdoptionRequestListItem, error) {
	rows, err := r.db.Query(ctx, adoptionRequestsByShelterSQL, shelterID, statusFilter)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list adoption requests by shelter", err)
	}
	defer rows.Close()

	return scanAdoptionRequestListItems(rows)
}

func scanAdoptionRequestListItems(rows pgx.Rows) ([]*queries.AdoptionRequestListItem, error) {
	result := make([]*queries.AdoptionRequestListItem, 0)
	for rows.Next() {
		var item queries.AdoptionRequestListItem
		if err := rows.Scan(
			&item.ID, &item.PetID, &item.PetName, &item.AdopterName,
			&item.Status, &item.PaymentStatus, &item.PaymentAmount, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan adoption request row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read adoption request rows", err)
	}
	return result, nil
}

const adoptionRequestSnapshotSQL = `
SELECT ar.id, ar.adopter_id, ua.name, ar.pet_id, p.name, p.shelter_id,
       ar.message, ar.delivery_address, ar.status, ar.payment_status, ar.payment_amount_cents,
       ar.payment_reference, ar.payment_date, ar.gateway_order_id,
       ar.estimated_delivery_date, ar.actual_delivery_date, ar.delivery_notes,
       ar.created_at, ar.updated_at
FROM adoption_requests ar
JOIN users ua ON ua.id = ar.adopter_id
JOIN pets p ON p.id = ar.pet_id
WHERE ar.id = $1`

// FOR UPDATE OF ar locks only the request row; the joined user and pet rows
// stay unlocked.
const adoptionRequestSnapshotForUpdateSQL = adoptionRequestSnapshotSQL + `
FOR UPDATE OF ar`

func (r *AdoptionRequestReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*shared.AdoptionRequestSnapshot, error) {
	sql := adoptionRequestSnapshotSQL
	if forUpdate {
		sql = adoptionRequestSnapshotForUpdateSQL
	}

	var s shared.AdoptionRequestSnapshot
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&s.ID, &s.AdopterID, &s.AdopterName, &s.PetID, &s.PetName, &s.PetShelterID,
		&s.Message, &s.DeliveryAddress, &s.Status, &s.PaymentStatus, &s.PaymentAmountCents,
		&s.PaymentReference, &s.PaymentDate, &s.GatewayOrderID,
		&s.EstimatedDate, &s.ActualDate, &s.DeliveryNotes,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("adoption request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read adoption request snapshot", err)
	}
	return &s, nil
}
