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

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewSQL = `
SELECT b.id, b.adopter_id, ua.name, b.service_id, s.name, s.shelter_id, us.name,
       b.scheduled_at, b.notes, b.address, b.status, b.price_cents,
       b.created_at, b.updated_at
FROM bookings b
JOIN users ua ON ua.id = b.adopter_id
JOIN services s ON s.id = b.service_id
JOIN users us ON us.id = s.shelter_id
WHERE b.id = $1`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var v queries.BookingView
	err := r.db.QueryRow(ctx, bookingViewSQL, id).Scan(
		&v.ID, &v.AdopterID, &v.AdopterName, &v.ServiceID, &v.ServiceName,
		&v.ShelterID, &v.ShelterName, &v.ScheduledAt, &v.Notes, &v.Address,
		&v.Status, &v.PriceCents, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return &v, nil
}

const bookingsByAdopterSQL = `
SELECT b.id, s.name, ua.name, b.scheduled_at, b.status, b.price_cents, b.created_at
FROM bookings b
JOIN services s ON s.id = b.service_id
JOIN users ua ON ua.id = b.adopter_id
WHERE b.adopter_id = $1
ORDER BY b.scheduled_at DESC`

func (r *BookingReadStore) FindByAdopter(ctx context.Context, adopterID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, bookingsByAdopterSQL, adopterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by adopter", err)
	}
	defer rows.Close()

	return scanBookingListItems(rows)
}

const bookingsByShelterSQL = `
SELECT b.id, s.name, ua.name, b.scheduled_at, b.status, b.price_cents, b.created_at
FROM bookings b
JOIN services s ON s.id = b.service_id
JOIN users ua ON ua.id = b.adopter_id
WHERE s.shelter_id = $1 AND ($2::text IS NULL OR b.status = $2)
ORDER BY b.scheduled_at DESC`

func (r *BookingReadStore) FindByShelter(ctx context.Context, shelterID uuid.UUID, statusFilter *string) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, bookingsByShelterSQL, shelterID, statusFilter)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by shelter", err)
	}
	defer rows.Close()

	return scanBookingListItems(rows)
}

func scanBookingListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	result := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.ServiceName, &item.AdopterName, &item.ScheduledAt,
			&item.Status, &item.PriceCents, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}

const bookingSnapshotSQL = `
SELECT b.id, b.adopter_id, ua.name, b.service_id, s.name, s.shelter_id,
       b.scheduled_at, b.notes, b.address, b.status, b.price_cents,
       b.created_at, b.updated_at
FROM bookings b
JOIN users ua ON ua.id = b.adopter_id
JOIN services s ON s.id = b.service_id
WHERE b.id = $1`

const bookingSnapshotForUpdateSQL = bookingSnapshotSQL + `
FOR UPDATE OF b`

func (r *BookingReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*shared.BookingSnapshot, error) {
	sql := bookingSnapshotSQL
	if forUpdate {
		sql = bookingSnapshotForUpdateSQL
	}

	var s shared.BookingSnapshot
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&s.ID, &s.AdopterID, &s.AdopterName, &s.ServiceID, &s.ServiceName,
		&s.ServiceShelterID, &s.ScheduledAt, &s.Notes, &s.Address, &s.Status,
		&s.PriceCents, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read booking snapshot", err)
	}
	return &s, nil
}
