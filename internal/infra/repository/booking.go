package repository

import (
	"context"

	"petconnect/internal/domain/booking"
	"petconnect/internal/infra"
	"petconnect/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (
    id, adopter_id, service_id, scheduled_at, notes, address, status, price_cents
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createBookingSQL,
		b.ID(),
		b.AdopterID(),
		b.ServiceID(),
		b.ScheduledAt(),
		b.Notes(),
		b.Address(),
		b.Status().String(),
		b.PriceCents(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

const updateBookingSQL = `
UPDATE bookings SET
    status = $2,
    updated_at = now()
WHERE id = $1`

func (r *BookingRepository) Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	tag, err := tx.Exec(ctx, updateBookingSQL, b.ID(), b.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
