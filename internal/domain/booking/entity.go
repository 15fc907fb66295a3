package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrScheduledInPast = errors.New("scheduled time cannot be in the past")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrNotPending      = errors.New("booking is not pending")
	ErrNotConfirmed    = errors.New("booking is not confirmed")
	ErrNotInProgress   = errors.New("booking is not in progress")
	ErrNotCancellable  = errors.New("booking can no longer be cancelled")
)

// Booking walks pending -> confirmed -> in_progress -> completed, with
// cancellation possible until work starts. The shelter drives every
// transition except creation and cancellation.
type Booking struct {
	id          uuid.UUID
	adopterID   uuid.UUID
	serviceID   uuid.UUID
	scheduledAt time.Time
	notes       string
	address     string
	status      Status
	priceCents  int64
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBooking(adopterID, serviceID uuid.UUID, scheduledAt time.Time, notes, address string, servicePriceCents int64, now time.Time) (*Booking, error) {
	if scheduledAt.Before(now) {
		return nil, ErrScheduledInPast
	}
	if servicePriceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Booking{
		id:          uuid.New(),
		adopterID:   adopterID,
		serviceID:   serviceID,
		scheduledAt: scheduledAt,
		notes:       notes,
		address:     address,
		status:      StatusPending,
		priceCents:  servicePriceCents,
	}, nil
}

func ReconstructBooking(
	id, adopterID, serviceID uuid.UUID,
	scheduledAt time.Time,
	notes, address string,
	status Status,
	priceCents int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		adopterID:   adopterID,
		serviceID:   serviceID,
		scheduledAt: scheduledAt,
		notes:       notes,
		address:     address,
		status:      status,
		priceCents:  priceCents,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Booking) Confirm() error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusConfirmed
	return nil
}

func (b *Booking) Start() error {
	if b.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	b.status = StatusInProgress
	return nil
}

func (b *Booking) Complete() error {
	if b.status != StatusInProgress {
		return ErrNotInProgress
	}
	b.status = StatusCompleted
	return nil
}

func (b *Booking) Cancel() error {
	if b.status != StatusPending && b.status != StatusConfirmed {
		return ErrNotCancellable
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) AdopterID() uuid.UUID   { return b.adopterID }
func (b *Booking) ServiceID() uuid.UUID   { return b.serviceID }
func (b *Booking) ScheduledAt() time.Time { return b.scheduledAt }
func (b *Booking) Notes() string          { return b.notes }
func (b *Booking) Address() string        { return b.address }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) PriceCents() int64      { return b.priceCents }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }
