package queries

import (
	"context"
	"time"

	"petconnect/internal/infra"
	"petconnect/internal/pkg/errs"
	"petconnect/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingView struct {
	ID          uuid.UUID `json:"id"`
	AdopterID   uuid.UUID `json:"adopter_id"`
	AdopterName string    `json:"adopter_name"`
	ServiceID   uuid.UUID `json:"service_id"`
	ServiceName string    `json:"service_name"`
	ShelterID   uuid.UUID `json:"shelter_id"`
	ShelterName string    `json:"shelter_name"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Notes       string    `json:"notes,omitempty"`
	Address     string    `json:"address,omitempty"`
	Status      string    `json:"status"`
	PriceCents  int64     `json:"price_cents"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID          uuid.UUID `json:"id"`
	ServiceName string    `json:"service_name"`
	AdopterName string    `json:"adopter_name"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	PriceCents  int64     `json:"price_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error)
	ListByAdopter(ctx context.Context, adopterID uuid.UUID) ([]*BookingListItem, error)
	ListByShelter(ctx context.Context, shelterID uuid.UUID, statusFilter *string) ([]*BookingListItem, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByAdopter(ctx context.Context, adopterID uuid.UUID) ([]*BookingListItem, error)
	FindByShelter(ctx context.Context, shelterID uuid.UUID, statusFilter *string) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}
	if view.AdopterID != actor.ID && view.ShelterID != actor.ID && !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByAdopter(ctx context.Context, adopterID uuid.UUID) ([]*BookingListItem, error) {
	return q.readStore.FindByAdopter(ctx, adopterID)
}

func (q *bookingQueriesImpl) ListByShelter(ctx context.Context, shelterID uuid.UUID, statusFilter *string) ([]*BookingListItem, error) {
	return q.readStore.FindByShelter(ctx, shelterID, statusFilter)
}
