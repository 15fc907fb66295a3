package queries

import (
	"context"
	"time"

	"petconnect/internal/infra"
	"petconnect/internal/pkg/errs"

	"github.com/google/uuid"
)

type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	ShelterID   uuid.UUID `json:"shelter_id"`
	ShelterName string    `json:"shelter_name"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	DurationMin int32     `json:"duration_min"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ServiceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	ListAvailable(ctx context.Context) ([]*ServiceView, error)
	ListByShelter(ctx context.Context, shelterID uuid.UUID) ([]*ServiceView, error)
}

type ServiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	FindAvailable(ctx context.Context) ([]*ServiceView, error)
	FindByShelter(ctx context.Context, shelterID uuid.UUID) ([]*ServiceView, error)
}

type serviceQueriesImpl struct {
	readStore ServiceReadStore
}

func NewServiceQueries(readStore ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{readStore: readStore}
}

func (q *serviceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *serviceQueriesImpl) ListAvailable(ctx context.Context) ([]*ServiceView, error) {
	return q.readStore.FindAvailable(ctx)
}

func (q *serviceQueriesImpl) ListByShelter(ctx context.Context, shelterID uuid.UUID) ([]*ServiceView, error) {
	return q.readStore.FindByShelter(ctx, shelterID)
}
