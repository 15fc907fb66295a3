package queries

import (
	"context"
	"time"

	"petconnect/internal/infra"
	"petconnect/internal/pkg/errs"

	"github.com/google/uuid"
)

type PetView struct {
	ID          uuid.UUID `json:"id"`
	ShelterID   uuid.UUID `json:"shelter_id"`
	ShelterName string    `json:"shelter_name"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Breed       string    `json:"breed,omitempty"`
	AgeMonths   int32     `json:"age_months"`
	Gender      string    `json:"gender"`
	Size        string    `json:"size"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PetQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PetView, error)
	ListAvailable(ctx context.Context) ([]*PetView, error)
	ListByShelter(ctx context.Context, shelterID uuid.UUID) ([]*PetView, error)
}

type PetReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PetView, error)
	FindAvailable(ctx context.Context) ([]*PetView, error)
	FindByShelter(ctx context.Context, shelterID uuid.UUID) ([]*PetView, error)
}

type petQueriesImpl struct {
	readStore PetReadStore
}

func NewPetQueries(readStore PetReadStore) PetQueries {
	return &petQueriesImpl{readStore: readStore}
}

func (q *petQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PetView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPetNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *petQueriesImpl) ListAvailable(ctx context.Context) ([]*PetView, error) {
	return q.readStore.FindAvailable(ctx)
}

func (q *petQueriesImpl) ListByShelter(ctx context.Context, shelterID uuid.UUID) ([]*PetView, error) {
	return q.readStore.FindByShelter(ctx, shelterID)
}
