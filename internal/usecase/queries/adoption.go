package queries

import (
	"context"
	"time"

	"petconnect/internal/infra"
	"petconnect/internal/pkg/errs"
	"petconnect/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type AdoptionRequestView struct {
	ID               uuid.UUID  `json:"id"`
	AdopterID        uuid.UUID  `json:"adopter_id"`
	AdopterName      string     `json:"adopter_name"`
	AdopterEmail     string     `json:"adopter_email"`
	PetID            uuid.UUID  `json:"pet_id"`
	PetName          string     `json:"pet_name"`
	ShelterID        uuid.UUID  `json:"shelter_id"`
	ShelterName      string     `json:"shelter_name"`
	Message          string     `json:"message"`
	DeliveryAddress  string     `json:"delivery_address,omitempty"`
	Status           string     `json:"status"`
	PaymentStatus    string     `json:"payment_status"`
	PaymentAmount    int64      `json:"payment_amount_cents"`
	PaymentReference *string    `json:"payment_reference,omitempty"`
	PaymentDate      *time.Time `json:"payment_date,omitempty"`
	EstimatedDate    *time.Time `json:"estimated_delivery_date,omitempty"`
	ActualDate       *time.Time `json:"actual_delivery_date,omitempty"`
	DeliveryNotes    string     `json:"delivery_notes,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type AdoptionRequestListItem struct {
	ID            uuid.UUID `json:"id"`
	PetID         uuid.UUID `json:"pet_id"`
	PetName       string    `json:"pet_name"`
	AdopterName   string    `json:"adopter_name"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	PaymentAmount int64     `json:"payment_amount_cents"`
	CreatedAt     time.Time `json:"created_at"`
}

type AdoptionQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*AdoptionRequestView, error)
	ListByAdopter(ctx context.Context, adopterID uuid.UUID) ([]*AdoptionRequestListItem, error)
	ListByShelter(ctx context.Context, shelterID uuid.UUID, statusFilter *string) ([]*AdoptionRequestListItem, error)
}

type AdoptionRequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AdoptionRequestView, error)
	FindByAdopter(ctx context.Context, adopterID uuid.UUID) ([]*AdoptionRequestListItem, error)
	FindByShelter(ctx context.Context, shelterID uuid.UUID, statusFilter *string) ([]*AdoptionRequestListItem, error)
}

type adoptionQueriesImpl struct {
	readStore AdoptionRequestReadStore
}

func NewAdoptionQueries(readStore AdoptionRequestReadStore) AdoptionQueries {
	return &adoptionQueriesImpl{readStore: readStore}
}

// GetByID is party-scoped: only the adopter, the pet's shelter, or an admin
// may see a request.
func (q *adoptionQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*AdoptionRequestView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAdoptionRequestNotFound
		}
		return nil, err
	}
	if view.AdopterID != actor.ID && view.ShelterID != actor.ID && !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}
	return view, nil
}

func (q *adoptionQueriesImpl) ListByAdopter(ctx context.Context, adopterID uuid.UUID) ([]*AdoptionRequestListItem, error) {
	return q.readStore.FindByAdopter(ctx, adopterID)
}

func (q *adoptionQueriesImpl) ListByShelter(ctx context.Context, shelterID uuid.UUID, statusFilter *string) ([]*AdoptionRequestListItem, error) {
	return q.readStore.FindByShelter(ctx, shelterID, statusFilter)
}
