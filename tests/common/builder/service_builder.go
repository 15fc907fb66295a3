//go:build unit || e2e

package builder

import (
	"time"

	reqdto "petconnect/internal/handler/dto/request"
	"petconnect/internal/usecase/queries"
	"petconnect/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	ID          uuid.UUID
	ShelterID   uuid.UUID
	ShelterName string
	Name        string
	Category    string
	Description string
	ImageURL    string
	PriceCents  int64
	DurationMin int32
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewServiceBuilder() *ServiceBuilder {
	now := time.Now()
	return &ServiceBuilder{
		ID:          uuid.New(),
		ShelterID:   uuid.New(),
		ShelterName: "Happy Paws Shelter",
		Name:        "Full Grooming",
		Category:    "grooming",
		Description: "Bath, trim and nail clipping",
		ImageURL:    "https://cdn.petconnect.example/services/grooming.jpg",
		PriceCents:  120000,
		DurationMin: 60,
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(s)
	return s
}

func (s *ServiceBuilder) BuildCreateRequestDTO() reqdto.CreateServiceRequest {
	return reqdto.CreateServiceRequest{
		Name:        s.Name,
		Category:    s.Category,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		PriceCents:  s.PriceCents,
		DurationMin: s.DurationMin,
	}
}

func (s *ServiceBuilder) BuildView() *queries.ServiceView {
	return &queries.ServiceView{
		ID:          s.ID,
		ShelterID:   s.ShelterID,
		ShelterName: s.ShelterName,
		Name:        s.Name,
		Category:    s.Category,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		PriceCents:  s.PriceCents,
		DurationMin: s.DurationMin,
		IsAvailable: s.Available,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (s *ServiceBuilder) BuildSnapshot() *shared.ServiceSnapshot {
	return &shared.ServiceSnapshot{
		ID:          s.ID,
		ShelterID:   s.ShelterID,
		Name:        s.Name,
		Category:    s.Category,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		PriceCents:  s.PriceCents,
		DurationMin: s.DurationMin,
		Available:   s.Available,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
