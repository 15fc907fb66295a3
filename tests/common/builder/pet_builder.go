//go:build unit || e2e

package builder

import (
	"time"

	reqdto "petconnect/internal/handler/dto/request"
	"petconnect/internal/usecase/queries"
	"petconnect/internal/usecase/shared"

	"github.com/google/uuid"
)

type PetBuilder struct {
	ID          uuid.UUID
	ShelterID   uuid.UUID
	ShelterName string
	Name        string
	Species     string
	Breed       string
	AgeMonths   int32
	Gender      string
	Size        string
	Description string
	ImageURL    string
	PriceCents  int64
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewPetBuilder() *PetBuilder {
	now := time.Now()
	return &PetBuilder{
		ID:          uuid.New(),
		ShelterID:   uuid.New(),
		ShelterName: "Happy Paws Shelter",
		Name:        "Bruno",
		Species:     "dog",
		Breed:       "Labrador",
		AgeMonths:   18,
		Gender:      "male",
		Size:        "large",
		Description: "Friendly and house trained",
		ImageURL:    "https://cdn.petconnect.example/pets/bruno.jpg",
		PriceCents:  250000,
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (p *PetBuilder) With(mutate func(*PetBuilder)) *PetBuilder {
	mutate(p)
	return p
}

func (p *PetBuilder) BuildCreateRequestDTO() reqdto.CreatePetRequest {
	return reqdto.CreatePetRequest{
		Name:        p.Name,
		Species:     p.Species,
		Breed:       p.Breed,
		AgeMonths:   p.AgeMonths,
		Gender:      p.Gender,
		Size:        p.Size,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		PriceCents:  p.PriceCents,
	}
}

func (p *PetBuilder) BuildUpdateRequestDTO() reqdto.UpdatePetRequest {
	name := p.Name
	price := p.PriceCents
	return reqdto.UpdatePetRequest{
		Name:       &name,
		PriceCents: &price,
	}
}

func (p *PetBuilder) BuildView() *queries.PetView {
	return &queries.PetView{
		ID:          p.ID,
		ShelterID:   p.ShelterID,
		ShelterName: p.ShelterName,
		Name:        p.Name,
		Species:     p.Species,
		Breed:       p.Breed,
		AgeMonths:   p.AgeMonths,
		Gender:      p.Gender,
		Size:        p.Size,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		PriceCents:  p.PriceCents,
		IsAvailable: p.Available,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (p *PetBuilder) BuildSnapshot() *shared.PetSnapshot {
	return &shared.PetSnapshot{
		ID:          p.ID,
		ShelterID:   p.ShelterID,
		Name:        p.Name,
		Species:     p.Species,
		Breed:       p.Breed,
		AgeMonths:   p.AgeMonths,
		Gender:      p.Gender,
		Size:        p.Size,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		PriceCents:  p.PriceCents,
		Available:   p.Available,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
