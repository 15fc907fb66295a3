package response

import (
	"time"

	"petconnect/internal/usecase/queries"

	"github.com/google/uuid"
)

type PetResponse struct {
	ID          uuid.UUID `json:"id"`
	ShelterID   uuid.UUID `json:"shelterId"`
	ShelterName string    `json:"shelterName"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Breed       string    `json:"breed,omitempty"`
	AgeMonths   int32     `json:"ageMonths"`
	Gender      string    `json:"gender"`
	Size        string    `json:"size"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromPetView(v *queries.PetView) *PetResponse {
	return &PetResponse{
		ID:          v.ID,
		ShelterID:   v.ShelterID,
		ShelterName: v.ShelterName,
		Name:        v.Name,
		Species:     v.Species,
		Breed:       v.Breed,
		AgeMonths:   v.AgeMonths,
		Gender:      v.Gender,
		Size:        v.Size,
		Description: v.Description,
		ImageURL:    v.ImageURL,
		PriceCents:  v.PriceCents,
		IsAvailable: v.IsAvailable,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromPetViews(views []*queries.PetView) []*PetResponse {
	out := make([]*PetResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromPetView(v))
	}
	return out
}
