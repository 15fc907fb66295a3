package request

import (
	"petconnect/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type CreatePetRequest struct {
	Name        string `json:"name" binding:"required"`
	Species     string `json:"species" binding:"required"`
	Breed       string `json:"breed"`
	AgeMonths   int32  `json:"age_months" binding:"min=0"`
	Gender      string `json:"gender" binding:"required"`
	Size        string `json:"size" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" binding:"omitempty,url"`
	PriceCents  int64  `json:"price_cents" binding:"min=0"`
}

func (r CreatePetRequest) ToInput() (commands.CreatePetInput, error) {
	var in commands.CreatePetInput
	if err := copier.Copy(&in, &r); err != nil {
		return commands.CreatePetInput{}, err
	}
	return in, nil
}

type UpdatePetRequest struct {
	Name        *string `json:"name,omitempty"`
	Breed       *string `json:"breed,omitempty"`
	AgeMonths   *int32  `json:"age_months,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	PriceCents  *int64  `json:"price_cents,omitempty"`
	Available   *bool   `json:"is_available,omitempty"`
}

func (r UpdatePetRequest) ToInput() commands.UpdatePetInput {
	return commands.UpdatePetInput{
		Name:        r.Name,
		Breed:       r.Breed,
		AgeMonths:   r.AgeMonths,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		PriceCents:  r.PriceCents,
		Available:   r.Available,
	}
}
