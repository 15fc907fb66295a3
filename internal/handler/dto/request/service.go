package request

import (
	"petconnect/internal/usecase/commands"
)

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" binding:"omitempty,url"`
	PriceCents  int64  `json:"price_cents" binding:"min=0"`
	DurationMin int32  `json:"duration_min" binding:"required,min=1"`
}

func (r CreateServiceRequest) ToInput() commands.CreateServiceInput {
	return commands.CreateServiceInput{
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		PriceCents:  r.PriceCents,
		DurationMin: r.DurationMin,
	}
}

type UpdateServiceRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	PriceCents  *int64  `json:"price_cents,omitempty"`
	DurationMin *int32  `json:"duration_min,omitempty"`
	Available   *bool   `json:"is_available,omitempty"`
}

func (r UpdateServiceRequest) ToInput() commands.UpdateServiceInput {
	return commands.UpdateServiceInput{
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		PriceCents:  r.PriceCents,
		DurationMin: r.DurationMin,
		Available:   r.Available,
	}
}
