package response

import (
	"time"

	"petconnect/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	ShelterID   uuid.UUID `json:"shelterId"`
	ShelterName string    `json:"shelterName"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	DurationMin int32     `json:"durationMin"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	return &ServiceResponse{
		ID:          v.ID,
		ShelterID:   v.ShelterID,
		ShelterName: v.ShelterName,
		Name:        v.Name,
		Category:    v.Category,
		Description: v.Description,
		ImageURL:    v.ImageURL,
		PriceCents:  v.PriceCents,
		DurationMin: v.DurationMin,
		IsAvailable: v.IsAvailable,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromServiceViews(views []*queries.ServiceView) []*ServiceResponse {
	out := make([]*ServiceResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromServiceView(v))
	}
	return out
}
