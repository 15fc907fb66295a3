package response

import (
	"time"

	"petconnect/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	AdopterID   uuid.UUID `json:"adopterId"`
	AdopterName string    `json:"adopterName"`
	ServiceID   uuid.UUID `json:"serviceId"`
	ServiceName string    `json:"serviceName"`
	ShelterID   uuid.UUID `json:"shelterId"`
	ShelterName string    `json:"shelterName"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Notes       string    `json:"notes,omitempty"`
	Address     string    `json:"address,omitempty"`
	Status      string    `json:"status"`
	PriceCents  int64     `json:"priceCents"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID          uuid.UUID `json:"id"`
	ServiceName string    `json:"serviceName"`
	AdopterName string    `json:"adopterName"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Status      string    `json:"status"`
	PriceCents  int64     `json:"priceCents"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:          v.ID,
		AdopterID:   v.AdopterID,
		AdopterName: v.AdopterName,
		ServiceID:   v.ServiceID,
		ServiceName: v.ServiceName,
		ShelterID:   v.ShelterID,
		ShelterName: v.ShelterName,
		ScheduledAt: v.ScheduledAt,
		Notes:       v.Notes,
		Address:     v.Address,
		Status:      v.Status,
		PriceCents:  v.PriceCents,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromBookingListItem(v *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:          v.ID,
		ServiceName: v.ServiceName,
		AdopterName: v.AdopterName,
		ScheduledAt: v.ScheduledAt,
		Status:      v.Status,
		PriceCents:  v.PriceCents,
		CreatedAt:   v.CreatedAt,
	}
}
