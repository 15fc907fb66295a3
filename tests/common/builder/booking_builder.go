//go:build unit || e2e

package builder

import (
	"time"

	"petconnect/internal/domain/booking"
	reqdto "petconnect/internal/handler/dto/request"
	"petconnect/internal/usecase/queries"
	"petconnect/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID
	AdopterID   uuid.UUID
	AdopterName string
	ServiceID   uuid.UUID
	ServiceName string
	ShelterID   uuid.UUID
	ShelterName string
	ScheduledAt time.Time
	Notes       string
	Address     string
	Status      booking.Status
	PriceCents  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:          uuid.New(),
		AdopterID:   uuid.New(),
		AdopterName: "Test Adopter",
		ServiceID:   uuid.New(),
		ServiceName: "Full Grooming",
		ShelterID:   uuid.New(),
		ShelterName: "Happy Paws Shelter",
		ScheduledAt: now.Add(48 * time.Hour),
		Notes:       "Please handle gently, first visit.",
		Address:     "42 Lakeview Road, Pune",
		Status:      booking.StatusPending,
		PriceCents:  120000,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ServiceID:   b.ServiceID,
		ScheduledAt: b.ScheduledAt,
		Notes:       b.Notes,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:          b.ID,
		AdopterID:   b.AdopterID,
		AdopterName: b.AdopterName,
		ServiceID:   b.ServiceID,
		ServiceName: b.ServiceName,
		ShelterID:   b.ShelterID,
		ShelterName: b.ShelterName,
		ScheduledAt: b.ScheduledAt,
		Notes:       b.Notes,
		Address:     b.Address,
		Status:      string(b.Status),
		PriceCents:  b.PriceCents,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:          b.ID,
		ServiceName: b.ServiceName,
		AdopterName: b.AdopterName,
		ScheduledAt: b.ScheduledAt,
		Status:      string(b.Status),
		PriceCents:  b.PriceCents,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:               b.ID,
		AdopterID:        b.AdopterID,
		AdopterName:      b.AdopterName,
		ServiceID:        b.ServiceID,
		ServiceName:      b.ServiceName,
		ServiceShelterID: b.ShelterID,
		ScheduledAt:      b.ScheduledAt,
		Notes:            b.Notes,
		Address:          b.Address,
		Status:           string(b.Status),
		PriceCents:       b.PriceCents,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}
