package request

import (
	"strings"
	"time"

	"petconnect/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ServiceID   uuid.UUID `json:"service_id" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Notes       string    `json:"notes"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ServiceID:   r.ServiceID,
		ScheduledAt: r.ScheduledAt,
		Notes:       strings.TrimSpace(r.Notes),
	}
}
