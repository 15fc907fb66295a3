package shared

import (
	"context"

	"petconnect/internal/domain/adoption"
	"petconnect/internal/domain/booking"
	"petconnect/internal/domain/pet"
	"petconnect/internal/domain/service"
	"petconnect/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	AdoptionRequests() AdoptionRequestRepository
	Pets() PetRepository
	Services() ServiceRepository
	Bookings() BookingRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	PetByID(ctx context.Context, id uuid.UUID) (*PetSnapshot, error)
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	AdoptionRequestByID(ctx context.Context, id uuid.UUID) (*AdoptionRequestSnapshot, error)
	// AdoptionRequestByIDForUpdate locks the row so concurrent transitions on
	// the same request serialize instead of clobbering each other.
	AdoptionRequestByIDForUpdate(ctx context.Context, id uuid.UUID) (*AdoptionRequestSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	BookingByIDForUpdate(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
}

type AdoptionRequestRepository interface {
	Create(ctx context.Context, tx db.DBTX, req *adoption.Request) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, req *adoption.Request) error
	// RejectPendingSiblings bulk-rejects every other pending request for the
	// pet when one request is approved. Returns how many were rejected.
	RejectPendingSiblings(ctx context.Context, tx db.DBTX, petID, approvedID uuid.UUID) (int64, error)
}

type PetRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *pet.Pet) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, p *pet.Pet) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	// ClaimForAdoption flips is_available to false only if it is still true,
	// returning false when another approval already took the pet.
	ClaimForAdoption(ctx context.Context, tx db.DBTX, id uuid.UUID) (bool, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *service.Service) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, s *service.Service) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error
}

type NotificationRepository interface {
	Create(ctx context.Context, tx db.DBTX, userID uuid.UUID, message, link string) (uuid.UUID, error)
	MarkRead(ctx context.Context, tx db.DBTX, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, tx db.DBTX, userID uuid.UUID) (int64, error)
}
