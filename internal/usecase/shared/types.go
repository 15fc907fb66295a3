package shared

import (
	"time"

	"petconnect/internal/domain/adoption"
	"petconnect/internal/domain/booking"
	"petconnect/internal/domain/pet"
	"petconnect/internal/domain/service"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller for authorization checks.
type Actor struct {
	ID   uuid.UUID
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == "admin"
}

func (a Actor) IsAdopter() bool {
	return a.Role == "adopter"
}

type PetSnapshot struct {
	ID          uuid.UUID
	ShelterID   uuid.UUID
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

func (s *PetSnapshot) Entity() *pet.Pet {
	return pet.ReconstructPet(
		s.ID, s.ShelterID,
		s.Name,
		pet.Species(s.Species),
		s.Breed,
		s.AgeMonths,
		pet.Gender(s.Gender),
		pet.Size(s.Size),
		s.Description,
		s.ImageURL,
		s.PriceCents,
		s.Available,
		s.CreatedAt, s.UpdatedAt,
	)
}

type ServiceSnapshot struct {
	ID          uuid.UUID
	ShelterID   uuid.UUID
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

func (s *ServiceSnapshot) Entity() *service.Service {
	return service.ReconstructService(
		s.ID, s.ShelterID,
		s.Name,
		service.Category(s.Category),
		s.Description,
		s.ImageURL,
		s.PriceCents,
		s.DurationMin,
		s.Available,
		s.CreatedAt, s.UpdatedAt,
	)
}

type UserSnapshot struct {
	ID      uuid.UUID
	Email   string
	Name    string
	Role    string
	Address string
}

// AdoptionRequestSnapshot carries the request row plus the joined adopter and
// pet columns that transitions and notification fan-out need.
type AdoptionRequestSnapshot struct {
	ID                 uuid.UUID
	AdopterID          uuid.UUID
	AdopterName        string
	PetID              uuid.UUID
	PetName            string
	PetShelterID       uuid.UUID
	Message            string
	DeliveryAddress    string
	Status             string
	PaymentStatus      string
	PaymentAmountCents int64
	PaymentReference   *string
	PaymentDate        *time.Time
	GatewayOrderID     *string
	EstimatedDate      *time.Time
	ActualDate         *time.Time
	DeliveryNotes      string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Entity rebuilds the domain aggregate so guard methods can run against the
// persisted state.
func (s *AdoptionRequestSnapshot) Entity() (*adoption.Request, error) {
	amount, err := adoption.NewMoney(s.PaymentAmountCents)
	if err != nil {
		return nil, err
	}
	return adoption.ReconstructRequest(
		s.ID, s.AdopterID, s.PetID,
		s.Message, s.DeliveryAddress,
		adoption.Status(s.Status),
		adoption.PaymentStatus(s.PaymentStatus),
		amount,
		s.PaymentReference,
		s.PaymentDate,
		s.GatewayOrderID,
		s.EstimatedDate,
		s.ActualDate,
		s.DeliveryNotes,
		s.CreatedAt, s.UpdatedAt,
	), nil
}

type BookingSnapshot struct {
	ID               uuid.UUID
	AdopterID        uuid.UUID
	AdopterName      string
	ServiceID        uuid.UUID
	ServiceName      string
	ServiceShelterID uuid.UUID
	ScheduledAt      time.Time
	Notes            string
	Address          string
	Status           string
	PriceCents       int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (s *BookingSnapshot) Entity() *booking.Booking {
	return booking.ReconstructBooking(
		s.ID, s.AdopterID, s.ServiceID,
		s.ScheduledAt,
		s.Notes, s.Address,
		booking.Status(s.Status),
		s.PriceCents,
		s.CreatedAt, s.UpdatedAt,
	)
}
