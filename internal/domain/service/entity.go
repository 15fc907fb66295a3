package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCategory = errors.New("invalid service category")
	ErrEmptyName       = errors.New("service name cannot be empty")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrInvalidDuration = errors.New("duration must be positive")
)

type Service struct {
	id          uuid.UUID
	shelterID   uuid.UUID
	name        string
	category    Category
	description string
	imageURL    string
	priceCents  int64
	durationMin int32
	available   bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewService(
	shelterID uuid.UUID,
	name string,
	category Category,
	description string,
	imageURL string,
	priceCents int64,
	durationMin int32,
) (*Service, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}

	return &Service{
		id:          uuid.New(),
		shelterID:   shelterID,
		name:        name,
		category:    category,
		description: description,
		imageURL:    imageURL,
		priceCents:  priceCents,
		durationMin: durationMin,
		available:   true,
	}, nil
}

func ReconstructService(
	id, shelterID uuid.UUID,
	name string,
	category Category,
	description string,
	imageURL string,
	priceCents int64,
	durationMin int32,
	available bool,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:          id,
		shelterID:   shelterID,
		name:        name,
		category:    category,
		description: description,
		imageURL:    imageURL,
		priceCents:  priceCents,
		durationMin: durationMin,
		available:   available,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Service) IsOwnedBy(shelterID uuid.UUID) bool {
	return s.shelterID == shelterID
}

func (s *Service) Deactivate() {
	s.available = false
}

func (s *Service) Activate() {
	s.available = true
}

func (s *Service) ID() uuid.UUID        { return s.id }
func (s *Service) ShelterID() uuid.UUID { return s.shelterID }
func (s *Service) Name() string         { return s.name }
func (s *Service) Category() Category   { return s.category }
func (s *Service) Description() string  { return s.description }
func (s *Service) ImageURL() string     { return s.imageURL }
func (s *Service) PriceCents() int64    { return s.priceCents }
func (s *Service) DurationMin() int32   { return s.durationMin }
func (s *Service) IsAvailable() bool    { return s.available }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }
