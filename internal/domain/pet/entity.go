package pet

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidSpecies = errors.New("invalid species")
	ErrInvalidGender  = errors.New("invalid gender")
	ErrInvalidSize    = errors.New("invalid size")
	ErrEmptyName      = errors.New("pet name cannot be empty")
	ErrNegativePrice  = errors.New("price cannot be negative")
	ErrNegativeAge    = errors.New("age cannot be negative")
)

type Pet struct {
	id          uuid.UUID
	shelterID   uuid.UUID
	name        string
	species     Species
	breed       string
	ageMonths   int32
	gender      Gender
	size        Size
	description string
	imageURL    string
	priceCents  int64
	available   bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPet(
	shelterID uuid.UUID,
	name string,
	species Species,
	breed string,
	ageMonths int32,
	gender Gender,
	size Size,
	description string,
	imageURL string,
	priceCents int64,
) (*Pet, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !species.IsValid() {
		return nil, ErrInvalidSpecies
	}
	if !gender.IsValid() {
		return nil, ErrInvalidGender
	}
	if !size.IsValid() {
		return nil, ErrInvalidSize
	}
	if ageMonths < 0 {
		return nil, ErrNegativeAge
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Pet{
		id:          uuid.New(),
		shelterID:   shelterID,
		name:        name,
		species:     species,
		breed:       breed,
		ageMonths:   ageMonths,
		gender:      gender,
		size:        size,
		description: description,
		imageURL:    imageURL,
		priceCents:  priceCents,
		available:   true,
	}, nil
}

func ReconstructPet(
	id, shelterID uuid.UUID,
	name string,
	species Species,
	breed string,
	ageMonths int32,
	gender Gender,
	size Size,
	description string,
	imageURL string,
	priceCents int64,
	available bool,
	createdAt, updatedAt time.Time,
) *Pet {
	return &Pet{
		id:          id,
		shelterID:   shelterID,
		name:        name,
		species:     species,
		breed:       breed,
		ageMonths:   ageMonths,
		gender:      gender,
		size:        size,
		description: description,
		imageURL:    imageURL,
		priceCents:  priceCents,
		available:   available,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// IsFree reports whether adopting this pet requires no payment.
func (p *Pet) IsFree() bool {
	return p.priceCents == 0
}

func (p *Pet) IsOwnedBy(shelterID uuid.UUID) bool {
	return p.shelterID == shelterID
}

func (p *Pet) MarkAdopted() {
	p.available = false
}

func (p *Pet) MakeAvailable() {
	p.available = true
}

func (p *Pet) ID() uuid.UUID        { return p.id }
func (p *Pet) ShelterID() uuid.UUID { return p.shelterID }
func (p *Pet) Name() string         { return p.name }
func (p *Pet) Species() Species     { return p.species }
func (p *Pet) Breed() string        { return p.breed }
func (p *Pet) AgeMonths() int32     { return p.ageMonths }
func (p *Pet) Gender() Gender       { return p.gender }
func (p *Pet) Size() Size           { return p.size }
func (p *Pet) Description() string  { return p.description }
func (p *Pet) ImageURL() string     { return p.imageURL }
func (p *Pet) PriceCents() int64    { return p.priceCents }
func (p *Pet) IsAvailable() bool    { return p.available }
func (p *Pet) CreatedAt() time.Time { return p.createdAt }
func (p *Pet) UpdatedAt() time.Time { return p.updatedAt }
