package readstore

import (
	"context"

	"petconnect/internal/infra"
	"petconnect/internal/infra/db"
	"petconnect/internal/pkg/pgconv"
	"petconnect/internal/usecase/queries"
	"petconnect/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PetReadStore struct {
	db db.DBTX
}

func NewPetReadStore(dbtx db.DBTX) *PetReadStore {
	return &PetReadStore{db: dbtx}
}

const petViewSQL = `
SELECT p.id, p.shelter_id, u.name, p.name, p.species, p.breed, p.age_months,
       p.gender, p.size, p.description, p.image_url, p.price_cents,
       p.is_available, p.created_at, p.updated_at
FROM pets p
JOIN users u ON u.id = p.shelter_id`

func (r *PetReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PetView, error) {
	row := r.db.QueryRow(ctx, petViewSQL+` WHERE p.id = $1`, id)
	v, err := scanPetView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pet by ID", err)
	}
	return v, nil
}

const petsAvailableSQL = petViewSQL + `
WHERE p.is_available = true
ORDER BY p.created_at DESC`

func (r *PetReadStore) FindAvailable(ctx context.Context) ([]*queries.PetView, error) {
	rows, err := r.db.Query(ctx, petsAvailableSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available pets", err)
	}
	defer rows.Close()

	return scanPetViews(rows)
}

func (r *PetReadStore) FindByShelter(ctx context.Context, shelterID uuid.UUID) ([]*queries.PetView, error) {
	rows, err := r.db.Query(ctx, petViewSQL+` WHERE p.shelter_id = $1 ORDER BY p.created_at DESC`, shelterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pets by shelter", err)
	}
	defer rows.Close()

	return scanPetViews(rows)
}

func scanPetView(row pgx.Row) (*queries.PetView, error) {
	var v queries.PetView
	err := row.Scan(
		&v.ID, &v.ShelterID, &v.ShelterName, &v.Name, &v.Species, &v.Breed,
		&v.AgeMonths, &v.Gender, &v.Size, &v.Description, &v.ImageURL,
		&v.PriceCents, &v.IsAvailable, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func scanPetViews(rows pgx.Rows) ([]*queries.PetView, error) {
	result := make([]*queries.PetView, 0)
	for rows.Next() {
		v, err := scanPetView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan pet row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pet rows", err)
	}
	return result, nil
}

const petSnapshotSQL = `
SELECT id, shelter_id, name, species, breed, age_months, gender, size,
       description, image_url, price_cents, is_available, created_at, updated_at
FROM pets
WHERE id = $1`

func (r *PetReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.PetSnapshot, error) {
	var s shared.PetSnapshot
	err := r.db.QueryRow(ctx, petSnapshotSQL, id).Scan(
		&s.ID, &s.ShelterID, &s.Name, &s.Species, &s.Breed, &s.AgeMonths,
		&s.Gender, &s.Size, &s.Description, &s.ImageURL, &s.PriceCents,
		&s.Available, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read pet snapshot", err)
	}
	return &s, nil
}
