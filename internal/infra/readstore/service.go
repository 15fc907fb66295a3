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

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: dbtx}
}

const serviceViewSQL = `
SELECT s.id, s.shelter_id, u.name, s.name, s.category, s.description,
       s.image_url, s.price_cents, s.duration_min, s.is_available,
       s.created_at, s.updated_at
FROM services s
JOIN users u ON u.id = s.shelter_id`

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	row := r.db.QueryRow(ctx, serviceViewSQL+` WHERE s.id = $1`, id)
	v, err := scanServiceView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return v, nil
}

const servicesAvailableSQL = serviceViewSQL + `
WHERE s.is_available = true
ORDER BY s.created_at DESC`

func (r *ServiceReadStore) FindAvailable(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := r.db.Query(ctx, servicesAvailableSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available services", err)
	}
	defer rows.Close()

	return scanServiceViews(rows)
}

func (r *ServiceReadStore) FindByShelter(ctx context.Context, shelterID uuid.UUID) ([]*queries.ServiceView, error) {
	rows, err := r.db.Query(ctx, serviceViewSQL+` WHERE s.shelter_id = $1 ORDER BY s.created_at DESC`, shelterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services by shelter", err)
	}
	defer rows.Close()

	return scanServiceViews(rows)
}

func scanServiceView(row pgx.Row) (*queries.ServiceView, error) {
	var v queries.ServiceView
	err := row.Scan(
		&v.ID, &v.ShelterID, &v.ShelterName, &v.Name, &v.Category, &v.Description,
		&v.ImageURL, &v.PriceCents, &v.DurationMin, &v.IsAvailable,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func scanServiceViews(rows pgx.Rows) ([]*queries.ServiceView, error) {
	result := make([]*queries.ServiceView, 0)
	for rows.Next() {
		v, err := scanServiceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service rows", err)
	}
	return result, nil
}

const serviceSnapshotSQL = `
SELECT id, shelter_id, name, category, description, image_url, price_cents,
       duration_min, is_available, created_at, updated_at
FROM services
WHERE id = $1`

func (r *ServiceReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	var s shared.ServiceSnapshot
	err := r.db.QueryRow(ctx, serviceSnapshotSQL, id).Scan(
		&s.ID, &s.ShelterID, &s.Name, &s.Category, &s.Description, &s.ImageURL,
		&s.PriceCents, &s.DurationMin, &s.Available, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read service snapshot", err)
	}
	return &s, nil
}
