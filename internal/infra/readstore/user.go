package readstore

import (
	"context"

	"petconnect/internal/infra"
	"petconnect/internal/infra/db"
	"petconnect/internal/pkg/pgconv"
	"petconnect/internal/usecase/queries"
	"petconnect/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const userByIDSQL = `
SELECT id, email, name, role, address FROM users WHERE id = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var v queries.UserView
	err := r.db.QueryRow(ctx, userByIDSQL, id).Scan(&v.ID, &v.Email, &v.Name, &v.Role, &v.Address)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

func (r *UserReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	var s shared.UserSnapshot
	err := r.db.QueryRow(ctx, userByIDSQL, id).Scan(&s.ID, &s.Email, &s.Name, &s.Role, &s.Address)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read user snapshot", err)
	}
	return &s, nil
}
