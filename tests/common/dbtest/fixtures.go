//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Well-known users inserted by SeedReferenceData. Tests mint tokens for these
// IDs so authorization checks run against real rows.
var (
	SeedAdopterID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	SeedShelterID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	SeedAdminID   = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

func CreateTestUser(t *testing.T, db DBLike, email, name, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, name, role) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, email, name, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestPet(t *testing.T, db DBLike, shelterID uuid.UUID, name string, priceCents int64) uuid.UUID {
	t.Helper()

	petID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO pets (id, shelter_id, name, species, breed, age_months, gender, size, description, price_cents, is_available)
		VALUES ($1, $2, $3, 'dog', 'Labrador', 18, 'male', 'large', 'Friendly and house trained', $4, true)`,
		petID, shelterID, name, priceCents)
	require.NoError(t, err)

	return petID
}

func CreateTestService(t *testing.T, db DBLike, shelterID uuid.UUID, name string, priceCents int64) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO services (id, shelter_id, name, category, description, price_cents, duration_min, is_available)
		VALUES ($1, $2, $3, 'grooming', 'Full grooming session', $4, 60, true)`,
		serviceID, shelterID, name, priceCents)
	require.NoError(t, err)

	return serviceID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (id, email, name, role, address) VALUES
		    ($1, 'adopter@example.com', 'Test Adopter', 'adopter', '42 Lakeview Road, Pune'),
		    ($2, 'shelter@example.com', 'Test Shelter', 'shelter', ''),
		    ($3, 'admin@example.com', 'Test Admin', 'admin', '')
		ON CONFLICT (email) DO NOTHING;
	`, SeedAdopterID, SeedShelterID, SeedAdminID)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
