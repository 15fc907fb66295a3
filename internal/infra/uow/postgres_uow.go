package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"petconnect/internal/infra/db"
	"petconnect/internal/infra/readstore"
	"petconnect/internal/infra/repository"
	"petconnect/internal/pkg/errs"
	"petconnect/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	adoptionRepo     shared.AdoptionRequestRepository
	petRepo          shared.PetRepository
	serviceRepo      shared.ServiceRepository
	bookingRepo      shared.BookingRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) AdoptionRequests() shared.AdoptionRequestRepository {
	if t.adoptionRepo == nil {
		t.adoptionRepo = repository.NewAdoptionRequestRepository()
	}
	return t.adoptionRepo
}

func (t *pgTx) Pets() shared.PetRepository {
	if t.petRepo == nil {
		t.petRepo = repository.NewPetRepository()
	}
	return t.petRepo
}

func (t *pgTx) Services() shared.ServiceRepository {
	if t.serviceRepo == nil {
		t.serviceRepo = repository.NewServiceRepository()
	}
	return t.serviceRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository()
	}
	return t.bookingRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository()
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	petStore      *readstore.PetReadStore
	serviceStore  *readstore.ServiceReadStore
	userStore     *readstore.UserReadStore
	adoptionStore *readstore.AdoptionRequestReadStore
	bookingStore  *readstore.BookingReadStore
}

func (r *commandReads) PetByID(ctx context.Context, id uuid.UUID) (*shared.PetSnapshot, error) {
	if r.petStore == nil {
		r.petStore = readstore.NewPetReadStore(r.dbtx)
	}
	return r.petStore.FindSnapshotByID(ctx, id)
}

func (r *commandReads) ServiceByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	if r.serviceStore == nil {
		r.serviceStore = readstore.NewServiceReadStore(r.dbtx)
	}
	return r.serviceStore.FindSnapshotByID(ctx, id)
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.dbtx)
	}
	return r.userStore.FindSnapshotByID(ctx, id)
}

func (r *commandReads) AdoptionRequestByID(ctx context.Context, id uuid.UUID) (*shared.AdoptionRequestSnapshot, error) {
	return r.adoptionRequestByID(ctx, id, false)
}

func (r *commandReads) AdoptionRequestByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.AdoptionRequestSnapshot, error) {
	return r.adoptionRequestByID(ctx, id, true)
}

func (r *commandReads) adoptionRequestByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*shared.AdoptionRequestSnapshot, error) {
	if r.adoptionStore == nil {
		r.adoptionStore = readstore.NewAdoptionRequestReadStore(r.dbtx)
	}
	return r.adoptionStore.FindSnapshotByID(ctx, id, forUpdate)
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	return r.bookingByID(ctx, id, false)
}

func (r *commandReads) BookingByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	return r.bookingByID(ctx, id, true)
}

func (r *commandReads) bookingByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*shared.BookingSnapshot, error) {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.dbtx)
	}
	return r.bookingStore.FindSnapshotByID(ctx, id, forUpdate)
}
