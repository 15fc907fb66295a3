package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"petconnect/internal/domain/booking"
	"petconnect/internal/infra"
	"petconnect/internal/pkg/clock"
	"petconnect/internal/pkg/errs"
	"petconnect/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	shelterBookingsLink = "/services/shelter/bookings/"
	myBookingsLink      = "/services/my-bookings/"
)

type CreateBookingInput struct {
	ServiceID   uuid.UUID
	ScheduledAt time.Time
	Notes       string
}

type CreateBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, actor shared.Actor, in CreateBookingInput) (*CreateBookingResult, error)
	Confirm(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) error
	Start(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) error
	Complete(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) error
	Cancel(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	notifier NotificationPoster
	clock    clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, notifier NotificationPoster, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, notifier: notifier, clock: clk}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, actor shared.Actor, in CreateBookingInput) (*CreateBookingResult, error) {
	if !actor.IsAdopter() && !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	var (
		createdID uuid.UUID
		notice    *Notification
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		svc, derr := tx.Reads().ServiceByID(ctx, in.ServiceID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrServiceNotFound
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		if !svc.Available {
			return errs.ErrServiceNotAvailable
		}

		// The service address is frozen from the adopter's profile here, the
		// same way an adoption request freezes its delivery address.
		adopter, derr := tx.Reads().UserByID(ctx, actor.ID)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		b, derr := booking.NewBooking(actor.ID, in.ServiceID, in.ScheduledAt, in.Notes, adopter.Address, svc.PriceCents, uc.clock.Now())
		if derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}

		id, derr := tx.Bookings().Create(ctx, tx.DB(), b)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		createdID = id

		notice = &Notification{
			UserID:  svc.ShelterID,
			Message: fmt.Sprintf("New booking for %s from %s", svc.Name, adopter.Name),
			Link:    shelterBookingsLink,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.Post(ctx, *notice)
	return &CreateBookingResult{BookingID: createdID}, nil
}

func (uc *bookingUseCaseImpl) Confirm(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) error {
	return uc.transitionAsShelter(ctx, actor, bookingID,
		(*booking.Booking).Confirm,
		func(s *shared.BookingSnapshot) Notification {
			return Notification{
				UserID:  s.AdopterID,
				Message: fmt.Sprintf("Your booking for %s has been confirmed!", s.ServiceName),
				Link:    myBookingsLink,
			}
		})
}

func (uc *bookingUseCaseImpl) Start(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) error {
	return uc.transitionAsShelter(ctx, actor, bookingID,
		(*booking.Booking).Start,
		func(s *shared.BookingSnapshot) Notification {
			return Notification{
				UserID:  s.AdopterID,
				Message: fmt.Sprintf("Your booking for %s is now in progress.", s.ServiceName),
				Link:    myBookingsLink,
			}
		})
}

func (uc *bookingUseCaseImpl) Complete(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) error {
	return uc.transitionAsShelter(ctx, actor, bookingID,
		(*booking.Booking).Complete,
		func(s *shared.BookingSnapshot) Notification {
			return Notification{
				UserID:  s.AdopterID,
				Message: fmt.Sprintf("Your booking for %s has been completed.", s.ServiceName),
				Link:    myBookingsLink,
			}
		})
}

// Cancel is available to the adopter who booked; the shelter hears about it.
func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) error {
	var notice *Notification
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := loadBooking(ctx, tx, bookingID)
		if derr != nil {
			return derr
		}
		if snap.AdopterID != actor.ID && !actor.IsAdmin() {
			return errs.ErrForbidden
		}

		entity := snap.Entity()
		if derr = entity.Cancel(); derr != nil {
			return markBookingTransitionErr(derr)
		}
		if derr = tx.Bookings().Update(ctx, tx.DB(), entity); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		notice = &Notification{
			UserID:  snap.ServiceShelterID,
			Message: fmt.Sprintf("Booking for %s has been cancelled by %s", snap.ServiceName, snap.AdopterName),
			Link:    shelterBookingsLink,
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.notifier.Post(ctx, *notice)
	return nil
}

func (uc *bookingUseCaseImpl) transitionAsShelter(
	ctx context.Context,
	actor shared.Actor,
	bookingID uuid.UUID,
	transition func(*booking.Booking) error,
	buildNotice func(*shared.BookingSnapshot) Notification,
) error {
	var notice Notification
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := loadBooking(ctx, tx, bookingID)
		if derr != nil {
			return derr
		}
		if snap.ServiceShelterID != actor.ID && !actor.IsAdmin() {
			return errs.ErrForbidden
		}

		entity := snap.Entity()
		if derr = transition(entity); derr != nil {
			return markBookingTransitionErr(derr)
		}
		if derr = tx.Bookings().Update(ctx, tx.DB(), entity); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		notice = buildNotice(snap)
		return nil
	})
	if err != nil {
		return err
	}

	uc.notifier.Post(ctx, notice)
	return nil
}

func loadBooking(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, err := tx.Reads().BookingByIDForUpdate(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snap, nil
}

func markBookingTransitionErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, booking.ErrNotPending),
		errors.Is(err, booking.ErrNotConfirmed),
		errors.Is(err, booking.ErrNotInProgress),
		errors.Is(err, booking.ErrNotCancellable):
		return errs.Mark(err, errs.ErrInvalidTransition)
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}
