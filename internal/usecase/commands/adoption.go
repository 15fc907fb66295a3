package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"petconnect/internal/domain/adoption"
	"petconnect/internal/infra"
	"petconnect/internal/pkg/clock"
	"petconnect/internal/pkg/errs"
	"petconnect/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	shelterRequestsLink = "/adoption/shelter/requests/"
	myRequestsLink      = "/adoption/my-requests/"

	deliveryDateFormat = "January 2, 2006"
)

type CreateRequestResult struct {
	RequestID uuid.UUID
}

type ConfirmPaymentInput struct {
	OrderID   string
	PaymentID string
	Signature string
}

type AdoptionCommands interface {
	CreateRequest(ctx context.Context, actor shared.Actor, petID uuid.UUID, message string) (*CreateRequestResult, error)
	Approve(ctx context.Context, actor shared.Actor, requestID uuid.UUID) error
	Reject(ctx context.Context, actor shared.Actor, requestID uuid.UUID) error
	Cancel(ctx context.Context, actor shared.Actor, requestID uuid.UUID) error
	InitiatePayment(ctx context.Context, actor shared.Actor, requestID uuid.UUID) (*PaymentOrder, error)
	ConfirmPayment(ctx context.Context, actor shared.Actor, requestID uuid.UUID, in ConfirmPaymentInput) error
	FailPayment(ctx context.Context, actor shared.Actor, requestID uuid.UUID) error
	LookupPayment(ctx context.Context, actor shared.Actor, requestID uuid.UUID) (*PaymentDetails, error)
	StartDelivery(ctx context.Context, actor shared.Actor, requestID uuid.UUID, estimatedDate time.Time) error
	CompleteDelivery(ctx context.Context, actor shared.Actor, requestID uuid.UUID, actualDate time.Time, notes string) error
}

type adoptionUseCaseImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	notifier NotificationPoster
	clock    clock.Clock
}

func NewAdoptionUseCase(uow shared.UnitOfWork, gateway PaymentGateway, notifier NotificationPoster, clk clock.Clock) AdoptionCommands {
	return &adoptionUseCaseImpl{uow: uow, gateway: gateway, notifier: notifier, clock: clk}
}

func (uc *adoptionUseCaseImpl) CreateRequest(ctx context.Context, actor shared.Actor, petID uuid.UUID, message string) (*CreateRequestResult, error) {
	if !actor.IsAdopter() && !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	var (
		createdID uuid.UUID
		notice    *Notification
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		petSnap, derr := tx.Reads().PetByID(ctx, petID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrPetNotFound
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		if !petSnap.Available {
			return errs.ErrPetNotAvailable
		}
		if petSnap.ShelterID == actor.ID {
			return errs.ErrForbidden
		}

		adopter, derr := tx.Reads().UserByID(ctx, actor.ID)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		// The delivery address is frozen from the adopter's profile here;
		// later profile edits do not move an open request.
		req, derr := adoption.NewRequest(actor.ID, petID, message, adopter.Address, petSnap.PriceCents)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}

		id, derr := tx.AdoptionRequests().Create(ctx, tx.DB(), req)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.ErrDuplicateRequest
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		createdID = id

		notice = &Notification{
			UserID:  petSnap.ShelterID,
			Message: fmt.Sprintf("New adoption request for %s from %s", petSnap.Name, adopter.Name),
			Link:    shelterRequestsLink,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.Post(ctx, *notice)
	return &CreateRequestResult{RequestID: createdID}, nil
}

func (uc *adoptionUseCaseImpl) Approve(ctx context.Context, actor shared.Actor, requestID uuid.UUID) error {
	var notice *Notification
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, entity, derr := loadRequestForShelter(ctx, tx, requestID, actor)
		if derr != nil {
			return derr
		}

		if derr = entity.Approve(uc.clock.Now()); derr != nil {
			return markTransitionErr(derr)
		}

		claimed, derr := tx.Pets().ClaimForAdoption(ctx, tx.DB(), snap.PetID)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		if !claimed {
			return errs.ErrPetNotAvailable
		}

		if derr = tx.AdoptionRequests().Update(ctx, tx.DB(), entity); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		// Losing requests are rejected silently; only the winner's adopter
		// hears back.
		if _, derr = tx.AdoptionRequests().RejectPendingSiblings(ctx, tx.DB(), snap.PetID, requestID); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		notice = &Notification{
			UserID:  snap.AdopterID,
			Message: fmt.Sprintf("Your adoption request for %s has been approved!", snap.PetName),
			Link:    myRequestsLink,
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.notifier.Post(ctx, *notice)
	return nil
}

func (uc *adoptionUseCaseImpl) Reject(ctx context.Context, actor shared.Actor, requestID uuid.UUID) error {
	var notice *Notification
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, entity, derr := loadRequestForShelter(ctx, tx, requestID, actor)
		if derr != nil {
			return derr
		}

		if derr = entity.Reject(); derr != nil {
			return markTransitionErr(derr)
		}
		if derr = tx.AdoptionRequests().Update(ctx, tx.DB(), entity); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		notice = &Notification{
			UserID:  snap.AdopterID,
			Message: fmt.Sprintf("Your adoption request for %s has been rejected.", snap.PetName),
			Link:    myRequestsLink,
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.notifier.Post(ctx, *notice)
	return nil
}

// Cancel is the adopter withdrawing. The pet's availability is untouched even
// when an approved request is cancelled; the shelter relists explicitly.
func (uc *adoptionUseCaseImpl) Cancel(ctx context.Context, actor shared.Actor, requestID uuid.UUID) error {
	var notice *Notification
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, entity, derr := loadRequestForAdopter(ctx, tx, requestID, actor)
		if derr != nil {
			return derr
		}

		if derr = entity.Cancel(); derr != nil {
			return markTransitionErr(derr)
		}
		if derr = tx.AdoptionRequests().Update(ctx, tx.DB(), entity); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		notice = &Notification{
			UserID:  snap.PetShelterID,
			Message: fmt.Sprintf("Adoption request for %s has been cancelled by %s", snap.PetName, snap.AdopterName),
			Link:    shelterRequestsLink,
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.notifier.Post(ctx, *notice)
	return nil
}

// InitiatePayment opens a gateway order before touching the database so a
// slow or failing gateway never holds a transaction open. The order is bound
// to the request in a second, short transaction.
func (uc *adoptionUseCaseImpl) InitiatePayment(ctx context.Context, actor shared.Actor, requestID uuid.UUID) (*PaymentOrder, error) {
	snap, err := uc.uow.CommandReads().AdoptionRequestByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAdoptionRequestNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if snap.AdopterID != actor.ID && !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}
	if adoption.Status(snap.Status) != adoption.StatusApproved {
		return nil, errs.ErrRequestNotApproved
	}
	if snap.PaymentAmountCents == 0 {
		return nil, errs.ErrPaymentNotRequired
	}
	if adoption.PaymentStatus(snap.PaymentStatus) == adoption.PaymentCompleted {
		return nil, errs.ErrPaymentAlreadySettled
	}

	order, err := uc.gateway.CreateOrder(ctx, snap.PaymentAmountCents, requestID.String())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrGatewayUnavailable)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, entity, derr := loadRequestForAdopter(ctx, tx, requestID, actor)
		if derr != nil {
			return derr
		}
		if derr = entity.BeginPayment(order.ID); derr != nil {
			return markTransitionErr(derr)
		}
		return tx.AdoptionRequests().Update(ctx, tx.DB(), entity)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (uc *adoptionUseCaseImpl) ConfirmPayment(ctx context.Context, actor shared.Actor, requestID uuid.UUID, in ConfirmPaymentInput) error {
	if !uc.gateway.VerifySignature(in.OrderID, in.PaymentID, in.Signature) {
		// A failed verification parks the payment as failed so the
		// adopter can re-initiate checkout with a fresh order.
		ferr := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, entity, derr := loadRequestForAdopter(ctx, tx, requestID, actor)
			if derr != nil {
				return derr
			}
			// Only a processing payment can move to failed; anything
			// else keeps its state and just reports the bad signature.
			if entity.MarkPaymentFailed() != nil {
				return nil
			}
			return tx.AdoptionRequests().Update(ctx, tx.DB(), entity)
		})
		if ferr != nil {
			return ferr
		}
		return errs.ErrPaymentVerificationFailed
	}

	var notice *Notification
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, entity, derr := loadRequestForAdopter(ctx, tx, requestID, actor)
		if derr != nil {
			return derr
		}
		if !entity.OwnsGatewayOrder(in.OrderID) {
			return errs.ErrGatewayOrderMismatch
		}
		// Checkout callbacks can arrive twice; a replay of a settled
		// payment succeeds without a second notification.
		if entity.IsPaymentSettled() {
			return nil
		}
		if derr = entity.Settle(in.PaymentID, uc.clock.Now()); derr != nil {
			return markTransitionErr(derr)
		}
		if derr = tx.AdoptionRequests().Update(ctx, tx.DB(), entity); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		notice = &Notification{
			UserID:  snap.PetShelterID,
			Message: fmt.Sprintf("Payment received for %s from %s", snap.PetName, snap.AdopterName),
			Link:    shelterRequestsLink,
		}
		return nil
	})
	if err != nil {
		return err
	}

	if notice != nil {
		uc.notifier.Post(ctx, *notice)
	}
	return nil
}

func (uc *adoptionUseCaseImpl) FailPayment(ctx context.Context, actor shared.Actor, requestID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, entity, derr := loadRequestForAdopter(ctx, tx, requestID, actor)
		if derr != nil {
			return derr
		}
		if derr = entity.MarkPaymentFailed(); derr != nil {
			return markTransitionErr(derr)
		}
		return tx.AdoptionRequests().Update(ctx, tx.DB(), entity)
	})
}

// LookupPayment pulls the gateway's record of a settled payment so the
// adopter or shelter can reconcile it against the request. Free adoptions
// carry a sentinel reference and have nothing to fetch.
func (uc *adoptionUseCaseImpl) LookupPayment(ctx context.Context, actor shared.Actor, requestID uuid.UUID) (*PaymentDetails, error) {
	snap, err := uc.uow.CommandReads().AdoptionRequestByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAdoptionRequestNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if snap.AdopterID != actor.ID && snap.PetShelterID != actor.ID && !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}
	if adoption.PaymentStatus(snap.PaymentStatus) != adoption.PaymentCompleted || snap.PaymentReference == nil {
		return nil, errs.ErrPaymentNotSettled
	}
	if *snap.PaymentReference == adoption.FreeAdoptionReference {
		return nil, errs.ErrPaymentNotRequired
	}

	details, err := uc.gateway.FetchPayment(ctx, *snap.PaymentReference)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrGatewayUnavailable)
	}
	return details, nil
}

func (uc *adoptionUseCaseImpl) StartDelivery(ctx context.Context, actor shared.Actor, requestID uuid.UUID, estimatedDate time.Time) error {
	var notice *Notification
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, entity, derr := loadRequestForShelter(ctx, tx, requestID, actor)
		if derr != nil {
			return derr
		}

		if derr = entity.StartDelivery(estimatedDate, uc.clock.Now()); derr != nil {
			return markTransitionErr(derr)
		}
		if derr = tx.AdoptionRequests().Update(ctx, tx.DB(), entity); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		notice = &Notification{
			UserID: snap.AdopterID,
			Message: fmt.Sprintf("Delivery started for %s! Estimated delivery: %s",
				snap.PetName, entity.EstimatedDate().Format(deliveryDateFormat)),
			Link: myRequestsLink,
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.notifier.Post(ctx, *notice)
	return nil
}

func (uc *adoptionUseCaseImpl) CompleteDelivery(ctx context.Context, actor shared.Actor, requestID uuid.UUID, actualDate time.Time, notes string) error {
	var notice *Notification
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, entity, derr := loadRequestForShelter(ctx, tx, requestID, actor)
		if derr != nil {
			return derr
		}

		if derr = entity.CompleteDelivery(actualDate, uc.clock.Now(), notes); derr != nil {
			return markTransitionErr(derr)
		}
		if derr = tx.AdoptionRequests().Update(ctx, tx.DB(), entity); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		notice = &Notification{
			UserID:  snap.AdopterID,
			Message: fmt.Sprintf("Delivery completed for %s! Welcome your new pet home!", snap.PetName),
			Link:    myRequestsLink,
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.notifier.Post(ctx, *notice)
	return nil
}

func loadRequestForShelter(ctx context.Context, tx shared.Tx, requestID uuid.UUID, actor shared.Actor) (*shared.AdoptionRequestSnapshot, *adoption.Request, error) {
	snap, entity, err := loadRequest(ctx, tx, requestID)
	if err != nil {
		return nil, nil, err
	}
	if snap.PetShelterID != actor.ID && !actor.IsAdmin() {
		return nil, nil, errs.ErrForbidden
	}
	return snap, entity, nil
}

func loadRequestForAdopter(ctx context.Context, tx shared.Tx, requestID uuid.UUID, actor shared.Actor) (*shared.AdoptionRequestSnapshot, *adoption.Request, error) {
	snap, entity, err := loadRequest(ctx, tx, requestID)
	if err != nil {
		return nil, nil, err
	}
	if snap.AdopterID != actor.ID && !actor.IsAdmin() {
		return nil, nil, errs.ErrForbidden
	}
	return snap, entity, nil
}

func loadRequest(ctx context.Context, tx shared.Tx, requestID uuid.UUID) (*shared.AdoptionRequestSnapshot, *adoption.Request, error) {
	snap, err := tx.Reads().AdoptionRequestByIDForUpdate(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.ErrAdoptionRequestNotFound
		}
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	entity, err := snap.Entity()
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return snap, entity, nil
}

func markTransitionErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adoption.ErrNotPending),
		errors.Is(err, adoption.ErrNotCancellable),
		errors.Is(err, adoption.ErrNotInDelivery):
		return errs.Mark(err, errs.ErrInvalidTransition)
	case errors.Is(err, adoption.ErrNotApproved):
		return errs.Mark(err, errs.ErrRequestNotApproved)
	case errors.Is(err, adoption.ErrPaymentNotRequired):
		return errs.Mark(err, errs.ErrPaymentNotRequired)
	case errors.Is(err, adoption.ErrPaymentSettled):
		return errs.Mark(err, errs.ErrPaymentAlreadySettled)
	case errors.Is(err, adoption.ErrPaymentNotProcessing):
		return errs.Mark(err, errs.ErrPaymentNotInitiated)
	case errors.Is(err, adoption.ErrPaymentNotSettled):
		return errs.Mark(err, errs.ErrPaymentNotSettled)
	case errors.Is(err, adoption.ErrDeliveryDateInPast),
		errors.Is(err, adoption.ErrDeliveryDateInFuture):
		return errs.Mark(err, errs.ErrInvalidDeliveryDate)
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}
