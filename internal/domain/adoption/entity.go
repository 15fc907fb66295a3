package adoption

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotPending           = errors.New("request is not pending")
	ErrNotApproved          = errors.New("request is not approved")
	ErrNotCancellable       = errors.New("request can no longer be cancelled")
	ErrNotInDelivery        = errors.New("request is not in delivery")
	ErrPaymentNotRequired   = errors.New("no payment required for a free adoption")
	ErrPaymentNotProcessing = errors.New("payment is not processing")
	ErrPaymentSettled       = errors.New("payment already settled")
	ErrPaymentNotSettled    = errors.New("payment not settled")
	ErrDeliveryDateInPast   = errors.New("estimated delivery date cannot be in the past")
	ErrDeliveryDateInFuture = errors.New("actual delivery date cannot be in the future")
	ErrEmptyOrderID         = errors.New("gateway order id cannot be empty")
	ErrEmptyReference       = errors.New("payment reference cannot be empty")
)

// Request is the adoption request aggregate. All lifecycle transitions go
// through guard methods so an invalid state can never be persisted.
type Request struct {
	id               uuid.UUID
	adopterID        uuid.UUID
	petID            uuid.UUID
	message          string
	deliveryAddress  string
	status           Status
	paymentStatus    PaymentStatus
	paymentAmount    Money
	paymentReference *string
	paymentDate      *time.Time
	gatewayOrderID   *string
	estimatedDate    *time.Time
	actualDate       *time.Time
	deliveryNotes    string
	createdAt        time.Time
	updatedAt        time.Time
}

// NewRequest opens a pending request. The payment amount is frozen from the
// pet's price and the delivery address from the adopter's profile at creation
// time, so later edits to either never affect an open request.
func NewRequest(adopterID, petID uuid.UUID, message, deliveryAddress string, petPriceCents int64) (*Request, error) {
	amount, err := NewMoney(petPriceCents)
	if err != nil {
		return nil, err
	}

	return &Request{
		id:              uuid.New(),
		adopterID:       adopterID,
		petID:           petID,
		message:         message,
		deliveryAddress: deliveryAddress,
		status:          StatusPending,
		paymentStatus:   PaymentPending,
		paymentAmount:   amount,
	}, nil
}

func ReconstructRequest(
	id, adopterID, petID uuid.UUID,
	message, deliveryAddress string,
	status Status,
	paymentStatus PaymentStatus,
	paymentAmount Money,
	paymentReference *string,
	paymentDate *time.Time,
	gatewayOrderID *string,
	estimatedDate *time.Time,
	actualDate *time.Time,
	deliveryNotes string,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:               id,
		adopterID:        adopterID,
		petID:            petID,
		message:          message,
		deliveryAddress:  deliveryAddress,
		status:           status,
		paymentStatus:    paymentStatus,
		paymentAmount:    paymentAmount,
		paymentReference: paymentReference,
		paymentDate:      paymentDate,
		gatewayOrderID:   gatewayOrderID,
		estimatedDate:    estimatedDate,
		actualDate:       actualDate,
		deliveryNotes:    deliveryNotes,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Approve moves a pending request to approved. Zero-price adoptions settle
// immediately with a sentinel reference since no gateway round trip happens.
func (r *Request) Approve(now time.Time) error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusApproved
	if r.paymentAmount.IsZero() {
		ref := FreeAdoptionReference
		r.paymentStatus = PaymentCompleted
		r.paymentReference = &ref
		r.paymentDate = &now
	}
	return nil
}

func (r *Request) Reject() error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusRejected
	return nil
}

// Cancel is the adopter's exit. Allowed while pending or approved; once
// delivery has started the request can only run to completion.
func (r *Request) Cancel() error {
	if r.status != StatusPending && r.status != StatusApproved {
		return ErrNotCancellable
	}
	r.status = StatusCancelled
	return nil
}

// BeginPayment records a freshly created gateway order and moves the payment
// to processing. Re-initiation after a failure overwrites the stale order id;
// the abandoned order simply expires unpaid at the gateway.
func (r *Request) BeginPayment(orderID string) error {
	if r.status != StatusApproved {
		return ErrNotApproved
	}
	if r.paymentAmount.IsZero() {
		return ErrPaymentNotRequired
	}
	if r.paymentStatus == PaymentCompleted || r.paymentStatus == PaymentRefunded {
		return ErrPaymentSettled
	}
	if orderID == "" {
		return ErrEmptyOrderID
	}
	r.paymentStatus = PaymentProcessing
	r.gatewayOrderID = &orderID
	return nil
}

// Settle records a verified gateway payment.
func (r *Request) Settle(reference string, now time.Time) error {
	if r.status != StatusApproved {
		return ErrNotApproved
	}
	if r.paymentStatus == PaymentCompleted {
		return ErrPaymentSettled
	}
	if r.paymentStatus != PaymentProcessing {
		return ErrPaymentNotProcessing
	}
	if reference == "" {
		return ErrEmptyReference
	}
	r.paymentStatus = PaymentCompleted
	r.paymentReference = &reference
	r.paymentDate = &now
	return nil
}

func (r *Request) MarkPaymentFailed() error {
	if r.paymentStatus != PaymentProcessing {
		return ErrPaymentNotProcessing
	}
	r.paymentStatus = PaymentFailed
	return nil
}

// StartDelivery requires a settled payment and an estimated date no earlier
// than today (date precision, not instant precision).
func (r *Request) StartDelivery(estimatedDate time.Time, now time.Time) error {
	if r.status != StatusApproved {
		return ErrNotApproved
	}
	if r.paymentStatus != PaymentCompleted {
		return ErrPaymentNotSettled
	}
	if truncateToDate(estimatedDate).Before(truncateToDate(now)) {
		return ErrDeliveryDateInPast
	}
	d := truncateToDate(estimatedDate)
	r.status = StatusInDelivery
	r.estimatedDate = &d
	return nil
}

func (r *Request) CompleteDelivery(actualDate time.Time, now time.Time, notes string) error {
	if r.status != StatusInDelivery {
		return ErrNotInDelivery
	}
	if truncateToDate(actualDate).After(truncateToDate(now)) {
		return ErrDeliveryDateInFuture
	}
	d := truncateToDate(actualDate)
	r.status = StatusCompleted
	r.actualDate = &d
	if notes != "" {
		r.deliveryNotes = notes
	}
	return nil
}

func (r *Request) RequiresPayment() bool {
	return !r.paymentAmount.IsZero()
}

func (r *Request) IsPaymentSettled() bool {
	return r.paymentStatus == PaymentCompleted
}

// OwnsGatewayOrder reports whether the given gateway order id is the one this
// request is currently paying against.
func (r *Request) OwnsGatewayOrder(orderID string) bool {
	return r.gatewayOrderID != nil && *r.gatewayOrderID == orderID
}

// truncateToDate compares in UTC so a client-supplied zone offset cannot
// shift the computed day relative to the server clock.
func truncateToDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func (r *Request) ID() uuid.UUID                { return r.id }
func (r *Request) AdopterID() uuid.UUID         { return r.adopterID }
func (r *Request) PetID() uuid.UUID             { return r.petID }
func (r *Request) Message() string              { return r.message }
func (r *Request) DeliveryAddress() string      { return r.deliveryAddress }
func (r *Request) Status() Status               { return r.status }
func (r *Request) PaymentStatus() PaymentStatus { return r.paymentStatus }
func (r *Request) PaymentAmount() Money         { return r.paymentAmount }
func (r *Request) PaymentReference() *string    { return r.paymentReference }
func (r *Request) PaymentDate() *time.Time      { return r.paymentDate }
func (r *Request) GatewayOrderID() *string      { return r.gatewayOrderID }
func (r *Request) EstimatedDate() *time.Time    { return r.estimatedDate }
func (r *Request) ActualDate() *time.Time       { return r.actualDate }
func (r *Request) DeliveryNotes() string        { return r.deliveryNotes }
func (r *Request) CreatedAt() time.Time         { return r.createdAt }
func (r *Request) UpdatedAt() time.Time         { return r.updatedAt }
