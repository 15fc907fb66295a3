package commands

import (
	"context"

	"github.com/google/uuid"
)

// PaymentOrder is what the gateway hands back when an order is opened.
// AmountCents is echoed in the smallest currency unit (paise for INR).
type PaymentOrder struct {
	ID          string
	AmountCents int64
	Currency    string
	KeyID       string
}

// PaymentDetails is the gateway's record of a captured payment, the view
// support staff compare against our books when reconciling a dispute.
type PaymentDetails struct {
	ID          string
	OrderID     string
	AmountCents int64
	Currency    string
	Status      string
	Method      string
	Email       string
}

// PaymentGateway abstracts the external payment provider. CreateOrder and
// FetchPayment are network calls and must never run inside a database
// transaction.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountCents int64, receipt string) (*PaymentOrder, error)
	FetchPayment(ctx context.Context, paymentID string) (*PaymentDetails, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type Notification struct {
	UserID  uuid.UUID
	Message string
	Link    string
}

// NotificationPoster delivers in-app notifications after a transition commits.
// Delivery is best effort: a failed post is logged and dropped, never allowed
// to roll back or fail the transition that produced it.
type NotificationPoster interface {
	Post(ctx context.Context, n Notification)
}
