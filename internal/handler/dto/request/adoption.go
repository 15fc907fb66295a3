package request

import (
	"strings"
	"time"

	"petconnect/internal/usecase/commands"
)

type CreateAdoptionRequest struct {
	Message string `json:"message"`
}

func (r CreateAdoptionRequest) TrimmedMessage() string {
	return strings.TrimSpace(r.Message)
}

// ConfirmPaymentRequest carries the checkout callback fields Razorpay posts
// back to the client after a successful payment.
type ConfirmPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

func (r ConfirmPaymentRequest) ToInput() commands.ConfirmPaymentInput {
	return commands.ConfirmPaymentInput{
		OrderID:   r.RazorpayOrderID,
		PaymentID: r.RazorpayPaymentID,
		Signature: r.RazorpaySignature,
	}
}

type StartDeliveryRequest struct {
	EstimatedDeliveryDate time.Time `json:"estimated_delivery_date" binding:"required"`
}

type CompleteDeliveryRequest struct {
	ActualDeliveryDate time.Time `json:"actual_delivery_date" binding:"required"`
	DeliveryNotes      string    `json:"delivery_notes"`
}
