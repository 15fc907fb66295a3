package response

import (
	"time"

	"petconnect/internal/usecase/commands"
	"petconnect/internal/usecase/queries"

	"github.com/google/uuid"
)

type AdoptionRequestResponse struct {
	ID                    uuid.UUID  `json:"id"`
	AdopterID             uuid.UUID  `json:"adopterId"`
	AdopterName           string     `json:"adopterName"`
	AdopterEmail          string     `json:"adopterEmail"`
	PetID                 uuid.UUID  `json:"petId"`
	PetName               string     `json:"petName"`
	ShelterID             uuid.UUID  `json:"shelterId"`
	ShelterName           string     `json:"shelterName"`
	Message               string     `json:"message"`
	DeliveryAddress       string     `json:"deliveryAddress,omitempty"`
	Status                string     `json:"status"`
	PaymentStatus         string     `json:"paymentStatus"`
	PaymentAmountCents    int64      `json:"paymentAmountCents"`
	PaymentReference      *string    `json:"paymentReference,omitempty"`
	PaymentDate           *time.Time `json:"paymentDate,omitempty"`
	EstimatedDeliveryDate *time.Time `json:"estimatedDeliveryDate,omitempty"`
	ActualDeliveryDate    *time.Time `json:"actualDeliveryDate,omitempty"`
	DeliveryNotes         string     `json:"deliveryNotes,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

type AdoptionRequestListResponse struct {
	ID                 uuid.UUID `json:"id"`
	PetID              uuid.UUID `json:"petId"`
	PetName            string    `json:"petName"`
	AdopterName        string    `json:"adopterName"`
	Status             string    `json:"status"`
	PaymentStatus      string    `json:"paymentStatus"`
	PaymentAmountCents int64     `json:"paymentAmountCents"`
	CreatedAt          time.Time `json:"createdAt"`
}

// PaymentOrderResponse is what the client needs to open the Razorpay checkout.
type PaymentOrderResponse struct {
	OrderID     string `json:"orderId"`
	AmountCents int64  `json:"amountCents"`
	Currency    string `json:"currency"`
	KeyID       string `json:"keyId"`
}

type PaymentDetailsResponse struct {
	PaymentID   string `json:"paymentId"`
	OrderID     string `json:"orderId"`
	AmountCents int64  `json:"amountCents"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	Method      string `json:"method,omitempty"`
	Email       string `json:"email,omitempty"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromAdoptionRequestView(v *queries.AdoptionRequestView) *AdoptionRequestResponse {
	return &AdoptionRequestResponse{
		ID:                    v.ID,
		AdopterID:             v.AdopterID,
		AdopterName:           v.AdopterName,
		AdopterEmail:          v.AdopterEmail,
		PetID:                 v.PetID,
		PetName:               v.PetName,
		ShelterID:             v.ShelterID,
		ShelterName:           v.ShelterName,
		Message:               v.Message,
		DeliveryAddress:       v.DeliveryAddress,
		Status:                v.Status,
		PaymentStatus:         v.PaymentStatus,
		PaymentAmountCents:    v.PaymentAmount,
		PaymentReference:      v.PaymentReference,
		PaymentDate:           v.PaymentDate,
		EstimatedDeliveryDate: v.EstimatedDate,
		ActualDeliveryDate:    v.ActualDate,
		DeliveryNotes:         v.DeliveryNotes,
		CreatedAt:             v.CreatedAt,
		UpdatedAt:             v.UpdatedAt,
	}
}

func FromAdoptionRequestListItem(v *queries.AdoptionRequestListItem) *AdoptionRequestListResponse {
	return &AdoptionRequestListResponse{
		ID:                 v.ID,
		PetID:              v.PetID,
		PetName:            v.PetName,
		AdopterName:        v.AdopterName,
		Status:             v.Status,
		PaymentStatus:      v.PaymentStatus,
		PaymentAmountCents: v.PaymentAmount,
		CreatedAt:          v.CreatedAt,
	}
}

func FromPaymentOrder(order *commands.PaymentOrder) *PaymentOrderResponse {
	return &PaymentOrderResponse{
		OrderID:     order.ID,
		AmountCents: order.AmountCents,
		Currency:    order.Currency,
		KeyID:       order.KeyID,
	}
}

func FromPaymentDetails(d *commands.PaymentDetails) *PaymentDetailsResponse {
	return &PaymentDetailsResponse{
		PaymentID:   d.ID,
		OrderID:     d.OrderID,
		AmountCents: d.AmountCents,
		Currency:    d.Currency,
		Status:      d.Status,
		Method:      d.Method,
		Email:       d.Email,
	}
}
