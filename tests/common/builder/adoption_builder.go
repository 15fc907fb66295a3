//go:build unit || e2e

package builder

import (
	"time"

	"petconnect/internal/domain/adoption"
	reqdto "petconnect/internal/handler/dto/request"
	"petconnect/internal/usecase/queries"
	"petconnect/internal/usecase/shared"

	"github.com/google/uuid"
)

type AdoptionRequestBuilder struct {
	ID                 uuid.UUID
	AdopterID          uuid.UUID
	AdopterName        string
	AdopterEmail       string
	PetID              uuid.UUID
	PetName            string
	ShelterID          uuid.UUID
	ShelterName        string
	Message            string
	DeliveryAddress    string
	Status             adoption.Status
	PaymentStatus      adoption.PaymentStatus
	PaymentAmountCents int64
	PaymentReference   *string
	PaymentDate        *time.Time
	GatewayOrderID     *string
	EstimatedDate      *time.Time
	ActualDate         *time.Time
	DeliveryNotes      string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func NewAdoptionRequestBuilder() *AdoptionRequestBuilder {
	now := time.Now()
	return &AdoptionRequestBuilder{
		ID:                 uuid.New(),
		AdopterID:          uuid.New(),
		AdopterName:        "Test Adopter",
		AdopterEmail:       "adopter@example.com",
		PetID:              uuid.New(),
		PetName:            "Bruno",
		ShelterID:          uuid.New(),
		ShelterName:        "Happy Paws Shelter",
		Message:            "We have a big garden and two kids who love dogs.",
		DeliveryAddress:    "42 Lakeview Road, Pune",
		Status:             adoption.StatusPending,
		PaymentStatus:      adoption.PaymentPending,
		PaymentAmountCents: 250000,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func (r *AdoptionRequestBuilder) With(mutate func(*AdoptionRequestBuilder)) *AdoptionRequestBuilder {
	mutate(r)
	return r
}

func (r *AdoptionRequestBuilder) BuildCreateRequestDTO() reqdto.CreateAdoptionRequest {
	return reqdto.CreateAdoptionRequest{
		Message: r.Message,
	}
}

func (r *AdoptionRequestBuilder) BuildConfirmPaymentDTO() reqdto.ConfirmPaymentRequest {
	orderID := "order_test123"
	if r.GatewayOrderID != nil {
		orderID = *r.GatewayOrderID
	}
	return reqdto.ConfirmPaymentRequest{
		RazorpayOrderID:   orderID,
		RazorpayPaymentID: "pay_test456",
		RazorpaySignature: "deadbeef",
	}
}

func (r *AdoptionRequestBuilder) BuildView() *queries.AdoptionRequestView {
	return &queries.AdoptionRequestView{
		ID:               r.ID,
		AdopterID:        r.AdopterID,
		AdopterName:      r.AdopterName,
		AdopterEmail:     r.AdopterEmail,
		PetID:            r.PetID,
		PetName:          r.PetName,
		ShelterID:        r.ShelterID,
		ShelterName:      r.ShelterName,
		Message:          r.Message,
		DeliveryAddress:  r.DeliveryAddress,
		Status:           string(r.Status),
		PaymentStatus:    string(r.PaymentStatus),
		PaymentAmount:    r.PaymentAmountCents,
		PaymentReference: r.PaymentReference,
		PaymentDate:      r.PaymentDate,
		EstimatedDate:    r.EstimatedDate,
		ActualDate:       r.ActualDate,
		DeliveryNotes:    r.DeliveryNotes,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func (r *AdoptionRequestBuilder) BuildListItem() *queries.AdoptionRequestListItem {
	return &queries.AdoptionRequestListItem{
		ID:            r.ID,
		PetID:         r.PetID,
		PetName:       r.PetName,
		AdopterName:   r.AdopterName,
		Status:        string(r.Status),
		PaymentStatus: string(r.PaymentStatus),
		PaymentAmount: r.PaymentAmountCents,
		CreatedAt:     r.CreatedAt,
	}
}

func (r *AdoptionRequestBuilder) BuildSnapshot() *shared.AdoptionRequestSnapshot {
	return &shared.AdoptionRequestSnapshot{
		ID:                 r.ID,
		AdopterID:          r.AdopterID,
		AdopterName:        r.AdopterName,
		PetID:              r.PetID,
		PetName:            r.PetName,
		PetShelterID:       r.ShelterID,
		Message:            r.Message,
		DeliveryAddress:    r.DeliveryAddress,
		Status:             string(r.Status),
		PaymentStatus:      string(r.PaymentStatus),
		PaymentAmountCents: r.PaymentAmountCents,
		PaymentReference:   r.PaymentReference,
		PaymentDate:        r.PaymentDate,
		GatewayOrderID:     r.GatewayOrderID,
		EstimatedDate:      r.EstimatedDate,
		ActualDate:         r.ActualDate,
		DeliveryNotes:      r.DeliveryNotes,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}
