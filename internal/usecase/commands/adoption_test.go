//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"petconnect/internal/domain/adoption"
	"petconnect/internal/infra"
	"petconnect/internal/pkg/clock"
	"petconnect/internal/pkg/errs"
	"petconnect/internal/usecase/commands"
	"petconnect/internal/usecase/shared"
	"petconnect/tests/common/builder"
	commandsmock "petconnect/tests/mock/commands"
	sharedmock "petconnect/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdoptionUseCaseTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUoW      *sharedmock.MockUnitOfWork
	mockTx       *sharedmock.MockTx
	mockReads    *sharedmock.MockCommandReads
	mockRequests *sharedmock.MockAdoptionRequestRepository
	mockPets     *sharedmock.MockPetRepository
	mockGateway  *commandsmock.MockPaymentGateway
	mockNotifier *commandsmock.MockNotificationPoster
	clock        *clock.MockClock
	uc           commands.AdoptionCommands

	actor shared.Actor
}

func (s *AdoptionUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockReads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.mockRequests = sharedmock.NewMockAdoptionRequestRepository(s.mockCtrl)
	s.mockPets = sharedmock.NewMockPetRepository(s.mockCtrl)
	s.mockGateway = commandsmock.NewMockPaymentGateway(s.mockCtrl)
	s.mockNotifier = commandsmock.NewMockNotificationPoster(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	s.mockTx.EXPECT().Reads().Return(s.mockReads).AnyTimes()
	s.mockTx.EXPECT().AdoptionRequests().Return(s.mockRequests).AnyTimes()
	s.mockTx.EXPECT().Pets().Return(s.mockPets).AnyTimes()
	s.mockTx.EXPECT().DB().Return(nil).AnyTimes()

	s.uc = commands.NewAdoptionUseCase(s.mockUoW, s.mockGateway, s.mockNotifier, s.clock)
	s.actor = shared.Actor{ID: uuid.New(), Role: "adopter"}
}

func (s *AdoptionUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdoptionUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AdoptionUseCaseTestSuite))
}

// expectWithin wires the transactional closure straight through to the mock Tx.
func (s *AdoptionUseCaseTestSuite) expectWithin() {
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		}).Times(1)
}

func (s *AdoptionUseCaseTestSuite) capturePost() *commands.Notification {
	var captured commands.Notification
	s.mockNotifier.EXPECT().Post(gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, n commands.Notification) {
			captured = n
		}).Times(1)
	return &captured
}

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
}

// ================================================================================
// CreateRequest
// ================================================================================

func (s *AdoptionUseCaseTestSuite) TestCreateRequest() {
	pet := builder.NewPetBuilder()
	requestID := uuid.New()

	s.Run("success: creates a pending request and notifies the shelter", func() {
		s.expectWithin()
		s.mockReads.EXPECT().PetByID(gomock.Any(), pet.ID).Return(pet.BuildSnapshot(), nil)
		s.mockReads.EXPECT().UserByID(gomock.Any(), s.actor.ID).
			Return(&shared.UserSnapshot{ID: s.actor.ID, Name: "Asha", Role: "adopter", Address: "7 Hill Crest, Mumbai"}, nil)
		s.mockRequests.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Cond(func(r *adoption.Request) bool {
			return r.AdopterID() == s.actor.ID && r.PetID() == pet.ID &&
				r.Status() == adoption.StatusPending &&
				r.DeliveryAddress() == "7 Hill Crest, Mumbai"
		})).Return(requestID, nil)
		captured := s.capturePost()

		result, err := s.uc.CreateRequest(context.Background(), s.actor, pet.ID, "we love dogs")

		s.Require().NoError(err)
		s.Equal(requestID, result.RequestID)

		want := commands.Notification{
			UserID:  pet.ShelterID,
			Message: "New adoption request for Bruno from Asha",
			Link:    "/adoption/shelter/requests/",
		}
		s.Empty(cmp.Diff(want, *captured))
	})

	s.Run("error: shelter role cannot open a request", func() {
		shelter := shared.Actor{ID: uuid.New(), Role: "shelter"}

		_, err := s.uc.CreateRequest(context.Background(), shelter, pet.ID, "hi")
		s.ErrorIs(err, errs.ErrForbidden)
	})

	s.Run("error: pet not found", func() {
		s.expectWithin()
		s.mockReads.EXPECT().PetByID(gomock.Any(), pet.ID).Return(nil, notFoundErr())

		_, err := s.uc.CreateRequest(context.Background(), s.actor, pet.ID, "hi")
		s.ErrorIs(err, errs.ErrPetNotFound)
	})

	s.Run("error: pet not available", func() {
		unavailable := builder.NewPetBuilder().With(func(p *builder.PetBuilder) { p.Available = false })
		s.expectWithin()
		s.mockReads.EXPECT().PetByID(gomock.Any(), unavailable.ID).Return(unavailable.BuildSnapshot(), nil)

		_, err := s.uc.CreateRequest(context.Background(), s.actor, unavailable.ID, "hi")
		s.ErrorIs(err, errs.ErrPetNotAvailable)
	})

	s.Run("error: shelter cannot adopt its own pet", func() {
		own := builder.NewPetBuilder().With(func(p *builder.PetBuilder) { p.ShelterID = s.actor.ID })
		s.expectWithin()
		s.mockReads.EXPECT().PetByID(gomock.Any(), own.ID).Return(own.BuildSnapshot(), nil)

		_, err := s.uc.CreateRequest(context.Background(), s.actor, own.ID, "hi")
		s.ErrorIs(err, errs.ErrForbidden)
	})

	s.Run("error: duplicate request maps to ErrDuplicateRequest", func() {
		s.expectWithin()
		s.mockReads.EXPECT().PetByID(gomock.Any(), pet.ID).Return(pet.BuildSnapshot(), nil)
		s.mockReads.EXPECT().UserByID(gomock.Any(), s.actor.ID).
			Return(&shared.UserSnapshot{ID: s.actor.ID, Name: "Asha", Role: "adopter"}, nil)
		s.mockRequests.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("insert", nil, infra.KindDuplicateKey))

		_, err := s.uc.CreateRequest(context.Background(), s.actor, pet.ID, "hi")
		s.ErrorIs(err, errs.ErrDuplicateRequest)
	})
}

// ================================================================================
// Approve
// ================================================================================

func (s *AdoptionUseCaseTestSuite) TestApprove() {
	s.Run("success: approves, claims the pet and rejects siblings", func() {
		req := builder.NewAdoptionRequestBuilder().With(func(b *builder.AdoptionRequestBuilder) {
			b.ShelterID = s.actor.ID
		})
		s.expectWithin()
		s.mockReads.EXPECT().AdoptionRequestByIDForUpdate(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)
		s.mockPets.EXPECT().ClaimForAdoption(gomock.Any(), gomock.Any(), req.PetID).Return(true, nil)
		s.mockRequests.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Cond(func(r *adoption.Request) bool {
			return r.Status() == adoption.StatusApproved
		})).Return(nil)
		s.mockRequests.EXPECT().RejectPendingSiblings(gomock.Any(), gomock.Any(), req.PetID, req.ID).Return(int64(2), nil)
		captured := s.capturePost()

		err := s.uc.Approve(context.Background(), s.actor, req.ID)

		s.Require().NoError(err)
		want := commands.Notification{
			UserID:  req.AdopterID,
			Message: "Your adoption request for Bruno has been approved!",
			Link:    "/adoption/my-requests/",
		}
		s.Empty(cmp.Diff(want, *captured))
	})

	s.Run("success: free adoption settles immediately", func() {
		req := builder.NewAdoptionRequestBuilder().With(func(b *builder.AdoptionRequestBuilder) {
			b.ShelterID = s.actor.ID
			b.PaymentAmountCents = 0
		})
		s.expectWithin()
		s.mockReads.EXPECT().AdoptionRequestByIDForUpdate(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)
		s.mockPets.EXPECT().ClaimForAdoption(gomock.Any(), gomock.Any(), req.PetID).Return(true, nil)
		s.mockRequests.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Cond(func(r *adoption.Request) bool {
			return r.PaymentStatus() == adoption.PaymentCompleted &&
				r.PaymentReference() != nil && *r.PaymentReference() == adoption.FreeAdoptionReference
		})).Return(nil)
		s.mockRequests.EXPECT().RejectPendingSiblings(gomock.Any(), gomock.Any(), req.PetID, req.ID).Return(int64(0), nil)
		s.capturePost()

		s.Require().NoError(s.uc.Approve(context.Background(), s.actor, req.ID))
	})

	s.Run("error: another approval already claimed the pet", func() {
		req := builder.NewAdoptionRequestBuilder().With(func(b *builder.AdoptionRequestBuilder) {
			b.ShelterID = s.actor.ID
		})
		s.expectWithin()
		s.mockReads.EXPECT().AdoptionRequestByIDForUpdate(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)
		s.mockPets.EXPECT().ClaimForAdoption(gomock.Any(), gomock.Any(), req.PetID).Return(false, nil)

		err := s.uc.Approve(context.Background(), s.actor, req.ID)
		s.ErrorIs(err, errs.ErrPetNotAvailable)
	})

	s.Run("error: foreign shelter is forbidden", func() {
		req := builder.NewAdoptionRequestBuilder()
		s.expectWithin()
		s.mockReads.EXPECT().AdoptionRequestByIDForUpdate(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)

		err := s.uc.Approve(context.Background(), s.actor, req.ID)
		s.ErrorIs(err, errs.ErrForbidden)
	})

	s.Run("error: non-pending request cannot be approved", func() {
		req := builder.NewAdoptionRequestBuilder().With(func(b *builder.AdoptionRequestBuilder) {
			b.ShelterID = s.actor.ID
			b.Status = adoption.StatusRejected
		})
		s.expectWithin()
		s.mockReads.EXPECT().AdoptionRequestByIDForUpdate(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)

		err := s.uc.Approve(context.Background(), s.actor, req.ID)
		s.ErrorIs(err, errs.ErrInvalidTransition)
	})
}

// ================================================================================
// Cancel
// ================================================================================

func (s *AdoptionUseCaseTestSuite) TestCancel() {
	s.Run("success: adopter cancels an approved request", func() {
		req := builder.NewAdoptionRequestBuilder().With(func(b *builder.AdoptionRequestBuilder) {
			b.AdopterID = s.actor.ID
			b.Status = adoption.StatusApproved
		})
		s.expectWithin()
		s.mockReads.EXPECT().AdoptionRequestByIDForUpdate(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)
		s.mockRequests.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Cond(func(r *adoption.Request) bool {
			return r.Status() == adoption.StatusCancelled
		})).Return(nil)
		captured := s.capturePost()

		s.Require().NoError(s.uc.Cancel(context.Background(), s.actor, req.ID))

		want := commands.Notification{
			UserID:  req.ShelterID,
			Message: "Adoption request for Bruno has been cancelled by Test Adopter",
			Link:    "/adoption/shelter/requests/",
		}
		s.Empty(cmp.Diff(want, *captured))
	})

	s.Run("error: delivery already started", func() {
		req := builder.NewAdoptionRequestBuilder().With(func(b *builder.AdoptionRequestBuilder) {
			b.AdopterID = s.actor.ID
			b.Status = adoption.StatusInDelivery
		})
		s.expectWithin()
		s.mockReads.EXPECT().AdoptionRequestByIDForUpdate(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)

		err := s.uc.Cancel(context.Background(), s.actor, req.ID)
		s.ErrorIs(err, errs.ErrInvalidTransition)
	})
}

// ================================================================================
// InitiatePayment
// ================================================================================

func (s *AdoptionUseCaseTestSuite) TestInitiatePayment() {
	approved := func() *builder.AdoptionRequestBuilder {
		return builder.NewAdoptionRequestBuilder().With(func(b *builder.AdoptionRequestBuilder) {
			b.AdopterID = s.actor.ID
			b.Status = adoption.StatusApproved
		})
	}

	s.Run("success: opens the order outside the transaction then binds it", func() {
		req := approved()
		order := &commands.PaymentOrder{ID: "order_abc", AmountCents: req.PaymentAmountCents, Currency: "INR", KeyID: "rzp_test_key"}

		s.mockUoW.EXPECT().CommandReads().Return(s.mockReads)
		s.mockReads.EXPECT().AdoptionRequestByID(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)
		s.mockGateway.EXPECT().CreateOrder(gomock.Any(), req.PaymentAmountCents, req.ID.String()).Return(order, nil)
		s.expectWithin()
		s.mockReads.EXPECT().AdoptionRequestByIDForUpdate(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)
		s.mockRequests.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Cond(func(r *adoption.Request) bool {
			return r.PaymentStatus() == adoption.PaymentProcessing &&
				r.GatewayOrderID() != nil && *r.GatewayOrderID() == "order_abc"
		})).Return(nil)

		got, err := s.uc.InitiatePayment(context.Background(), s.actor, req.ID)

		s.Require().NoError(err)
		s.Equal(order, got)
	})

	s.Run("error: pending request is not payable", func() {
		req := builder.NewAdoptionRequestBuilder().With(func(b *builder.AdoptionRequestBuilder) {
			b.AdopterID = s.actor.ID
		})
		s.mockUoW.EXPECT().CommandReads().Return(s.mockReads)
		s.mockReads.EXPECT().AdoptionRequestByID(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)

		_, err := s.uc.InitiatePayment(context.Background(), s.actor, req.ID)
		s.ErrorIs(err, errs.ErrRequestNotApproved)
	})

	s.Run("error: free adoption needs no payment", func() {
		req := approved().With(func(b *builder.AdoptionRequestBuilder) { b.PaymentAmountCents = 0 })
		s.mockUoW.EXPECT().CommandReads().Return(s.mockReads)
		s.mockReads.EXPECT().AdoptionRequestByID(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)

		_, err := s.uc.InitiatePayment(context.Background(), s.actor, req.ID)
		s.ErrorIs(err, errs.ErrPaymentNotRequired)
	})

	s.Run("error: already settled", func() {
		req := approved().With(func(b *builder.AdoptionRequestBuilder) { b.PaymentStatus = adoption.PaymentCompleted })
		s.mockUoW.EXPECT().CommandReads().Return(s.mockReads)
		s.mockReads.EXPECT().AdoptionRequestByID(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)

		_, err := s.uc.InitiatePayment(context.Background(), s.actor, req.ID)
		s.ErrorIs(err, errs.ErrPaymentAlreadySettled)
	})

	s.Run("error: gateway failure maps to ErrGatewayUnavailable and skips the transaction", func() {
		req := approved()
		s.mockUoW.EXPECT().CommandReads().Return(s.mockReads)
		s.mockReads.EXPECT().AdoptionRequestByID(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)
		s.mockGateway.EXPECT().CreateOrder(gomock.Any(), req.PaymentAmountCents, req.ID.String()).
			Return(nil, errors.New("connection refused"))

		_, err := s.uc.InitiatePayment(context.Background(), s.actor, req.ID)
		s.ErrorIs(err, errs.ErrGatewayUnavailable)
	})

	s.Run("error: another adopter's request is forbidden", func() {
		req := builder.NewAdoptionRequestBuilder().With(func(b *builder.AdoptionRequestBuilder) {
			b.Status = adoption.StatusApproved
		})
		s.mockUoW.EXPECT().CommandReads().Return(s.mockReads)
		s.mockReads.EXPECT().AdoptionRequestByID(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)

		_, err := s.uc.InitiatePayment(context.Background(), s.actor, req.ID)
		s.ErrorIs(err, errs.ErrForbidden)
	})
}

// ================================================================================
// LookupPayment
// ================================================================================

func (s *AdoptionUseCaseTestSuite) TestLookupPayment() {
	settled := func() *builder.AdoptionRequestBuilder {
		ref := "pay_XYZ789"
		return builder.NewAdoptionRequestBuilder().With(func(b *builder.AdoptionRequestBuilder) {
			b.AdopterID = s.actor.ID
			b.Status = adoption.StatusApproved
			b.PaymentStatus = adoption.PaymentCompleted
			b.PaymentReference = &ref
		})
	}

	s.Run("success: fetches the gateway record by the stored reference", func() {
		req := settled()
		details := &commands.PaymentDetails{
			ID:          "pay_XYZ789",
			OrderID:     "order_abc",
			AmountCents: req.PaymentAmountCents,
			Currency:    "INR",
			Status:      "captured",
		}

		s.mockUoW.EXPECT().CommandReads().Return(s.mockReads)
		s.mockReads.EXPECT().AdoptionRequestByID(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)
		s.mockGateway.EXPECT().FetchPayment(gomock.Any(), "pay_XYZ789").Return(details, nil)

		got, err := s.uc.LookupPayment(context.Background(), s.actor, req.ID)

		s.Require().NoError(err)
		s.Equal(details, got)
	})

	s.Run("success: the pet's shelter can look up the payment", func() {
		req := settled().With(func(b *builder.AdoptionRequestBuilder) {
			b.AdopterID = uuid.New()
			b.ShelterID = s.actor.ID
		})
		s.mockUoW.EXPECT().CommandReads().Return(s.mockReads)
		s.mockReads.EXPECT().AdoptionRequestByID(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)
		s.mockGateway.EXPECT().FetchPayment(gomock.Any(), "pay_XYZ789").Return(&commands.PaymentDetails{ID: "pay_XYZ789"}, nil)

		_, err := s.uc.LookupPayment(context.Background(), s.actor, req.ID)
		s.Require().NoError(err)
	})

	s.Run("error: unsettled payment has nothing to fetch", func() {
		req := settled().With(func(b *builder.AdoptionRequestBuilder) {
			b.PaymentStatus = adoption.PaymentProcessing
			b.PaymentReference = nil
		})
		s.mockUoW.EXPECT().CommandReads().Return(s.mockReads)
		s.mockReads.EXPECT().AdoptionRequestByID(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)

		_, err := s.uc.LookupPayment(context.Background(), s.actor, req.ID)
		s.ErrorIs(err, errs.ErrPaymentNotSettled)
	})

	s.Run("error: free adoption has no gateway payment", func() {
		ref := adoption.FreeAdoptionReference
		req := settled().With(func(b *builder.AdoptionRequestBuilder) {
			b.PaymentAmountCents = 0
			b.PaymentReference = &ref
		})
		s.mockUoW.EXPECT().CommandReads().Return(s.mockReads)
		s.mockReads.EXPECT().AdoptionRequestByID(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)

		_, err := s.uc.LookupPayment(context.Background(), s.actor, req.ID)
		s.ErrorIs(err, errs.ErrPaymentNotRequired)
	})

	s.Run("error: a stranger's lookup is forbidden", func() {
		req := settled().With(func(b *builder.AdoptionRequestBuilder) { b.AdopterID = uuid.New() })
		s.mockUoW.EXPECT().CommandReads().Return(s.mockReads)
		s.mockReads.EXPECT().AdoptionRequestByID(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)

		_, err := s.uc.LookupPayment(context.Background(), s.actor, req.ID)
		s.ErrorIs(err, errs.ErrForbidden)
	})

	s.Run("error: gateway failure maps to ErrGatewayUnavailable", func() {
		req := settled()
		s.mockUoW.EXPECT().CommandReads().Return(s.mockReads)
		s.mockReads.EXPECT().AdoptionRequestByID(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)
		s.mockGateway.EXPECT().FetchPayment(gomock.Any(), "pay_XYZ789").
			Return(nil, errors.New("connection refused"))

		_, err := s.uc.LookupPayment(context.Background(), s.actor, req.ID)
		s.ErrorIs(err, errs.ErrGatewayUnavailable)
	})
}

// ================================================================================
// ConfirmPayment
// ================================================================================

func (s *AdoptionUseCaseTestSuite) TestConfirmPayment() {
	orderID := "order_abc"
	input := commands.ConfirmPaymentInput{OrderID: orderID, PaymentID: "pay_xyz", Signature: "sig"}

	processing := func() *builder.AdoptionRequestBuilder {
		return builder.NewAdoptionRequestBuilder().With(func(b *builder.AdoptionRequestBuilder) {
			b.AdopterID = s.actor.ID
			b.Status = adoption.StatusApproved
			b.PaymentStatus = adoption.PaymentProcessing
			b.GatewayOrderID = &orderID
		})
	}

	s.Run("success: settles the payment and notifies the shelter", func() {
		req := processing()
		s.mockGateway.EXPECT().VerifySignature(orderID, "pay_xyz", "sig").Return(true)
		s.expectWithin()
		s.mockReads.EXPECT().AdoptionRequestByIDForUpdate(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)
		s.mockRequests.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Cond(func(r *adoption.Request) bool {
			return r.PaymentStatus() == adoption.PaymentCompleted &&
				r.PaymentReference() != nil && *r.PaymentReference() == "pay_xyz"
		})).Return(nil)
		captured := s.capturePost()

		s.Require().NoError(s.uc.ConfirmPayment(context.Background(), s.actor, req.ID, input))

		want := commands.Notification{
			UserID:  req.ShelterID,
			Message: "Payment received for Bruno from Test Adopter",
			Link:    "/adoption/shelter/requests/",
		}
		s.Empty(cmp.Diff(want, *captured))
	})

	s.Run("error: bad signature parks the payment as failed", func() {
		req := processing()
		s.mockGateway.EXPECT().VerifySignature(orderID, "pay_xyz", "sig").Return(false)
		s.expectWithin()
		s.mockReads.EXPECT().AdoptionRequestByIDForUpdate(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)
		s.mockRequests.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Cond(func(r *adoption.Request) bool {
			return r.PaymentStatus() == adoption.PaymentFailed
		})).Return(nil)

		err := s.uc.ConfirmPayment(context.Background(), s.actor, req.ID, input)
		s.ErrorIs(err, errs.ErrPaymentVerificationFailed)
	})

	s.Run("error: order id belongs to a different request", func() {
		other := "order_other"
		req := processing().With(func(b *builder.AdoptionRequestBuilder) { b.GatewayOrderID = &other })
		s.mockGateway.EXPECT().VerifySignature(orderID, "pay_xyz", "sig").Return(true)
		s.expectWithin()
		s.mockReads.EXPECT().AdoptionRequestByIDForUpdate(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)

		err := s.uc.ConfirmPayment(context.Background(), s.actor, req.ID, input)
		s.ErrorIs(err, errs.ErrGatewayOrderMismatch)
	})

	s.Run("success: replayed callback for a settled payment is a no-op", func() {
		req := processing().With(func(b *builder.AdoptionRequestBuilder) {
			b.PaymentStatus = adoption.PaymentCompleted
			ref := "pay_xyz"
			b.PaymentReference = &ref
		})
		s.mockGateway.EXPECT().VerifySignature(orderID, "pay_xyz", "sig").Return(true)
		s.expectWithin()
		s.mockReads.EXPECT().AdoptionRequestByIDForUpdate(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)
		// No update, no second notification.

		s.Require().NoError(s.uc.ConfirmPayment(context.Background(), s.actor, req.ID, input))
	})

	s.Run("error: payment was never initiated", func() {
		req := processing().With(func(b *builder.AdoptionRequestBuilder) { b.PaymentStatus = adoption.PaymentPending })
		s.mockGateway.EXPECT().VerifySignature(orderID, "pay_xyz", "sig").Return(true)
		s.expectWithin()
		s.mockReads.EXPECT().AdoptionRequestByIDForUpdate(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)

		err := s.uc.ConfirmPayment(context.Background(), s.actor, req.ID, input)
		s.ErrorIs(err, errs.ErrPaymentNotInitiated)
	})
}

// ================================================================================
// Delivery
// ================================================================================

func (s *AdoptionUseCaseTestSuite) TestStartDelivery() {
	paid := func() *builder.AdoptionRequestBuilder {
		return builder.NewAdoptionRequestBuilder().With(func(b *builder.AdoptionRequestBuilder) {
			b.ShelterID = s.actor.ID
			b.Status = adoption.StatusApproved
			b.PaymentStatus = adoption.PaymentCompleted
		})
	}

	s.Run("success: moves to in_delivery and announces the estimated date", func() {
		req := paid()
		estimated := s.clock.Now().Add(72 * time.Hour)

		s.expectWithin()
		s.mockReads.EXPECT().AdoptionRequestByIDForUpdate(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)
		s.mockRequests.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Cond(func(r *adoption.Request) bool {
			return r.Status() == adoption.StatusInDelivery
		})).Return(nil)
		captured := s.capturePost()

		s.Require().NoError(s.uc.StartDelivery(context.Background(), s.actor, req.ID, estimated))

		want := commands.Notification{
			UserID:  req.AdopterID,
			Message: "Delivery started for Bruno! Estimated delivery: June 4, 2025",
			Link:    "/adoption/my-requests/",
		}
		s.Empty(cmp.Diff(want, *captured))
	})

	s.Run("error: estimated date in the past", func() {
		req := paid()
		s.expectWithin()
		s.mockReads.EXPECT().AdoptionRequestByIDForUpdate(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)

		err := s.uc.StartDelivery(context.Background(), s.actor, req.ID, s.clock.Now().Add(-24*time.Hour))
		s.ErrorIs(err, errs.ErrInvalidDeliveryDate)
	})

	s.Run("error: unpaid request cannot ship", func() {
		req := paid().With(func(b *builder.AdoptionRequestBuilder) { b.PaymentStatus = adoption.PaymentProcessing })
		s.expectWithin()
		s.mockReads.EXPECT().AdoptionRequestByIDForUpdate(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)

		err := s.uc.StartDelivery(context.Background(), s.actor, req.ID, s.clock.Now().Add(72*time.Hour))
		s.ErrorIs(err, errs.ErrPaymentNotSettled)
	})
}

func (s *AdoptionUseCaseTestSuite) TestCompleteDelivery() {
	inDelivery := func() *builder.AdoptionRequestBuilder {
		estimated := s.clock.Now().Add(72 * time.Hour)
		return builder.NewAdoptionRequestBuilder().With(func(b *builder.AdoptionRequestBuilder) {
			b.ShelterID = s.actor.ID
			b.Status = adoption.StatusInDelivery
			b.PaymentStatus = adoption.PaymentCompleted
			b.EstimatedDate = &estimated
		})
	}

	s.Run("success: completes the adoption and records the notes", func() {
		req := inDelivery()
		actual := s.clock.Now()

		s.expectWithin()
		s.mockReads.EXPECT().AdoptionRequestByIDForUpdate(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)
		s.mockRequests.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Cond(func(r *adoption.Request) bool {
			return r.Status() == adoption.StatusCompleted && r.DeliveryNotes() == "Handed over at the gate"
		})).Return(nil)
		captured := s.capturePost()

		s.Require().NoError(s.uc.CompleteDelivery(context.Background(), s.actor, req.ID, actual, "Handed over at the gate"))

		want := commands.Notification{
			UserID:  req.AdopterID,
			Message: "Delivery completed for Bruno! Welcome your new pet home!",
			Link:    "/adoption/my-requests/",
		}
		s.Empty(cmp.Diff(want, *captured))
	})

	s.Run("error: not in delivery", func() {
		req := inDelivery().With(func(b *builder.AdoptionRequestBuilder) { b.Status = adoption.StatusApproved })
		s.expectWithin()
		s.mockReads.EXPECT().AdoptionRequestByIDForUpdate(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)

		err := s.uc.CompleteDelivery(context.Background(), s.actor, req.ID, s.clock.Now(), "")
		s.ErrorIs(err, errs.ErrInvalidTransition)
	})

	s.Run("error: actual date in the future", func() {
		req := inDelivery()
		s.expectWithin()
		s.mockReads.EXPECT().AdoptionRequestByIDForUpdate(gomock.Any(), req.ID).Return(req.BuildSnapshot(), nil)

		err := s.uc.CompleteDelivery(context.Background(), s.actor, req.ID, s.clock.Now().Add(48*time.Hour), "")
		s.ErrorIs(err, errs.ErrInvalidDeliveryDate)
	})
}
