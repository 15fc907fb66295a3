//go:build e2e

package adoption_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"testing"
	"time"

	"petconnect/internal/domain/user"
	"petconnect/internal/handler/dto/request"
	"petconnect/internal/handler/dto/response"
	"petconnect/tests/common/authtest"
	"petconnect/tests/common/dbtest"
	"petconnect/tests/common/httptest"
	"petconnect/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	petsURL            = "/api/pets"
	requestsURL        = "/api/adoption-requests"
	shelterRequestsURL = "/api/shelter/adoption-requests"
	notificationsURL   = "/api/notifications"
)

type AdoptionSuite struct {
	e2e.SharedSuite
}

func TestAdoptionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AdoptionSuite))
}

func (s *AdoptionSuite) adopterToken(t *testing.T) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, dbtest.SeedAdopterID, user.RoleAdopter)
}

func (s *AdoptionSuite) shelterToken(t *testing.T) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, dbtest.SeedShelterID, user.RoleShelter)
}

// checkoutSignature reproduces the signature Razorpay attaches to a completed
// checkout: HMAC-SHA256 of "orderID|paymentID" keyed with the API secret.
func (s *AdoptionSuite) checkoutSignature(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(s.Config.Razorpay.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *AdoptionSuite) createRequest(t *testing.T, petID uuid.UUID, token string) uuid.UUID {
	url := fmt.Sprintf("%s/%s/adoption-requests", petsURL, petID)
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
		request.CreateAdoptionRequest{Message: "We have a big garden."}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.CreatedResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	require.NotEqual(t, uuid.Nil, created.ID)
	return created.ID
}

func (s *AdoptionSuite) getRequest(t *testing.T, id uuid.UUID, token string) response.AdoptionRequestResponse {
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/"+id.String(), nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var view response.AdoptionRequestResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &view))
	return view
}

// =============================================================================
// TestAdoptionLifecycle - Full request lifecycle through the HTTP API
// =============================================================================

func (s *AdoptionSuite) TestAdoptionLifecycle() {
	s.Run("Normal case: paid adoption runs from request to completed delivery", func() {
		t := s.T()

		petID := dbtest.CreateTestPet(t, s.DB, dbtest.SeedShelterID, "Bruno", 250000)
		adopterToken := s.adopterToken(t)
		shelterToken := s.shelterToken(t)

		requestID := s.createRequest(t, petID, adopterToken)

		view := s.getRequest(t, requestID, adopterToken)
		require.Equal(t, "pending", view.Status)
		require.Equal(t, int64(250000), view.PaymentAmountCents)
		require.Equal(t, "42 Lakeview Road, Pune", view.DeliveryAddress, "address is copied from the adopter profile")

		// Shelter approves
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			requestsURL+"/"+requestID.String()+"/approve", nil, shelterToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		// Approval takes the pet off the market
		pw := httptest.PerformRequest(t, s.Router, http.MethodGet, petsURL+"/"+petID.String(), nil, "")
		require.Equal(t, http.StatusOK, pw.Code)
		var petView response.PetResponse
		require.NoError(t, httptest.DecodeResponseBody(t, pw.Body, &petView))
		require.False(t, petView.IsAvailable)

		// Adopter opens a payment order
		ow := httptest.PerformRequest(t, s.Router, http.MethodPost,
			requestsURL+"/"+requestID.String()+"/payment", nil, adopterToken)
		require.Equal(t, http.StatusOK, ow.Code, ow.Body.String())
		var order response.PaymentOrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, ow.Body, &order))
		require.NotEmpty(t, order.OrderID)
		require.Equal(t, int64(250000), order.AmountCents)
		require.Equal(t, "INR", order.Currency)
		require.Equal(t, s.Config.Razorpay.KeyID, order.KeyID)

		// Confirm with a valid checkout signature
		paymentID := "pay_e2e001"
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			requestsURL+"/"+requestID.String()+"/payment/confirm",
			request.ConfirmPaymentRequest{
				RazorpayOrderID:   order.OrderID,
				RazorpayPaymentID: paymentID,
				RazorpaySignature: s.checkoutSignature(order.OrderID, paymentID),
			}, adopterToken)
		require.Equal(t, http.StatusNoContent, cw.Code, cw.Body.String())

		view = s.getRequest(t, requestID, adopterToken)
		require.Equal(t, "completed", view.PaymentStatus)
		require.NotNil(t, view.PaymentReference)
		require.Equal(t, paymentID, *view.PaymentReference)
		require.NotNil(t, view.PaymentDate)

		// Settled payment can be reconciled against the gateway record
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			requestsURL+"/"+requestID.String()+"/payment", nil, adopterToken)
		require.Equal(t, http.StatusOK, lw.Code, lw.Body.String())
		var details response.PaymentDetailsResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &details))
		require.Equal(t, paymentID, details.PaymentID)
		require.Equal(t, "captured", details.Status)

		// Shelter ships
		sw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			requestsURL+"/"+requestID.String()+"/delivery/start",
			request.StartDeliveryRequest{EstimatedDeliveryDate: time.Now().Add(72 * time.Hour)}, shelterToken)
		require.Equal(t, http.StatusNoContent, sw.Code, sw.Body.String())

		dw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			requestsURL+"/"+requestID.String()+"/delivery/complete",
			request.CompleteDeliveryRequest{
				ActualDeliveryDate: time.Now(),
				DeliveryNotes:      "Handed over at the gate",
			}, shelterToken)
		require.Equal(t, http.StatusNoContent, dw.Code, dw.Body.String())

		view = s.getRequest(t, requestID, adopterToken)
		require.Equal(t, "completed", view.Status)
		require.Equal(t, "Handed over at the gate", view.DeliveryNotes)
		require.NotNil(t, view.EstimatedDeliveryDate)
		require.NotNil(t, view.ActualDeliveryDate)

		// Every transition fanned out a notification to the adopter
		nw := httptest.PerformRequest(t, s.Router, http.MethodGet, notificationsURL, nil, adopterToken)
		require.Equal(t, http.StatusOK, nw.Code)
		var notices []*response.NotificationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, nw.Body, &notices))
		messages := make([]string, len(notices))
		for i, n := range notices {
			messages[i] = n.Message
		}
		require.Contains(t, messages, "Your adoption request for Bruno has been approved!")
		require.Contains(t, messages, "Delivery completed for Bruno! Welcome your new pet home!")
	})

	s.Run("Normal case: free adoption settles on approval without a gateway order", func() {
		t := s.T()

		petID := dbtest.CreateTestPet(t, s.DB, dbtest.SeedShelterID, "Milo", 0)
		adopterToken := s.adopterToken(t)
		shelterToken := s.shelterToken(t)

		requestID := s.createRequest(t, petID, adopterToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			requestsURL+"/"+requestID.String()+"/approve", nil, shelterToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		view := s.getRequest(t, requestID, adopterToken)
		require.Equal(t, "approved", view.Status)
		require.Equal(t, "completed", view.PaymentStatus)
		require.NotNil(t, view.PaymentReference)
		require.Equal(t, "FREE-ADOPTION", *view.PaymentReference)
		require.NotNil(t, view.PaymentDate)

		// No payment to initiate
		pw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			requestsURL+"/"+requestID.String()+"/payment", nil, adopterToken)
		require.Equal(t, http.StatusConflict, pw.Code)
	})

	s.Run("Normal case: approving one request rejects the pending siblings", func() {
		t := s.T()

		petID := dbtest.CreateTestPet(t, s.DB, dbtest.SeedShelterID, "Luna", 100000)
		otherAdopterID := dbtest.CreateTestUser(t, s.DB, "second@example.com", "Second Adopter", "adopter")

		helper := authtest.NewJWTHelper(s.Config.JWT)
		firstToken := s.adopterToken(t)
		secondToken := helper.GenerateToken(t, otherAdopterID, user.RoleAdopter)
		shelterToken := s.shelterToken(t)

		winnerID := s.createRequest(t, petID, firstToken)
		loserID := s.createRequest(t, petID, secondToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			requestsURL+"/"+winnerID.String()+"/approve", nil, shelterToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		require.Equal(t, "approved", s.getRequest(t, winnerID, firstToken).Status)
		require.Equal(t, "rejected", s.getRequest(t, loserID, secondToken).Status)
	})

	s.Run("Error case: second request for the same pet is a conflict", func() {
		t := s.T()

		petID := dbtest.CreateTestPet(t, s.DB, dbtest.SeedShelterID, "Rex", 50000)
		adopterToken := s.adopterToken(t)

		s.createRequest(t, petID, adopterToken)

		url := fmt.Sprintf("%s/%s/adoption-requests", petsURL, petID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.CreateAdoptionRequest{Message: "Trying again"}, adopterToken)
		require.Equal(t, http.StatusConflict, w.Code, "Should reject a duplicate request")
	})

	s.Run("Error case: cancelled request cannot be approved", func() {
		t := s.T()

		petID := dbtest.CreateTestPet(t, s.DB, dbtest.SeedShelterID, "Nala", 80000)
		adopterToken := s.adopterToken(t)
		shelterToken := s.shelterToken(t)

		requestID := s.createRequest(t, petID, adopterToken)

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			requestsURL+"/"+requestID.String()+"/cancel", nil, adopterToken)
		require.Equal(t, http.StatusNoContent, cw.Code)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			requestsURL+"/"+requestID.String()+"/approve", nil, shelterToken)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		petID := dbtest.CreateTestPet(t, s.DB, dbtest.SeedShelterID, "Ghost", 10000)
		url := fmt.Sprintf("%s/%s/adoption-requests", petsURL, petID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.CreateAdoptionRequest{Message: "hi"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestPaymentRecovery - Signature failures and retried payments
// =============================================================================

func (s *AdoptionSuite) TestPaymentRecovery() {
	s.Run("Normal case: failed payment can be re-initiated with a fresh order", func() {
		t := s.T()

		petID := dbtest.CreateTestPet(t, s.DB, dbtest.SeedShelterID, "Bruno", 250000)
		adopterToken := s.adopterToken(t)
		shelterToken := s.shelterToken(t)

		requestID := s.createRequest(t, petID, adopterToken)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			requestsURL+"/"+requestID.String()+"/approve", nil, shelterToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		ow := httptest.PerformRequest(t, s.Router, http.MethodPost,
			requestsURL+"/"+requestID.String()+"/payment", nil, adopterToken)
		require.Equal(t, http.StatusOK, ow.Code)
		var firstOrder response.PaymentOrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, ow.Body, &firstOrder))

		// Tampered signature parks the payment as failed
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			requestsURL+"/"+requestID.String()+"/payment/confirm",
			request.ConfirmPaymentRequest{
				RazorpayOrderID:   firstOrder.OrderID,
				RazorpayPaymentID: "pay_bad",
				RazorpaySignature: "deadbeef",
			}, adopterToken)
		require.Equal(t, http.StatusBadRequest, cw.Code)
		require.Equal(t, "failed", s.getRequest(t, requestID, adopterToken).PaymentStatus)

		// Re-initiation issues a fresh order
		rw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			requestsURL+"/"+requestID.String()+"/payment", nil, adopterToken)
		require.Equal(t, http.StatusOK, rw.Code)
		var abandoned response.PaymentOrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rw.Body, &abandoned))
		require.NotEqual(t, firstOrder.OrderID, abandoned.OrderID)

		// Client abandons the checkout and reports it as failed
		fw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			requestsURL+"/"+requestID.String()+"/payment/fail", nil, adopterToken)
		require.Equal(t, http.StatusNoContent, fw.Code)
		require.Equal(t, "failed", s.getRequest(t, requestID, adopterToken).PaymentStatus)

		// Third order finally settles
		rw2 := httptest.PerformRequest(t, s.Router, http.MethodPost,
			requestsURL+"/"+requestID.String()+"/payment", nil, adopterToken)
		require.Equal(t, http.StatusOK, rw2.Code)
		var secondOrder response.PaymentOrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rw2.Body, &secondOrder))
		require.NotEqual(t, abandoned.OrderID, secondOrder.OrderID)

		paymentID := "pay_retry001"
		cw2 := httptest.PerformRequest(t, s.Router, http.MethodPost,
			requestsURL+"/"+requestID.String()+"/payment/confirm",
			request.ConfirmPaymentRequest{
				RazorpayOrderID:   secondOrder.OrderID,
				RazorpayPaymentID: paymentID,
				RazorpaySignature: s.checkoutSignature(secondOrder.OrderID, paymentID),
			}, adopterToken)
		require.Equal(t, http.StatusNoContent, cw2.Code, cw2.Body.String())
		require.Equal(t, "completed", s.getRequest(t, requestID, adopterToken).PaymentStatus)
	})

	s.Run("Error case: confirming against a stale order id is a conflict", func() {
		t := s.T()

		petID := dbtest.CreateTestPet(t, s.DB, dbtest.SeedShelterID, "Bruno", 250000)
		adopterToken := s.adopterToken(t)
		shelterToken := s.shelterToken(t)

		requestID := s.createRequest(t, petID, adopterToken)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			requestsURL+"/"+requestID.String()+"/approve", nil, shelterToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		ow := httptest.PerformRequest(t, s.Router, http.MethodPost,
			requestsURL+"/"+requestID.String()+"/payment", nil, adopterToken)
		require.Equal(t, http.StatusOK, ow.Code)

		staleOrderID := "order_stale"
		paymentID := "pay_x"
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			requestsURL+"/"+requestID.String()+"/payment/confirm",
			request.ConfirmPaymentRequest{
				RazorpayOrderID:   staleOrderID,
				RazorpayPaymentID: paymentID,
				RazorpaySignature: s.checkoutSignature(staleOrderID, paymentID),
			}, adopterToken)
		require.Equal(t, http.StatusConflict, cw.Code)
	})
}

// =============================================================================
// TestShelterRequestList - Shelter-side listing and filtering
// =============================================================================

func (s *AdoptionSuite) TestShelterRequestList() {
	s.Run("Normal case: status filter narrows the shelter list", func() {
		t := s.T()

		pet1 := dbtest.CreateTestPet(t, s.DB, dbtest.SeedShelterID, "Bruno", 100000)
		pet2 := dbtest.CreateTestPet(t, s.DB, dbtest.SeedShelterID, "Luna", 100000)

		adopterToken := s.adopterToken(t)
		shelterToken := s.shelterToken(t)

		approvedID := s.createRequest(t, pet1, adopterToken)
		s.createRequest(t, pet2, adopterToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			requestsURL+"/"+approvedID.String()+"/approve", nil, shelterToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, shelterRequestsURL, nil, shelterToken)
		require.Equal(t, http.StatusOK, lw.Code)
		var all []*response.AdoptionRequestListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &all))
		require.Len(t, all, 2)

		fw := httptest.PerformRequest(t, s.Router, http.MethodGet, shelterRequestsURL+"?status=approved", nil, shelterToken)
		require.Equal(t, http.StatusOK, fw.Code)
		var approved []*response.AdoptionRequestListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, fw.Body, &approved))
		require.Len(t, approved, 1)
		require.Equal(t, approvedID, approved[0].ID)
	})

	s.Run("Auth test - Adopter cannot read the shelter list", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, shelterRequestsURL, nil, s.adopterToken(t))
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestNotificationFlow - Fan-out, unread count and read marking
// =============================================================================

func (s *AdoptionSuite) TestNotificationFlow() {
	s.Run("Normal case: shelter notification can be marked read", func() {
		t := s.T()

		petID := dbtest.CreateTestPet(t, s.DB, dbtest.SeedShelterID, "Bruno", 100000)
		adopterToken := s.adopterToken(t)
		shelterToken := s.shelterToken(t)

		s.createRequest(t, petID, adopterToken)

		cw := httptest.PerformRequest(t, s.Router, http.MethodGet, notificationsURL+"/unread-count", nil, shelterToken)
		require.Equal(t, http.StatusOK, cw.Code)
		var count response.UnreadCountResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &count))
		require.Equal(t, int64(1), count.Count)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, notificationsURL, nil, shelterToken)
		require.Equal(t, http.StatusOK, lw.Code)
		var notices []*response.NotificationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &notices))
		require.Len(t, notices, 1)
		require.Equal(t, "New adoption request for Bruno from Test Adopter", notices[0].Message)
		require.False(t, notices[0].IsRead)

		mw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			notificationsURL+"/"+notices[0].ID.String()+"/read", nil, shelterToken)
		require.Equal(t, http.StatusNoContent, mw.Code)

		cw2 := httptest.PerformRequest(t, s.Router, http.MethodGet, notificationsURL+"/unread-count", nil, shelterToken)
		require.Equal(t, http.StatusOK, cw2.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, cw2.Body, &count))
		require.Equal(t, int64(0), count.Count)
	})

	s.Run("Normal case: mark-all-read reports the number updated", func() {
		t := s.T()

		pet1 := dbtest.CreateTestPet(t, s.DB, dbtest.SeedShelterID, "Bruno", 100000)
		pet2 := dbtest.CreateTestPet(t, s.DB, dbtest.SeedShelterID, "Luna", 100000)
		adopterToken := s.adopterToken(t)
		shelterToken := s.shelterToken(t)

		s.createRequest(t, pet1, adopterToken)
		s.createRequest(t, pet2, adopterToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, notificationsURL+"/read-all", nil, shelterToken)
		require.Equal(t, http.StatusOK, w.Code)
		var marked response.MarkAllReadResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &marked))
		require.Equal(t, int64(2), marked.Updated)
	})
}
