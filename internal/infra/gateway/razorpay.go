package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"petconnect/internal/pkg/config"
	"petconnect/internal/pkg/errs"
	"petconnect/internal/usecase/commands"
)

var (
	errOrderRequestBuild = errs.New("failed to build order request")
	errOrderRequestSend  = errs.New("failed to reach payment gateway")
	errOrderRejected     = errs.New("payment gateway rejected order")
	errOrderDecode       = errs.New("failed to decode order response")
)

// RazorpayGateway opens payment orders against the Razorpay Orders API and
// verifies the HMAC signature Razorpay attaches to completed checkouts.
type RazorpayGateway struct {
	cfg    config.RazorpayConfig
	client *http.Client
}

func NewRazorpayGateway(cfg config.RazorpayConfig) *RazorpayGateway {
	return &RazorpayGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type createOrderRequest struct {
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	Receipt        string `json:"receipt"`
	PaymentCapture bool   `json:"payment_capture"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amountCents int64, receipt string) (*commands.PaymentOrder, error) {
	body, err := json.Marshal(createOrderRequest{
		Amount:         amountCents,
		Currency:       g.cfg.Currency,
		Receipt:        receipt,
		PaymentCapture: true,
	})
	if err != nil {
		return nil, errs.Mark(err, errOrderRequestBuild)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Mark(err, errOrderRequestBuild)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(g.cfg.KeyID, g.cfg.KeySecret)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errs.Mark(err, errOrderRequestSend)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// Bounded read so a misbehaving gateway cannot balloon the error
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errs.Mark(
			fmt.Errorf("order creation returned %d: %s", resp.StatusCode, string(snippet)),
			errOrderRejected,
		)
	}

	var decoded createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errs.Mark(err, errOrderDecode)
	}
	if decoded.ID == "" {
		return nil, errs.Mark(errs.New("order response missing id"), errOrderDecode)
	}

	return &commands.PaymentOrder{
		ID:          decoded.ID,
		AmountCents: decoded.Amount,
		Currency:    decoded.Currency,
		KeyID:       g.cfg.KeyID,
	}, nil
}

type fetchPaymentResponse struct {
	ID       string `json:"id"`
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Method   string `json:"method"`
	Email    string `json:"email"`
}

// FetchPayment pulls a captured payment by id.
func (g *RazorpayGateway) FetchPayment(ctx context.Context, paymentID string) (*commands.PaymentDetails, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.BaseURL+"/v1/payments/"+paymentID, nil)
	if err != nil {
		return nil, errs.Mark(err, errOrderRequestBuild)
	}
	req.SetBasicAuth(g.cfg.KeyID, g.cfg.KeySecret)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errs.Mark(err, errOrderRequestSend)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errs.Mark(
			fmt.Errorf("payment fetch returned %d: %s", resp.StatusCode, string(snippet)),
			errOrderRejected,
		)
	}

	var decoded fetchPaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errs.Mark(err, errOrderDecode)
	}
	if decoded.ID == "" {
		return nil, errs.Mark(errs.New("payment response missing id"), errOrderDecode)
	}

	return &commands.PaymentDetails{
		ID:          decoded.ID,
		OrderID:     decoded.OrderID,
		AmountCents: decoded.Amount,
		Currency:    decoded.Currency,
		Status:      decoded.Status,
		Method:      decoded.Method,
		Email:       decoded.Email,
	}, nil
}

// VerifySignature checks the checkout callback signature: HMAC-SHA256 of
// "orderID|paymentID" keyed with the API secret, hex encoded.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(g.cfg.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
