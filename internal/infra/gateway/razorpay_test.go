//go:build unit

package gateway_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petconnect/internal/infra/gateway"
	"petconnect/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRazorpayConfig(baseURL string) config.RazorpayConfig {
	return config.RazorpayConfig{
		KeyID:     "rzp_test_key",
		KeySecret: "rzp_test_secret",
		BaseURL:   baseURL,
		Timeout:   2 * time.Second,
		Currency:  "INR",
	}
}

func TestRazorpayGateway_CreateOrder(t *testing.T) {
	t.Run("creates order with basic auth and paise amount", func(t *testing.T) {
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/orders", r.URL.Path)

			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "rzp_test_key", user)
			assert.Equal(t, "rzp_test_secret", pass)

			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"order_ABC123","amount":250000,"currency":"INR","status":"created"}`))
		}))
		defer srv.Close()

		g := gateway.NewRazorpayGateway(testRazorpayConfig(srv.URL))

		order, err := g.CreateOrder(context.Background(), 250000, "req-42")
		require.NoError(t, err)

		assert.Equal(t, "order_ABC123", order.ID)
		assert.Equal(t, int64(250000), order.AmountCents)
		assert.Equal(t, "INR", order.Currency)
		assert.Equal(t, "rzp_test_key", order.KeyID)

		assert.Equal(t, float64(250000), gotBody["amount"])
		assert.Equal(t, "INR", gotBody["currency"])
		assert.Equal(t, "req-42", gotBody["receipt"])
		assert.Equal(t, true, gotBody["payment_capture"])
	})

	t.Run("returns error on non-200 response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"description":"Authentication failed"}}`))
		}))
		defer srv.Close()

		g := gateway.NewRazorpayGateway(testRazorpayConfig(srv.URL))

		order, err := g.CreateOrder(context.Background(), 1000, "req-1")
		require.Error(t, err)
		assert.Nil(t, order)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("returns error when response has no order id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"amount":1000}`))
		}))
		defer srv.Close()

		g := gateway.NewRazorpayGateway(testRazorpayConfig(srv.URL))

		_, err := g.CreateOrder(context.Background(), 1000, "req-1")
		require.Error(t, err)
	})

	t.Run("returns error when gateway is unreachable", func(t *testing.T) {
		g := gateway.NewRazorpayGateway(testRazorpayConfig("http://127.0.0.1:1"))

		_, err := g.CreateOrder(context.Background(), 1000, "req-1")
		require.Error(t, err)
	})
}

func TestRazorpayGateway_FetchPayment(t *testing.T) {
	t.Run("fetches payment details by id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/v1/payments/pay_XYZ789", r.URL.Path)

			_, _, ok := r.BasicAuth()
			require.True(t, ok)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"pay_XYZ789","order_id":"order_ABC123","amount":250000,"currency":"INR","status":"captured","method":"upi","email":"adopter@example.com"}`))
		}))
		defer srv.Close()

		g := gateway.NewRazorpayGateway(testRazorpayConfig(srv.URL))

		p, err := g.FetchPayment(context.Background(), "pay_XYZ789")
		require.NoError(t, err)
		assert.Equal(t, "order_ABC123", p.OrderID)
		assert.Equal(t, "captured", p.Status)
		assert.Equal(t, int64(250000), p.AmountCents)
	})

	t.Run("returns error for an unknown payment", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"description":"payment not found"}}`))
		}))
		defer srv.Close()

		g := gateway.NewRazorpayGateway(testRazorpayConfig(srv.URL))

		_, err := g.FetchPayment(context.Background(), "pay_missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})
}

func TestRazorpayGateway_VerifySignature(t *testing.T) {
	cfg := testRazorpayConfig("https://api.razorpay.com")
	g := gateway.NewRazorpayGateway(cfg)

	sign := func(orderID, paymentID string) string {
		mac := hmac.New(sha256.New, []byte(cfg.KeySecret))
		mac.Write([]byte(orderID + "|" + paymentID))
		return hex.EncodeToString(mac.Sum(nil))
	}

	t.Run("accepts a valid signature", func(t *testing.T) {
		sig := sign("order_ABC123", "pay_XYZ789")
		assert.True(t, g.VerifySignature("order_ABC123", "pay_XYZ789", sig))
	})

	t.Run("rejects a signature for a different order", func(t *testing.T) {
		sig := sign("order_OTHER", "pay_XYZ789")
		assert.False(t, g.VerifySignature("order_ABC123", "pay_XYZ789", sig))
	})

	t.Run("rejects a tampered signature", func(t *testing.T) {
		sig := sign("order_ABC123", "pay_XYZ789")
		assert.False(t, g.VerifySignature("order_ABC123", "pay_XYZ789", sig[:len(sig)-1]+"g"))
	})

	t.Run("rejects empty inputs", func(t *testing.T) {
		assert.False(t, g.VerifySignature("", "pay_XYZ789", "sig"))
		assert.False(t, g.VerifySignature("order_ABC123", "", "sig"))
		assert.False(t, g.VerifySignature("order_ABC123", "pay_XYZ789", ""))
	})
}
