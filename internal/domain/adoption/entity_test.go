//go:build unit

package adoption_test

import (
	"testing"
	"time"

	"petconnect/internal/domain/adoption"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingRequest(t *testing.T, priceCents int64) *adoption.Request {
	t.Helper()
	r, err := adoption.NewRequest(uuid.New(), uuid.New(), "We have a big garden", "42 Lakeview Road, Pune", priceCents)
	require.NoError(t, err)
	return r
}

func newApprovedRequest(t *testing.T, priceCents int64) *adoption.Request {
	t.Helper()
	r := newPendingRequest(t, priceCents)
	require.NoError(t, r.Approve(time.Now()))
	return r
}

func TestNewRequest(t *testing.T) {
	t.Run("opens pending with frozen amount", func(t *testing.T) {
		r := newPendingRequest(t, 50000)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, adoption.StatusPending, r.Status())
		assert.Equal(t, adoption.PaymentPending, r.PaymentStatus())
		assert.Equal(t, int64(50000), r.PaymentAmount().Cents())
		assert.Equal(t, "42 Lakeview Road, Pune", r.DeliveryAddress())
		assert.True(t, r.RequiresPayment())
		assert.Nil(t, r.PaymentReference())
		assert.Nil(t, r.GatewayOrderID())
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := adoption.NewRequest(uuid.New(), uuid.New(), "", "", -1)
		require.Error(t, err)
	})
}

func TestApprove(t *testing.T) {
	t.Run("paid adoption stays unsettled", func(t *testing.T) {
		r := newPendingRequest(t, 50000)
		require.NoError(t, r.Approve(time.Now()))

		assert.Equal(t, adoption.StatusApproved, r.Status())
		assert.Equal(t, adoption.PaymentPending, r.PaymentStatus())
		assert.Nil(t, r.PaymentReference())
	})

	t.Run("free adoption settles immediately", func(t *testing.T) {
		r := newPendingRequest(t, 0)
		require.NoError(t, r.Approve(time.Now()))

		assert.Equal(t, adoption.StatusApproved, r.Status())
		assert.Equal(t, adoption.PaymentCompleted, r.PaymentStatus())
		require.NotNil(t, r.PaymentReference())
		assert.Equal(t, adoption.FreeAdoptionReference, *r.PaymentReference())
		assert.NotNil(t, r.PaymentDate())
	})

	t.Run("only from pending", func(t *testing.T) {
		r := newApprovedRequest(t, 50000)
		assert.ErrorIs(t, r.Approve(time.Now()), adoption.ErrNotPending)

		r2 := newPendingRequest(t, 50000)
		require.NoError(t, r2.Reject())
		assert.ErrorIs(t, r2.Approve(time.Now()), adoption.ErrNotPending)
	})
}

func TestRejectAndCancel(t *testing.T) {
	t.Run("reject only from pending", func(t *testing.T) {
		r := newPendingRequest(t, 0)
		require.NoError(t, r.Reject())
		assert.Equal(t, adoption.StatusRejected, r.Status())

		assert.ErrorIs(t, r.Reject(), adoption.ErrNotPending)
	})

	t.Run("cancel from pending and approved", func(t *testing.T) {
		r := newPendingRequest(t, 50000)
		require.NoError(t, r.Cancel())
		assert.Equal(t, adoption.StatusCancelled, r.Status())

		r2 := newApprovedRequest(t, 50000)
		require.NoError(t, r2.Cancel())
		assert.Equal(t, adoption.StatusCancelled, r2.Status())
	})

	t.Run("cancel blocked once delivery starts", func(t *testing.T) {
		now := time.Now()
		r := newApprovedRequest(t, 0)
		require.NoError(t, r.StartDelivery(now.AddDate(0, 0, 3), now))

		assert.ErrorIs(t, r.Cancel(), adoption.ErrNotCancellable)
	})
}

func TestPaymentFlow(t *testing.T) {
	t.Run("begin settle happy path", func(t *testing.T) {
		r := newApprovedRequest(t, 50000)

		require.NoError(t, r.BeginPayment("order_123"))
		assert.Equal(t, adoption.PaymentProcessing, r.PaymentStatus())
		assert.True(t, r.OwnsGatewayOrder("order_123"))

		require.NoError(t, r.Settle("pay_456", time.Now()))
		assert.Equal(t, adoption.PaymentCompleted, r.PaymentStatus())
		require.NotNil(t, r.PaymentReference())
		assert.Equal(t, "pay_456", *r.PaymentReference())
		assert.NotNil(t, r.PaymentDate())
	})

	t.Run("begin requires approved", func(t *testing.T) {
		r := newPendingRequest(t, 50000)
		assert.ErrorIs(t, r.BeginPayment("order_123"), adoption.ErrNotApproved)
	})

	t.Run("begin rejected for free adoption", func(t *testing.T) {
		r := newApprovedRequest(t, 0)
		assert.ErrorIs(t, r.BeginPayment("order_123"), adoption.ErrPaymentSettled)
	})

	t.Run("settle requires processing", func(t *testing.T) {
		r := newApprovedRequest(t, 50000)
		assert.ErrorIs(t, r.Settle("pay_456", time.Now()), adoption.ErrPaymentNotProcessing)
	})

	t.Run("settle is not repeatable", func(t *testing.T) {
		r := newApprovedRequest(t, 50000)
		require.NoError(t, r.BeginPayment("order_123"))
		require.NoError(t, r.Settle("pay_456", time.Now()))

		assert.ErrorIs(t, r.Settle("pay_789", time.Now()), adoption.ErrPaymentSettled)
		require.NotNil(t, r.PaymentReference())
		assert.Equal(t, "pay_456", *r.PaymentReference())
	})

	t.Run("retry after failure creates fresh order", func(t *testing.T) {
		r := newApprovedRequest(t, 50000)
		require.NoError(t, r.BeginPayment("order_123"))
		require.NoError(t, r.MarkPaymentFailed())
		assert.Equal(t, adoption.PaymentFailed, r.PaymentStatus())

		require.NoError(t, r.BeginPayment("order_456"))
		assert.False(t, r.OwnsGatewayOrder("order_123"))
		assert.True(t, r.OwnsGatewayOrder("order_456"))
	})

	t.Run("fail requires processing", func(t *testing.T) {
		r := newApprovedRequest(t, 50000)
		assert.ErrorIs(t, r.MarkPaymentFailed(), adoption.ErrPaymentNotProcessing)
	})
}

func TestDelivery(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	settled := func(t *testing.T) *adoption.Request {
		t.Helper()
		r := newApprovedRequest(t, 50000)
		require.NoError(t, r.BeginPayment("order_123"))
		require.NoError(t, r.Settle("pay_456", time.Now()))
		return r
	}

	t.Run("start requires settled payment", func(t *testing.T) {
		r := newApprovedRequest(t, 50000)
		err := r.StartDelivery(now.AddDate(0, 0, 3), now)
		assert.ErrorIs(t, err, adoption.ErrPaymentNotSettled)
	})

	t.Run("start accepts today as estimate", func(t *testing.T) {
		r := settled(t)
		sameDayEarlier := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		require.NoError(t, r.StartDelivery(sameDayEarlier, now))
		assert.Equal(t, adoption.StatusInDelivery, r.Status())
	})

	t.Run("start rejects past estimate", func(t *testing.T) {
		r := settled(t)
		err := r.StartDelivery(now.AddDate(0, 0, -1), now)
		assert.ErrorIs(t, err, adoption.ErrDeliveryDateInPast)
	})

	t.Run("start compares days in UTC regardless of client zone", func(t *testing.T) {
		r := settled(t)
		// 2026-03-09T23:00-07:00 is 2026-03-10T06:00Z, the same UTC day as now.
		offset := time.FixedZone("", -7*3600)
		estimate := time.Date(2026, 3, 9, 23, 0, 0, 0, offset)
		require.NoError(t, r.StartDelivery(estimate, now))
		assert.Equal(t, adoption.StatusInDelivery, r.Status())
	})

	t.Run("complete happy path", func(t *testing.T) {
		r := settled(t)
		require.NoError(t, r.StartDelivery(now.AddDate(0, 0, 3), now))

		later := now.AddDate(0, 0, 3)
		require.NoError(t, r.CompleteDelivery(later, later, "handed over at the gate"))
		assert.Equal(t, adoption.StatusCompleted, r.Status())
		require.NotNil(t, r.ActualDate())
		assert.Equal(t, "handed over at the gate", r.DeliveryNotes())
	})

	t.Run("complete rejects future actual date", func(t *testing.T) {
		r := settled(t)
		require.NoError(t, r.StartDelivery(now, now))

		err := r.CompleteDelivery(now.AddDate(0, 0, 1), now, "")
		assert.ErrorIs(t, err, adoption.ErrDeliveryDateInFuture)
	})

	t.Run("complete compares days in UTC regardless of client zone", func(t *testing.T) {
		r := settled(t)
		require.NoError(t, r.StartDelivery(now, now))

		// 2026-03-11T00:30+09:00 is 2026-03-10T15:30Z, still today in UTC.
		offset := time.FixedZone("", 9*3600)
		actual := time.Date(2026, 3, 11, 0, 30, 0, 0, offset)
		require.NoError(t, r.CompleteDelivery(actual, now, ""))
		assert.Equal(t, adoption.StatusCompleted, r.Status())
	})

	t.Run("complete requires in_delivery", func(t *testing.T) {
		r := settled(t)
		err := r.CompleteDelivery(now, now, "")
		assert.ErrorIs(t, err, adoption.ErrNotInDelivery)
	})
}
