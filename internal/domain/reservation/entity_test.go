//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"beach-reserve/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLineItems(t *testing.T) []reservation.LineItem {
	t.Helper()
	chair, err := reservation.NewLineItem(uuid.New(), "Cadeira de praia", 2, reservation.NewMoney(1500))
	require.NoError(t, err)
	umbrella, err := reservation.NewLineItem(uuid.New(), "Guarda-sol", 1, reservation.NewMoney(2500))
	require.NoError(t, err)
	return []reservation.LineItem{chair, umbrella}
}

func newPendingReservation(t *testing.T, arrivalAt *time.Time) *reservation.Reservation {
	t.Helper()
	res, err := reservation.NewReservation(uuid.New(), uuid.New(), arrivalAt, newLineItems(t), reservation.NewNote(""))
	require.NoError(t, err)
	return res
}

func TestNewReservation(t *testing.T) {
	t.Run("totals line items", func(t *testing.T) {
		arrival := at(t, "2024-01-10", 14, 0)
		res := newPendingReservation(t, &arrival)

		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.Equal(t, int64(2*1500+2500), res.Total().Cents())
		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Nil(t, res.ConfirmationCode())
		assert.Nil(t, res.ExpiresAt())
	})

	t.Run("rejects empty order", func(t *testing.T) {
		_, err := reservation.NewReservation(uuid.New(), uuid.New(), nil, nil, reservation.NewNote(""))
		assert.ErrorIs(t, err, reservation.ErrNoItems)
	})
}

func TestReservation_Approve(t *testing.T) {
	policy := newTestPolicy(t)

	t.Run("confirms and sets deadline", func(t *testing.T) {
		arrival := at(t, "2024-01-10", 14, 0)
		res := newPendingReservation(t, &arrival)

		require.NoError(t, res.Approve(policy, "4821", at(t, "2024-01-10", 8, 0)))
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		require.NotNil(t, res.ConfirmationCode())
		assert.Equal(t, "4821", *res.ConfirmationCode())
		require.NotNil(t, res.ExpiresAt())
		assert.Equal(t, at(t, "2024-01-10", 14, 20), *res.ExpiresAt())
	})

	t.Run("no deadline without arrival", func(t *testing.T) {
		res := newPendingReservation(t, nil)
		require.NoError(t, res.Approve(policy, "4821", at(t, "2024-01-10", 8, 0)))
		assert.Nil(t, res.ExpiresAt())
	})

	t.Run("blocked before the arrival day", func(t *testing.T) {
		arrival := at(t, "2024-01-11", 14, 0)
		res := newPendingReservation(t, &arrival)
		assert.ErrorIs(t, res.Approve(policy, "4821", at(t, "2024-01-10", 8, 0)), reservation.ErrDecisionTooEarly)
	})

	t.Run("blocked before opening on the arrival day", func(t *testing.T) {
		arrival := at(t, "2024-01-10", 14, 0)
		res := newPendingReservation(t, &arrival)
		assert.ErrorIs(t, res.Approve(policy, "4821", at(t, "2024-01-10", 6, 30)), reservation.ErrDecisionTooEarly)
	})

	t.Run("only pending can be approved", func(t *testing.T) {
		arrival := at(t, "2024-01-10", 14, 0)
		res := newPendingReservation(t, &arrival)
		require.NoError(t, res.Approve(policy, "4821", at(t, "2024-01-10", 8, 0)))
		assert.ErrorIs(t, res.Approve(policy, "9999", at(t, "2024-01-10", 8, 5)), reservation.ErrDecisionNotAllowed)
	})
}

func TestReservation_Reject(t *testing.T) {
	policy := newTestPolicy(t)
	reason := "Mar agitado hoje"

	arrival := at(t, "2024-01-10", 14, 0)
	res := newPendingReservation(t, &arrival)

	require.NoError(t, res.Reject(policy, &reason, at(t, "2024-01-10", 8, 0)))
	assert.Equal(t, reservation.StatusCanceled, res.Status())
	require.NotNil(t, res.CanceledBy())
	assert.Equal(t, reservation.CanceledByVendor, *res.CanceledBy())
	require.NotNil(t, res.CancelReason())
	assert.Equal(t, reason, *res.CancelReason())

	assert.ErrorIs(t, res.Reject(policy, nil, at(t, "2024-01-10", 8, 5)), reservation.ErrDecisionNotAllowed)
}

func TestReservation_CancelByUser(t *testing.T) {
	policy := newTestPolicy(t)

	t.Run("pending with no arrival cancels any time", func(t *testing.T) {
		res := newPendingReservation(t, nil)
		require.NoError(t, res.CancelByUser(policy, at(t, "2024-01-10", 16, 59)))
		assert.Equal(t, reservation.StatusCanceled, res.Status())
		require.NotNil(t, res.CanceledBy())
		assert.Equal(t, reservation.CanceledByUser, *res.CanceledBy())
	})

	t.Run("blocked inside the cutoff", func(t *testing.T) {
		arrival := at(t, "2024-01-10", 12, 5)
		res := newPendingReservation(t, &arrival)
		err := res.CancelByUser(policy, at(t, "2024-01-10", 12, 0))
		assert.ErrorIs(t, err, reservation.ErrCancelTooClose)
		assert.Equal(t, reservation.StatusPending, res.Status())
	})

	t.Run("blocked after check-in", func(t *testing.T) {
		arrival := at(t, "2024-01-10", 14, 0)
		res := newPendingReservation(t, &arrival)
		require.NoError(t, res.Approve(policy, "4821", at(t, "2024-01-10", 8, 0)))
		require.NoError(t, res.CheckIn("4821", at(t, "2024-01-10", 14, 2)))
		assert.ErrorIs(t, res.CancelByUser(policy, at(t, "2024-01-10", 14, 5)), reservation.ErrCancelWrongStatus)
	})
}

func TestReservation_CancelByVendor(t *testing.T) {
	policy := newTestPolicy(t)

	// Vendor cancellation ignores the cutoff.
	arrival := at(t, "2024-01-10", 12, 5)
	res := newPendingReservation(t, &arrival)
	require.NoError(t, res.Approve(policy, "4821", at(t, "2024-01-10", 8, 0)))

	require.NoError(t, res.CancelByVendor(nil))
	assert.Equal(t, reservation.StatusCanceled, res.Status())
	require.NotNil(t, res.CanceledBy())
	assert.Equal(t, reservation.CanceledByVendor, *res.CanceledBy())

	assert.ErrorIs(t, res.CancelByVendor(nil), reservation.ErrCancelWrongStatus)
}

func TestReservation_CheckIn(t *testing.T) {
	policy := newTestPolicy(t)

	newConfirmed := func(t *testing.T) *reservation.Reservation {
		arrival := at(t, "2024-01-10", 14, 0)
		res := newPendingReservation(t, &arrival)
		require.NoError(t, res.Approve(policy, "4821", at(t, "2024-01-10", 8, 0)))
		return res
	}

	t.Run("matching code arrives", func(t *testing.T) {
		res := newConfirmed(t)
		now := at(t, "2024-01-10", 14, 3)
		require.NoError(t, res.CheckIn("4821", now))
		assert.Equal(t, reservation.StatusArrived, res.Status())
		require.NotNil(t, res.CheckedInAt())
		assert.Equal(t, now, *res.CheckedInAt())
	})

	t.Run("wrong code rejected", func(t *testing.T) {
		res := newConfirmed(t)
		err := res.CheckIn("0000", at(t, "2024-01-10", 14, 3))
		assert.ErrorIs(t, err, reservation.ErrPinMismatch)
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
	})

	t.Run("pending cannot check in", func(t *testing.T) {
		arrival := at(t, "2024-01-10", 14, 0)
		res := newPendingReservation(t, &arrival)
		assert.ErrorIs(t, res.CheckIn("4821", at(t, "2024-01-10", 14, 3)), reservation.ErrCheckInNotAllowed)
	})
}

func TestReservation_MarkNoShow(t *testing.T) {
	policy := newTestPolicy(t)

	arrival := at(t, "2024-01-10", 14, 0)
	res := newPendingReservation(t, &arrival)
	require.NoError(t, res.Approve(policy, "4821", at(t, "2024-01-10", 8, 0)))

	assert.ErrorIs(t, res.MarkNoShow(policy, at(t, "2024-01-10", 14, 10)), reservation.ErrNoShowNotAllowed)

	require.NoError(t, res.MarkNoShow(policy, at(t, "2024-01-10", 14, 21)))
	assert.Equal(t, reservation.StatusNoShow, res.Status())
}
