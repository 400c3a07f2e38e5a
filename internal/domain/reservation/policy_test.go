//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"beach-reserve/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var saoPaulo = mustLoadLocation("America/Sao_Paulo")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func newTestPolicy(t *testing.T) reservation.Policy {
	t.Helper()
	policy, err := reservation.NewPolicy(reservation.PolicyParams{
		OpenHour:     7,
		CloseHour:    17,
		MaxDayOffset: 1,
		MinimumLead:  10 * time.Minute,
		CancelCutoff: 10 * time.Minute,
		NoShowGrace:  20 * time.Minute,
		Location:     saoPaulo,
	})
	require.NoError(t, err)
	return policy
}

func at(t *testing.T, day string, hour, minute int) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", day, saoPaulo)
	require.NoError(t, err)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, saoPaulo)
}

func TestPolicy_ValidateArrival(t *testing.T) {
	policy := newTestPolicy(t)
	now := at(t, "2024-01-10", 12, 0)

	tests := []struct {
		name   string
		day    string
		hour   int
		minute int
		errIs  error
	}{
		{name: "today within window and past lead", day: "2024-01-10", hour: 12, minute: 15},
		{name: "today at exact lead boundary", day: "2024-01-10", hour: 12, minute: 10},
		{name: "today inside lead window", day: "2024-01-10", hour: 12, minute: 5, errIs: reservation.ErrInsufficientLead},
		{name: "today in the past", day: "2024-01-10", hour: 9, minute: 0, errIs: reservation.ErrInsufficientLead},
		{name: "today at closing boundary", day: "2024-01-10", hour: 17, minute: 0},
		{name: "today one minute after closing", day: "2024-01-10", hour: 17, minute: 1, errIs: reservation.ErrAfterClosing},
		{name: "today before opening", day: "2024-01-10", hour: 6, minute: 59, errIs: reservation.ErrBeforeOpening},
		{name: "tomorrow morning before today's now", day: "2024-01-11", hour: 8, minute: 0},
		{name: "tomorrow at opening", day: "2024-01-11", hour: 7, minute: 0},
		{name: "tomorrow before opening", day: "2024-01-11", hour: 6, minute: 59, errIs: reservation.ErrBeforeOpening},
		{name: "day after tomorrow", day: "2024-01-12", hour: 12, minute: 0, errIs: reservation.ErrDayOutOfRange},
		{name: "yesterday", day: "2024-01-09", hour: 12, minute: 0, errIs: reservation.ErrDayOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := at(t, tt.day, 0, 0)
			got, err := policy.ValidateArrival(day, tt.hour, tt.minute, now)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, at(t, tt.day, tt.hour, tt.minute), got)
		})
	}
}

// The day check runs before the window check, so an out-of-range day with an
// out-of-window time reports the day problem.
func TestPolicy_ValidateArrival_RejectionOrder(t *testing.T) {
	policy := newTestPolicy(t)
	now := at(t, "2024-01-10", 12, 0)

	_, err := policy.ValidateArrival(at(t, "2024-01-12", 0, 0), 3, 0, now)
	assert.ErrorIs(t, err, reservation.ErrDayOutOfRange)

	// Before-opening wins over lead even when both apply.
	_, err = policy.ValidateArrival(at(t, "2024-01-10", 0, 0), 6, 0, now)
	assert.ErrorIs(t, err, reservation.ErrBeforeOpening)
}

func TestPolicy_CanCancel(t *testing.T) {
	policy := newTestPolicy(t)
	now := at(t, "2024-01-10", 12, 0)

	arrivalSoon := at(t, "2024-01-10", 12, 5)
	arrivalLater := at(t, "2024-01-10", 14, 0)
	arrivalAtCutoff := at(t, "2024-01-10", 12, 10)

	tests := []struct {
		name    string
		status  reservation.Status
		arrival *time.Time
		errIs   error
	}{
		{name: "pending with no arrival", status: reservation.StatusPending, arrival: nil},
		{name: "pending well before arrival", status: reservation.StatusPending, arrival: &arrivalLater},
		{name: "confirmed well before arrival", status: reservation.StatusConfirmed, arrival: &arrivalLater},
		{name: "confirmed inside cutoff", status: reservation.StatusConfirmed, arrival: &arrivalSoon, errIs: reservation.ErrCancelTooClose},
		{name: "confirmed exactly at cutoff", status: reservation.StatusConfirmed, arrival: &arrivalAtCutoff, errIs: reservation.ErrCancelTooClose},
		{name: "arrived", status: reservation.StatusArrived, arrival: &arrivalLater, errIs: reservation.ErrCancelWrongStatus},
		{name: "already canceled", status: reservation.StatusCanceled, arrival: &arrivalLater, errIs: reservation.ErrCancelWrongStatus},
		{name: "no-show", status: reservation.StatusNoShow, arrival: nil, errIs: reservation.ErrCancelWrongStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.CancelBlockReason(tt.status, tt.arrival, now)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.False(t, policy.CanCancel(tt.status, tt.arrival, now))
				return
			}
			assert.NoError(t, err)
			assert.True(t, policy.CanCancel(tt.status, tt.arrival, now))
		})
	}
}

func TestPolicy_CanDecide(t *testing.T) {
	policy := newTestPolicy(t)

	arrival := at(t, "2024-01-10", 14, 0)

	assert.True(t, policy.CanDecide(arrival, at(t, "2024-01-10", 7, 0)))
	assert.True(t, policy.CanDecide(arrival, at(t, "2024-01-10", 13, 59)))
	assert.False(t, policy.CanDecide(arrival, at(t, "2024-01-10", 6, 59)))
	assert.False(t, policy.CanDecide(arrival, at(t, "2024-01-09", 12, 0)))
	assert.False(t, policy.CanDecide(arrival, at(t, "2024-01-11", 12, 0)))
}

func TestPolicy_ExpiresAt(t *testing.T) {
	policy := newTestPolicy(t)
	arrival := at(t, "2024-01-10", 14, 0)
	assert.Equal(t, at(t, "2024-01-10", 14, 20), policy.ExpiresAt(arrival))
}

func TestPolicy_CanMarkNoShow(t *testing.T) {
	policy := newTestPolicy(t)
	expires := at(t, "2024-01-10", 14, 20)
	checkedIn := at(t, "2024-01-10", 14, 5)

	t.Run("confirmed past deadline", func(t *testing.T) {
		assert.True(t, policy.CanMarkNoShow(reservation.StatusConfirmed, &expires, nil, at(t, "2024-01-10", 14, 21)))
	})
	t.Run("deadline not reached", func(t *testing.T) {
		assert.False(t, policy.CanMarkNoShow(reservation.StatusConfirmed, &expires, nil, at(t, "2024-01-10", 14, 20)))
	})
	t.Run("already checked in", func(t *testing.T) {
		assert.False(t, policy.CanMarkNoShow(reservation.StatusConfirmed, &expires, &checkedIn, at(t, "2024-01-10", 14, 21)))
	})
	t.Run("no deadline", func(t *testing.T) {
		assert.False(t, policy.CanMarkNoShow(reservation.StatusConfirmed, nil, nil, at(t, "2024-01-10", 14, 21)))
	})
	t.Run("pending", func(t *testing.T) {
		assert.False(t, policy.CanMarkNoShow(reservation.StatusPending, &expires, nil, at(t, "2024-01-10", 14, 21)))
	})
}

func TestNewPolicy_InvalidWindow(t *testing.T) {
	_, err := reservation.NewPolicy(reservation.PolicyParams{OpenHour: 17, CloseHour: 7, Location: saoPaulo})
	assert.ErrorIs(t, err, reservation.ErrInvalidPolicyWindow)
}
