//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"apothecary/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCodeRoundTrip(t *testing.T) {
	for _, status := range []reservation.Status{
		reservation.StatusActive,
		reservation.StatusPending,
		reservation.StatusRejected,
		reservation.StatusDone,
	} {
		parsed, err := reservation.StatusFromCode(status.Code())
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := reservation.StatusFromCode("x")
	require.ErrorIs(t, err, reservation.ErrInvalidStatus)
}

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Second)
	future := now.Add(time.Minute)

	cases := []struct {
		name        string
		stored      reservation.Status
		endDateTime *time.Time
		want        reservation.PresentedStatus
	}{
		{name: "active with open window", stored: reservation.StatusActive, endDateTime: &future, want: reservation.PresentedActive},
		{name: "active one second past window is expired", stored: reservation.StatusActive, endDateTime: &past, want: reservation.PresentedExpired},
		{name: "pending without window", stored: reservation.StatusPending, endDateTime: nil, want: reservation.PresentedPending},
		{name: "done past window still expires", stored: reservation.StatusDone, endDateTime: &past, want: reservation.PresentedExpired},
		{name: "rejected passes through", stored: reservation.StatusRejected, endDateTime: nil, want: reservation.PresentedRejected},
		{name: "window ending exactly now is not expired", stored: reservation.StatusActive, endDateTime: &now, want: reservation.PresentedActive},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := reservation.DeriveStatus(tc.stored, tc.endDateTime, now)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewPackageReservationWindow(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	rsv := reservation.NewPackageReservation(
		uuid.New(), uuid.New(), uuid.New(), 2, decimal.NewFromInt(5), start)

	require.NotNil(t, rsv.StartDateTime)
	require.NotNil(t, rsv.EndDateTime)
	assert.Equal(t, start, *rsv.StartDateTime)
	assert.Equal(t, start.Add(30*time.Minute), *rsv.EndDateTime)
	assert.Equal(t, reservation.StatusActive, rsv.Status)
}

func TestNewPendingReservationHasNoWindow(t *testing.T) {
	rsv := reservation.NewPendingReservation(uuid.New(), uuid.New(), uuid.New(), 1)

	assert.Nil(t, rsv.StartDateTime)
	assert.Nil(t, rsv.EndDateTime)
	assert.Nil(t, rsv.Price)
	assert.Equal(t, reservation.StatusPending, rsv.Status)
	assert.Equal(t, reservation.PresentedPending, rsv.PresentedStatusAt(time.Now()))
}
