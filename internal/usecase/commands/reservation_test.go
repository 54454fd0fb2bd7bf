//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"apothecary/internal/domain/medication"
	"apothecary/internal/domain/reservation"
	"apothecary/internal/infra"
	"apothecary/internal/infra/db"
	"apothecary/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStockRepo struct {
	entry        *medication.StockEntry
	findErr      error
	decremented  int64
	decrementErr error
	lastAmount   uint64
}

func (f *fakeStockRepo) FindEntry(context.Context, db.DBTX, uuid.UUID, uuid.UUID) (*medication.StockEntry, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.entry, nil
}

func (f *fakeStockRepo) DecrementPackage(_ context.Context, _ db.DBTX, _, _ uuid.UUID, amount uint64) (int64, error) {
	f.lastAmount = amount
	return f.decremented, f.decrementErr
}

type fakeReservationRepo struct {
	created *reservation.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, _ db.DBTX, rsv *reservation.Reservation) error {
	f.created = rsv
	return nil
}

func (f *fakeReservationRepo) DeleteByOwner(context.Context, db.DBTX, uuid.UUID, uuid.UUID) (int64, error) {
	return 0, nil
}

func newReserveFixture(entry *medication.StockEntry, decremented int64, now time.Time) (*reservationCommandsImpl, *fakeStockRepo, *fakeReservationRepo) {
	stockRepo := &fakeStockRepo{entry: entry, decremented: decremented}
	rsvRepo := &fakeReservationRepo{}
	c := &reservationCommandsImpl{
		stockRepo: stockRepo,
		rsvRepo:   rsvRepo,
		clock:     clock.NewMockClock(now),
	}
	return c, stockRepo, rsvRepo
}

func packageEntry(amount uint64, price decimal.Decimal) *medication.StockEntry {
	return &medication.StockEntry{
		ApothecaryID: uuid.New(),
		MedicationID: uuid.New(),
		Quantity:     medication.Package{Amount: amount, Price: price},
	}
}

func TestReservePackageOpensPickupWindow(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	start := now.Add(2 * time.Hour)
	price := decimal.NewFromFloat(9.50)
	c, stockRepo, rsvRepo := newReserveFixture(packageEntry(10, price), 1, now)
	userID := uuid.New()

	rsv, err := c.reserveInTx(context.Background(), nil, userID, ReserveInput{
		QuantityType:  medication.QuantityTypePackage,
		Amount:        3,
		StartDateTime: start,
	})
	require.NoError(t, err)

	assert.EqualValues(t, 3, stockRepo.lastAmount)
	require.NotNil(t, rsvRepo.created)
	assert.Equal(t, reservation.StatusActive, rsv.Status)
	assert.Equal(t, userID, rsv.UserID)
	require.NotNil(t, rsv.Quantity)
	assert.EqualValues(t, 3, *rsv.Quantity)
	require.NotNil(t, rsv.Price)
	assert.True(t, price.Equal(*rsv.Price))
	require.NotNil(t, rsv.StartDateTime)
	require.NotNil(t, rsv.EndDateTime)
	assert.Equal(t, start, *rsv.StartDateTime, "the window opens at the requested pickup time")
	assert.Equal(t, start.Add(reservation.PickupWindow), *rsv.EndDateTime)
}

func TestReserveFailsWhenStockRunsOut(t *testing.T) {
	now := time.Now()
	// Zero rows affected means the conditional decrement found too little stock.
	c, _, rsvRepo := newReserveFixture(packageEntry(2, decimal.NewFromInt(5)), 0, now)

	_, err := c.reserveInTx(context.Background(), nil, uuid.New(), ReserveInput{
		QuantityType: medication.QuantityTypePackage,
		Amount:       3,
	})
	require.ErrorIs(t, err, ErrNotEnoughAvailable)
	assert.Nil(t, rsvRepo.created, "no reservation row may be written when the decrement misses")
}

func TestReserveRejectsUnknownTypedRequests(t *testing.T) {
	now := time.Now()

	c, stockRepo, rsvRepo := newReserveFixture(packageEntry(10, decimal.NewFromInt(5)), 1, now)
	_, err := c.reserveInTx(context.Background(), nil, uuid.New(), ReserveInput{
		QuantityType: medication.QuantityTypeUnknown,
		Amount:       1,
	})
	require.ErrorIs(t, err, ErrNotEnoughAvailable)
	assert.Zero(t, stockRepo.lastAmount, "an unknown-typed request must never touch the stock")
	assert.Nil(t, rsvRepo.created)

	unknownEntry := &medication.StockEntry{
		ApothecaryID: uuid.New(),
		MedicationID: uuid.New(),
		Quantity:     medication.Unknown{},
	}
	c, _, rsvRepo = newReserveFixture(unknownEntry, 0, now)
	_, err = c.reserveInTx(context.Background(), nil, uuid.New(), ReserveInput{
		QuantityType: medication.QuantityTypeUnknown,
		Amount:       1,
	})
	require.ErrorIs(t, err, ErrNotEnoughAvailable)
	assert.Nil(t, rsvRepo.created)
}

func TestReservePackageAgainstUntrackedStockStaysPending(t *testing.T) {
	now := time.Now()
	entry := &medication.StockEntry{
		ApothecaryID: uuid.New(),
		MedicationID: uuid.New(),
		Quantity:     medication.Unknown{},
	}
	c, stockRepo, rsvRepo := newReserveFixture(entry, 0, now)

	rsv, err := c.reserveInTx(context.Background(), nil, uuid.New(), ReserveInput{
		QuantityType:  medication.QuantityTypePackage,
		Amount:        2,
		StartDateTime: now.Add(time.Hour),
	})
	require.NoError(t, err)

	require.NotNil(t, rsvRepo.created)
	assert.Zero(t, stockRepo.lastAmount, "untracked stock has nothing to decrement")
	assert.Equal(t, reservation.StatusPending, rsv.Status)
	require.NotNil(t, rsv.Quantity)
	assert.EqualValues(t, 2, *rsv.Quantity)
	assert.Nil(t, rsv.Price, "untracked stock has no price to copy")
	assert.Nil(t, rsv.StartDateTime)
	assert.Nil(t, rsv.EndDateTime)
}

func TestReserveMissingStockEntry(t *testing.T) {
	stockRepo := &fakeStockRepo{findErr: infra.WrapRepoErr("stock entry not found", nil, infra.KindNotFound)}
	c := &reservationCommandsImpl{
		stockRepo: stockRepo,
		rsvRepo:   &fakeReservationRepo{},
		clock:     clock.NewMockClock(time.Now()),
	}

	_, err := c.reserveInTx(context.Background(), nil, uuid.New(), ReserveInput{
		QuantityType: medication.QuantityTypePackage,
		Amount:       1,
	})
	require.ErrorIs(t, err, ErrMedicationNotFound)
}
