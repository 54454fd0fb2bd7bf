package commands

import (
	"context"
	"time"

	"apothecary/internal/domain/medication"
	"apothecary/internal/domain/reservation"
	"apothecary/internal/infra"
	"apothecary/internal/infra/db"
	"apothecary/internal/pkg/clock"
	"apothecary/internal/pkg/errs"
	"apothecary/internal/usecase/queries"
	"apothecary/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrMedicationNotFound    = errs.New("medication is not offered by this apothecary")
	ErrNotEnoughAvailable    = errs.New("not enough stock available")
	ErrReservationNotFound   = errs.New("reservation not found")
	ErrCreateReservationFail = errs.New("failed to create reservation")
	ErrCancelReservationFail = errs.New("failed to cancel reservation")
)

type ReserveInput struct {
	ApothecaryID  uuid.UUID
	MedicationID  uuid.UUID
	QuantityType  medication.QuantityType
	Amount        uint64
	StartDateTime time.Time
}

// StockRepository mutates apothecary stock rows inside a transaction.
type StockRepository interface {
	FindEntry(ctx context.Context, tx db.DBTX, apothecaryID, medicationID uuid.UUID) (*medication.StockEntry, error)
	// DecrementPackage subtracts amount from the package stock row only if
	// enough remains, in a single statement. Returns the number of rows
	// affected; zero means the stock was insufficient at execution time.
	DecrementPackage(ctx context.Context, tx db.DBTX, apothecaryID, medicationID uuid.UUID, amount uint64) (int64, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, rsv *reservation.Reservation) error
	DeleteByOwner(ctx context.Context, tx db.DBTX, id, userID uuid.UUID) (int64, error)
}

type ReservationCommands interface {
	Reserve(ctx context.Context, userID uuid.UUID, input ReserveInput) (*queries.ReservationView, error)
	Cancel(ctx context.Context, userID uuid.UUID, reservationID uuid.UUID) error
}

type reservationCommandsImpl struct {
	pool         *pgxpool.Pool
	stockRepo    StockRepository
	rsvRepo      ReservationRepository
	rsvReadStore queries.ReservationReadStore
	clock        clock.Clock
}

func NewReservationCommands(
	pool *pgxpool.Pool,
	stockRepo StockRepository,
	rsvRepo ReservationRepository,
	rsvReadStore queries.ReservationReadStore,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		pool:         pool,
		stockRepo:    stockRepo,
		rsvRepo:      rsvRepo,
		rsvReadStore: rsvReadStore,
		clock:        clk,
	}
}

func (c *reservationCommandsImpl) Reserve(ctx context.Context, userID uuid.UUID, input ReserveInput) (*queries.ReservationView, error) {
	rsv, err := shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (*reservation.Reservation, error) {
		return c.reserveInTx(ctx, tx, userID, input)
	})
	if err != nil {
		return nil, err
	}

	view, err := c.rsvReadStore.FindByID(ctx, rsv.ID, userID, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrCreateReservationFail)
	}
	return view, nil
}

func (c *reservationCommandsImpl) reserveInTx(ctx context.Context, tx db.DBTX, userID uuid.UUID, input ReserveInput) (*reservation.Reservation, error) {
	entry, err := c.stockRepo.FindEntry(ctx, tx, input.ApothecaryID, input.MedicationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMedicationNotFound
		}
		return nil, errs.Mark(err, ErrCreateReservationFail)
	}

	// Only package-typed requests are reservable; what happens next depends
	// on how the apothecary tracks this stock.
	if input.QuantityType != medication.QuantityTypePackage {
		return nil, ErrNotEnoughAvailable
	}

	var rsv reservation.Reservation
	switch stock := entry.Quantity.(type) {
	case medication.Package:
		affected, err := c.stockRepo.DecrementPackage(ctx, tx, input.ApothecaryID, input.MedicationID, input.Amount)
		if err != nil {
			return nil, errs.Mark(err, ErrCreateReservationFail)
		}
		if affected == 0 {
			return nil, ErrNotEnoughAvailable
		}
		rsv = reservation.NewPackageReservation(
			input.ApothecaryID, input.MedicationID, userID,
			input.Amount, stock.Price, input.StartDateTime,
		)
	case medication.Unknown:
		// Untracked stock: the apothecary has to confirm, so the
		// reservation stays pending with no window or price.
		rsv = reservation.NewPendingReservation(
			input.ApothecaryID, input.MedicationID, userID, input.Amount,
		)
	default:
		return nil, ErrNotEnoughAvailable
	}

	if err := c.rsvRepo.Create(ctx, tx, &rsv); err != nil {
		return nil, errs.Mark(err, ErrCreateReservationFail)
	}
	return &rsv, nil
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, userID uuid.UUID, reservationID uuid.UUID) error {
	_, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		affected, err := c.rsvRepo.DeleteByOwner(ctx, tx, reservationID, userID)
		if err != nil {
			return struct{}{}, errs.Mark(err, ErrCancelReservationFail)
		}
		if affected == 0 {
			return struct{}{}, ErrReservationNotFound
		}
		return struct{}{}, nil
	})
	return err
}
