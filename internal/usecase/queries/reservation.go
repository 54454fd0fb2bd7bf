package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"apothecary/internal/infra"
	"apothecary/internal/pkg/clock"
	"apothecary/internal/pkg/errs"
	"apothecary/internal/pkg/page"
)

var ErrReservationNotFound = errs.New("reservation not found")

// ReservationReadStore returns reservation aggregates with the presented
// status derived from stored state and the supplied read time. Derivation
// happens on every read; nothing is written back.
type ReservationReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID, now time.Time, pageable *page.Pageable) (page.Page[ReservationView], error)
	FindByID(ctx context.Context, id, userID uuid.UUID, now time.Time) (*ReservationView, error)
}

// ReservationQueries only ever answers for the calling user; a reservation
// belonging to someone else is indistinguishable from a missing one.
type ReservationQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID, pageable *page.Pageable) (page.Page[ReservationView], error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
	clock clock.Clock
}

func NewReservationQueries(store ReservationReadStore, clock clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{store: store, clock: clock}
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, pageable *page.Pageable) (page.Page[ReservationView], error) {
	return q.store.FindByUserID(ctx, userID, q.clock.Now(), pageable)
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, userID, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id, userID, q.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}
