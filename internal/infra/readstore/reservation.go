package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"apothecary/internal/domain/medication"
	"apothecary/internal/domain/reservation"
	"apothecary/internal/infra"
	"apothecary/internal/infra/pagination"
	"apothecary/internal/pkg/page"
	"apothecary/internal/pkg/pgconv"
	"apothecary/internal/usecase/queries"
)

const reservationBaseQuery = `
	SELECT r.id, r.apothecary_id, r.quantity_type, r.quantity, r.price,
	       r.status, r.start_date_time, r.end_date_time,
	       m.id, m.name
	FROM reservation r
	JOIN medication m ON m.id = r.medication_id`

const reservationsByUserQuery = reservationBaseQuery + `
	WHERE r.user_id = $1`

const reservationsByUserCountQuery = `SELECT COUNT(*) FROM reservation WHERE user_id = $1`

const reservationByIDQuery = reservationBaseQuery + `
	WHERE r.id = $1 AND r.user_id = $2`

var reservationSortColumns = map[string]string{
	"startDateTime": "r.start_date_time",
	"endDateTime":   "r.end_date_time",
	"status":        "r.status",
	"price":         "r.price",
	"medication":    "m.name",
}

// reservationRow is one reservation joined with its medication, before the
// apothecary aggregate is attached and the status derived.
type reservationRow struct {
	ID            uuid.UUID
	ApothecaryID  uuid.UUID
	Medication    medication.Medication
	QuantityType  medication.QuantityType
	Quantity      *uint64
	Price         *decimal.Decimal
	Status        reservation.Status
	StartDateTime *time.Time
	EndDateTime   *time.Time
}

type ReservationStore struct {
	pool *pgxpool.Pool
}

func NewReservationStore(pool *pgxpool.Pool) *ReservationStore {
	return &ReservationStore{pool: pool}
}

var _ queries.ReservationReadStore = (*ReservationStore)(nil)

func (s *ReservationStore) FindByUserID(ctx context.Context, userID uuid.UUID, now time.Time, pageable *page.Pageable) (page.Page[queries.ReservationView], error) {
	rowPage, err := pagination.Paginate(ctx, s.pool, pagination.Query[reservationRow]{
		Base:    reservationsByUserQuery,
		Count:   reservationsByUserCountQuery,
		Args:    []any{userID},
		Columns: reservationSortColumns,
		RowTo:   rowToReservation,
	}, pageable)
	if err != nil {
		return page.Page[queries.ReservationView]{}, err
	}

	views, err := s.attachApothecaries(ctx, rowPage.Content, now)
	if err != nil {
		return page.Page[queries.ReservationView]{}, err
	}

	return page.ReplaceContent(rowPage, views), nil
}

func (s *ReservationStore) FindByID(ctx context.Context, id, userID uuid.UUID, now time.Time) (*queries.ReservationView, error) {
	rows, err := s.pool.Query(ctx, reservationByIDQuery, id, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservation", err)
	}

	row, err := pgx.CollectOneRow(rows, rowToReservation)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan reservation", err)
	}

	views, err := s.attachApothecaries(ctx, []reservationRow{row}, now)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// attachApothecaries resolves the apothecary aggregate for each row in one
// batched fetch and derives the presented status at the given read time.
func (s *ReservationStore) attachApothecaries(ctx context.Context, rows []reservationRow, now time.Time) ([]queries.ReservationView, error) {
	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ApothecaryID
	}

	owners, err := apothecariesWithSchedulesByIDs(ctx, s.pool, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]queries.ApothecaryWithSchedules, len(owners))
	for _, owner := range owners {
		byID[owner.Apothecary.ID] = owner
	}

	views := make([]queries.ReservationView, len(rows))
	for i, row := range rows {
		owner, ok := byID[row.ApothecaryID]
		if !ok {
			return nil, infra.WrapRepoErr("reservation references missing apothecary", nil, infra.KindIntegrity)
		}

		views[i] = queries.ReservationView{
			ID:            row.ID,
			Apothecary:    owner,
			Medication:    row.Medication,
			QuantityType:  row.QuantityType,
			Quantity:      row.Quantity,
			Price:         row.Price,
			Status:        reservation.DeriveStatus(row.Status, row.EndDateTime, now),
			StartDateTime: row.StartDateTime,
			EndDateTime:   row.EndDateTime,
		}
	}
	return views, nil
}

func rowToReservation(row pgx.CollectableRow) (reservationRow, error) {
	var (
		r          reservationRow
		typeCode   string
		amount     pgtype.Int8
		price      pgtype.Numeric
		statusCode string
		start, end pgtype.Timestamp
	)
	err := row.Scan(
		&r.ID, &r.ApothecaryID, &typeCode, &amount, &price,
		&statusCode, &start, &end,
		&r.Medication.ID, &r.Medication.Name,
	)
	if err != nil {
		return reservationRow{}, err
	}

	r.QuantityType, err = medication.QuantityTypeFromCode(typeCode)
	if err != nil {
		return reservationRow{}, err
	}
	r.Status, err = reservation.StatusFromCode(statusCode)
	if err != nil {
		return reservationRow{}, err
	}
	if v := pgconv.Int64PtrFromPgtype(amount); v != nil {
		q := uint64(*v)
		r.Quantity = &q
	}
	r.Price, err = pgconv.DecimalPtrFromNumeric(price)
	if err != nil {
		return reservationRow{}, err
	}
	r.StartDateTime = pgconv.TimePtrFromTimestamp(start)
	r.EndDateTime = pgconv.TimePtrFromTimestamp(end)
	return r, nil
}
