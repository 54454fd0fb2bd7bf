package writerepo

import (
	"context"

	"github.com/google/uuid"

	"apothecary/internal/domain/reservation"
	"apothecary/internal/infra"
	"apothecary/internal/infra/db"
	"apothecary/internal/pkg/pgconv"
	"apothecary/internal/usecase/commands"
)

const insertReservationQuery = `
	INSERT INTO reservation (
		id, apothecary_id, medication_id, user_id,
		quantity_type, quantity, price, status,
		start_date_time, end_date_time
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const deleteReservationByOwnerQuery = `
	DELETE FROM reservation WHERE id = $1 AND user_id = $2`

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

var _ commands.ReservationRepository = (*ReservationRepository)(nil)

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, rsv *reservation.Reservation) error {
	var quantity *int64
	if rsv.Quantity != nil {
		v := int64(*rsv.Quantity)
		quantity = &v
	}

	_, err := tx.Exec(ctx, insertReservationQuery,
		rsv.ID, rsv.ApothecaryID, rsv.MedicationID, rsv.UserID,
		rsv.QuantityType.Code(),
		pgconv.Int64PtrToPgtype(quantity),
		pgconv.NumericFromDecimalPtr(rsv.Price),
		rsv.Status.Code(),
		pgconv.TimestampFromTimePtr(rsv.StartDateTime),
		pgconv.TimestampFromTimePtr(rsv.EndDateTime),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert reservation", err, kindFromPgError(err))
	}
	return nil
}

func (r *ReservationRepository) DeleteByOwner(ctx context.Context, tx db.DBTX, id, userID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, deleteReservationByOwnerQuery, id, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete reservation", err)
	}
	return tag.RowsAffected(), nil
}
