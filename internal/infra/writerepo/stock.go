package writerepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"apothecary/internal/domain/medication"
	"apothecary/internal/infra"
	"apothecary/internal/infra/db"
	"apothecary/internal/pkg/pgconv"
	"apothecary/internal/usecase/commands"
)

const stockEntryQuery = `
	SELECT quantity_type, medication_quantity, price
	FROM apothecary_medication
	WHERE apothecary_id = $1 AND medication_id = $2`

// decrementStockQuery is the conditional decrement: the availability check
// and the subtraction happen in one statement, so concurrent reservations
// can never both pass a stale check. Zero rows affected means the stock was
// insufficient when the statement ran.
const decrementStockQuery = `
	UPDATE apothecary_medication
	SET medication_quantity = medication_quantity - $3
	WHERE apothecary_id = $1 AND medication_id = $2
	  AND quantity_type = 'p'
	  AND medication_quantity >= $3`

type StockRepository struct{}

func NewStockRepository() *StockRepository {
	return &StockRepository{}
}

var _ commands.StockRepository = (*StockRepository)(nil)

func (r *StockRepository) FindEntry(ctx context.Context, tx db.DBTX, apothecaryID, medicationID uuid.UUID) (*medication.StockEntry, error) {
	var (
		typeCode string
		amount   pgtype.Int8
		price    pgtype.Numeric
	)
	err := tx.QueryRow(ctx, stockEntryQuery, apothecaryID, medicationID).Scan(&typeCode, &amount, &price)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("stock entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query stock entry", err)
	}

	quantityType, err := medication.QuantityTypeFromCode(typeCode)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupted quantity type", err, infra.KindIntegrity)
	}

	entry := &medication.StockEntry{ApothecaryID: apothecaryID, MedicationID: medicationID}
	switch quantityType {
	case medication.QuantityTypePackage:
		pkg := medication.Package{}
		if v := pgconv.Int64PtrFromPgtype(amount); v != nil {
			pkg.Amount = uint64(*v)
		}
		pkg.Price, err = pgconv.DecimalFromNumeric(price)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupted stock price", err, infra.KindIntegrity)
		}
		entry.Quantity = pkg
	default:
		entry.Quantity = medication.Unknown{}
	}
	return entry, nil
}

func (r *StockRepository) DecrementPackage(ctx context.Context, tx db.DBTX, apothecaryID, medicationID uuid.UUID, amount uint64) (int64, error) {
	tag, err := tx.Exec(ctx, decrementStockQuery, apothecaryID, medicationID, int64(amount))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to decrement stock", err)
	}
	return tag.RowsAffected(), nil
}
