package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"apothecary/internal/domain/medication"
	"apothecary/internal/infra"
	"apothecary/internal/pkg/pgconv"
	"apothecary/internal/usecase/queries"
)

const allStockEntriesQuery = `
	SELECT apothecary_id, medication_id, quantity_type, medication_quantity, price
	FROM apothecary_medication`

const medicationByIDQuery = `SELECT id, name FROM medication WHERE id = $1`

type StockStore struct {
	pool *pgxpool.Pool
}

func NewStockStore(pool *pgxpool.Pool) *StockStore {
	return &StockStore{pool: pool}
}

var _ queries.StockSearchStore = (*StockStore)(nil)

func (s *StockStore) AllStockEntries(ctx context.Context) ([]medication.StockEntry, error) {
	rows, err := s.pool.Query(ctx, allStockEntriesQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query stock entries", err)
	}

	entries, err := pgx.CollectRows(rows, rowToStockEntry)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan stock entries", err)
	}
	return entries, nil
}

func (s *StockStore) MedicationByID(ctx context.Context, id uuid.UUID) (*medication.Medication, error) {
	var med medication.Medication
	err := s.pool.QueryRow(ctx, medicationByIDQuery, id).Scan(&med.ID, &med.Name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to query medication", err)
	}
	return &med, nil
}

func (s *StockStore) ApothecariesWithSchedulesByIDs(ctx context.Context, ids []uuid.UUID) ([]queries.ApothecaryWithSchedules, error) {
	return apothecariesWithSchedulesByIDs(ctx, s.pool, ids)
}

func rowToStockEntry(row pgx.CollectableRow) (medication.StockEntry, error) {
	var (
		entry    medication.StockEntry
		typeCode string
		amount   pgtype.Int8
		price    pgtype.Numeric
	)
	if err := row.Scan(&entry.ApothecaryID, &entry.MedicationID, &typeCode, &amount, &price); err != nil {
		return medication.StockEntry{}, err
	}

	quantity, err := quantityFromColumns(typeCode, amount, price)
	if err != nil {
		return medication.StockEntry{}, err
	}
	entry.Quantity = quantity
	return entry, nil
}

// quantityFromColumns rebuilds the stock variant from its storage columns.
func quantityFromColumns(typeCode string, amount pgtype.Int8, price pgtype.Numeric) (medication.Quantity, error) {
	quantityType, err := medication.QuantityTypeFromCode(typeCode)
	if err != nil {
		return nil, err
	}

	switch quantityType {
	case medication.QuantityTypePackage:
		pkg := medication.Package{}
		if v := pgconv.Int64PtrFromPgtype(amount); v != nil {
			pkg.Amount = uint64(*v)
		}
		pkg.Price, err = pgconv.DecimalFromNumeric(price)
		if err != nil {
			return nil, err
		}
		return pkg, nil
	default:
		return medication.Unknown{}, nil
	}
}
