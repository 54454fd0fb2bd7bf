package queries

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"apothecary/internal/domain/geo"
	"apothecary/internal/domain/medication"
	"apothecary/internal/pkg/errs"
)

var (
	ErrMedicationNotFound = errs.New("medication not found")
	// ErrStockIntegrity marks reference-data corruption (a stock entry whose
	// apothecary resolves to zero or several records). It is a server fault,
	// never a client error.
	ErrStockIntegrity = errs.New("stock integrity violation")
)

// StockSearchStore is the narrow store surface the aggregation consumes:
// a full stock scan, point medication lookups, and a batched
// apothecary-with-schedules fetch.
type StockSearchStore interface {
	AllStockEntries(ctx context.Context) ([]medication.StockEntry, error)
	MedicationByID(ctx context.Context, id uuid.UUID) (*medication.Medication, error)
	ApothecariesWithSchedulesByIDs(ctx context.Context, ids []uuid.UUID) ([]ApothecaryWithSchedules, error)
}

type MedicationSearch struct {
	Name        string
	Center      geo.Coordinates
	MaxDistance float64
}

type MedicationQueries interface {
	// Search groups stock by medication, filters by name substring and
	// great-circle distance, and drops empty groups. Results are not paged.
	Search(ctx context.Context, search MedicationSearch) ([]MedicationGroup, error)
}

type medicationQueriesImpl struct {
	store StockSearchStore
}

func NewMedicationQueries(store StockSearchStore) MedicationQueries {
	return &medicationQueriesImpl{store: store}
}

func (q *medicationQueriesImpl) Search(ctx context.Context, search MedicationSearch) ([]MedicationGroup, error) {
	entries, err := q.store.AllStockEntries(ctx)
	if err != nil {
		return nil, err
	}

	// Group by medication, keeping first-discovery order.
	order := make([]uuid.UUID, 0)
	byMedication := make(map[uuid.UUID][]medication.StockEntry)
	for _, entry := range entries {
		if _, seen := byMedication[entry.MedicationID]; !seen {
			order = append(order, entry.MedicationID)
		}
		byMedication[entry.MedicationID] = append(byMedication[entry.MedicationID], entry)
	}

	needle := strings.ToLower(search.Name)

	groups := make([]MedicationGroup, 0, len(order))
	for _, medicationID := range order {
		med, err := q.store.MedicationByID(ctx, medicationID)
		if err != nil {
			return nil, err
		}
		if med == nil {
			// A stock entry pointing at a missing medication is corrupted
			// reference data, not a miss to skip over.
			return nil, errs.Mark(errs.New(fmt.Sprintf("stock references missing medication %s", medicationID)), ErrMedicationNotFound)
		}

		if !strings.Contains(strings.ToLower(med.Name), needle) {
			continue
		}

		matches, err := q.collectMatches(ctx, byMedication[medicationID], search)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			continue
		}

		groups = append(groups, MedicationGroup{Medication: *med, Results: matches})
	}

	return groups, nil
}

func (q *medicationQueriesImpl) collectMatches(ctx context.Context, entries []medication.StockEntry, search MedicationSearch) ([]StockMatch, error) {
	ids := make([]uuid.UUID, len(entries))
	for i, entry := range entries {
		ids[i] = entry.ApothecaryID
	}

	candidates, err := q.store.ApothecariesWithSchedulesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	matches := make([]StockMatch, 0, len(entries))
	for _, entry := range entries {
		owner, err := resolveOwner(candidates, entry.ApothecaryID)
		if err != nil {
			return nil, err
		}

		if !geo.WithinRadius(owner.Apothecary.Coordinates(), search.Center, search.MaxDistance) {
			continue
		}

		matches = append(matches, StockMatch{Quantity: entry.Quantity, Apothecary: owner})
	}

	return matches, nil
}

// resolveOwner enforces the one-apothecary-per-stock-entry invariant:
// several matches mean corrupted reference data and must fail loudly
// instead of being truncated to the first hit.
func resolveOwner(candidates []ApothecaryWithSchedules, apothecaryID uuid.UUID) (ApothecaryWithSchedules, error) {
	var (
		found ApothecaryWithSchedules
		hits  int
	)
	for _, candidate := range candidates {
		if candidate.Apothecary.ID == apothecaryID {
			found = candidate
			hits++
		}
	}

	switch hits {
	case 1:
		return found, nil
	case 0:
		return ApothecaryWithSchedules{}, errs.Mark(
			errs.New(fmt.Sprintf("stock references missing apothecary %s", apothecaryID)), ErrStockIntegrity)
	default:
		return ApothecaryWithSchedules{}, errs.Mark(
			errs.New(fmt.Sprintf("apothecary %s resolved to %d records", apothecaryID, hits)), ErrStockIntegrity)
	}
}
