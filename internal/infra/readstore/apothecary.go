package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"apothecary/internal/domain/apothecary"
	"apothecary/internal/domain/schedule"
	"apothecary/internal/infra"
	"apothecary/internal/infra/pagination"
	"apothecary/internal/pkg/page"
	"apothecary/internal/usecase/queries"
)

const apothecaryBaseQuery = `
	SELECT id, name, street, number, post_code, city, country, latitude, longitude
	FROM apothecary`

const apothecaryCountQuery = `SELECT COUNT(*) FROM apothecary`

const schedulesByApothecaryIDsQuery = `
	SELECT aps.apothecary_id, s.id, s.weekday, s.start_time, s.end_time
	FROM schedule s
	JOIN apothecary_schedule aps ON aps.schedule_id = s.id
	WHERE aps.apothecary_id = ANY($1)
	ORDER BY aps.apothecary_id, s.weekday, s.start_time`

// apothecarySortColumns is the sort allow-list of the listing endpoint.
var apothecarySortColumns = map[string]string{
	"name":     "name",
	"city":     "city",
	"country":  "country",
	"postCode": "post_code",
}

type ApothecaryStore struct {
	pool *pgxpool.Pool
}

func NewApothecaryStore(pool *pgxpool.Pool) *ApothecaryStore {
	return &ApothecaryStore{pool: pool}
}

var _ queries.ApothecaryReadStore = (*ApothecaryStore)(nil)

func (s *ApothecaryStore) ListWithSchedules(ctx context.Context, pageable *page.Pageable) (page.Page[queries.ApothecaryWithSchedules], error) {
	grouped, err := pagination.PaginateGrouped(ctx, s.pool, apothecaryWithSchedulesQuery(), pageable)
	if err != nil {
		return page.Page[queries.ApothecaryWithSchedules]{}, err
	}

	return page.Map(grouped, func(g pagination.Group[apothecary.Apothecary, schedule.Slot]) queries.ApothecaryWithSchedules {
		return queries.ApothecaryWithSchedules{Apothecary: g.Parent, Schedules: g.Children}
	}), nil
}

func apothecaryWithSchedulesQuery() pagination.GroupedQuery[apothecary.Apothecary, schedule.Slot] {
	return pagination.GroupedQuery[apothecary.Apothecary, schedule.Slot]{
		Parent: pagination.Query[apothecary.Apothecary]{
			Base:    apothecaryBaseQuery,
			Count:   apothecaryCountQuery,
			Columns: apothecarySortColumns,
			RowTo:   rowToApothecary,
		},
		Children:   schedulesByApothecaryIDsQuery,
		ChildRowTo: rowToOwnedSlot,
		ParentKey:  func(a apothecary.Apothecary) uuid.UUID { return a.ID },
	}
}

func rowToApothecary(row pgx.CollectableRow) (apothecary.Apothecary, error) {
	var a apothecary.Apothecary
	err := row.Scan(
		&a.ID, &a.Name, &a.Street, &a.Number, &a.PostCode,
		&a.City, &a.Country, &a.Latitude, &a.Longitude,
	)
	return a, err
}

func rowToOwnedSlot(row pgx.CollectableRow) (uuid.UUID, schedule.Slot, error) {
	var (
		ownerID    uuid.UUID
		slot       schedule.Slot
		start, end pgtype.Time
	)
	if err := row.Scan(&ownerID, &slot.ID, &slot.Weekday, &start, &end); err != nil {
		return uuid.Nil, schedule.Slot{}, err
	}
	slot.Start = timeOfDayFromPg(start)
	slot.End = timeOfDayFromPg(end)
	return ownerID, slot, nil
}

func timeOfDayFromPg(t pgtype.Time) schedule.TimeOfDay {
	minutes := int(t.Microseconds / 60_000_000)
	return schedule.TimeOfDay{Hour: minutes / 60, Minute: minutes % 60}
}

// apothecariesWithSchedulesByIDs batches the aggregate fetch for a set of
// ids; duplicates in the input do not duplicate results.
func apothecariesWithSchedulesByIDs(ctx context.Context, pool *pgxpool.Pool, ids []uuid.UUID) ([]queries.ApothecaryWithSchedules, error) {
	if len(ids) == 0 {
		return []queries.ApothecaryWithSchedules{}, nil
	}

	rows, err := pool.Query(ctx, apothecaryBaseQuery+` WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query apothecaries", err)
	}
	parents, err := pgx.CollectRows(rows, rowToApothecary)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan apothecaries", err)
	}

	index := make(map[uuid.UUID]int, len(parents))
	result := make([]queries.ApothecaryWithSchedules, len(parents))
	parentIDs := make([]uuid.UUID, len(parents))
	for i, parent := range parents {
		result[i] = queries.ApothecaryWithSchedules{Apothecary: parent, Schedules: []schedule.Slot{}}
		index[parent.ID] = i
		parentIDs[i] = parent.ID
	}

	slotRows, err := pool.Query(ctx, schedulesByApothecaryIDsQuery, parentIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query schedules", err)
	}
	defer slotRows.Close()

	for slotRows.Next() {
		ownerID, slot, err := rowToOwnedSlot(slotRows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan schedule row", err)
		}
		if i, ok := index[ownerID]; ok {
			result[i].Schedules = append(result[i].Schedules, slot)
		}
	}
	if err := slotRows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read schedule rows", err)
	}

	return result, nil
}
