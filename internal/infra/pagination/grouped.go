package pagination

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"apothecary/internal/infra"
	"apothecary/internal/infra/db"
	"apothecary/internal/pkg/page"
)

// Group is one parent with its child rows; parent metadata appears once.
type Group[P, C any] struct {
	Parent   P
	Children []C
}

// GroupedQuery pages a one-to-many relation. Paging and sorting apply to the
// parent query alone, so a parent with many children still counts as one
// element; children are fetched in a second query keyed by parent identity.
type GroupedQuery[P, C any] struct {
	Parent Query[P]
	// Children selects child rows for a uuid[] of parent ids bound at $1.
	Children string
	// ChildRowTo yields the owning parent id alongside each child row.
	ChildRowTo func(pgx.CollectableRow) (uuid.UUID, C, error)
	ParentKey  func(P) uuid.UUID
}

// PaginateGrouped runs the parent query under the requested paging mode,
// then attaches children grouped by parent identity, preserving parent
// order. Parents without children keep an empty child slice.
func PaginateGrouped[P, C any](ctx context.Context, dbx db.DBTX, q GroupedQuery[P, C], pageable *page.Pageable) (page.Page[Group[P, C]], error) {
	parentPage, err := Paginate(ctx, dbx, q.Parent, pageable)
	if err != nil {
		return page.Page[Group[P, C]]{}, err
	}

	groups := make([]Group[P, C], len(parentPage.Content))
	index := make(map[uuid.UUID]int, len(parentPage.Content))
	ids := make([]uuid.UUID, len(parentPage.Content))
	for i, parent := range parentPage.Content {
		key := q.ParentKey(parent)
		groups[i] = Group[P, C]{Parent: parent, Children: []C{}}
		index[key] = i
		ids[i] = key
	}

	if len(ids) > 0 {
		rows, err := dbx.Query(ctx, q.Children, ids)
		if err != nil {
			return page.Page[Group[P, C]]{}, infra.WrapRepoErr("failed to query child rows", err)
		}
		defer rows.Close()

		for rows.Next() {
			parentID, child, err := q.ChildRowTo(rows)
			if err != nil {
				return page.Page[Group[P, C]]{}, infra.WrapRepoErr("failed to scan child row", err)
			}
			if i, ok := index[parentID]; ok {
				groups[i].Children = append(groups[i].Children, child)
			}
		}
		if err := rows.Err(); err != nil {
			return page.Page[Group[P, C]]{}, infra.WrapRepoErr("failed to read child rows", err)
		}
	}

	return page.Map(parentPage, func(parent P) Group[P, C] {
		return groups[index[q.ParentKey(parent)]]
	}), nil
}
