package queries

import (
	"context"

	"apothecary/internal/infra"
	"apothecary/internal/pkg/errs"
	"apothecary/internal/pkg/page"
)

var ErrApothecaryNotFound = errs.New("apothecary not found")

// ApothecaryReadStore is the listing surface backed by the pagination
// executor.
type ApothecaryReadStore interface {
	ListWithSchedules(ctx context.Context, pageable *page.Pageable) (page.Page[ApothecaryWithSchedules], error)
}

type ApothecaryQueries interface {
	List(ctx context.Context, pageable *page.Pageable) (page.Page[ApothecaryWithSchedules], error)
}

type apothecaryQueriesImpl struct {
	store ApothecaryReadStore
}

func NewApothecaryQueries(store ApothecaryReadStore) ApothecaryQueries {
	return &apothecaryQueriesImpl{store: store}
}

func (q *apothecaryQueriesImpl) List(ctx context.Context, pageable *page.Pageable) (page.Page[ApothecaryWithSchedules], error) {
	result, err := q.store.ListWithSchedules(ctx, pageable)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return page.Page[ApothecaryWithSchedules]{}, ErrApothecaryNotFound
		}
		return page.Page[ApothecaryWithSchedules]{}, err
	}
	return result, nil
}
