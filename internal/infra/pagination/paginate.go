// Package pagination executes relational queries under the three paging
// modes of the page contract: unpaged, raw offset/limit, and counted
// page-index. Sort fields resolve against a per-query allow-list, never
// against raw client input.
package pagination

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"apothecary/internal/infra"
	"apothecary/internal/infra/db"
	"apothecary/internal/pkg/page"
)

// InvalidSortColumnError reports a sort field outside the query's allow-list.
// It is a client error, not a store fault.
type InvalidSortColumnError struct {
	Field string
}

func (e *InvalidSortColumnError) Error() string {
	return fmt.Sprintf("invalid sort column: %s", e.Field)
}

// Query is one paginatable SELECT. Base must carry no ORDER BY, LIMIT or
// OFFSET of its own; Count is only consulted in page-index mode.
type Query[T any] struct {
	Base    string
	Count   string
	Args    []any
	Columns map[string]string
	RowTo   pgx.RowToFunc[T]
}

// Paginate runs q under the requested paging mode and wraps the rows in the
// page envelope. A nil pageable returns every row as a single page.
func Paginate[T any](ctx context.Context, dbx db.DBTX, q Query[T], pageable *page.Pageable) (page.Page[T], error) {
	if pageable == nil {
		content, err := collect(ctx, dbx, q.Base, q.Args, q.RowTo)
		if err != nil {
			return page.Page[T]{}, err
		}
		return page.NewSinglePage(content), nil
	}

	orderBy, err := orderByClause(q.Columns, pageable.Sort)
	if err != nil {
		return page.Page[T]{}, err
	}

	switch opts := pageable.Options.(type) {
	case page.OffsetLimit:
		sql := q.Base + orderBy + limitClause(len(q.Args))
		args := append(append([]any{}, q.Args...), opts.Limit, opts.Offset)

		content, err := collect(ctx, dbx, sql, args, q.RowTo)
		if err != nil {
			return page.Page[T]{}, err
		}
		// Totals are intentionally not computed in this mode.
		return page.NewOffsetLimitPage(content), nil

	case page.PageQuery:
		perPage := opts.PerPage
		if perPage == 0 {
			perPage = page.DefaultPerPage
		}

		sql := q.Base + orderBy + limitClause(len(q.Args))
		args := append(append([]any{}, q.Args...), perPage, opts.Index*perPage)

		content, err := collect(ctx, dbx, sql, args, q.RowTo)
		if err != nil {
			return page.Page[T]{}, err
		}

		total, err := count(ctx, dbx, q.Count, q.Args)
		if err != nil {
			return page.Page[T]{}, err
		}

		return page.NewIndexedPage(content, opts.Index, perPage, total), nil

	default:
		return page.Page[T]{}, infra.WrapRepoErr(fmt.Sprintf("unsupported paging options %T", opts), nil)
	}
}

func collect[T any](ctx context.Context, dbx db.DBTX, sql string, args []any, rowTo pgx.RowToFunc[T]) ([]T, error) {
	rows, err := dbx.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to run paginated query", err)
	}

	content, err := pgx.CollectRows(rows, rowTo)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan paginated rows", err)
	}
	return content, nil
}

func count(ctx context.Context, dbx db.DBTX, countSQL string, args []any) (uint64, error) {
	var total uint64
	if err := dbx.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to run count query", err)
	}
	return total, nil
}

// orderByClause resolves sort criteria against the allow-list, in the order
// given. No implicit tie-break column is appended: equal keys stay in
// whatever order the store returns them.
func orderByClause(columns map[string]string, sort *page.Sort) (string, error) {
	if sort == nil || len(sort.Criteria) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(sort.Criteria))
	for _, criterion := range sort.Criteria {
		column, ok := columns[criterion.Field]
		if !ok {
			return "", &InvalidSortColumnError{Field: criterion.Field}
		}

		dir := "ASC"
		if criterion.Direction == page.SortDesc {
			dir = "DESC"
		}
		parts = append(parts, column+" "+dir)
	}

	return " ORDER BY " + strings.Join(parts, ", "), nil
}

func limitClause(argOffset int) string {
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", argOffset+1, argOffset+2)
}
