// Package page carries the paging contract shared by the HTTP layer and the
// SQL pagination executor: the client-supplied Pageable and the Spring-style
// Page envelope the API responds with.
package page

const DefaultPerPage = 20

// Pageable is a client paging request. Options selects one of two modes;
// Sort is optional multi-column ordering.
type Pageable struct {
	Options Options
	Sort    *Sort
}

// Options is a closed union: OffsetLimit or PageQuery.
type Options interface {
	isPageOptions()
}

// OffsetLimit applies a raw offset/limit to the query. Totals are not
// computed in this mode; see the envelope notes on NewOffsetLimitPage.
type OffsetLimit struct {
	Offset uint64
	Limit  uint64
}

// PageQuery requests page Index (0-based) of size PerPage, with totals
// computed via a count query.
type PageQuery struct {
	Index   uint64
	PerPage uint64
}

func (OffsetLimit) isPageOptions() {}
func (PageQuery) isPageOptions()   {}

// Page is the response envelope. Field order and names are wire-stable.
type Page[T any] struct {
	Content          []T    `json:"content"`
	Last             bool   `json:"last"`
	TotalElements    uint64 `json:"totalElements"`
	TotalPages       uint64 `json:"totalPages"`
	Size             uint64 `json:"size"`
	Number           uint64 `json:"number"`
	First            bool   `json:"first"`
	NumberOfElements uint64 `json:"numberOfElements"`
	Empty            bool   `json:"empty"`
}

// NewSinglePage wraps a full, unpaged result set as one page.
func NewSinglePage[T any](content []T) Page[T] {
	n := uint64(len(content))
	return Page[T]{
		Content:          content,
		Last:             true,
		TotalElements:    n,
		TotalPages:       1,
		Size:             n,
		Number:           0,
		First:            true,
		NumberOfElements: n,
		Empty:            n == 0,
	}
}

// NewOffsetLimitPage wraps an offset/limit slice. Total counts are not
// computed in this mode; the metadata fields besides Content are
// placeholders and callers must not rely on them. This mirrors the
// documented limitation of the offset/limit branch.
func NewOffsetLimitPage[T any](content []T) Page[T] {
	return Page[T]{
		Content: content,
		Last:    true,
	}
}

// NewIndexedPage wraps one page of a counted, page-indexed query.
func NewIndexedPage[T any](content []T, index, perPage, totalElements uint64) Page[T] {
	totalPages := uint64(1)
	if perPage > 0 {
		totalPages = (totalElements + perPage - 1) / perPage
		if totalPages == 0 {
			totalPages = 1
		}
	}

	n := uint64(len(content))
	return Page[T]{
		Content:          content,
		Last:             index == totalPages-1,
		TotalElements:    totalElements,
		TotalPages:       totalPages,
		Size:             perPage,
		Number:           index,
		First:            index == 0,
		NumberOfElements: n,
		Empty:            n == 0,
	}
}

// Map transforms content elements and copies every metadata field unchanged.
func Map[T, U any](p Page[T], f func(T) U) Page[U] {
	content := make([]U, len(p.Content))
	for i, item := range p.Content {
		content[i] = f(item)
	}
	return ReplaceContent(p, content)
}

// ReplaceContent swaps the content slice while keeping every metadata field.
// The new content must correspond element-for-element with the old.
func ReplaceContent[T, U any](p Page[T], content []U) Page[U] {
	return Page[U]{
		Content:          content,
		Last:             p.Last,
		TotalElements:    p.TotalElements,
		TotalPages:       p.TotalPages,
		Size:             p.Size,
		Number:           p.Number,
		First:            p.First,
		NumberOfElements: p.NumberOfElements,
		Empty:            p.Empty,
	}
}
