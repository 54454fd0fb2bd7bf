package page

import (
	"fmt"
	"strings"

	"apothecary/internal/pkg/errs"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

var ErrInvalidSortDirection = errs.New("invalid sort direction")

// SortCriterion is a single "field,direction" token from the sort query
// parameter. Direction is lowercase asc/desc only.
type SortCriterion struct {
	Field     string
	Direction SortDirection
}

func ParseSortCriterion(s string) (SortCriterion, error) {
	field, dir, found := strings.Cut(s, ",")
	if !found {
		return SortCriterion{}, errs.Mark(errs.New(fmt.Sprintf("sort %q: missing direction", s)), ErrInvalidSortDirection)
	}

	switch SortDirection(dir) {
	case SortAsc, SortDesc:
		return SortCriterion{Field: field, Direction: SortDirection(dir)}, nil
	default:
		return SortCriterion{}, errs.Mark(errs.New(fmt.Sprintf("sort %q: direction must be asc or desc", s)), ErrInvalidSortDirection)
	}
}

// String is the exact inverse of ParseSortCriterion.
func (c SortCriterion) String() string {
	return c.Field + "," + string(c.Direction)
}

// Sort is an ordered list of criteria; precedence runs left to right.
type Sort struct {
	Criteria []SortCriterion
}

func ParseSort(tokens []string) (*Sort, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	criteria := make([]SortCriterion, 0, len(tokens))
	for _, token := range tokens {
		criterion, err := ParseSortCriterion(token)
		if err != nil {
			return nil, err
		}
		criteria = append(criteria, criterion)
	}

	return &Sort{Criteria: criteria}, nil
}
