//go:build unit

package pagination

import (
	"testing"

	"apothecary/internal/pkg/page"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testColumns = map[string]string{
	"name":     "name",
	"postCode": "post_code",
}

func TestOrderByClause(t *testing.T) {
	t.Run("nil sort yields no clause", func(t *testing.T) {
		clause, err := orderByClause(testColumns, nil)
		require.NoError(t, err)
		assert.Empty(t, clause)
	})

	t.Run("single criterion", func(t *testing.T) {
		sort := &page.Sort{Criteria: []page.SortCriterion{{Field: "name", Direction: page.SortAsc}}}
		clause, err := orderByClause(testColumns, sort)
		require.NoError(t, err)
		assert.Equal(t, " ORDER BY name ASC", clause)
	})

	t.Run("multiple criteria keep order and resolve columns", func(t *testing.T) {
		sort := &page.Sort{Criteria: []page.SortCriterion{
			{Field: "postCode", Direction: page.SortDesc},
			{Field: "name", Direction: page.SortAsc},
		}}
		clause, err := orderByClause(testColumns, sort)
		require.NoError(t, err)
		assert.Equal(t, " ORDER BY post_code DESC, name ASC", clause)
	})

	t.Run("field outside the allow-list is rejected", func(t *testing.T) {
		sort := &page.Sort{Criteria: []page.SortCriterion{{Field: "password_hash", Direction: page.SortAsc}}}
		_, err := orderByClause(testColumns, sort)

		var invalid *InvalidSortColumnError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "password_hash", invalid.Field)
	})
}

func TestLimitClause(t *testing.T) {
	assert.Equal(t, " LIMIT $1 OFFSET $2", limitClause(0))
	assert.Equal(t, " LIMIT $3 OFFSET $4", limitClause(2))
}
