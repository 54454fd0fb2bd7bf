//go:build unit

package page_test

import (
	"strconv"
	"testing"

	"apothecary/internal/pkg/page"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertEnvelopeInvariants[T any](t *testing.T, p page.Page[T]) {
	t.Helper()
	assert.Equal(t, uint64(len(p.Content)), p.NumberOfElements, "numberOfElements must equal len(content)")
	assert.Equal(t, p.NumberOfElements == 0, p.Empty, "empty must track numberOfElements")
	assert.Equal(t, p.Number == 0, p.First, "first must track number")
}

func TestNewSinglePage(t *testing.T) {
	p := page.NewSinglePage([]int{1, 2, 3})

	assertEnvelopeInvariants(t, p)
	assert.True(t, p.Last)
	assert.Equal(t, uint64(3), p.TotalElements)
	assert.Equal(t, uint64(1), p.TotalPages)
	assert.Equal(t, uint64(3), p.Size)

	empty := page.NewSinglePage([]int{})
	assertEnvelopeInvariants(t, empty)
	assert.True(t, empty.Empty)
	assert.Equal(t, uint64(1), empty.TotalPages)
}

func TestNewOffsetLimitPage(t *testing.T) {
	p := page.NewOffsetLimitPage([]string{"a", "b"})

	// Only content and last carry meaning in this mode.
	assert.Equal(t, []string{"a", "b"}, p.Content)
	assert.True(t, p.Last)
	assert.Zero(t, p.TotalElements)
	assert.Zero(t, p.TotalPages)
	assert.Zero(t, p.Size)
	assert.Zero(t, p.NumberOfElements)
}

func TestNewIndexedPage(t *testing.T) {
	cases := []struct {
		name           string
		contentLen     int
		index          uint64
		perPage        uint64
		total          uint64
		wantTotalPages uint64
		wantFirst      bool
		wantLast       bool
	}{
		{name: "first of three", contentLen: 10, index: 0, perPage: 10, total: 25, wantTotalPages: 3, wantFirst: true, wantLast: false},
		{name: "middle page", contentLen: 10, index: 1, perPage: 10, total: 25, wantTotalPages: 3, wantFirst: false, wantLast: false},
		{name: "last short page", contentLen: 5, index: 2, perPage: 10, total: 25, wantTotalPages: 3, wantFirst: false, wantLast: true},
		{name: "exact fit", contentLen: 10, index: 1, perPage: 10, total: 20, wantTotalPages: 2, wantFirst: false, wantLast: true},
		{name: "empty result", contentLen: 0, index: 0, perPage: 10, total: 0, wantTotalPages: 1, wantFirst: true, wantLast: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			content := make([]int, tc.contentLen)
			p := page.NewIndexedPage(content, tc.index, tc.perPage, tc.total)

			assertEnvelopeInvariants(t, p)
			assert.Equal(t, tc.wantTotalPages, p.TotalPages)
			assert.Equal(t, tc.wantFirst, p.First)
			assert.Equal(t, tc.wantLast, p.Last)
			assert.Equal(t, tc.total, p.TotalElements)
			assert.Equal(t, tc.perPage, p.Size)
			assert.Equal(t, tc.index, p.Number)
		})
	}
}

func TestMapPreservesMetadata(t *testing.T) {
	original := page.NewIndexedPage([]int{1, 2, 3}, 1, 3, 9)

	mapped := page.Map(original, strconv.Itoa)

	require.Equal(t, []string{"1", "2", "3"}, mapped.Content)
	assert.Equal(t, original.TotalElements, mapped.TotalElements)
	assert.Equal(t, original.TotalPages, mapped.TotalPages)
	assert.Equal(t, original.Size, mapped.Size)
	assert.Equal(t, original.Number, mapped.Number)
	assert.Equal(t, original.First, mapped.First)
	assert.Equal(t, original.Last, mapped.Last)
	assert.Equal(t, original.NumberOfElements, mapped.NumberOfElements)
	assert.Equal(t, original.Empty, mapped.Empty)
}
