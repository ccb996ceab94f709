package pagination_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maxviazov/pagination/pkg/pagination"
)

func TestNewPager(t *testing.T) {
	cases := []struct {
		name        string
		perPage     int
		total       int
		wantPerPage int
		wantPages   int
	}{
		{"even", 10, 100, 10, 10},
		{"remainder", 10, 101, 10, 11},
		{"empty", 10, 0, 10, 1},
		{"negative total", 10, -5, 10, 1},
		{"negative page size", -1, 4, 1, 4},
		{"max int page size", math.MaxInt, 5, math.MaxInt, 1},
		{"max int total", 1, math.MaxInt, 1, math.MaxInt},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := pagination.NewPager(tc.perPage, tc.total)
			assert.Equal(t, 1, p.CurrentPage())
			assert.Equal(t, tc.wantPerPage, p.ItemsPerPage())
			assert.Equal(t, tc.wantPages, p.TotalPages())
			assert.GreaterOrEqual(t, p.TotalItems(), 0)
		})
	}
}

func TestPager_Navigation(t *testing.T) {
	p := pagination.NewPager(2, 6)

	assert.Equal(t, 3, p.GoTo(10).CurrentPage())
	assert.Equal(t, 1, p.GoTo(0).CurrentPage())
	assert.Equal(t, p, p.Prev())
	assert.Equal(t, p, p.Next().Prev())
	assert.Equal(t, p.Last(), p.Last().Next())
	assert.True(t, p.IsFirst())
	assert.True(t, p.Last().IsLast())
	assert.Equal(t, 1, p.Last().First().CurrentPage())
}

func TestPager_UpdateToHugePageSize(t *testing.T) {
	p := pagination.NewPager(10, 95).GoTo(7).Update(math.MaxInt, 95)
	assert.Equal(t, 1, p.TotalPages())
	assert.Equal(t, 1, p.CurrentPage())
}

func TestPager_Update(t *testing.T) {
	p := pagination.NewPager(10, 100).GoTo(7)

	grown := p.Update(10, 200)
	assert.Equal(t, 20, grown.TotalPages())
	assert.Equal(t, 7, grown.CurrentPage())
	assert.Equal(t, 200, grown.TotalItems())

	shrunk := p.Update(10, 35)
	assert.Equal(t, 4, shrunk.TotalPages())
	assert.Equal(t, 4, shrunk.CurrentPage())

	resized := p.Update(0, 100)
	assert.Equal(t, 1, resized.ItemsPerPage())
	assert.Equal(t, 7, resized.CurrentPage())
}

// The first page of a Pager must start at item 0, the same window a List
// uses for the same position.
func TestPager_OffsetMatchesList(t *testing.T) {
	items := rangeInts(1, 23)
	p := pagination.NewPager(5, len(items))
	l := pagination.FromList(5, items)

	from, to := p.Bounds()
	assert.Equal(t, 0, from)
	assert.Equal(t, 5, to)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, pagination.PageOf(p, items))

	for page := 1; page <= p.TotalPages(); page++ {
		assert.Equal(t, l.GoTo(page).Page(), pagination.PageOf(p.GoTo(page), items), "page %d", page)
	}
	assert.Equal(t, []int{21, 22, 23}, pagination.PageOf(p.Last(), items))
}

func TestPageOf_ShortCollection(t *testing.T) {
	p := pagination.NewPager(5, 20).GoTo(3)
	assert.Empty(t, pagination.PageOf(p, rangeInts(1, 8)))
	assert.Equal(t, []int{11, 12}, pagination.PageOf(p, rangeInts(1, 12)))
}
