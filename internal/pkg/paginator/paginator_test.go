package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumPages(t *testing.T) {
	assert.Equal(t, 1, New(0, 9).NumPages())
	assert.Equal(t, 1, New(9, 9).NumPages())
	assert.Equal(t, 2, New(10, 9).NumPages())
	assert.Equal(t, 3, New(27, 9).NumPages())
}

func TestGetPageClamps(t *testing.T) {
	p := New(20, 9)

	assert.Equal(t, 1, p.GetPage("").Number)
	assert.Equal(t, 1, p.GetPage("abc").Number)
	assert.Equal(t, 1, p.GetPage("last").Number)
	assert.Equal(t, 1, p.GetPage("2.0").Number)
	assert.Equal(t, 2, p.GetPage("2").Number)
	assert.Equal(t, 3, p.GetPage("3").Number)
	assert.Equal(t, 3, p.GetPage("99").Number)
	assert.Equal(t, 3, p.GetPage("0").Number)
	assert.Equal(t, 3, p.GetPage("-4").Number)
}

func TestGetPageOutOfRangeOnEmptyList(t *testing.T) {
	p := New(0, 9)

	assert.Equal(t, 1, p.GetPage("0").Number)
	assert.Equal(t, 1, p.GetPage("5").Number)
}

func TestPageBounds(t *testing.T) {
	p := New(20, 9)

	first := p.Page(1)
	assert.Equal(t, 0, first.Offset())
	assert.Equal(t, 9, first.Limit())
	assert.EqualValues(t, 1, first.StartIndex())
	assert.EqualValues(t, 9, first.EndIndex())
	assert.True(t, first.HasNext())
	assert.False(t, first.HasPrevious())
	assert.Equal(t, 2, first.NextPageNumber())

	last := p.Page(3)
	assert.Equal(t, 18, last.Offset())
	assert.EqualValues(t, 19, last.StartIndex())
	assert.EqualValues(t, 20, last.EndIndex())
	assert.False(t, last.HasNext())
	assert.Equal(t, 2, last.PreviousPageNumber())
	assert.Equal(t, []int{1, 2, 3}, last.PageRange())
}

func TestEmptyResultSet(t *testing.T) {
	pg := New(0, 9).GetPage("5")
	assert.Equal(t, 1, pg.Number)
	assert.EqualValues(t, 0, pg.StartIndex())
	assert.EqualValues(t, 0, pg.EndIndex())
	assert.False(t, pg.HasOtherPages())
}

func TestNewGuardsPerPage(t *testing.T) {
	p := New(5, 0)
	assert.Equal(t, 1, p.PerPage)
	assert.Equal(t, 5, p.NumPages())
}
