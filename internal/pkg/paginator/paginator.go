// Package paginator implements offset pagination over a counted result set.
//
// Page numbers are 1-based. GetPage never fails: input that is not an integer
// yields the first page and any integer out of range, zero and negatives
// included, yields the last page, so every request renders something.
package paginator

import (
	"strconv"
	"strings"
)

// Paginator splits Count items into pages of PerPage items.
type Paginator struct {
	Count   int64
	PerPage int
}

// Page describes one slice of the result set.
type Page struct {
	Number   int
	NumPages int
	Count    int64
	PerPage  int
}

// New creates a paginator; a non-positive perPage is treated as 1.
func New(count int64, perPage int) Paginator {
	if perPage < 1 {
		perPage = 1
	}
	if count < 0 {
		count = 0
	}
	return Paginator{Count: count, PerPage: perPage}
}

// NumPages is at least 1, an empty result set still has an (empty) first page.
func (p Paginator) NumPages() int {
	if p.Count == 0 {
		return 1
	}
	per := int64(p.PerPage)
	return int((p.Count + per - 1) / per)
}

// Page returns page n clamped into [1, NumPages].
func (p Paginator) Page(n int) Page {
	last := p.NumPages()
	if n < 1 {
		n = 1
	}
	if n > last {
		n = last
	}
	return Page{Number: n, NumPages: last, Count: p.Count, PerPage: p.PerPage}
}

// GetPage parses a raw query value such as "3" and returns the matching page.
func (p Paginator) GetPage(raw string) Page {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return p.Page(1)
	}
	if n < 1 {
		return p.Page(p.NumPages())
	}
	return p.Page(n)
}

// Offset is the number of items preceding this page.
func (pg Page) Offset() int {
	return (pg.Number - 1) * pg.PerPage
}

// Limit is the page size to request from the database.
func (pg Page) Limit() int {
	return pg.PerPage
}

func (pg Page) HasNext() bool {
	return pg.Number < pg.NumPages
}

func (pg Page) HasPrevious() bool {
	return pg.Number > 1
}

func (pg Page) HasOtherPages() bool {
	return pg.HasNext() || pg.HasPrevious()
}

func (pg Page) NextPageNumber() int {
	if !pg.HasNext() {
		return pg.Number
	}
	return pg.Number + 1
}

func (pg Page) PreviousPageNumber() int {
	if !pg.HasPrevious() {
		return pg.Number
	}
	return pg.Number - 1
}

// StartIndex is the 1-based index of the first item on the page, 0 when empty.
func (pg Page) StartIndex() int64 {
	if pg.Count == 0 {
		return 0
	}
	return int64(pg.Offset()) + 1
}

// EndIndex is the 1-based index of the last item on the page.
func (pg Page) EndIndex() int64 {
	end := int64(pg.Number * pg.PerPage)
	if end > pg.Count {
		return pg.Count
	}
	return end
}

// PageRange lists all page numbers, handy for small paginators in templates.
func (pg Page) PageRange() []int {
	r := make([]int, pg.NumPages)
	for i := range r {
		r[i] = i + 1
	}
	return r
}
