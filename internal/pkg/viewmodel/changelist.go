package viewmodel

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gradsite/modteam/internal/pkg/paginator"
)

// Query parameters shared by all admin list pages.
const (
	ParamSearch = "q"
	ParamOrder  = "o"
	ParamPage   = "page"
)

// Column is a sortable list column.
type Column struct {
	Field string
	Label string
}

// SortLink is the header link of a sortable column.
type SortLink struct {
	Label  string
	URL    string
	Active bool
	Desc   bool
}

// Option is one choice of a list filter; an empty Value means "all".
type Option struct {
	Value string
	Label string
}

// FilterLink is a rendered filter choice.
type FilterLink struct {
	Label  string
	URL    string
	Active bool
}

// Filter groups the choices of one filter parameter.
type Filter struct {
	Title string
	Links []FilterLink
}

// PageLink points to one page of the list.
type PageLink struct {
	Number  int
	URL     string
	Current bool
}

// Changelist holds the navigation state of an admin list page.
type Changelist struct {
	Base    string
	Search  string
	Total   int64
	Page    paginator.Page
	Sort    []SortLink
	Filters []Filter
	Pages   []PageLink
	PrevURL string
	NextURL string
	// Query is the current query string, used to come back after a bulk save.
	Query string
}

// NewChangelist builds the links of a list page. params is the request query.
func NewChangelist(base string, params url.Values, page paginator.Page, columns []Column) *Changelist {
	cl := &Changelist{
		Base:   base,
		Search: params.Get(ParamSearch),
		Total:  page.Count,
		Page:   page,
		Query:  params.Encode(),
	}

	field, desc := ParseOrder(params.Get(ParamOrder))
	for _, col := range columns {
		link := SortLink{Label: col.Label, Active: col.Field == field}
		next := col.Field
		if link.Active {
			link.Desc = desc
			if !desc {
				next = "-" + col.Field
			}
		}
		link.URL = cl.link(params, ParamOrder, next)
		cl.Sort = append(cl.Sort, link)
	}

	if page.HasOtherPages() {
		for _, n := range page.PageRange() {
			cl.Pages = append(cl.Pages, PageLink{Number: n, URL: cl.pageURL(params, n), Current: n == page.Number})
		}
	}
	if page.HasPrevious() {
		cl.PrevURL = cl.pageURL(params, page.PreviousPageNumber())
	}
	if page.HasNext() {
		cl.NextURL = cl.pageURL(params, page.NextPageNumber())
	}
	return cl
}

// AddFilter appends a filter over the query parameter key.
func (cl *Changelist) AddFilter(title string, params url.Values, key string, options []Option) {
	current := params.Get(key)
	f := Filter{Title: title}
	for _, opt := range options {
		f.Links = append(f.Links, FilterLink{
			Label:  opt.Label,
			URL:    cl.link(params, key, opt.Value),
			Active: opt.Value == current,
		})
	}
	cl.Filters = append(cl.Filters, f)
}

// link returns the list URL with key set to value (or removed when empty). The
// page number is reset because the result set changes.
func (cl *Changelist) link(params url.Values, key, value string) string {
	q := clone(params)
	q.Del(ParamPage)
	if value == "" {
		q.Del(key)
	} else {
		q.Set(key, value)
	}
	return cl.withQuery(q)
}

func (cl *Changelist) pageURL(params url.Values, n int) string {
	q := clone(params)
	if n <= 1 {
		q.Del(ParamPage)
	} else {
		q.Set(ParamPage, strconv.Itoa(n))
	}
	return cl.withQuery(q)
}

func (cl *Changelist) withQuery(q url.Values) string {
	if len(q) == 0 {
		return cl.Base
	}
	return cl.Base + "?" + q.Encode()
}

// ParseOrder splits an order parameter like "-created_at" into field and direction.
func ParseOrder(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "-") {
		return raw[1:], true
	}
	return raw, false
}

// ParsePage reads a 1-based page number, defaulting to 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func clone(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
