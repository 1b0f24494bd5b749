package orm

import (
	"net/url"
	"strconv"
)

// PerPageAll is the sentinel page size that disables pagination and returns
// every matching record on one page.
const PerPageAll = -1

// linkWindow is how many numbered pages are shown on each side of the current
// page before the list collapses into ellipsis entries.
const linkWindow = 3

// PageLink is one navigation entry of a paginated listing. URL is nil when
// the target is out of range (disabled previous/next, ellipsis).
type PageLink struct {
	Label  string  `json:"label"`
	URL    *string `json:"url"`
	Active bool    `json:"active"`
}

// Pagination describes one page of a filtered result set.
type Pagination struct {
	CurrentPage int        `json:"current_page"`
	PerPage     int        `json:"per_page"`
	LastPage    int        `json:"last_page"`
	From        int        `json:"from"`
	To          int        `json:"to"`
	Total       int64      `json:"total"`
	Links       []PageLink `json:"links"`
}

// NewPagination computes the page window for the given 1-based page. Out of
// range pages keep their requested number and yield an empty item range
// rather than an error.
func NewPagination(page, perPage int, total int64) Pagination {
	if page < 1 {
		page = 1
	}

	if perPage == PerPageAll || perPage == 0 {
		to := int(total)
		return Pagination{
			CurrentPage: 1,
			PerPage:     PerPageAll,
			LastPage:    1,
			From:        1,
			To:          to,
			Total:       total,
		}
	}
	if perPage < 1 {
		perPage = 1
	}

	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	from := (page-1)*perPage + 1
	to := page * perPage
	if int64(to) > total {
		to = int(total)
	}

	return Pagination{
		CurrentPage: page,
		PerPage:     perPage,
		LastPage:    lastPage,
		From:        from,
		To:          to,
		Total:       total,
	}
}

func (p Pagination) all() bool { return p.PerPage == PerPageAll }

func (p Pagination) offset() int { return (p.CurrentPage - 1) * p.PerPage }

// BuildLinks populates p.Links with previous/numbered/next entries. Every URL
// carries the given query values (search, perPage) plus the target page, so
// following a link preserves the active filter and page size.
func (p *Pagination) BuildLinks(baseURL string, query url.Values) {
	pageURL := func(page int) *string {
		q := url.Values{}
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		q.Set("page", strconv.Itoa(page))
		u := baseURL + "?" + q.Encode()
		return &u
	}

	links := make([]PageLink, 0, p.LastPage+2)

	prev := PageLink{Label: "&laquo; Previous"}
	if p.CurrentPage > 1 && p.CurrentPage <= p.LastPage {
		prev.URL = pageURL(p.CurrentPage - 1)
	}
	links = append(links, prev)

	for _, page := range p.pageWindow() {
		if page == 0 {
			links = append(links, PageLink{Label: "..."})
			continue
		}
		links = append(links, PageLink{
			Label:  strconv.Itoa(page),
			URL:    pageURL(page),
			Active: page == p.CurrentPage,
		})
	}

	next := PageLink{Label: "Next &raquo;"}
	if p.CurrentPage < p.LastPage {
		next.URL = pageURL(p.CurrentPage + 1)
	}
	links = append(links, next)

	p.Links = links
}

// pageWindow returns the numbered pages to render, with 0 marking an
// ellipsis. Small ranges list every page; long ranges keep the first and last
// two pages plus a window around the current page.
func (p Pagination) pageWindow() []int {
	last := p.LastPage

	if last <= (linkWindow*2)+5 {
		pages := make([]int, 0, last)
		for i := 1; i <= last; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	current := p.CurrentPage
	if current > last {
		current = last
	}

	lo := current - linkWindow
	hi := current + linkWindow
	if lo < 1 {
		lo = 1
	}
	if hi > last {
		hi = last
	}

	var pages []int
	if lo > 1 {
		pages = append(pages, 1, 2)
		if lo > 3 {
			pages = append(pages, 0)
		}
	}
	for i := lo; i <= hi; i++ {
		if i >= 1 && i <= last && (len(pages) == 0 || i > pages[len(pages)-1] || pages[len(pages)-1] == 0) {
			pages = append(pages, i)
		}
	}
	if hi < last {
		if hi < last-2 {
			pages = append(pages, 0)
		}
		pages = append(pages, last-1, last)
	}

	return dedupPages(pages)
}

func dedupPages(pages []int) []int {
	out := pages[:0]
	seen := map[int]bool{}
	for _, p := range pages {
		if p == 0 {
			if len(out) > 0 && out[len(out)-1] == 0 {
				continue
			}
			out = append(out, 0)
			continue
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
