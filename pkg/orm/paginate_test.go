package orm

import (
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginationRanges(t *testing.T) {
	cases := []struct {
		name     string
		page     int
		perPage  int
		total    int64
		from, to int
		lastPage int
	}{
		{"first page", 1, 5, 12, 1, 5, 3},
		{"middle page", 2, 5, 12, 6, 10, 3},
		{"short last page", 3, 5, 12, 11, 12, 3},
		{"exact fit", 2, 6, 12, 7, 12, 2},
		{"empty set", 1, 5, 0, 1, 0, 1},
		{"page below one clamps", 0, 5, 12, 1, 5, 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewPagination(c.page, c.perPage, c.total)
			assert.Equal(t, c.from, p.From)
			assert.Equal(t, c.to, p.To)
			assert.Equal(t, c.lastPage, p.LastPage)
			assert.Equal(t, c.total, p.Total)
		})
	}
}

func TestNewPaginationAllSentinel(t *testing.T) {
	p := NewPagination(4, PerPageAll, 37)

	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 1, p.LastPage)
	assert.Equal(t, 1, p.From)
	assert.Equal(t, 37, p.To)
	assert.Equal(t, PerPageAll, p.PerPage)
}

func TestBuildLinksCarriesQueryAndMarksActive(t *testing.T) {
	p := NewPagination(2, 5, 12)
	p.BuildLinks("http://localhost:8080/products", url.Values{
		"search":  {"lamp"},
		"perPage": {"5"},
	})

	require.NotEmpty(t, p.Links)

	// First entry is Previous, last is Next; both enabled on a middle page.
	first := p.Links[0]
	assert.Equal(t, "&laquo; Previous", first.Label)
	require.NotNil(t, first.URL)
	assert.Contains(t, *first.URL, "page=1")

	last := p.Links[len(p.Links)-1]
	assert.Equal(t, "Next &raquo;", last.Label)
	require.NotNil(t, last.URL)
	assert.Contains(t, *last.URL, "page=3")

	var activeLabels []string
	for _, l := range p.Links {
		if l.URL != nil {
			assert.Contains(t, *l.URL, "search=lamp")
			assert.Contains(t, *l.URL, "perPage=5")
		}
		if l.Active {
			activeLabels = append(activeLabels, l.Label)
		}
	}
	assert.Equal(t, []string{"2"}, activeLabels)
}

func TestBuildLinksDisablesOutOfRange(t *testing.T) {
	p := NewPagination(1, 5, 12)
	p.BuildLinks("http://localhost:8080/products", url.Values{})

	// Previous is disabled on page one.
	assert.Nil(t, p.Links[0].URL)

	p = NewPagination(3, 5, 12)
	p.BuildLinks("http://localhost:8080/products", url.Values{})

	// Next is disabled on the last page.
	assert.Nil(t, p.Links[len(p.Links)-1].URL)
}

func TestBuildLinksEllipsisOnLongRanges(t *testing.T) {
	p := NewPagination(25, 10, 500) // 50 pages
	p.BuildLinks("http://localhost:8080/products", url.Values{})

	var sawEllipsis bool
	var pages []int
	for _, l := range p.Links {
		if l.Label == "..." {
			sawEllipsis = true
			assert.Nil(t, l.URL)
			continue
		}
		if n, err := strconv.Atoi(l.Label); err == nil {
			pages = append(pages, n)
		}
	}

	assert.True(t, sawEllipsis)
	assert.Contains(t, pages, 1)
	assert.Contains(t, pages, 50)
	assert.Contains(t, pages, 25)
	assert.NotContains(t, pages, 10, "pages far from the window collapse into ellipsis")
}

func TestEscapeLike(t *testing.T) {
	cases := map[string]string{
		"plain":     "plain",
		"100%":      `100\%`,
		"a_b":       `a\_b`,
		`back\slash`: `back\\slash`,
	}
	for in, want := range cases {
		assert.Equal(t, want, EscapeLike(in))
	}
}
