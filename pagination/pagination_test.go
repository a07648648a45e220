package pagination

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/blog/allPosts", nil)
	p := Parse(r)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, "createdAt", p.SortBy)
	assert.Equal(t, -1, p.OrderBy)
}

func TestParseReadsQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?page=3&limit=25&sortBy=title&orderBy=1", nil)
	p := Parse(r)

	assert.Equal(t, Params{Page: 3, Limit: 25, SortBy: "title", OrderBy: 1}, p)
}

func TestParseRejectsGarbage(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?page=banana&limit=-4&orderBy=desc", nil)
	p := Parse(r)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, -1, p.OrderBy)
}

func TestSkip(t *testing.T) {
	assert.EqualValues(t, 0, Params{Page: 1, Limit: 10}.Skip())
	assert.EqualValues(t, 10, Params{Page: 2, Limit: 10}.Skip())
	assert.EqualValues(t, 50, Params{Page: 11, Limit: 5}.Skip())
}

func TestBuildMetaFirstPage(t *testing.T) {
	m := BuildMeta(Params{Page: 1, Limit: 10}, 35)

	assert.False(t, m.HasPrevious)
	assert.True(t, m.HasNext)
	assert.Equal(t, 2, m.Next)
	assert.Equal(t, 1, m.CurrentPage)
	assert.EqualValues(t, 35, m.Total)
	assert.Equal(t, 4, m.LastPage)
}

func TestBuildMetaLastPage(t *testing.T) {
	m := BuildMeta(Params{Page: 4, Limit: 10}, 35)

	assert.True(t, m.HasPrevious)
	assert.Equal(t, 3, m.PrevPage)
	assert.False(t, m.HasNext)
	assert.Equal(t, 4, m.LastPage)
}

func TestBuildMetaEmptySet(t *testing.T) {
	m := BuildMeta(Params{Page: 1, Limit: 10}, 0)

	assert.False(t, m.HasPrevious)
	assert.False(t, m.HasNext)
	assert.Equal(t, 0, m.LastPage)
}

func TestBuildMetaExactMultiple(t *testing.T) {
	m := BuildMeta(Params{Page: 2, Limit: 10}, 20)

	assert.Equal(t, 2, m.LastPage)
	assert.False(t, m.HasNext)
}

func TestBuildLinks(t *testing.T) {
	p := Params{Page: 2, Limit: 10}
	links := BuildLinks("localhost:8080", "/api/v1/blog/allPosts", p, nil)

	prev, err := url.Parse(links.PrevLink)
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", prev.Host)
	assert.Equal(t, "/api/v1/blog/allPosts", prev.Path)
	assert.Equal(t, "1", prev.Query().Get("page"))
	assert.Equal(t, "10", prev.Query().Get("limit"))

	next, err := url.Parse(links.NextLink)
	require.NoError(t, err)
	assert.Equal(t, "3", next.Query().Get("page"))
}

func TestBuildLinksKeepsExtraQuery(t *testing.T) {
	extra := url.Values{"search": {"gopher"}}
	links := BuildLinks("localhost:8080", "/api/v1/blog/searchPost/search", Params{Page: 1, Limit: 10}, extra)

	next, err := url.Parse(links.NextLink)
	require.NoError(t, err)
	assert.Equal(t, "gopher", next.Query().Get("search"))
	assert.Equal(t, "2", next.Query().Get("page"))
}
