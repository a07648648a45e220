package pagination

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inkwell/utils"
)

// Params is the pagination window requested by the client.
type Params struct {
	Page    int
	Limit   int
	SortBy  string
	OrderBy int
}

// Parse reads page/limit/sortBy/orderBy with uniform defaults. Every list
// endpoint goes through this one parser so no handler can let a zero or
// negative window through.
func Parse(r *http.Request) Params {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = 10
	}

	sortBy := q.Get("sortBy")
	if sortBy == "" {
		sortBy = "createdAt"
	}

	orderBy := -1
	if q.Get("orderBy") == "1" {
		orderBy = 1
	}

	return Params{Page: page, Limit: limit, SortBy: sortBy, OrderBy: orderBy}
}

// Skip is the number of documents before the requested window.
func (p Params) Skip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// Meta describes the window's position within the full result set.
type Meta struct {
	HasPrevious bool  `json:"hasPrevious"`
	PrevPage    int   `json:"prevPage"`
	HasNext     bool  `json:"hasNext"`
	Next        int   `json:"next"`
	CurrentPage int   `json:"currentPage"`
	Total       int64 `json:"total"`
	Limit       int   `json:"limit"`
	LastPage    int   `json:"lastPage"`
}

// BuildMeta computes the page metadata for a total count. Pure.
func BuildMeta(p Params, total int64) Meta {
	lastPage := int(math.Ceil(float64(total) / float64(p.Limit)))
	return Meta{
		HasPrevious: p.Page > 1,
		PrevPage:    p.Page - 1,
		HasNext:     p.Page < lastPage,
		Next:        p.Page + 1,
		CurrentPage: p.Page,
		Total:       total,
		Limit:       p.Limit,
		LastPage:    lastPage,
	}
}

// Links carries absolute prev/next URLs for the current route.
type Links struct {
	PrevLink string `json:"prevLink"`
	NextLink string `json:"nextLink"`
}

// BuildLinks renders page±1 URLs from the request host and route, keeping any
// extra query values (e.g. the search term). Pure.
func BuildLinks(host, route string, p Params, extra url.Values) Links {
	link := func(page int) string {
		q := url.Values{}
		for key, vals := range extra {
			for _, v := range vals {
				q.Add(key, v)
			}
		}
		q.Set("page", strconv.Itoa(page))
		q.Set("limit", strconv.Itoa(p.Limit))
		return fmt.Sprintf("http://%s%s?%s", host, route, q.Encode())
	}
	return Links{PrevLink: link(p.Page - 1), NextLink: link(p.Page + 1)}
}

// Find counts the filter and fetches one window sorted by {sortBy, _id}. The
// _id tie-break keeps pages stable when sort keys collide.
func Find[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, p Params, opts ...*options.FindOptions) ([]T, Meta, error) {
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, Meta{}, err
	}

	findOpts := options.Find().
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit)).
		SetSort(bson.D{{Key: p.SortBy, Value: p.OrderBy}, {Key: "_id", Value: p.OrderBy}})
	opts = append(opts, findOpts)

	items, err := utils.FindAndDecode[T](ctx, coll, filter, opts...)
	if err != nil {
		return nil, Meta{}, err
	}
	return items, BuildMeta(p, total), nil
}
