package core

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Query caches GET results per URL. Concurrent fetches of the same URL share
// one request, and a successful mutation invalidates the cached URL and every
// paginated view of it. A fetch that overlaps an invalidation of its URL
// returns its result without caching it. Safe for concurrent use.
type Query struct {
	client *Client
	// StaleTime is how long a cached value is served; zero keeps it until
	// invalidated.
	StaleTime time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry
	gens    map[string]uint64
	group   singleflight.Group
	now     func() time.Time
}

type cacheEntry struct {
	value     any
	fetchedAt time.Time
}

// NewQuery returns an empty cache over c.
func NewQuery(c *Client) *Query {
	return &Query{
		client:  c,
		entries: make(map[string]cacheEntry),
		gens:    make(map[string]uint64),
		now:     time.Now,
	}
}

func (q *Query) lookup(key string) (any, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	e, ok := q.entries[key]
	if !ok {
		return nil, false
	}
	if q.StaleTime > 0 && q.now().Sub(e.fetchedAt) > q.StaleTime {
		delete(q.entries, key)
		return nil, false
	}
	return e.value, true
}

func (q *Query) generation(key string) uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	gen, ok := q.gens[key]
	if !ok {
		q.gens[key] = 0
	}
	return gen
}

// store caches v unless key was invalidated since generation gen.
func (q *Query) store(key string, gen uint64, v any) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.gens[key] != gen {
		return
	}
	q.entries[key] = cacheEntry{value: v, fetchedAt: q.now()}
}

// Invalidate drops url and every cached key that extends it with a query
// string.
func (q *Query) Invalidate(url string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for key := range q.entries {
		if key == url || strings.HasPrefix(key, url+"?") {
			delete(q.entries, key)
		}
	}
	for key := range q.gens {
		if strings.HasPrefix(key, url+"?") {
			q.gens[key]++
		}
	}
	q.gens[url]++
}

// Cached reports whether url currently has a cached value.
func (q *Query) Cached(url string) bool {
	_, ok := q.lookup(url)
	return ok
}

// Fetch returns the cached value for url or fetches it.
func Fetch[T any](ctx context.Context, q *Query, url string) (T, error) {
	if v, ok := q.lookup(url); ok {
		if t, ok := v.(T); ok {
			return t, nil
		}
	}

	v, err, _ := q.group.Do(url, func() (any, error) {
		gen := q.generation(url)
		t, err := Get[T](ctx, q.client, url)
		if err != nil {
			return nil, err
		}
		q.store(url, gen, t)
		return t, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cached value for %s has type %T", url, v)
	}
	return t, nil
}

// FetchPage is Fetch for one page of a list endpoint.
func FetchPage[T any](ctx context.Context, q *Query, url string, page, pageSize int) (*Pagination[T], error) {
	p, err := Fetch[Pagination[T]](ctx, q, PageURL(url, page, pageSize))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Mutate sends body to url with method (POST when empty) and invalidates the
// cached url on success.
func Mutate[T any](ctx context.Context, q *Query, method, url string, body any) (T, error) {
	var zero T
	switch method {
	case "":
		method = http.MethodPost
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return zero, fmt.Errorf("unsupported mutation method %q", method)
	}

	t, err := send[T](ctx, q.client, method, url, body)
	if err != nil {
		return zero, err
	}
	q.Invalidate(url)
	return t, nil
}
