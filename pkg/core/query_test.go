package core

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingServer answers GET /users with a growing list and counts hits.
func countingServer(t *testing.T) (*Client, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			n := hits.Add(1)
			if r.URL.Query().Get("page") != "" {
				writeJSON(w, http.StatusOK, BaseResponse[Pagination[user]]{Data: Pagination[user]{Total: int(n)}})
				return
			}
			writeJSON(w, http.StatusOK, BaseResponse[[]user]{Data: make([]user, n)})
		case http.MethodPost:
			writeJSON(w, http.StatusOK, BaseResponse[user]{Data: user{ID: 99}})
		default:
			writeJSON(w, http.StatusMethodNotAllowed, nil)
		}
	})
	return c, &hits
}

func TestFetchCaches(t *testing.T) {
	c, hits := countingServer(t)
	q := NewQuery(c)
	ctx := context.Background()

	first, err := Fetch[[]user](ctx, q, "/users")
	require.NoError(t, err)
	second, err := Fetch[[]user](ctx, q, "/users")
	require.NoError(t, err)

	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
	assert.Equal(t, int32(1), hits.Load())
	assert.True(t, q.Cached("/users"))
}

func TestMutateInvalidates(t *testing.T) {
	c, hits := countingServer(t)
	q := NewQuery(c)
	ctx := context.Background()

	_, err := Fetch[[]user](ctx, q, "/users")
	require.NoError(t, err)
	_, err = FetchPage[user](ctx, q, "/users", 1, 10)
	require.NoError(t, err)

	created, err := Mutate[user](ctx, q, "", "/users", user{Name: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, 99, created.ID)
	assert.False(t, q.Cached("/users"))
	assert.False(t, q.Cached(PageURL("/users", 1, 10)))

	again, err := Fetch[[]user](ctx, q, "/users")
	require.NoError(t, err)
	assert.Len(t, again, 3)
	assert.Equal(t, int32(3), hits.Load())
}

func TestMutateFailureKeepsCache(t *testing.T) {
	c, _ := countingServer(t)
	q := NewQuery(c)
	ctx := context.Background()

	_, err := Fetch[[]user](ctx, q, "/users")
	require.NoError(t, err)

	_, err = Mutate[user](ctx, q, http.MethodPut, "/users", nil)
	assert.True(t, IsAPIError(err, http.StatusMethodNotAllowed))
	assert.True(t, q.Cached("/users"))

	_, err = Mutate[user](ctx, q, http.MethodGet, "/users", nil)
	assert.Error(t, err)
}

func TestFetchErrorNotCached(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "down"})
	})
	q := NewQuery(c)

	_, err := Fetch[[]user](context.Background(), q, "/users")
	assert.True(t, IsAPIError(err, http.StatusInternalServerError))
	assert.False(t, q.Cached("/users"))
}

func TestStaleTime(t *testing.T) {
	c, hits := countingServer(t)
	q := NewQuery(c)
	q.StaleTime = time.Minute
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	q.now = func() time.Time { return clock }
	ctx := context.Background()

	_, err := Fetch[[]user](ctx, q, "/users")
	require.NoError(t, err)
	clock = clock.Add(30 * time.Second)
	_, err = Fetch[[]user](ctx, q, "/users")
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())

	clock = clock.Add(time.Minute)
	_, err = Fetch[[]user](ctx, q, "/users")
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestFetchConcurrent(t *testing.T) {
	c, _ := countingServer(t)
	q := NewQuery(c)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := Fetch[[]user](context.Background(), q, "/users")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.True(t, q.Cached("/users"))
}

func TestInvalidateDuringFetchDropsResult(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var hits atomic.Int32
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			close(started)
			<-release
		}
		writeJSON(w, http.StatusOK, BaseResponse[[]user]{Data: []user{{ID: int(hits.Load())}}})
	})
	q := NewQuery(c)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := Fetch[[]user](ctx, q, "/users")
		done <- err
	}()

	<-started
	q.Invalidate("/users")
	close(release)
	require.NoError(t, <-done)
	assert.False(t, q.Cached("/users"))

	fresh, err := Fetch[[]user](ctx, q, "/users")
	require.NoError(t, err)
	assert.Equal(t, 2, fresh[0].ID)
	assert.True(t, q.Cached("/users"))
}

func TestInvalidateDuringPageFetchDropsResult(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var hits atomic.Int32
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			close(started)
			<-release
		}
		writeJSON(w, http.StatusOK, BaseResponse[Pagination[user]]{Data: Pagination[user]{Total: 1}})
	})
	q := NewQuery(c)

	done := make(chan error, 1)
	go func() {
		_, err := FetchPage[user](context.Background(), q, "/users", 1, 10)
		done <- err
	}()

	<-started
	q.Invalidate("/users")
	close(release)
	require.NoError(t, <-done)
	assert.False(t, q.Cached(PageURL("/users", 1, 10)))
}
