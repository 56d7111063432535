package gist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingGistServer serves a minimal gist envelope and counts fetches. The
// name served can be swapped to observe snapshot replacement, and fail can
// be flipped to simulate store outages.
type countingGistServer struct {
	server *httptest.Server
	count  atomic.Int64
	name   atomic.Value
	fail   atomic.Bool
}

func newCountingGistServer(delay time.Duration) *countingGistServer {
	s := &countingGistServer{}
	s.name.Store("Jane Doe")
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		s.count.Add(1)
		if delay > 0 {
			time.Sleep(delay)
		}
		if s.fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		content := fmt.Sprintf(`{"basics": {"name": %q}}`, s.name.Load())
		body, _ := json.Marshal(map[string]any{
			"id": "abc123",
			"files": map[string]any{
				"resume.json": map[string]any{"content": content},
			},
		})
		_, _ = w.Write(body)
	}))
	return s
}

func (s *countingGistServer) store(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	client := NewClient(Options{APIBase: s.server.URL})
	return NewStore(client, "abc123", ttl, nil)
}

func TestStore_CacheHitWithinTTL(t *testing.T) {
	srv := newCountingGistServer(0)
	defer srv.server.Close()

	store := srv.store(t, time.Minute)

	first, err := store.GetResume(context.Background())
	require.NoError(t, err)
	second, err := store.GetResume(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int64(1), srv.count.Load())
}

func TestStore_RefetchAfterExpiry(t *testing.T) {
	srv := newCountingGistServer(0)
	defer srv.server.Close()

	store := srv.store(t, 30*time.Millisecond)

	first, err := store.GetResume(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", first.Basics.Name)

	srv.name.Store("Jane Q. Doe")
	time.Sleep(60 * time.Millisecond)

	second, err := store.GetResume(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jane Q. Doe", second.Basics.Name)
	assert.Equal(t, int64(2), srv.count.Load())
}

func TestStore_FailedRefetchServesStale(t *testing.T) {
	srv := newCountingGistServer(0)
	defer srv.server.Close()

	store := srv.store(t, 30*time.Millisecond)

	first, err := store.GetResume(context.Background())
	require.NoError(t, err)

	srv.fail.Store(true)
	time.Sleep(60 * time.Millisecond)

	stale, err := store.GetResume(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, stale)
	assert.True(t, store.Cached(), "failed refetch must not evict the entry")

	// Still degraded: the next call retries and serves stale again.
	again, err := store.GetResume(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.Equal(t, int64(3), srv.count.Load())
}

func TestStore_ColdCacheFailurePropagates(t *testing.T) {
	srv := newCountingGistServer(0)
	defer srv.server.Close()
	srv.fail.Store(true)

	store := srv.store(t, time.Minute)

	_, err := store.GetResume(context.Background())
	require.Error(t, err)

	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
	assert.False(t, store.Cached())
}

func TestStore_ConcurrentColdCallsShareOneFetch(t *testing.T) {
	srv := newCountingGistServer(50 * time.Millisecond)
	defer srv.server.Close()

	store := srv.store(t, time.Minute)

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = store.GetResume(context.Background())
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "caller %d", i)
	}
	assert.Equal(t, int64(1), srv.count.Load(), "concurrent misses must share one fetch")
}

func TestStore_Invalidate(t *testing.T) {
	srv := newCountingGistServer(0)
	defer srv.server.Close()

	store := srv.store(t, time.Minute)

	_, err := store.GetResume(context.Background())
	require.NoError(t, err)

	store.Invalidate()
	assert.False(t, store.Cached())

	_, err = store.GetResume(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), srv.count.Load())
}

func TestCacheEntry_Expired(t *testing.T) {
	now := time.Now()
	entry := &CacheEntry{FetchedAt: now}

	assert.False(t, entry.Expired(time.Minute, now))
	assert.False(t, entry.Expired(time.Minute, now.Add(time.Minute)))
	assert.True(t, entry.Expired(time.Minute, now.Add(time.Minute+time.Nanosecond)))
}
