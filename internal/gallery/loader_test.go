package gallery

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/five82/vitrine/internal/collections"
)

type sourceFunc func(ctx context.Context) ([]collections.Record, error)

func (f sourceFunc) FetchRecords(ctx context.Context) ([]collections.Record, error) {
	return f(ctx)
}

func staticSource(records []collections.Record) RecordSource {
	return sourceFunc(func(context.Context) ([]collections.Record, error) {
		return records, nil
	})
}

func failingSource(err error) RecordSource {
	return sourceFunc(func(context.Context) ([]collections.Record, error) {
		return nil, err
	})
}

func TestPlaceholders(t *testing.T) {
	ph := Placeholders()
	require.Len(t, ph, PlaceholderCount)

	seen := make(map[string]bool)
	for i, rec := range ph {
		n := i + 1
		require.Equal(t, fmt.Sprintf("Theatre Artifact %d", n), rec.Title)
		require.Equal(t, strconv.Itoa(1900+i), rec.Date)
		require.Nil(t, rec.ImageURL)
		require.False(t, rec.HasImage())
		require.NotEmpty(t, rec.ID)
		require.False(t, seen[rec.ID], "duplicate id %s", rec.ID)
		seen[rec.ID] = true
	}
	require.Equal(t, "1929", ph[29].Date)
	require.Equal(t, ph, Placeholders())
}

func TestLoader_SuccessLoadsStore(t *testing.T) {
	store := NewStore(12)
	l := NewLoader(LoaderOptions{Source: staticSource(makeRecords(30)), Store: store})

	res := l.Load(context.Background())
	require.Equal(t, LoadResult{Count: 30}, res)
	require.Equal(t, 3, store.PageCount())
	require.Equal(t, SourceLive, store.Snapshot().Source)
}

func TestLoader_FailureFallsBackToPlaceholders(t *testing.T) {
	store := NewStore(12)
	cause := &collections.FetchError{Kind: collections.KindNetwork, Err: errors.New("refused")}
	l := NewLoader(LoaderOptions{Source: failingSource(cause), Store: store})

	var got []LoadResult
	l.Subscribe(func(res LoadResult) { got = append(got, res) })

	res := l.Load(context.Background())
	require.True(t, res.Fallback)
	require.Equal(t, PlaceholderCount, res.Count)
	require.ErrorIs(t, res.Err, cause)
	require.Len(t, got, 1)

	snap := store.Snapshot()
	require.True(t, snap.IsPlaceholder())
	require.Len(t, snap.Records, PlaceholderCount)
	require.Equal(t, "Theatre Artifact 1", snap.Page[0].Title)
	require.Equal(t, 3, snap.PageCount)
}

func TestLoader_TimeoutIsFailure(t *testing.T) {
	store := NewStore(12)
	slow := sourceFunc(func(ctx context.Context) ([]collections.Record, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	l := NewLoader(LoaderOptions{Source: slow, Store: store, Timeout: 20 * time.Millisecond})

	res := l.Load(context.Background())
	require.True(t, res.Fallback)
	require.ErrorIs(t, res.Err, context.DeadlineExceeded)
	require.True(t, store.Snapshot().IsPlaceholder())
}

func TestLoader_TimeoutBoundsCollectionsClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(300 * time.Millisecond):
		}
		_, _ = w.Write([]byte(`{"records": [{"systemNumber": "O1"}, {"systemNumber": "O2"}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := collections.NewClient(server.URL, collections.Query{})
	require.NoError(t, err)

	store := NewStore(12)
	res := NewLoader(LoaderOptions{Source: client, Store: store, Timeout: 5 * time.Second}).Load(context.Background())
	require.False(t, res.Fallback, "err: %v", res.Err)
	require.Equal(t, 2, store.Len())

	res = NewLoader(LoaderOptions{Source: client, Store: store, Timeout: 50 * time.Millisecond}).Load(context.Background())
	require.True(t, res.Fallback)
	require.ErrorIs(t, res.Err, context.DeadlineExceeded)
}

func TestLoader_NilSourceFallsBack(t *testing.T) {
	l := NewLoader(LoaderOptions{})
	res := l.Load(context.Background())
	require.True(t, res.Fallback)
	require.Error(t, res.Err)
}

func TestLoader_RetryReplacesPlaceholders(t *testing.T) {
	var calls atomic.Int32
	src := sourceFunc(func(context.Context) ([]collections.Record, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("down")
		}
		return makeRecords(7), nil
	})
	store := NewStore(12)
	l := NewLoader(LoaderOptions{Source: src, Store: store})

	require.True(t, l.Load(context.Background()).Fallback)
	res := l.Load(context.Background())
	require.False(t, res.Fallback)
	require.Equal(t, 7, store.Len())
	require.Equal(t, int32(2), calls.Load())
}

func TestLoader_ConcurrentRetriesAreSafe(t *testing.T) {
	var calls atomic.Int32
	src := sourceFunc(func(context.Context) ([]collections.Record, error) {
		if calls.Add(1)%2 == 0 {
			return nil, errors.New("flaky")
		}
		return makeRecords(5), nil
	})
	store := NewStore(12)
	l := NewLoader(LoaderOptions{Source: src, Store: store})

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Load(context.Background())
		}()
	}
	wg.Wait()

	snap := store.Snapshot()
	require.Equal(t, 20, snap.Loads)
	switch snap.Source {
	case SourceLive:
		require.Len(t, snap.Records, 5)
	case SourcePlaceholder:
		require.Len(t, snap.Records, PlaceholderCount)
	default:
		t.Fatalf("unexpected source %v", snap.Source)
	}
}

func TestLoadAnnouncement(t *testing.T) {
	require.Equal(t, "Loaded 30 artefacts", LoadAnnouncement(LoadResult{Count: 30}))
	require.Equal(t, "No artefacts found.", LoadAnnouncement(LoadResult{}))
	require.Contains(t, LoadAnnouncement(LoadResult{Count: 30, Fallback: true}), "30 placeholder artefacts")
}
