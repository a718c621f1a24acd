package gallery

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/five82/vitrine/internal/collections"
)

// DefaultFetchTimeout bounds a single fetch; a timeout is an ordinary fetch
// failure.
const DefaultFetchTimeout = 10 * time.Second

// LoadResult describes one completed load.
type LoadResult struct {
	Count    int
	Fallback bool
	Err      error
}

// LoaderOptions configure a Loader.
type LoaderOptions struct {
	Source  RecordSource
	Store   *Store
	Timeout time.Duration
	Logger  *slog.Logger
}

// Loader runs the fetch-or-fallback sequence. Initial load and retry share
// Load; concurrent calls are safe because Store.Load replaces state whole and
// the last completed call wins.
type Loader struct {
	source    RecordSource
	store     *Store
	timeout   time.Duration
	logger    *slog.Logger
	observers listeners[LoadResult]
}

// NewLoader builds a Loader.
func NewLoader(opts LoaderOptions) *Loader {
	l := &Loader{
		source:  opts.Source,
		store:   opts.Store,
		timeout: opts.Timeout,
		logger:  opts.Logger,
	}
	if l.timeout <= 0 {
		l.timeout = DefaultFetchTimeout
	}
	if l.logger == nil {
		l.logger = discardLogger()
	}
	if l.store == nil {
		l.store = NewStore(DefaultPageSize)
	}
	return l
}

// Subscribe registers fn for completed loads and returns its removal function.
func (l *Loader) Subscribe(fn func(LoadResult)) func() {
	return l.observers.add(fn)
}

// Load fetches records and loads them, or loads the placeholders when the
// fetch fails for any reason. It never returns an error; LoadResult.Err
// carries the fetch failure for display.
func (l *Loader) Load(ctx context.Context) LoadResult {
	start := time.Now()
	records, err := l.fetch(ctx)
	if err != nil {
		placeholders := Placeholders()
		l.store.LoadFallback(placeholders, err)
		l.logger.Warn("record fetch failed, using placeholders",
			slog.Any("error", err),
			slog.Int("placeholders", len(placeholders)),
			slog.Duration("elapsed", time.Since(start)))
		res := LoadResult{Count: len(placeholders), Fallback: true, Err: err}
		l.observers.emit(res)
		return res
	}

	l.store.Load(records)
	l.logger.Info("records loaded",
		slog.Int("count", len(records)),
		slog.Duration("elapsed", time.Since(start)))
	res := LoadResult{Count: len(records)}
	l.observers.emit(res)
	return res
}

func (l *Loader) fetch(ctx context.Context) ([]collections.Record, error) {
	if l.source == nil {
		return nil, errors.New("no record source configured")
	}
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()
	return l.source.FetchRecords(ctx)
}
