package gallery

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/vitrine/internal/collections"
)

// DefaultPageSize is the number of cards per page when none is configured.
const DefaultPageSize = 12

// Source records where the loaded records came from.
type Source int

const (
	SourceNone Source = iota
	SourceLive
	SourcePlaceholder
)

func (s Source) String() string {
	switch s {
	case SourceLive:
		return "live"
	case SourcePlaceholder:
		return "placeholder"
	default:
		return "none"
	}
}

// Snapshot is an immutable view of the gallery state for rendering.
type Snapshot struct {
	Records   []collections.Record
	Page      []collections.Record
	PageIndex int
	PageSize  int
	PageCount int
	Source    Source
	LastError error
	LoadedAt  time.Time
	Loads     int
}

// CanGoNext reports whether a later page exists.
func (s Snapshot) CanGoNext() bool {
	return s.PageIndex+1 < s.PageCount
}

// CanGoPrevious reports whether an earlier page exists.
func (s Snapshot) CanGoPrevious() bool {
	return s.PageIndex > 0
}

// IsPlaceholder reports whether the gallery is showing fallback records.
func (s Snapshot) IsPlaceholder() bool {
	return s.Source == SourcePlaceholder
}

// Store is the single source of truth for the record list and current page.
// The zero value is ready to use with DefaultPageSize.
type Store struct {
	mu        sync.RWMutex
	records   []collections.Record
	pageIndex int
	pageSize  int
	source    Source
	lastErr   error
	loadedAt  time.Time
	loads     int
}

// NewStore returns a Store slicing pages of pageSize records. Non-positive
// sizes use DefaultPageSize.
func NewStore(pageSize int) *Store {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Store{pageSize: pageSize}
}

// Load replaces the record list wholesale and resets to the first page.
func (s *Store) Load(records []collections.Record) {
	s.replace(records, SourceLive, nil)
}

// LoadFallback replaces the record list with placeholder records and keeps
// the fetch error that caused it.
func (s *Store) LoadFallback(records []collections.Record, cause error) {
	s.replace(records, SourcePlaceholder, cause)
}

func (s *Store) replace(records []collections.Record, source Source, cause error) {
	dup := cloneRecords(records)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = dup
	s.pageIndex = 0
	s.source = source
	s.lastErr = cause
	s.loadedAt = time.Now()
	s.loads++
}

// CurrentPageSlice returns a copy of the records on the current page, empty
// when nothing is loaded.
func (s *Store) CurrentPageSlice() []collections.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecords(s.pageLocked())
}

// PageCount returns ceil(len/pageSize), at least 1.
func (s *Store) PageCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pageCountLocked()
}

// PageIndex returns the zero-based current page.
func (s *Store) PageIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pageIndex
}

// PageSize returns the configured page size.
func (s *Store) PageSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size()
}

// Len returns the number of loaded records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Find returns the record with the given ID.
func (s *Store) Find(id string) (collections.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return collections.Record{}, false
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Records:   cloneRecords(s.records),
		Page:      cloneRecords(s.pageLocked()),
		PageIndex: s.pageIndex,
		PageSize:  s.size(),
		PageCount: s.pageCountLocked(),
		Source:    s.source,
		LoadedAt:  s.loadedAt,
		Loads:     s.loads,
	}
	if s.lastErr != nil {
		snap.LastError = fmt.Errorf("%w", s.lastErr)
	}
	return snap
}

// step moves the page index by delta when the target page exists.
func (s *Store) step(delta int) (PageEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.pageIndex + delta
	if target < 0 || target >= s.pageCountLocked() {
		return PageEvent{}, false
	}
	s.pageIndex = target
	return PageEvent{
		Page:      target + 1,
		PageCount: s.pageCountLocked(),
		Items:     len(s.pageLocked()),
	}, true
}

func (s *Store) size() int {
	if s.pageSize <= 0 {
		return DefaultPageSize
	}
	return s.pageSize
}

func (s *Store) pageCountLocked() int {
	size := s.size()
	count := (len(s.records) + size - 1) / size
	if count < 1 {
		return 1
	}
	return count
}

func (s *Store) pageLocked() []collections.Record {
	size := s.size()
	start := s.pageIndex * size
	if start >= len(s.records) {
		return nil
	}
	end := min(start+size, len(s.records))
	return s.records[start:end]
}

func cloneRecords(records []collections.Record) []collections.Record {
	if len(records) == 0 {
		return []collections.Record{}
	}
	dup := make([]collections.Record, len(records))
	copy(dup, records)
	return dup
}
