package gallery

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPager_WalkThroughPages(t *testing.T) {
	s := NewStore(12)
	s.Load(makeRecords(30))
	p := NewPager(s)

	var events []PageEvent
	p.Subscribe(func(ev PageEvent) { events = append(events, ev) })

	require.Equal(t, 3, s.PageCount())
	require.True(t, p.CanGoNext())
	require.False(t, p.CanGoPrevious())

	require.True(t, p.Next())
	require.True(t, p.Next())

	require.Equal(t, 2, s.PageIndex())
	require.Len(t, s.CurrentPageSlice(), 6)
	require.False(t, p.CanGoNext())
	require.True(t, p.CanGoPrevious())

	require.Equal(t, []PageEvent{
		{Page: 2, PageCount: 3, Items: 12},
		{Page: 3, PageCount: 3, Items: 6},
	}, events)
}

func TestPager_BoundariesAreNoOps(t *testing.T) {
	s := NewStore(12)
	s.Load(makeRecords(30))
	p := NewPager(s)

	emitted := 0
	p.Subscribe(func(PageEvent) { emitted++ })

	require.False(t, p.Previous())
	require.Equal(t, 0, s.PageIndex())
	require.Zero(t, emitted)

	p.Next()
	p.Next()
	emitted = 0
	require.False(t, p.Next())
	require.Equal(t, 2, s.PageIndex())
	require.Zero(t, emitted)
}

func TestPager_SinglePage(t *testing.T) {
	s := NewStore(12)
	s.Load(makeRecords(4))
	p := NewPager(s)

	require.False(t, p.CanGoNext())
	require.False(t, p.CanGoPrevious())
	require.False(t, p.Next())
	require.False(t, p.Previous())
}

func TestPager_UnsubscribeStopsEvents(t *testing.T) {
	s := NewStore(2)
	s.Load(makeRecords(6))
	p := NewPager(s)

	emitted := 0
	stop := p.Subscribe(func(PageEvent) { emitted++ })
	p.Next()
	stop()
	stop()
	p.Next()

	require.Equal(t, 1, emitted)
}

func TestPageAnnouncement(t *testing.T) {
	require.Equal(t, "Page 2 of 3, 12 artefacts",
		PageAnnouncement(PageEvent{Page: 2, PageCount: 3, Items: 12}))
	require.Equal(t, "Page 3 of 3, 1 artefact",
		PageAnnouncement(PageEvent{Page: 3, PageCount: 3, Items: 1}))
}
