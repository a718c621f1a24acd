package gallery

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/five82/vitrine/internal/collections"
)

type fakeFocus struct {
	attached bool
	focused  int
}

func (f *fakeFocus) Attached() bool { return f.attached }
func (f *fakeFocus) Focus()         { f.focused++ }

type recordingNarrator struct {
	mu     sync.Mutex
	calls  []string
	active string
}

func (n *recordingNarrator) Speak(text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, "speak:"+text)
	n.active = text
}

func (n *recordingNarrator) Cancel() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, "cancel")
	n.active = ""
}

func (n *recordingNarrator) Active() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.active
}

func TestModal_OpenCloseRestoresFocus(t *testing.T) {
	m := NewModal(ModalOptions{})
	src := &fakeFocus{attached: true}
	rec := collections.Record{ID: "O1", Title: "Hat"}

	m.Open(rec, src)
	require.True(t, m.IsOpen())
	got, ok := m.State().Record()
	require.True(t, ok)
	require.Equal(t, rec, got)

	m.Close()
	require.False(t, m.IsOpen())
	require.Equal(t, 1, src.focused)
}

func TestModal_CloseSkipsDetachedSource(t *testing.T) {
	m := NewModal(ModalOptions{})
	src := &fakeFocus{attached: true}

	m.Open(collections.Record{ID: "O1"}, src)
	src.attached = false
	m.Close()

	require.False(t, m.IsOpen())
	require.Zero(t, src.focused)
}

func TestModal_CloseWithoutSource(t *testing.T) {
	m := NewModal(ModalOptions{})
	m.Open(collections.Record{ID: "O1"}, nil)
	require.NotPanics(t, m.Close)
	require.False(t, m.IsOpen())
}

func TestModal_CloseWhenClosedIsNoOp(t *testing.T) {
	narrator := &recordingNarrator{}
	m := NewModal(ModalOptions{Narrator: narrator, Narrate: true})

	m.Close()
	require.False(t, m.IsOpen())
	require.Empty(t, narrator.calls)
}

func TestModal_DoubleOpenKeepsSecondRecord(t *testing.T) {
	narrator := &recordingNarrator{}
	m := NewModal(ModalOptions{Narrator: narrator, Narrate: true})

	first := collections.Record{ID: "O1", Title: "Hat", Date: "1900", Description: "Felt."}
	second := collections.Record{ID: "O2", Title: "Shoe", Date: "1950", Description: "Leather."}

	m.Open(first, nil)
	m.Open(second, nil)

	got, ok := m.State().Record()
	require.True(t, ok)
	require.Equal(t, "O2", got.ID)
	require.Equal(t, second.NarrationText(), narrator.Active())
	require.Equal(t, []string{
		"cancel", "speak:" + first.NarrationText(),
		"cancel", "speak:" + second.NarrationText(),
	}, narrator.calls)
}

func TestModal_CloseCancelsNarration(t *testing.T) {
	narrator := &recordingNarrator{}
	m := NewModal(ModalOptions{Narrator: narrator, Narrate: true})

	m.Open(collections.Record{ID: "O1", Title: "Hat"}, nil)
	m.Close()
	require.Empty(t, narrator.Active())
}

func TestModal_NarrationOffDoesNotSpeak(t *testing.T) {
	narrator := &recordingNarrator{}
	m := NewModal(ModalOptions{Narrator: narrator})

	m.Open(collections.Record{ID: "O1", Title: "Hat"}, nil)
	require.Empty(t, narrator.Active())

	m.SetNarration(true)
	require.True(t, m.Narrating())
	m.Open(collections.Record{ID: "O2", Title: "Shoe"}, nil)
	require.NotEmpty(t, narrator.Active())

	m.SetNarration(false)
	require.Empty(t, narrator.Active())
}

func TestModal_DismissSignalCloses(t *testing.T) {
	bus := &DismissBus{}
	m := NewModal(ModalOptions{Dismiss: bus})
	src := &fakeFocus{attached: true}

	m.Open(collections.Record{ID: "O1"}, src)
	require.Equal(t, 1, bus.Listeners())

	bus.Dismiss()
	require.False(t, m.IsOpen())
	require.Equal(t, 1, src.focused)
	require.Zero(t, bus.Listeners())
}

func TestModal_ListenersDoNotAccumulate(t *testing.T) {
	bus := &DismissBus{}
	m := NewModal(ModalOptions{Dismiss: bus})

	for range 25 {
		m.Open(collections.Record{ID: "O1"}, nil)
		m.Open(collections.Record{ID: "O2"}, nil)
		require.Equal(t, 1, bus.Listeners())
		m.Close()
		require.Zero(t, bus.Listeners())
	}

	// Dismiss while closed touches nothing.
	bus.Dismiss()
	require.False(t, m.IsOpen())
}
