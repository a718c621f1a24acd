package gallery

import (
	"log/slog"
	"sync"

	"github.com/five82/vitrine/internal/collections"
)

// ModalState is either Closed (the zero value) or Open with a record and
// the element to return focus to.
type ModalState struct {
	open        bool
	record      collections.Record
	returnFocus Focusable
}

// IsOpen reports whether the modal is showing a record.
func (s ModalState) IsOpen() bool {
	return s.open
}

// Record returns the displayed record when open.
func (s ModalState) Record() (collections.Record, bool) {
	return s.record, s.open
}

// ModalOptions wires the modal's collaborators. Every field is optional.
type ModalOptions struct {
	Narrator Narrator
	Dismiss  DismissSource
	Narrate  bool
	Logger   *slog.Logger
}

// Modal is the detail overlay controller. Only one record is ever open;
// opening another replaces it.
type Modal struct {
	mu            sync.Mutex
	state         ModalState
	narrator      Narrator
	narrate       bool
	dismiss       DismissSource
	stopListening func()
	logger        *slog.Logger
}

// NewModal builds a closed Modal.
func NewModal(opts ModalOptions) *Modal {
	m := &Modal{
		narrator: opts.Narrator,
		narrate:  opts.Narrate,
		dismiss:  opts.Dismiss,
		logger:   opts.Logger,
	}
	if m.narrator == nil {
		m.narrator = nopNarrator{}
	}
	if m.logger == nil {
		m.logger = discardLogger()
	}
	return m
}

// Open shows rec and remembers source for focus restoration. When
// narration is on, the previous utterance is cancelled before rec is read.
func (m *Modal) Open(rec collections.Record, source Focusable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = ModalState{open: true, record: rec, returnFocus: source}
	if m.narrate {
		m.narrator.Cancel()
		m.narrator.Speak(rec.NarrationText())
	}
	if m.dismiss != nil && m.stopListening == nil {
		m.stopListening = m.dismiss.OnDismiss(m.Close)
	}
	m.logger.Debug("modal opened", slog.String("record_id", rec.ID))
}

// Close hides the modal, stops narration and returns focus to the element
// that opened it if that element is still attached. Closing a closed modal
// does nothing.
func (m *Modal) Close() {
	m.mu.Lock()
	if !m.state.open {
		m.mu.Unlock()
		return
	}
	target := m.state.returnFocus
	id := m.state.record.ID
	m.state = ModalState{}
	if m.stopListening != nil {
		m.stopListening()
		m.stopListening = nil
	}
	m.narrator.Cancel()
	m.mu.Unlock()

	// Focus runs outside the lock; it calls back into UI state.
	if target != nil && target.Attached() {
		target.Focus()
	}
	m.logger.Debug("modal closed", slog.String("record_id", id))
}

// State returns the current modal state.
func (m *Modal) State() ModalState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// IsOpen reports whether a record is displayed.
func (m *Modal) IsOpen() bool {
	return m.State().IsOpen()
}

// SetNarration turns narration on or off. Turning it off silences any
// active utterance.
func (m *Modal) SetNarration(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.narrate = enabled
	if !enabled {
		m.narrator.Cancel()
	}
}

// Narrating reports whether narration is enabled.
func (m *Modal) Narrating() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.narrate
}
