package gallery

import (
	"context"
	"log/slog"

	"github.com/five82/vitrine/internal/collections"
)

// RecordSource fetches the full record set. Failures are expected to be
// *collections.FetchError but any error triggers the placeholder fallback.
type RecordSource interface {
	FetchRecords(ctx context.Context) ([]collections.Record, error)
}

// Announcer delivers a message to the assistive live region. Fire and forget.
type Announcer interface {
	Announce(message string)
}

// Narrator is the optional text-to-speech capability. At most one utterance
// is active; Speak implementations cancel the previous one first.
type Narrator interface {
	Speak(text string)
	Cancel()
}

// Focusable is a weak handle to the element that opened the modal. The modal
// only ever calls Focus, and only when Attached reports true.
type Focusable interface {
	Attached() bool
	Focus()
}

// DismissSource raises the external dismiss signal (the escape key).
// OnDismiss returns a function that removes the listener.
type DismissSource interface {
	OnDismiss(fn func()) (cancel func())
}

type nopAnnouncer struct{}

func (nopAnnouncer) Announce(string) {}

type nopNarrator struct{}

func (nopNarrator) Speak(string) {}
func (nopNarrator) Cancel()      {}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
