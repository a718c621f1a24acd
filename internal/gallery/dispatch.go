package gallery

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Event names a UI input the controller understands.
type Event string

const (
	EventItemActivate Event = "item-activate"
	EventPageNext     Event = "page-next"
	EventPagePrevious Event = "page-previous"
	EventModalDismiss Event = "modal-dismiss"
	EventRetry        Event = "retry-activate"
)

// Payload carries event arguments. Slot, ID and Source are only read by
// EventItemActivate. A non-empty ID must name a record on the current page;
// Slot is then ignored.
type Payload struct {
	Slot   int
	ID     string
	Source Focusable
}

// HandlerFunc handles one dispatched event.
type HandlerFunc func(ctx context.Context, p Payload) error

var (
	// ErrUnknownEvent is returned for events with no registered handler.
	ErrUnknownEvent = errors.New("unknown event")
	// ErrNoSuchItem is returned when an activated slot or ID is not on the
	// current page.
	ErrNoSuchItem = errors.New("no such item on page")
)

// Dispatcher maps event names to handlers.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[Event]HandlerFunc
}

// NewDispatcher returns an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Event]HandlerFunc)}
}

// Handle registers fn for ev, replacing any previous handler.
func (d *Dispatcher) Handle(ev Event, fn HandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[ev] = fn
}

// Dispatch runs the handler for ev.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event, p Payload) error {
	d.mu.RLock()
	fn, ok := d.handlers[ev]
	d.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEvent, ev)
	}
	return fn(ctx, p)
}
