package gallery

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Options wire a Controller. Source is required; the rest is optional.
type Options struct {
	Source    RecordSource
	PageSize  int
	Timeout   time.Duration
	Announcer Announcer
	Narrator  Narrator
	Dismiss   DismissSource
	Narrate   bool
	Logger    *slog.Logger
}

// Controller is the application state: the store and the controllers that
// mutate it, plus the dispatcher that routes UI events to them.
type Controller struct {
	Store      *Store
	Pager      *Pager
	Modal      *Modal
	Loader     *Loader
	Dispatcher *Dispatcher

	announcer Announcer
}

// New builds a Controller with the default event handlers registered and
// page and load events forwarded to the announcer.
func New(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}
	announcer := opts.Announcer
	if announcer == nil {
		announcer = nopAnnouncer{}
	}

	store := NewStore(opts.PageSize)
	c := &Controller{
		Store: store,
		Pager: NewPager(store),
		Modal: NewModal(ModalOptions{
			Narrator: opts.Narrator,
			Dismiss:  opts.Dismiss,
			Narrate:  opts.Narrate,
			Logger:   logger,
		}),
		Loader: NewLoader(LoaderOptions{
			Source:  opts.Source,
			Store:   store,
			Timeout: opts.Timeout,
			Logger:  logger,
		}),
		Dispatcher: NewDispatcher(),
		announcer:  announcer,
	}

	c.Pager.Subscribe(func(ev PageEvent) { c.announcer.Announce(PageAnnouncement(ev)) })
	c.Loader.Subscribe(func(res LoadResult) { c.announcer.Announce(LoadAnnouncement(res)) })

	c.Dispatcher.Handle(EventItemActivate, c.activate)
	c.Dispatcher.Handle(EventPageNext, func(context.Context, Payload) error {
		if !c.Modal.IsOpen() {
			c.Pager.Next()
		}
		return nil
	})
	c.Dispatcher.Handle(EventPagePrevious, func(context.Context, Payload) error {
		if !c.Modal.IsOpen() {
			c.Pager.Previous()
		}
		return nil
	})
	c.Dispatcher.Handle(EventModalDismiss, func(context.Context, Payload) error {
		c.Modal.Close()
		return nil
	})
	c.Dispatcher.Handle(EventRetry, func(ctx context.Context, _ Payload) error {
		c.Loader.Load(ctx)
		return nil
	})
	return c
}

// Dispatch routes ev through the dispatcher.
func (c *Controller) Dispatch(ctx context.Context, ev Event, p Payload) error {
	return c.Dispatcher.Dispatch(ctx, ev, p)
}

// Announce forwards message to the announcer.
func (c *Controller) Announce(message string) {
	c.announcer.Announce(message)
}

func (c *Controller) activate(_ context.Context, p Payload) error {
	page := c.Store.CurrentPageSlice()
	if p.ID != "" {
		for _, rec := range page {
			if rec.ID == p.ID {
				c.Modal.Open(rec, p.Source)
				return nil
			}
		}
		return fmt.Errorf("%w %s", ErrNoSuchItem, p.ID)
	}
	if p.Slot < 0 || p.Slot >= len(page) {
		return fmt.Errorf("%w %d", ErrNoSuchItem, p.Slot)
	}
	c.Modal.Open(page[p.Slot], p.Source)
	return nil
}
