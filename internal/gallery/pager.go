package gallery

// PageEvent is emitted after every page change.
type PageEvent struct {
	Page      int // 1-based
	PageCount int
	Items     int
}

// Pager is the pagination controller over a Store.
type Pager struct {
	store     *Store
	observers listeners[PageEvent]
}

// NewPager returns a Pager driving store.
func NewPager(store *Store) *Pager {
	return &Pager{store: store}
}

// Subscribe registers fn for page changes and returns its removal function.
func (p *Pager) Subscribe(fn func(PageEvent)) func() {
	return p.observers.add(fn)
}

// Next advances one page. At the last page it does nothing and returns false.
func (p *Pager) Next() bool {
	return p.move(1)
}

// Previous goes back one page. On the first page it does nothing and
// returns false.
func (p *Pager) Previous() bool {
	return p.move(-1)
}

// CanGoNext reports whether Next would change the page.
func (p *Pager) CanGoNext() bool {
	return p.store.PageIndex()+1 < p.store.PageCount()
}

// CanGoPrevious reports whether Previous would change the page.
func (p *Pager) CanGoPrevious() bool {
	return p.store.PageIndex() > 0
}

func (p *Pager) move(delta int) bool {
	ev, ok := p.store.step(delta)
	if !ok {
		return false
	}
	p.observers.emit(ev)
	return true
}
