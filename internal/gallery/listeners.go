package gallery

import (
	"slices"
	"sync"
)

// listeners is a small registry of callbacks keyed by registration order.
// emit never holds the lock while calling out, so a callback may remove
// itself or others.
type listeners[T any] struct {
	mu   sync.Mutex
	next int
	fns  map[int]func(T)
}

func (l *listeners[T]) add(fn func(T)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fns == nil {
		l.fns = make(map[int]func(T))
	}
	id := l.next
	l.next++
	l.fns[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.fns, id)
			l.mu.Unlock()
		})
	}
}

func (l *listeners[T]) emit(v T) {
	l.mu.Lock()
	ids := make([]int, 0, len(l.fns))
	for id := range l.fns {
		ids = append(ids, id)
	}
	l.mu.Unlock()

	slices.Sort(ids)
	for _, id := range ids {
		l.mu.Lock()
		fn, ok := l.fns[id]
		l.mu.Unlock()
		if ok {
			fn(v)
		}
	}
}

func (l *listeners[T]) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.fns)
}

// DismissBus is an in-process DismissSource. The UI calls Dismiss when the
// escape key is pressed.
type DismissBus struct {
	l listeners[struct{}]
}

// OnDismiss registers fn and returns its removal function.
func (b *DismissBus) OnDismiss(fn func()) func() {
	return b.l.add(func(struct{}) { fn() })
}

// Dismiss notifies every registered listener.
func (b *DismissBus) Dismiss() {
	b.l.emit(struct{}{})
}

// Listeners returns the number of registered listeners.
func (b *DismissBus) Listeners() int {
	return b.l.count()
}
