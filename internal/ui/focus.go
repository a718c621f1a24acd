package ui

import (
	"github.com/five82/vitrine/internal/collections"
	"github.com/five82/vitrine/internal/gallery"
)

// selection is the focused card on the current page. It is shared by
// pointer between Model copies so tile handles can move focus after the
// model value has been replaced by Update.
type selection struct {
	index int
}

// clamp keeps the index inside a page of n cards.
func (s *selection) clamp(n int) {
	switch {
	case n <= 0:
		s.index = 0
	case s.index >= n:
		s.index = n - 1
	case s.index < 0:
		s.index = 0
	}
}

// tileHandle is the gallery.Focusable for one card. The card is attached
// while its record is on the store's current page.
type tileHandle struct {
	sel   *selection
	store *gallery.Store
	id    string
}

var _ gallery.Focusable = tileHandle{}

func (h tileHandle) Attached() bool {
	return slotOf(h.store.CurrentPageSlice(), h.id) >= 0
}

func (h tileHandle) Focus() {
	if slot := slotOf(h.store.CurrentPageSlice(), h.id); slot >= 0 {
		h.sel.index = slot
	}
}

func slotOf(page []collections.Record, id string) int {
	for i, rec := range page {
		if rec.ID == id {
			return i
		}
	}
	return -1
}
