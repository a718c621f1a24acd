// Package gallery holds the application state of the Vitrine browser and the
// controllers that change it.
//
// # Overview
//
// A Store owns the loaded record list and the current page index. Three
// controllers act on it:
//
//   - Pager moves between pages and emits a PageEvent after every change.
//   - Modal opens and closes the detail overlay for one record.
//   - Loader fetches records from a RecordSource and falls back to a fixed
//     set of placeholder records when the fetch fails.
//
// Controller bundles them with a Dispatcher that routes named UI events
// (item-activate, page-next, page-previous, modal-dismiss, retry-activate)
// to the right method.
//
// # Concurrency Model
//
// The Store uses a readers-writer lock. Load replaces the record list
// wholesale, so a retry that completes while another load is in flight
// never leaves a torn list; the last completed load wins. Snapshots are
// defensive copies and safe to keep after the lock is released.
//
//	Loader.Load (goroutine)         UI (bubbletea Update)
//	┌──────────────────────┐       ┌──────────────────────┐
//	│ FetchRecords(ctx)    │       │ Dispatch(page-next)  │
//	│   ↓ ok / err         │       │   ↓                  │
//	│ store.Load /         │──────→│ store.Snapshot()     │
//	│ store.LoadFallback   │(mutex)│   ↓                  │
//	└──────────────────────┘       │ render               │
//	                               └──────────────────────┘
//
// # Modal Lifecycle
//
// The modal is Closed or Open(record, returnFocus). While open it holds a
// single dismiss listener on its DismissSource; the listener is removed on
// close, so repeated open/close cycles never accumulate listeners. Closing
// returns focus to the opening element only when that element still
// reports itself attached.
//
// # Announcements
//
// Page and load events are turned into short sentences (PageAnnouncement,
// LoadAnnouncement) and handed to the Announcer, which the UI renders as a
// live region.
package gallery
