// Package ui provides the terminal user interface for Vitrine.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds only view state (window size,
// theme, focused card, overlays); gallery state lives in a
// gallery.Controller and is re-read as a Snapshot after every change.
// Key presses become gallery events through keyMap.eventFor and are handed
// to the controller's dispatcher.
//
// # Package Structure
//
//   - app.go: Model, Update loop, event dispatch and the Run function
//   - keys.go: key bindings and key → event translation
//   - grid.go: card layout and focus movement
//   - focus.go: the Focusable handle the modal uses to return focus
//   - modal.go: the record detail overlay with a scrollable description
//   - header.go: status bar, placeholder banner, pagination bar, live region, footer
//   - help.go, history.go: help and announcement history overlays
//   - theme.go, style_helpers.go: palettes, the high-contrast palette, styles
//
// # Screen Layout
//
//	┌───────────────────────────────────────────────┐
//	│ vitrine  ● LIVE  Query: fashion  Artefacts: 30│  header
//	│ Collection unavailable ... Press r to retry.  │  banner (placeholders only)
//	│ ┌────────┐ ┌────────┐ ┌────────┐              │
//	│ │ card   │ │ card   │ │ card   │              │  grid
//	│ └────────┘ └────────┘ └────────┘              │
//	│      ‹ Previous [   Page 1 of 3   ] Next ›    │  pagination
//	│ ◆ Page 1 of 3, 12 artefacts                   │  live region
//	│ enter more information   ]/n next page  ...   │  footer
//	└───────────────────────────────────────────────┘
//
// # Focus
//
// Focus is the selected card index, shared by pointer between model
// copies. Opening the modal passes a tileHandle for the selected card;
// when the modal closes, the handle moves focus back to that card if it is
// still on the current page.
//
// # Loading
//
// The initial load and retries run as tea.Cmds so the update loop never
// blocks on the network. They finish with a loadedMsg, after which the
// model refreshes its snapshot.
//
// # Text Size
//
// A terminal cannot change its font, so the text-size preference scales
// card and modal width instead: two columns per point.
package ui
