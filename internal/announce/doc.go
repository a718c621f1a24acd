// Package announce implements the live region: the latest message shown by
// the UI and an append-only history file of everything announced.
//
// History lines are "<RFC3339 time> <text>", one per message, so logtail can
// read them back for the history overlay.
package announce
