// Package app provides the orchestration layer for the Vitrine application.
//
// # Overview
//
// This package wires together configuration, the collections client, the
// gallery controller, announcements, narration and the UI. It is the
// composition root where all dependencies are initialized and connected.
//
// # Architecture
//
// Run follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/vitrine/config.toml (VITRINE_* env overrides)
//  2. Open the log file; the TUI owns the terminal so logs never go to stderr
//  3. Build the collections client for the configured query
//  4. Create the announcer, the dismiss bus and, when a speech command exists, the narrator
//  5. Build the gallery controller (store, pager, modal, loader, dispatcher)
//  6. Load display preferences and start the TUI, which performs the initial fetch
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()          Read config + env
//	       ├─────> collections.NewClient() Create HTTP client
//	       ├─────> announce.New()         Live region + history file
//	       ├─────> speech.New()           Optional narrator
//	       ├─────> gallery.New()          Controller
//	       └─────> ui.Run()               Start TUI (blocks)
//
// # Non-interactive commands
//
// List and Show reuse the same controller without the TUI. They perform one
// load, fall back to placeholder artefacts on failure like the UI does, and
// print plain text. Logs go to the writer supplied by the caller.
//
// # Error Handling
//
// Fatal errors (returned from Run, List, Show):
//   - Configuration file invalid or failing validation
//   - Log file cannot be opened
//   - Collections client initialization failure
//
// Fetch failures are never fatal. The loader swaps in placeholders and the
// user can retry.
package app
