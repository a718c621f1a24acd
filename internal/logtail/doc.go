// Package logtail reads the tail of the announcement history file for the
// history overlay.
//
// # Reading
//
// Read returns the last maxLines lines of a file in one sequential pass,
// keeping only a ring buffer of maxLines entries:
//
//	1. Allocate ring buffer of size maxLines
//	2. For each line in file:
//	   - Store line at current index
//	   - Increment index (wrapping at maxLines)
//	3. Return the buffer starting from the oldest line
//
// A non-positive maxLines reads the whole file. A missing file is not an
// error; Read returns nil, nil so the overlay can show an empty history.
//
// # Parsing
//
// History lines are "<timestamp> <message>". ParseLine splits them with the
// caller's time layout; ReadEntries returns parsed entries newest first.
//
//	entries, err := logtail.ReadEntries(path, announce.TimeLayout, 200)
package logtail
