package gallery

import "fmt"

// PageAnnouncement is the live-region text for a page change.
func PageAnnouncement(ev PageEvent) string {
	noun := "artefacts"
	if ev.Items == 1 {
		noun = "artefact"
	}
	return fmt.Sprintf("Page %d of %d, %d %s", ev.Page, ev.PageCount, ev.Items, noun)
}

// LoadAnnouncement is the live-region text for a completed load.
func LoadAnnouncement(res LoadResult) string {
	if res.Fallback {
		return fmt.Sprintf("Error fetching artefacts. Showing %d placeholder artefacts. Press r to retry.", res.Count)
	}
	if res.Count == 0 {
		return "No artefacts found."
	}
	return fmt.Sprintf("Loaded %d artefacts", res.Count)
}
