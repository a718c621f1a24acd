package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/vitrine/internal/collections"
)

// renderHeader renders the top status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("vitrine", styles.Logo)}

	switch {
	case m.loading:
		parts = append(parts, bg.Render("Loading…", styles.WarningText.Bold(true)))
	case m.snapshot.IsPlaceholder():
		parts = append(parts, bg.Render("● OFFLINE", styles.DangerText))
	case m.snapshot.Loads > 0:
		parts = append(parts, bg.Render("● LIVE", styles.SuccessText))
	}

	if m.query != "" {
		parts = append(parts,
			bg.Render("Query:", styles.MutedText)+bg.Spaces(1)+
				bg.Render(truncate(m.query, 24), styles.Text))
	}
	parts = append(parts,
		bg.Render("Artefacts:", styles.MutedText)+bg.Spaces(1)+
			bg.Render(fmt.Sprintf("%d", len(m.snapshot.Records)), styles.Text))

	left := bg.Join(parts, 2)

	right := bg.Render(m.theme.Name, styles.FaintText)
	if m.prefs.Narration {
		right = bg.Render("♪", styles.AccentText) + bg.Spaces(1) + right
	}

	return styles.Header.Width(m.width).Render(bg.Spread(left, right, m.width-2))
}

// renderBanner explains a placeholder gallery. It is empty otherwise.
func (m Model) renderBanner() string {
	if !m.snapshot.IsPlaceholder() || m.loading {
		return ""
	}
	styles := m.theme.Styles()
	msg := fmt.Sprintf("Collection unavailable (%s). Showing placeholder artefacts. Press r to retry.",
		describeFetchError(m.snapshot.LastError))
	return styles.DangerText.Width(m.width).Padding(0, 1).Render(truncate(msg, m.width-2))
}

// describeFetchError turns a fetch failure into a short reason.
func describeFetchError(err error) string {
	if err == nil {
		return "unknown error"
	}
	var fe *collections.FetchError
	if !errors.As(err, &fe) {
		return "unknown error"
	}
	switch fe.Kind {
	case collections.KindTimeout:
		return "request timed out"
	case collections.KindStatus:
		return fmt.Sprintf("server returned %d", fe.Status)
	case collections.KindDecode:
		return "unexpected response"
	default:
		return "network error"
	}
}

// renderPagination renders the previous/next controls and page position.
func (m Model) renderPagination() string {
	styles := m.theme.Styles()

	control := func(label string, enabled bool) string {
		if enabled {
			return styles.Control.Render(label)
		}
		return styles.ControlDisabled.Render(label)
	}

	prev := control("‹ Previous [", m.snapshot.CanGoPrevious())
	next := control("] Next ›", m.snapshot.CanGoNext())
	position := styles.Text.Render(fmt.Sprintf("Page %d of %d", m.snapshot.PageIndex+1, m.snapshot.PageCount))

	bar := lipgloss.JoinHorizontal(lipgloss.Center, prev, "   ", position, "   ", next)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, bar)
}

// renderLiveRegion shows the latest announcement.
func (m Model) renderLiveRegion() string {
	styles := m.theme.Styles()
	msg := m.announcer.Latest()
	if msg.Text == "" {
		return styles.FaintText.Padding(0, 1).Render(" ")
	}
	return styles.InfoText.Padding(0, 1).Render("◆ " + truncate(msg.Text, m.width-4))
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var parts []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, bg.Render(h.Key, styles.WarningText)+bg.Spaces(1)+bg.Render(strings.ToLower(h.Desc), styles.MutedText))
	}
	return styles.Footer.Width(m.width).Render(bg.Join(parts, 3))
}
