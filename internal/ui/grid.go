package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/vitrine/internal/collections"
	"github.com/five82/vitrine/internal/prefs"
)

const (
	cardTitleLines = 2
	cardBodyLines  = cardTitleLines + 3 // title, maker, date, image
	cardHeight     = cardBodyLines + 2  // border
	cardGap        = 1
)

// cardLabel is the accessible description announced when a card gains focus.
func cardLabel(rec collections.Record) string {
	return rec.Label() + " Press enter for more information."
}

// cardWidth scales the outer card width with the text size preference:
// 12pt → 24 columns, 16pt → 32, 28pt → 56.
func cardWidth(fontSize int) int {
	return prefs.ClampFontSize(fontSize) * 2
}

// gridColumns returns how many cards fit side by side in width.
func gridColumns(width, fontSize int) int {
	cols := (width + cardGap) / (cardWidth(fontSize) + cardGap)
	return max(1, cols)
}

// visibleRows returns the card rows that fit in height, at least one.
func visibleRows(height int) int {
	return max(1, height/cardHeight)
}

// firstVisibleRow scrolls the grid so the selected row is on screen.
func firstVisibleRow(selected, cols, total, rowsFit int) int {
	if total == 0 {
		return 0
	}
	rows := (total + cols - 1) / cols
	selRow := selected / cols
	first := selRow - rowsFit + 1
	first = max(0, first)
	return min(first, max(0, rows-rowsFit))
}

// renderCard renders one record as a bordered card.
func renderCard(rec collections.Record, width int, focused bool, styles Styles) string {
	inner := width - 4 // border and padding

	title := wrapWords(rec.Title, inner, cardTitleLines)
	for len(title) < cardTitleLines {
		title = append(title, "")
	}

	image := "□ no image"
	imageStyle := styles.FaintText
	if rec.HasImage() {
		image = "▣ image"
		imageStyle = styles.InfoText
	}

	lines := make([]string, 0, cardBodyLines)
	for _, l := range title {
		lines = append(lines, styles.Text.Bold(true).Render(padRight(l, inner)))
	}
	lines = append(lines,
		styles.MutedText.Render(padRight(truncate(rec.Maker, inner), inner)),
		styles.AccentText.Render(padRight(truncate(rec.Date, inner), inner)),
		imageStyle.Render(padRight(image, inner)),
	)

	style := styles.Card
	if focused {
		style = styles.CardFocused
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// renderGrid lays out the page as rows of cards, scrolled to keep the
// selected card visible.
func (m Model) renderGrid(height int) string {
	styles := m.theme.Styles()
	page := m.snapshot.Page
	if len(page) == 0 {
		msg := styles.MutedText.Render("No artefacts found.")
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	cols := gridColumns(m.width, m.prefs.FontSize)
	w := cardWidth(m.prefs.FontSize)
	rowsFit := visibleRows(height)
	first := firstVisibleRow(m.sel.index, cols, len(page), rowsFit)

	var rows []string
	for r := first; r < first+rowsFit; r++ {
		start := r * cols
		if start >= len(page) {
			break
		}
		end := min(start+cols, len(page))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, renderCard(page[i], w, i == m.sel.index, styles))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.NewStyle().Width(m.width).Height(height).Render(grid)
}

// moveSelection moves focus by delta cards within the page and announces
// the newly focused card. It reports whether focus moved.
func (m *Model) moveSelection(delta int) bool {
	n := len(m.snapshot.Page)
	if n == 0 {
		return false
	}
	target := m.sel.index + delta
	if target < 0 || target >= n {
		return false
	}
	return m.focusSlot(target)
}

func (m *Model) focusSlot(slot int) bool {
	n := len(m.snapshot.Page)
	if slot < 0 || slot >= n || slot == m.sel.index {
		return false
	}
	m.sel.index = slot
	m.ctrl.Announce(cardLabel(m.snapshot.Page[slot]))
	return true
}
