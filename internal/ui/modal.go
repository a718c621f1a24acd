package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/vitrine/internal/collections"
)

const (
	modalTitleLines  = 2
	modalHeaderLines = modalTitleLines + 4 // maker, date, image, blank
	modalFooterLines = 2                   // blank, hint
	modalChrome      = 2 + 2               // border, vertical padding
)

// modalLayout sizes the detail overlay. Width grows with the text size
// preference, as cards do.
type modalLayout struct {
	width  int // outer
	inner  int // content width
	height int // viewport height
}

func (m Model) modalLayout() modalLayout {
	width := min(m.width-4, 40+2*m.prefs.FontSize)
	width = max(width, 24)
	height := min(m.height-2, 32)
	vp := height - modalChrome - modalHeaderLines - modalFooterLines
	return modalLayout{
		width:  width,
		inner:  width - 2 - 4,
		height: max(vp, 1),
	}
}

func (m *Model) resizeModal() {
	l := m.modalLayout()
	m.modalViewport.Width = l.inner
	m.modalViewport.Height = l.height
	m.syncModal()
}

// syncModal loads the open record's description into the viewport. The
// scroll position resets when a different record is opened.
func (m *Model) syncModal() {
	rec, ok := m.ctrl.Modal.State().Record()
	if !ok {
		m.modalID = ""
		return
	}
	l := m.modalLayout()
	m.modalViewport.Width = l.inner
	m.modalViewport.Height = l.height
	m.modalViewport.SetContent(strings.Join(wrapWords(rec.Description, l.inner, 0), "\n"))
	if rec.ID != m.modalID {
		m.modalViewport.GotoTop()
		m.modalID = rec.ID
	}
}

// renderModal renders the detail overlay for the open record.
func (m Model) renderModal() string {
	rec, ok := m.ctrl.Modal.State().Record()
	if !ok {
		return m.renderMain()
	}
	styles := m.theme.Styles()
	l := m.modalLayout()

	var b strings.Builder
	title := wrapWords(rec.Title, l.inner, modalTitleLines)
	for len(title) < modalTitleLines {
		title = append(title, "")
	}
	for _, line := range title {
		b.WriteString(styles.WarningText.Bold(true).Render(line))
		b.WriteString("\n")
	}
	b.WriteString(styles.MutedText.Render("by ") + styles.Text.Render(truncate(rec.Maker, l.inner-3)))
	b.WriteString("\n")
	b.WriteString(styles.AccentText.Render(truncate(rec.Date, l.inner)))
	b.WriteString("\n")
	b.WriteString(m.renderModalImage(rec, l.inner, styles))
	b.WriteString("\n\n")

	b.WriteString(m.modalViewport.View())
	b.WriteString("\n\n")

	hint := "esc/enter close"
	if m.modalViewport.TotalLineCount() > m.modalViewport.Height {
		hint += " · j/k scroll"
	}
	if m.ctrl.Modal.Narrating() {
		hint += " · narrating"
	}
	b.WriteString(styles.FaintText.Render(hint))

	box := styles.Modal.Width(l.width - 2).Render(b.String())
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

func (m Model) renderModalImage(rec collections.Record, width int, styles Styles) string {
	if !rec.HasImage() {
		return styles.FaintText.Render("No image available")
	}
	return styles.InfoText.Render(truncateMiddle(rec.Image(), width))
}
