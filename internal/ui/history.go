package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) resizeHistory() {
	m.historyViewport.Width = max(m.width-8, 20)
	m.historyViewport.Height = max(m.height-8, 3)
	m.syncHistory()
}

func (m *Model) syncHistory() {
	styles := m.theme.Styles()
	var lines []string
	switch {
	case m.historyErr != nil:
		lines = append(lines, styles.DangerText.Render("Could not read history: "+m.historyErr.Error()))
	case len(m.history) == 0:
		lines = append(lines, styles.MutedText.Render("No announcements yet."))
	}
	width := m.historyViewport.Width
	for _, e := range m.history {
		stamp := "        "
		if !e.At.IsZero() {
			stamp = e.At.Local().Format("15:04:05")
		}
		lines = append(lines, styles.FaintText.Render(stamp)+"  "+styles.Text.Render(truncate(e.Text, width-10)))
	}
	m.historyViewport.SetContent(strings.Join(lines, "\n"))
	m.historyViewport.GotoTop()
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Dismiss, m.keys.History, m.keys.Quit) {
		m.showHistory = false
		return m, nil
	}
	var cmd tea.Cmd
	m.historyViewport, cmd = m.historyViewport.Update(msg)
	return m, cmd
}

// renderHistory renders the announcement history overlay, newest first.
func (m Model) renderHistory() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Announcements"))
	b.WriteString("\n\n")
	b.WriteString(m.historyViewport.View())
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("esc/a close · j/k scroll"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(0, 1).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
