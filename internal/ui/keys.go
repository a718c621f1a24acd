package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/vitrine/internal/gallery"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	History    key.Binding

	// Gallery
	Activate     key.Binding
	NextPage     key.Binding
	PreviousPage key.Binding
	Retry        key.Binding

	// Modal
	Dismiss key.Binding
	Close   key.Binding

	// Card focus
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	First key.Binding
	Last  key.Binding

	// Display preferences
	Contrast    key.Binding
	TextLarger  key.Binding
	TextSmaller key.Binding
	Narration   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		History: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Announcement history"),
		),

		// Gallery
		Activate: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "More information"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]", "pgdown", "n"),
			key.WithHelp("]/n", "Next page"),
		),
		PreviousPage: key.NewBinding(
			key.WithKeys("[", "pgup", "p"),
			key.WithHelp("[/p", "Previous page"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Retry loading"),
		),

		// Modal
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close details"),
		),
		Close: key.NewBinding(
			key.WithKeys("enter", "x"),
			key.WithHelp("enter/x", "Close details"),
		),

		// Card focus
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("h/left", "Previous card"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("l/right", "Next card"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("k/up", "Card above"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("j/down", "Card below"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "First card"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "Last card"),
		),

		// Display preferences
		Contrast: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "High contrast"),
		),
		TextLarger: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Larger text"),
		),
		TextSmaller: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "Smaller text"),
		),
		Narration: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Toggle narration"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.NextPage, k.PreviousPage, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.First, k.Last},
		{k.Activate, k.NextPage, k.PreviousPage, k.Retry},
		{k.Dismiss, k.Close},
		{k.Contrast, k.TextLarger, k.TextSmaller, k.Narration},
		{k.CycleTheme, k.History, k.Help, k.Quit},
	}
}

// eventFor translates a key press into a gallery event. Escape is not an
// event; it reaches the modal through the dismiss bus.
func (k keyMap) eventFor(msg tea.KeyMsg, modalOpen bool) (gallery.Event, bool) {
	if modalOpen {
		switch {
		case key.Matches(msg, k.Close):
			return gallery.EventModalDismiss, true
		case key.Matches(msg, k.NextPage):
			return gallery.EventPageNext, true
		case key.Matches(msg, k.PreviousPage):
			return gallery.EventPagePrevious, true
		}
		return "", false
	}

	switch {
	case key.Matches(msg, k.Activate):
		return gallery.EventItemActivate, true
	case key.Matches(msg, k.NextPage):
		return gallery.EventPageNext, true
	case key.Matches(msg, k.PreviousPage):
		return gallery.EventPagePrevious, true
	case key.Matches(msg, k.Retry):
		return gallery.EventRetry, true
	}
	return "", false
}
