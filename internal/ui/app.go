package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/vitrine/internal/announce"
	"github.com/five82/vitrine/internal/gallery"
	"github.com/five82/vitrine/internal/logtail"
	"github.com/five82/vitrine/internal/prefs"
)

// historyLimit caps the lines read for the history overlay.
const historyLimit = 200

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller *gallery.Controller
	Dismiss    *gallery.DismissBus
	Announcer  *announce.Announcer
	Prefs      prefs.Prefs
	PrefsPath  string
	Query      string
	// NarrationAvailable is false when no speech command was found.
	NarrationAvailable bool
	// SkipInitialLoad leaves loading to the caller.
	SkipInitialLoad bool
	Logger          *slog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx                context.Context
	ctrl               *gallery.Controller
	dismiss            *gallery.DismissBus
	announcer          *announce.Announcer
	logger             *slog.Logger
	keys               keyMap
	prefsPath          string
	query              string
	narrationAvailable bool
	initialLoad        bool

	// UI state
	prefs  prefs.Prefs
	theme  Theme
	width  int
	height int
	ready  bool

	// Gallery state
	snapshot gallery.Snapshot
	loading  bool
	sel      *selection

	// Modal detail
	modalViewport viewport.Model
	modalID       string

	// Overlays
	showHelp        bool
	showHistory     bool
	history         []logtail.Entry
	historyErr      error
	historyViewport viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	ctrl := opts.Controller
	if ctrl == nil {
		ctrl = gallery.New(gallery.Options{Dismiss: opts.Dismiss})
	}

	announcer := opts.Announcer
	if announcer == nil {
		announcer = announce.New("", opts.Logger)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	p := opts.Prefs
	if p.Theme == "" {
		p.Theme = prefs.Defaults().Theme
	}
	p.FontSize = prefs.ClampFontSize(p.FontSize)
	if !opts.NarrationAvailable {
		p.Narration = false
	}
	ctrl.Modal.SetNarration(p.Narration)

	m := Model{
		ctx:                ctx,
		ctrl:               ctrl,
		dismiss:            opts.Dismiss,
		announcer:          announcer,
		logger:             logger,
		keys:               DefaultKeyMap(),
		prefsPath:          opts.PrefsPath,
		query:              opts.Query,
		narrationAvailable: opts.NarrationAvailable,
		initialLoad:        !opts.SkipInitialLoad,
		prefs:              p,
		sel:                &selection{},
		loading:            !opts.SkipInitialLoad,
		modalViewport:      viewport.New(0, 0),
		historyViewport:    viewport.New(0, 0),
	}
	m.applyTheme()
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if !m.initialLoad {
		return nil
	}
	return loadCmd(m.ctx, m.ctrl)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeModal()
		m.resizeHistory()
		return m, nil

	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Warn("reload failed", slog.Any("error", msg.err))
		}
		m.refresh()
		return m, nil

	case historyMsg:
		m.history = msg.entries
		m.historyErr = msg.err
		m.syncHistory()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showHistory {
		return m.renderHistory()
	}
	if m.ctrl.Modal.IsOpen() {
		return m.renderModal()
	}
	return m.renderMain()
}

// handleKey processes keyboard input. Overlays take keys first, then the
// open modal, then the gallery.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.showHistory {
		return m.handleHistoryKey(msg)
	}

	modalOpen := m.ctrl.Modal.IsOpen()

	if modalOpen && key.Matches(msg, m.keys.Dismiss) {
		if m.dismiss != nil {
			m.dismiss.Dismiss()
		} else {
			_ = m.ctrl.Dispatch(m.ctx, gallery.EventModalDismiss, gallery.Payload{})
		}
		m.refresh()
		return m, nil
	}

	if ev, ok := m.keys.eventFor(msg, modalOpen); ok {
		return m.dispatch(ev)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.prefs.Theme = NextTheme(m.prefs.Theme)
		m.applyTheme()
		m.savePrefs()
		m.ctrl.Announce("Theme " + m.prefs.Theme)
		return m, nil
	case key.Matches(msg, m.keys.Contrast):
		m.prefs.HighContrast = !m.prefs.HighContrast
		m.applyTheme()
		m.savePrefs()
		m.ctrl.Announce("High contrast " + onOff(m.prefs.HighContrast))
		return m, nil
	case key.Matches(msg, m.keys.TextLarger):
		m.setFontSize(m.prefs.IncreaseFontSize())
		return m, nil
	case key.Matches(msg, m.keys.TextSmaller):
		m.setFontSize(m.prefs.DecreaseFontSize())
		return m, nil
	case key.Matches(msg, m.keys.Narration):
		m.toggleNarration()
		return m, nil
	}

	if modalOpen {
		var cmd tea.Cmd
		m.modalViewport, cmd = m.modalViewport.Update(msg)
		return m, cmd
	}

	cols := gridColumns(m.width, m.prefs.FontSize)
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.History):
		m.showHistory = true
		m.resizeHistory()
		return m, loadHistoryCmd(m.announcer.HistoryPath())
	case key.Matches(msg, m.keys.Left):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-cols)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(cols)
	case key.Matches(msg, m.keys.First):
		m.focusSlot(0)
	case key.Matches(msg, m.keys.Last):
		m.focusSlot(len(m.snapshot.Page) - 1)
	}
	return m, nil
}

// dispatch routes a gallery event through the controller. Retry runs off the
// update loop; everything else is synchronous.
func (m Model) dispatch(ev gallery.Event) (tea.Model, tea.Cmd) {
	if ev == gallery.EventRetry {
		m.loading = true
		m.ctrl.Announce("Loading artefacts")
		return m, retryCmd(m.ctx, m.ctrl)
	}

	var payload gallery.Payload
	if ev == gallery.EventItemActivate {
		if len(m.snapshot.Page) == 0 {
			return m, nil
		}
		rec := m.snapshot.Page[m.sel.index]
		// The ID pins the card on screen; a reload that landed since the
		// last refresh must not open a different record.
		payload = gallery.Payload{
			Slot:   m.sel.index,
			ID:     rec.ID,
			Source: tileHandle{sel: m.sel, store: m.ctrl.Store, id: rec.ID},
		}
	}

	before := m.snapshot.PageIndex
	if err := m.ctrl.Dispatch(m.ctx, ev, payload); err != nil {
		m.logger.Debug("dispatch failed", slog.String("event", string(ev)), slog.Any("error", err))
	}
	m.refresh()
	if m.snapshot.PageIndex != before {
		m.sel.index = 0
	}
	if ev == gallery.EventItemActivate {
		m.syncModal()
	}
	return m, nil
}

// refresh re-reads the store and keeps the selection on the page.
func (m *Model) refresh() {
	m.snapshot = m.ctrl.Store.Snapshot()
	m.sel.clamp(len(m.snapshot.Page))
}

func (m *Model) applyTheme() {
	m.theme = GetTheme(m.prefs.Theme).WithContrast(m.prefs.HighContrast)
}

func (m *Model) setFontSize(p prefs.Prefs) {
	if p.FontSize == m.prefs.FontSize {
		m.ctrl.Announce(fmt.Sprintf("Text size %d is the limit", p.FontSize))
		return
	}
	m.prefs = p
	m.savePrefs()
	m.resizeModal()
	m.ctrl.Announce(fmt.Sprintf("Text size %d", p.FontSize))
}

func (m *Model) toggleNarration() {
	if !m.narrationAvailable {
		m.ctrl.Announce("Narration unavailable: no speech command found")
		return
	}
	m.prefs.Narration = !m.prefs.Narration
	m.ctrl.Modal.SetNarration(m.prefs.Narration)
	m.savePrefs()
	m.ctrl.Announce("Narration " + onOff(m.prefs.Narration))
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save prefs failed", slog.String("path", m.prefsPath), slog.Any("error", err))
	}
}

// renderMain renders the gallery screen.
func (m Model) renderMain() string {
	header := m.renderHeader()
	banner := m.renderBanner()
	pager := m.renderPagination()
	live := m.renderLiveRegion()
	footer := m.renderFooter()

	chrome := []string{header, banner, pager, live, footer}
	used := 0
	for _, part := range chrome {
		if part != "" {
			used += strings.Count(part, "\n") + 1
		}
	}
	grid := m.renderGrid(max(cardHeight, m.height-used))

	parts := []string{header}
	if banner != "" {
		parts = append(parts, banner)
	}
	parts = append(parts, grid, pager, live, footer)
	return strings.Join(parts, "\n")
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// Messages

type loadedMsg struct {
	err error
}

type historyMsg struct {
	entries []logtail.Entry
	err     error
}

// Commands

func loadCmd(ctx context.Context, ctrl *gallery.Controller) tea.Cmd {
	return func() tea.Msg {
		ctrl.Loader.Load(ctx)
		return loadedMsg{}
	}
}

func retryCmd(ctx context.Context, ctrl *gallery.Controller) tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{err: ctrl.Dispatch(ctx, gallery.EventRetry, gallery.Payload{})}
	}
}

func loadHistoryCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return historyMsg{}
		}
		entries, err := logtail.ReadEntries(path, announce.TimeLayout, historyLimit)
		return historyMsg{entries: entries, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		// Interrupted by signal.
		return nil
	}
	return err
}
