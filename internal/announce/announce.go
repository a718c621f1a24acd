package announce

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// TimeLayout prefixes every history line.
const TimeLayout = time.RFC3339

// Message is one announcement.
type Message struct {
	Text string
	At   time.Time
	Seq  int
}

// Announcer keeps the most recent message and appends each one to the
// history file when a path is set. The zero value keeps messages in memory
// only.
type Announcer struct {
	mu     sync.Mutex
	latest Message
	path   string
	logger *slog.Logger
	now    func() time.Time
	warned bool
}

// New returns an Announcer writing history to path. An empty path disables
// the history file.
func New(path string, logger *slog.Logger) *Announcer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Announcer{path: strings.TrimSpace(path), logger: logger, now: time.Now}
}

// Announce replaces the live-region message. Blank messages are ignored.
// History write failures are logged once and otherwise ignored.
func (a *Announcer) Announce(message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	now := time.Now
	if a.now != nil {
		now = a.now
	}
	a.latest = Message{Text: message, At: now(), Seq: a.latest.Seq + 1}
	if a.logger != nil {
		a.logger.Debug("announce", slog.String("message", message))
	}
	if a.path == "" {
		return
	}
	if err := a.appendLocked(a.latest); err != nil && !a.warned {
		a.warned = true
		if a.logger != nil {
			a.logger.Warn("announcement history unavailable",
				slog.String("path", a.path),
				slog.Any("error", err))
		}
	}
}

// Latest returns the current message; Seq is zero before the first one.
func (a *Announcer) Latest() Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.latest
}

// HistoryPath returns the history file path, empty when disabled.
func (a *Announcer) HistoryPath() string {
	return a.path
}

func (a *Announcer) appendLocked(m Message) error {
	if err := os.MkdirAll(filepath.Dir(a.path), 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}
	f, err := os.OpenFile(a.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() { _ = f.Close() }()

	line := m.At.Format(TimeLayout) + " " + strings.ReplaceAll(m.Text, "\n", " ") + "\n"
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}
