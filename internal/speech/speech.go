package speech

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// ErrUnavailable is returned by New when no speech command can be found.
var ErrUnavailable = errors.New("no text-to-speech command available")

// candidates are tried in order when no command is configured.
var candidates = []string{"espeak-ng", "espeak", "spd-say", "say"}

// waitFlags keep client commands that hand text to a daemon running until
// the utterance ends, so killing the process stops the speech.
var waitFlags = map[string]string{
	"spd-say": "-w",
}

// Detect returns the first installed speech command, or "" when none is.
func Detect() string {
	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}

// Narrator runs one speech process at a time.
type Narrator struct {
	command string
	args    []string
	logger  *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New returns a Narrator for command, a program name with optional leading
// arguments ("espeak-ng -s 150"). The text is appended as the final argument.
// An empty command is auto-detected.
func New(command string, logger *slog.Logger) (*Narrator, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	fields := strings.Fields(command)
	if len(fields) == 0 {
		detected := Detect()
		if detected == "" {
			return nil, ErrUnavailable
		}
		fields = []string{detected}
	}
	path, err := exec.LookPath(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, fields[0])
	}
	return &Narrator{command: path, args: fields[1:], logger: logger}, nil
}

// Command returns the resolved program path.
func (n *Narrator) Command() string {
	return n.command
}

// Speak cancels any active utterance and starts reading text.
func (n *Narrator) Speak(text string) {
	text = strings.TrimSpace(text)

	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopLocked()
	if text == "" {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	cmd := exec.CommandContext(ctx, n.command, n.argv(text)...)
	if err := cmd.Start(); err != nil {
		cancel()
		n.logger.Warn("speech start failed", slog.String("command", n.command), slog.Any("error", err))
		return
	}

	done := make(chan struct{})
	n.cancel = cancel
	n.done = done
	go func() {
		defer close(done)
		if err := cmd.Wait(); err != nil && ctx.Err() == nil {
			n.logger.Debug("speech exited", slog.Any("error", err))
		}
	}()
}

// Cancel stops the active utterance, if any, and waits for it to exit.
func (n *Narrator) Cancel() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopLocked()
}

// Speaking reports whether an utterance is still running.
func (n *Narrator) Speaking() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.done == nil {
		return false
	}
	select {
	case <-n.done:
		return false
	default:
		return true
	}
}

// argv returns the arguments for one utterance, text last.
func (n *Narrator) argv(text string) []string {
	args := slices.Clone(n.args)
	if flag, ok := waitFlags[filepath.Base(n.command)]; ok && !slices.Contains(args, flag) {
		args = append([]string{flag}, args...)
	}
	return append(args, text)
}

func (n *Narrator) stopLocked() {
	if n.cancel == nil {
		return
	}
	n.cancel()
	<-n.done
	n.cancel = nil
	n.done = nil
}
