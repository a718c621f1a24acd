// Package prefs handles Vitrine display preferences persistence.
// Preferences are stored in ~/.config/vitrine/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user display preferences.
type Prefs struct {
	Theme        string `toml:"theme"`
	HighContrast bool   `toml:"high_contrast"`
	FontSize     int    `toml:"font_size"`
	Narration    bool   `toml:"narration"`
}

// Text size bounds, in points. The terminal UI scales card width from them.
const (
	MinFontSize     = 12
	DefaultFontSize = 16
	MaxFontSize     = 28
	FontSizeStep    = 2
)

const (
	defaultPrefsPath = "~/.config/vitrine/prefs.toml"
	defaultTheme     = "Gallery"
)

// Defaults returns the preferences used when nothing is saved.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme, FontSize: DefaultFontSize}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// IncreaseFontSize returns p with the text size one step larger, capped at
// MaxFontSize.
func (p Prefs) IncreaseFontSize() Prefs {
	p.FontSize = ClampFontSize(p.FontSize + FontSizeStep)
	return p
}

// DecreaseFontSize returns p with the text size one step smaller, floored at
// MinFontSize.
func (p Prefs) DecreaseFontSize() Prefs {
	p.FontSize = ClampFontSize(p.FontSize - FontSizeStep)
	return p
}

// ClampFontSize bounds size to [MinFontSize, MaxFontSize]. Zero means unset
// and maps to DefaultFontSize.
func ClampFontSize(size int) int {
	if size == 0 {
		return DefaultFontSize
	}
	return max(MinFontSize, min(size, MaxFontSize))
}

// Load reads preferences from the given path, falling back to defaults if missing.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults(), nil
	}

	prefs := Defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs, nil // Graceful degradation
	}

	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return Defaults(), nil // Graceful degradation
	}

	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}
	prefs.FontSize = ClampFontSize(prefs.FontSize)

	return prefs, nil
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	p.FontSize = ClampFontSize(p.FontSize)
	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultPrefsPath)
	}
	return ExpandPath(path)
}

// ExpandPath resolves a leading "~" and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
