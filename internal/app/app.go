package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/five82/vitrine/internal/announce"
	"github.com/five82/vitrine/internal/collections"
	"github.com/five82/vitrine/internal/config"
	"github.com/five82/vitrine/internal/gallery"
	"github.com/five82/vitrine/internal/prefs"
	"github.com/five82/vitrine/internal/speech"
	"github.com/five82/vitrine/internal/ui"
)

// Options configure the Vitrine application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/vitrine/prefs.toml
	PageSize   int    // zero uses gallery.page_size from config
}

// session is everything one run needs, wired together.
type session struct {
	cfg        config.Config
	logger     *slog.Logger
	announcer  *announce.Announcer
	dismiss    *gallery.DismissBus
	controller *gallery.Controller
	narrator   gallery.Narrator
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if opts.PageSize > 0 {
		cfg.Gallery.PageSize = opts.PageSize
	}
	return cfg, nil
}

// newSession builds the controller from cfg. Logs go to logOut.
func newSession(cfg config.Config, logOut io.Writer, withNarrator bool) (*session, error) {
	logger := newLogger(cfg.Log.Level, logOut)

	client, err := collections.NewClient(cfg.API.BaseURL, collections.Query{
		Text:     cfg.API.Query,
		PageSize: cfg.API.FetchSize,
		Images:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("init collections client: %w", err)
	}

	s := &session{
		cfg:       cfg,
		logger:    logger,
		announcer: announce.New(cfg.Announce.HistoryFile, logger),
		dismiss:   &gallery.DismissBus{},
	}

	if withNarrator {
		narrator, err := speech.New(cfg.Speech.Command, logger)
		switch {
		case err == nil:
			s.narrator = narrator
			logger.Debug("speech available", slog.String("command", narrator.Command()))
		case errors.Is(err, speech.ErrUnavailable):
			logger.Info("narration disabled", slog.Any("error", err))
		default:
			return nil, fmt.Errorf("init speech: %w", err)
		}
	}

	s.controller = gallery.New(gallery.Options{
		Source:    client,
		PageSize:  cfg.Gallery.PageSize,
		Timeout:   cfg.API.Timeout,
		Announcer: s.announcer,
		Narrator:  s.narrator,
		Dismiss:   s.dismiss,
		Logger:    logger,
	})
	return s, nil
}

// Run boots the Vitrine TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logFile, err := openLogFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()

	s, err := newSession(cfg, logFile, true)
	if err != nil {
		return err
	}
	defer func() {
		if s.narrator != nil {
			s.narrator.Cancel()
		}
	}()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, _ := prefs.Load(prefsPath)

	s.logger.Info("starting",
		slog.String("base_url", s.cfg.API.BaseURL),
		slog.String("query", s.cfg.API.Query),
		slog.Int("page_size", s.cfg.Gallery.PageSize))

	return ui.Run(ui.Options{
		Context:            ctx,
		Controller:         s.controller,
		Dismiss:            s.dismiss,
		Announcer:          s.announcer,
		Prefs:              userPrefs,
		PrefsPath:          prefsPath,
		Query:              s.cfg.API.Query,
		NarrationAvailable: s.narrator != nil,
		Logger:             s.logger,
	})
}
