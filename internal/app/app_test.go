package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/vitrine/internal/config"
)

func TestNewLoggerFiltersByLevel(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
	}{
		{level: "debug", debugSeen: true, infoSeen: true},
		{level: "INFO", infoSeen: true},
		{level: "warn"},
		{level: "bogus", infoSeen: true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(tt.level, &buf)
			logger.Debug("debug line")
			logger.Info("info line")

			out := buf.String()
			if got := strings.Contains(out, "debug line"); got != tt.debugSeen {
				t.Fatalf("debug logged = %v, want %v (%s)", got, tt.debugSeen, out)
			}
			if got := strings.Contains(out, "info line"); got != tt.infoSeen {
				t.Fatalf("info logged = %v, want %v (%s)", got, tt.infoSeen, out)
			}
			if tt.infoSeen && !strings.Contains(out, `"app":"vitrine"`) {
				t.Fatalf("log line missing app attribute: %s", out)
			}
		})
	}
}

func TestOpenLogFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "vitrine", "vitrine.log")

	w, err := openLogFile(path)
	if err != nil {
		t.Fatalf("openLogFile returned error: %v", err)
	}
	if _, err := w.Write([]byte("hello\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if string(data) != "hello\n" {
		t.Fatalf("log contents = %q", data)
	}
}

func TestOpenLogFileEmptyPathDiscards(t *testing.T) {
	w, err := openLogFile("  ")
	if err != nil {
		t.Fatalf("openLogFile returned error: %v", err)
	}
	if _, err := w.Write([]byte("dropped")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

// collectionServer serves n records, or a 503 when n is negative.
func collectionServer(t *testing.T, n int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if n < 0 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		records := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			records = append(records, fmt.Sprintf(
				`{"systemNumber": "O%d", "_primaryTitle": "Gown %d", "_primaryMaker": {"name": "Worth"}, "_primaryDate": "18%02d", "_primaryDescription": "Silk gown number %d."}`,
				i, i, i, i))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"info": {"record_count": %d}, "records": [%s]}`, n, strings.Join(records, ","))
	}))
	t.Cleanup(server.Close)
	return server
}

func writeConfig(t *testing.T, baseURL string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := fmt.Sprintf(`[api]
base_url = %q
timeout = "2s"

[gallery]
page_size = 12

[announce]
history_file = %q
`, baseURL, filepath.Join(dir, "announcements.log"))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestListPrintsRequestedPage(t *testing.T) {
	server := collectionServer(t, 30)
	opts := Options{ConfigPath: writeConfig(t, server.URL)}

	var out, logs bytes.Buffer
	if err := List(context.Background(), opts, 2, &out, &logs); err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	got := out.String()
	for _, want := range []string{"Gown 13", "Gown 24", "Page 2 of 3, 12 artefacts", "TITLE"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Gown 12 ") || strings.Contains(got, "Gown 25") {
		t.Fatalf("output leaks records from other pages:\n%s", got)
	}
}

func TestListClampsPastLastPage(t *testing.T) {
	server := collectionServer(t, 5)
	opts := Options{ConfigPath: writeConfig(t, server.URL)}

	var out, logs bytes.Buffer
	if err := List(context.Background(), opts, 9, &out, &logs); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Page 1 of 1, 5 artefacts") {
		t.Fatalf("output = %s", out.String())
	}
}

func TestListPageSizeOverride(t *testing.T) {
	server := collectionServer(t, 30)
	opts := Options{ConfigPath: writeConfig(t, server.URL), PageSize: 10}

	var out, logs bytes.Buffer
	if err := List(context.Background(), opts, 1, &out, &logs); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Page 1 of 3, 10 artefacts") {
		t.Fatalf("output = %s", out.String())
	}
}

func TestListFallsBackToPlaceholders(t *testing.T) {
	server := collectionServer(t, -1)
	opts := Options{ConfigPath: writeConfig(t, server.URL)}

	var out, logs bytes.Buffer
	if err := List(context.Background(), opts, 1, &out, &logs); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Collection unavailable") || !strings.Contains(got, "Theatre Artifact 1") {
		t.Fatalf("output = %s", got)
	}
	if !strings.Contains(got, "Page 1 of 3, 12 artefacts") {
		t.Fatalf("output = %s", got)
	}
}

func TestListEmptyCollection(t *testing.T) {
	server := collectionServer(t, 0)
	opts := Options{ConfigPath: writeConfig(t, server.URL)}

	var out, logs bytes.Buffer
	if err := List(context.Background(), opts, 1, &out, &logs); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if strings.TrimSpace(out.String()) != "No artefacts found." {
		t.Fatalf("output = %q", out.String())
	}
}

func TestShowPrintsRecord(t *testing.T) {
	server := collectionServer(t, 3)
	opts := Options{ConfigPath: writeConfig(t, server.URL)}

	var out, logs bytes.Buffer
	if err := Show(context.Background(), opts, "O2", &out, &logs); err != nil {
		t.Fatalf("Show returned error: %v", err)
	}
	got := out.String()
	for _, want := range []string{"Gown 2", "Worth", "1802", "No image available", "Silk gown number 2."} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestShowUnknownID(t *testing.T) {
	server := collectionServer(t, 3)
	opts := Options{ConfigPath: writeConfig(t, server.URL)}

	var out, logs bytes.Buffer
	err := Show(context.Background(), opts, "O99", &out, &logs)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Show error = %v, want ErrNotFound", err)
	}
}

func TestInvalidConfigIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[gallery]\npage_size = -4\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var out, logs bytes.Buffer
	if err := List(context.Background(), Options{ConfigPath: path}, 1, &out, &logs); err == nil {
		t.Fatal("List accepted an invalid config")
	}
}

func TestLoadConfigAppliesPageSizeOverride(t *testing.T) {
	path := writeConfig(t, "http://collections.example")

	cfg, err := loadConfig(Options{ConfigPath: path, PageSize: 7})
	if err != nil {
		t.Fatalf("loadConfig returned error: %v", err)
	}
	if cfg.Gallery.PageSize != 7 {
		t.Fatalf("page size = %d, want 7", cfg.Gallery.PageSize)
	}
	if cfg.API.BaseURL != "http://collections.example" {
		t.Fatalf("base url = %q", cfg.API.BaseURL)
	}
}

func TestNewSessionUsesGivenConfig(t *testing.T) {
	server := collectionServer(t, 20)
	cfg := config.Default()
	cfg.API.BaseURL = server.URL
	cfg.Gallery.PageSize = 5
	cfg.Announce.HistoryFile = ""

	var logs bytes.Buffer
	s, err := newSession(cfg, &logs, false)
	if err != nil {
		t.Fatalf("newSession returned error: %v", err)
	}
	if s.cfg != cfg {
		t.Fatalf("session config = %+v, want %+v", s.cfg, cfg)
	}
	if s.narrator != nil {
		t.Fatal("narrator built without withNarrator")
	}

	res := s.controller.Loader.Load(context.Background())
	if res.Fallback {
		t.Fatalf("load fell back: %v", res.Err)
	}
	if got := s.controller.Store.PageCount(); got != 4 {
		t.Fatalf("page count = %d, want 4", got)
	}
}
