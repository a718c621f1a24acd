package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/vitrine/internal/collections"
	"github.com/five82/vitrine/internal/gallery"
)

// ErrNotFound is returned by Show when no loaded record has the ID.
var ErrNotFound = errors.New("artefact not found")

// List fetches the collection and prints one page as a table. page is
// 1-based and is clamped to the available pages. Logs go to logOut.
func List(ctx context.Context, opts Options, page int, out, logOut io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	s, err := newSession(cfg, logOut, false)
	if err != nil {
		return err
	}

	res := s.controller.Loader.Load(ctx)
	for i := 1; i < page; i++ {
		if !s.controller.Pager.Next() {
			break
		}
	}

	snap := s.controller.Store.Snapshot()
	if res.Fallback {
		_, _ = fmt.Fprintf(out, "Collection unavailable (%v). Showing placeholder artefacts.\n\n", res.Err)
	}
	if len(snap.Records) == 0 {
		_, _ = fmt.Fprintln(out, gallery.LoadAnnouncement(res))
		return nil
	}

	_, err = fmt.Fprintf(out, "%s\n%s\n", renderTable(snap), gallery.PageAnnouncement(gallery.PageEvent{
		Page:      snap.PageIndex + 1,
		PageCount: snap.PageCount,
		Items:     len(snap.Page),
	}))
	return err
}

// Show fetches the collection and prints the record with the given ID.
func Show(ctx context.Context, opts Options, id string, out, logOut io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	s, err := newSession(cfg, logOut, false)
	if err != nil {
		return err
	}

	s.controller.Loader.Load(ctx)
	rec, ok := s.controller.Store.Find(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	_, err = io.WriteString(out, renderRecord(rec))
	return err
}

func renderTable(snap gallery.Snapshot) string {
	first := snap.PageIndex * snap.PageSize
	rows := make([][]string, 0, len(snap.Page))
	for i, rec := range snap.Page {
		image := "no"
		if rec.HasImage() {
			image = "yes"
		}
		rows = append(rows, []string{
			strconv.Itoa(first + i + 1),
			rec.ID,
			rec.Title,
			rec.Maker,
			rec.Date,
			image,
		})
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "ID", "TITLE", "MAKER", "DATE", "IMAGE").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		String()
}

func renderRecord(rec collections.Record) string {
	var b []byte
	line := func(label, value string) {
		if value == "" {
			return
		}
		b = fmt.Appendf(b, "%-12s %s\n", label+":", value)
	}
	line("ID", rec.ID)
	line("Title", rec.Title)
	line("Maker", rec.Maker)
	line("Date", rec.Date)
	if rec.HasImage() {
		line("Image", rec.Image())
	} else {
		line("Image", "No image available")
	}
	if rec.Description != "" {
		b = fmt.Appendf(b, "\n%s\n", rec.Description)
	}
	return string(b)
}
