package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/vitrine/internal/collections"
)

func TestCardLabel(t *testing.T) {
	rec := collections.Record{Title: "Hat", Maker: "Lock & Co", Date: "1890"}
	want := "Hat by Lock & Co, 1890. Press enter for more information."
	if got := cardLabel(rec); got != want {
		t.Fatalf("cardLabel() = %q, want %q", got, want)
	}
}

func TestCardWidthScalesWithFontSize(t *testing.T) {
	cases := []struct {
		font int
		want int
	}{
		{0, 32},
		{12, 24},
		{16, 32},
		{28, 56},
		{40, 56},
	}
	for _, tc := range cases {
		if got := cardWidth(tc.font); got != tc.want {
			t.Errorf("cardWidth(%d) = %d, want %d", tc.font, got, tc.want)
		}
	}
}

func TestGridColumns(t *testing.T) {
	cases := []struct {
		width int
		font  int
		want  int
	}{
		{10, 16, 1},
		{32, 16, 1},
		{65, 16, 2},
		{120, 16, 3},
		{120, 12, 4},
		{120, 28, 2},
	}
	for _, tc := range cases {
		if got := gridColumns(tc.width, tc.font); got != tc.want {
			t.Errorf("gridColumns(%d, %d) = %d, want %d", tc.width, tc.font, got, tc.want)
		}
	}
}

func TestFirstVisibleRow(t *testing.T) {
	cases := []struct {
		name                          string
		selected, cols, total, rowFit int
		want                          int
	}{
		{"empty", 0, 3, 0, 2, 0},
		{"top", 0, 3, 12, 2, 0},
		{"second row visible", 4, 3, 12, 2, 0},
		{"third row scrolls", 7, 3, 12, 2, 1},
		{"last row", 11, 3, 12, 2, 2},
		{"all fit", 11, 3, 12, 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := firstVisibleRow(tc.selected, tc.cols, tc.total, tc.rowFit)
			if got != tc.want {
				t.Fatalf("firstVisibleRow() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestRenderCard(t *testing.T) {
	styles := GetTheme("Gallery").Styles()
	url := "https://example.org/img.jpg"
	rec := collections.Record{Title: "Evening dress", Maker: "Worth", Date: "1890", ImageURL: &url}

	out := renderCard(rec, 32, false, styles)
	if w := lipgloss.Width(out); w != 32 {
		t.Fatalf("card width = %d, want 32", w)
	}
	if h := lipgloss.Height(out); h != cardHeight {
		t.Fatalf("card height = %d, want %d", h, cardHeight)
	}
	for _, want := range []string{"Evening dress", "Worth", "1890", "image"} {
		if !strings.Contains(out, want) {
			t.Errorf("card missing %q:\n%s", want, out)
		}
	}

	noImage := renderCard(collections.Record{Title: "Fan"}, 32, true, styles)
	if !strings.Contains(noImage, "no image") {
		t.Errorf("card without image should say so:\n%s", noImage)
	}
}
