package ui

import "strings"

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// truncateMiddle keeps both ends of a long value, which suits URLs and
// paths.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	keep := limit - 1
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + "…" + string(runes[len(runes)-suffix:])
}

// wrapWords breaks text into lines no wider than width runes. Words longer
// than width are cut. maxLines > 0 caps the result, marking the last line
// with an ellipsis when text was dropped.
func wrapWords(text string, width, maxLines int) []string {
	words := strings.Fields(text)
	if width <= 0 || len(words) == 0 {
		return nil
	}

	var lines []string
	var line []rune
	flush := func() {
		lines = append(lines, string(line))
		line = line[:0]
	}
	for _, w := range words {
		word := []rune(w)
		for len(word) > width {
			if len(line) > 0 {
				flush()
			}
			line = append(line, word[:width]...)
			flush()
			word = word[width:]
		}
		switch {
		case len(line) == 0:
			line = append(line, word...)
		case len(line)+1+len(word) <= width:
			line = append(line, ' ')
			line = append(line, word...)
		default:
			flush()
			line = append(line, word...)
		}
	}
	if len(line) > 0 {
		flush()
	}

	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = truncate(lines[maxLines-1]+"...", width)
	}
	return lines
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(r))
}
