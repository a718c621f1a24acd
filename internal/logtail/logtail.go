package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Entry is one parsed history line.
type Entry struct {
	At   time.Time
	Text string
}

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open history: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read history: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// ParseLine splits a history line into its timestamp and text. Lines without
// a leading timestamp are returned whole with a zero time.
func ParseLine(line, layout string) Entry {
	stamp, rest, ok := strings.Cut(line, " ")
	if !ok {
		return Entry{Text: line}
	}
	at, err := time.Parse(layout, stamp)
	if err != nil {
		return Entry{Text: line}
	}
	return Entry{At: at, Text: rest}
}

// ReadEntries reads the last maxLines history lines, newest first.
func ReadEntries(path, layout string, maxLines int) ([]Entry, error) {
	lines, err := Read(path, maxLines)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(lines))
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		out = append(out, ParseLine(lines[i], layout))
	}
	return out, nil
}
