package views

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Fixed chrome row counts. The result viewport gets whatever is left of
// the terminal after these.
const (
	// HeaderRows: title line, query line, separator.
	HeaderRows = 3
	// FooterRows: separator, status/indicator line.
	FooterRows = 2
	// PreviewContentLines is how many file lines the inline preview shows.
	PreviewContentLines = 4
	// PreviewRows is the full preview block: top border, content, bottom border.
	PreviewRows = PreviewContentLines + 2
	// MinWidth keeps the layout from collapsing on tiny terminals.
	MinWidth = 40
)

// ListRows returns how many result rows fit in a terminal of the given
// height, reserving space for the preview block when one is showing.
func ListRows(height int, previewShowing bool) int {
	rows := height - HeaderRows - FooterRows
	if previewShowing {
		rows -= PreviewRows
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// padLine pads or truncates a (possibly ANSI-styled) line to exactly
// width display cells, so every frame line has the same width.
func padLine(line string, width int) string {
	w := lipgloss.Width(line)
	if w == width {
		return line
	}
	if w < width {
		return line + strings.Repeat(" ", width-w)
	}
	return truncateANSI(line, width)
}

// truncateANSI cuts a styled line to the given display width, passing
// escape sequences through uncounted and resetting styling at the end.
func truncateANSI(s string, width int) string {
	var b strings.Builder
	cells := 0
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			j := i + 1
			if j < len(s) && s[j] == '[' {
				j++
				for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
					j++
				}
				if j < len(s) {
					j++
				}
			}
			b.WriteString(s[i:j])
			i = j
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		rw := runewidth.RuneWidth(r)
		if cells+rw > width {
			break
		}
		b.WriteString(s[i : i+size])
		cells += rw
		i += size
	}
	if cells < width {
		b.WriteString(strings.Repeat(" ", width-cells))
	}
	b.WriteString("\x1b[0m")
	return b.String()
}

// padCell pads or truncates a plain (unstyled) string to width cells.
// Styling is applied after padding so widths stay predictable.
func padCell(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w > width {
		return runewidth.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", width-w)
}
