package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestListRows(t *testing.T) {
	require.Equal(t, 19, ListRows(24, false))
	require.Equal(t, 13, ListRows(24, true))

	// Tiny terminals never go below one row.
	require.Equal(t, 1, ListRows(5, false))
	require.Equal(t, 1, ListRows(8, true))
}

func TestPadLinePlain(t *testing.T) {
	require.Equal(t, "abc       ", padLine("abc", 10))
	require.Equal(t, 10, lipgloss.Width(padLine("abc", 10)))
	require.Equal(t, "abc", padLine("abc", 3))
}

func TestPadLineTruncates(t *testing.T) {
	got := padLine(strings.Repeat("x", 20), 10)
	require.Equal(t, 10, lipgloss.Width(got))
}

func TestPadLineStyledText(t *testing.T) {
	styled := "\x1b[38;5;99mhello\x1b[0m world"
	padded := padLine(styled, 20)
	require.Equal(t, 20, lipgloss.Width(padded))

	cut := padLine(styled, 3)
	require.Equal(t, 3, lipgloss.Width(cut))
	// Styling is reset so the cut cannot bleed into the next line.
	require.True(t, strings.HasSuffix(cut, "\x1b[0m"))
}

func TestPadLineWideRunes(t *testing.T) {
	// CJK runes occupy two cells; truncation must not split one.
	got := padLine("日本語テキスト", 5)
	require.LessOrEqual(t, lipgloss.Width(got), 5)
	require.Equal(t, 5, lipgloss.Width(got))
}

func TestPadCell(t *testing.T) {
	require.Equal(t, "ab   ", padCell("ab", 5))
	require.Equal(t, 5, len([]rune(padCell("ab", 5))))

	got := padCell("longfilename.txt", 8)
	require.LessOrEqual(t, lipgloss.Width(got), 8)
	require.True(t, strings.HasSuffix(got, "…"))
}
