package views

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"findt/internal/domain"
)

func testFrame() Frame {
	now := time.Now()
	entries := []domain.FileEntry{
		{Path: "/home/user/project/apple.txt", Name: "apple.txt", Size: 120, ModTime: now},
		{Path: "/home/user/project/banana.md", Name: "banana.md", Size: 64, ModTime: now},
		{Path: "/home/user/project/cherry.go", Name: "cherry.go", Size: 2048, ModTime: now},
	}
	return Frame{
		Width:          80,
		Height:         24,
		Query:          "a",
		Mode:           domain.ModeExact,
		FuzzyAvailable: true,
		ClipboardReady: true,
		Results: []domain.MatchResult{
			{Entry: &entries[0], Origin: domain.OriginFilename},
			{Entry: &entries[1], Origin: domain.OriginContent},
			{Entry: &entries[2], Origin: domain.OriginPath},
		},
		Cursor: 0,
		Start:  0,
		End:    3,
	}
}

func TestRenderFrameIsStable(t *testing.T) {
	r := NewRenderer()
	f := testFrame()

	out := r.Render(f)
	lines := strings.Split(out, "\n")

	// Every line is padded to the frame width and the frame fills the
	// terminal height exactly.
	require.Len(t, lines, f.Height)
	for i, line := range lines {
		require.Equal(t, f.Width, lipgloss.Width(line), "line %d", i)
	}
}

func TestRenderShowsQueryAndResults(t *testing.T) {
	r := NewRenderer()
	out := r.Render(testFrame())

	require.Contains(t, out, "Search: a")
	require.Contains(t, out, "apple.txt")
	require.Contains(t, out, "banana.md")
	require.Contains(t, out, "[content]")
	require.Contains(t, out, "[path]")
	require.Contains(t, out, "🔍 Normal")
	require.Contains(t, out, "📋 Clipboard ready")
	require.Contains(t, out, "3 files")
}

func TestRenderCursorRow(t *testing.T) {
	r := NewRenderer()
	f := testFrame()
	f.Cursor = 1

	lines := strings.Split(r.Render(f), "\n")
	require.Contains(t, lines[4], "→")
	require.Contains(t, lines[4], "banana.md")
}

func TestHighlightMatchKeepsWidth(t *testing.T) {
	style := NewStyles().Highlight
	cell := padCell("Apple.txt", 16)

	got := highlightMatch(cell, "app", style)
	require.Equal(t, lipgloss.Width(cell), lipgloss.Width(got))
	require.Contains(t, got, "App")

	// No occurrence leaves the cell untouched.
	require.Equal(t, cell, highlightMatch(cell, "zzz", style))
}

func TestRenderHighlightedRowsKeepWidth(t *testing.T) {
	r := NewRenderer()
	f := testFrame()
	f.Query = "apple"
	f.Cursor = 2 // apple.txt is a non-cursor row, so it gets the emphasis

	lines := strings.Split(r.Render(f), "\n")
	for i, line := range lines {
		require.Equal(t, f.Width, lipgloss.Width(line), "line %d", i)
	}
}

func TestRenderEmptyResults(t *testing.T) {
	r := NewRenderer()
	f := testFrame()
	f.Results = nil
	f.Cursor = -1
	f.Start, f.End = 0, 0

	out := r.Render(f)
	require.Contains(t, out, "No files found")
}

func TestRenderScrollIndicators(t *testing.T) {
	r := NewRenderer()
	f := testFrame()
	f.Start, f.End = 1, 2
	f.Cursor = 1

	out := r.Render(f)
	require.Contains(t, out, "↑ 1 more above ↑")
	require.Contains(t, out, "↓ 1 more below ↓")
	require.NotContains(t, out, "apple.txt")
	require.NotContains(t, out, "cherry.go")
}

func TestRenderPreviewBlock(t *testing.T) {
	r := NewRenderer()
	f := testFrame()
	f.ShowPreview = true
	f.PreviewPath = "/home/user/project/apple.txt"
	f.PreviewLines = []string{"first line", "second line"}

	out := r.Render(f)
	require.Contains(t, out, "Preview")
	require.Contains(t, out, "first line")
	require.Contains(t, out, "second line")
	require.Contains(t, out, "●")
}

func TestRenderPreviewHiddenWhenToggledOff(t *testing.T) {
	r := NewRenderer()
	f := testFrame()
	f.ShowPreview = false
	f.PreviewPath = "/home/user/project/apple.txt"
	f.PreviewLines = []string{"first line"}

	out := r.Render(f)
	require.NotContains(t, out, "first line")
	// The mark still shows which entry is selected for preview.
	require.Contains(t, out, "●")
}

func TestRenderFuzzyFooter(t *testing.T) {
	r := NewRenderer()
	f := testFrame()
	f.Mode = domain.ModeFuzzy

	out := r.Render(f)
	require.Contains(t, out, "🎯 Fancy")
}

func TestRenderClipboardDisabled(t *testing.T) {
	r := NewRenderer()
	f := testFrame()
	f.ClipboardReady = false

	out := r.Render(f)
	require.Contains(t, out, "⚠️ Clipboard disabled")
}

func TestRenderStatusOverridesFooter(t *testing.T) {
	r := NewRenderer()
	f := testFrame()
	f.Status = "📋 Copied path: /home/user/project/apple.txt"

	out := r.Render(f)
	require.Contains(t, out, "Copied path")
	require.NotContains(t, out, "ctrl+h: help")
}

func TestRenderScanningScreen(t *testing.T) {
	r := NewRenderer()
	f := testFrame()
	f.Scanning = true
	f.Spinner = "⠋"
	f.ScanProgress = domain.ScanProgress{FilesFound: 42, CurrentPath: "/home/user/project/sub"}

	out := r.Render(f)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, f.Height)
	require.Contains(t, out, "Discovering files")
	require.Contains(t, out, "42")
	require.Contains(t, out, "/home/user/project/sub")
}

func TestRenderNarrowTerminalUsesMinWidth(t *testing.T) {
	r := NewRenderer()
	f := testFrame()
	f.Width = 10

	lines := strings.Split(r.Render(f), "\n")
	for i, line := range lines {
		require.Equal(t, MinWidth, lipgloss.Width(line), "line %d", i)
	}
}
