package views

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"findt/internal/domain"
)

// Frame contains everything the renderer needs for one redraw. The
// renderer is a pure function of this state: no filesystem, no clipboard,
// no mutation.
type Frame struct {
	Width  int
	Height int

	Query          string
	Mode           domain.SearchMode
	FuzzyAvailable bool
	ClipboardReady bool

	Scanning     bool
	Spinner      string
	ScanProgress domain.ScanProgress

	Results []domain.MatchResult
	Cursor  int
	Start   int // first visible result index
	End     int // one past the last visible result index

	PreviewPath  string // path of the entry marked for preview, "" if none
	ShowPreview  bool
	PreviewLines []string

	Status      string
	StatusIsErr bool
}

const nameColWidth = 32

// Renderer turns a Frame into a terminal frame string.
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view. Every line is padded or truncated
// to the frame width so redraws are visually stable.
func (r *Renderer) Render(f Frame) string {
	width := f.Width
	if width < MinWidth {
		width = MinWidth
	}

	if f.Scanning {
		return r.renderScanning(f, width)
	}

	lines := make([]string, 0, f.Height)

	// Header
	title := r.styles.Title.Render("findt")
	if f.Mode == domain.ModeFuzzy {
		title += "  " + r.styles.Dim.Render("fuzzy")
	}
	lines = append(lines, title)
	lines = append(lines, r.styles.Query.Render("🔍 Search: ")+f.Query+r.styles.Cursor.Render("▌"))
	lines = append(lines, r.styles.Dim.Render(strings.Repeat("─", width)))

	// Result rows
	if len(f.Results) == 0 {
		lines = append(lines, r.styles.EmptyNotice.Render("No files found. Try a different search term."))
	} else {
		if f.Start > 0 {
			lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", f.Start)))
		}
		for i := f.Start; i < f.End && i < len(f.Results); i++ {
			lines = append(lines, r.renderRow(f, i))
			if f.ShowPreview && f.PreviewPath != "" && f.Results[i].Entry.Path == f.PreviewPath {
				lines = append(lines, r.renderPreviewBlock(f, width)...)
			}
		}
		if f.End < len(f.Results) {
			lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", len(f.Results)-f.End)))
		}
	}

	// Pad the body so the footer sits at the bottom.
	for len(lines) < f.Height-FooterRows {
		lines = append(lines, "")
	}
	if len(lines) > f.Height-FooterRows {
		lines = lines[:f.Height-FooterRows]
	}

	lines = append(lines, r.styles.Dim.Render(strings.Repeat("─", width)))
	lines = append(lines, r.renderFooter(f))

	for i := range lines {
		lines[i] = padLine(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

// renderRow renders one visible result line.
func (r *Renderer) renderRow(f Frame, i int) string {
	res := f.Results[i]
	entry := res.Entry

	cursor := "  "
	if i == f.Cursor {
		cursor = r.styles.Cursor.Render("→ ")
	}

	mark := " "
	if f.PreviewPath != "" && entry.Path == f.PreviewPath {
		mark = r.styles.PreviewMark.Render("●")
	}

	name := padCell(entry.Name, nameColWidth)
	if i == f.Cursor {
		name = r.styles.CursorRow.Render(name)
	} else if f.Query != "" {
		name = highlightMatch(name, f.Query, r.styles.Highlight)
	}

	dir := filepath.Base(filepath.Dir(entry.Path))
	info := fmt.Sprintf("%s • %s • %s", dir, humanize.Bytes(uint64(entry.Size)), humanize.Time(entry.ModTime))

	badge := ""
	switch res.Origin {
	case domain.OriginPath:
		badge = r.styles.OriginBadge.Render(" [path]")
	case domain.OriginContent:
		badge = r.styles.OriginBadge.Render(" [content]")
	}

	return fmt.Sprintf("%s%s %s %s %s%s", cursor, mark, Icon(entry), name, r.styles.Dim.Render(info), badge)
}

// highlightMatch emphasizes the first case-insensitive occurrence of
// query in a padded name cell. Styling adds zero display cells, so the
// column width is unchanged.
func highlightMatch(name, query string, style lipgloss.Style) string {
	ln := strings.ToLower(name)
	lq := strings.ToLower(query)
	// Lowercasing can shift byte offsets for some scripts; skip rather
	// than emphasize the wrong slice.
	if len(ln) != len(name) {
		return name
	}
	i := strings.Index(ln, lq)
	if i < 0 {
		return name
	}
	j := i + len(lq)
	return name[:i] + style.Render(name[i:j]) + name[j:]
}

// renderPreviewBlock renders the fixed-height inline preview box under
// the previewed row.
func (r *Renderer) renderPreviewBlock(f Frame, width int) []string {
	inner := width - 10
	if inner < 10 {
		inner = 10
	}

	box := r.styles.PreviewBox
	lines := make([]string, 0, PreviewRows)
	lines = append(lines, box.Render("     ┌─ Preview "+strings.Repeat("─", inner-11)+"┐"))

	content := f.PreviewLines
	for i := 0; i < PreviewContentLines; i++ {
		text := ""
		if i < len(content) {
			text = content[i]
		}
		lines = append(lines, box.Render("     │ ")+padLine(text, inner-2)+box.Render(" │"))
	}
	lines = append(lines, box.Render("     └"+strings.Repeat("─", inner)+"┘"))
	return lines
}

// renderFooter renders the mode/clipboard/count indicator line, replaced
// by the transient status message when one is active.
func (r *Renderer) renderFooter(f Frame) string {
	if f.Status != "" {
		if f.StatusIsErr {
			return r.styles.StatusError.Render(f.Status)
		}
		return r.styles.Status.Render(f.Status)
	}

	mode := "🔍 Normal"
	if f.Mode == domain.ModeFuzzy {
		mode = "🎯 Fancy"
	}
	clip := "📋 Clipboard ready"
	if !f.ClipboardReady {
		clip = "⚠️ Clipboard disabled"
	}
	fuzzyNote := ""
	if !f.FuzzyAvailable {
		fuzzyNote = " • fuzzy unavailable"
	}
	return r.styles.Footer.Render(fmt.Sprintf("%s • %s • %d files%s • ctrl+h: help", mode, clip, len(f.Results), fuzzyNote))
}

// renderScanning draws the startup progress screen while the tree walk
// is still running.
func (r *Renderer) renderScanning(f Frame, width int) string {
	lines := make([]string, 0, f.Height)
	lines = append(lines, r.styles.Title.Render("findt"))
	lines = append(lines, "")
	lines = append(lines, r.styles.ScanProgress.Render(fmt.Sprintf("%s Discovering files…", f.Spinner)))
	lines = append(lines, r.styles.Dim.Render(fmt.Sprintf("Found %d files so far", f.ScanProgress.FilesFound)))
	if f.ScanProgress.CurrentPath != "" {
		lines = append(lines, r.styles.Dim.Render("Scanning: "+f.ScanProgress.CurrentPath))
	}

	for len(lines) < f.Height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padLine(lines[i], width)
	}
	return strings.Join(lines, "\n")
}
