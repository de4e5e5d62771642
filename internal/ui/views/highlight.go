package views

import (
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/quick"
)

// HighlightPreview applies terminal syntax highlighting to preview lines
// based on the file name. On any failure the plain lines come back
// unchanged; highlighting is cosmetic, never load-bearing.
func HighlightPreview(name string, lines []string) []string {
	lexer := lexers.Match(name)
	if lexer == nil {
		return lines
	}

	var b strings.Builder
	src := strings.Join(lines, "\n")
	if err := quick.Highlight(&b, src, lexer.Config().Name, "terminal256", "monokai"); err != nil {
		return lines
	}

	out := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(out) != len(lines) {
		// The formatter re-wrapped something; keep the plain version so
		// the preview block height stays fixed.
		return lines
	}
	return out
}
