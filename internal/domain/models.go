package domain

import "time"

// FileEntry represents a single file found by the scanner.
// Entries are immutable once the scan completes.
type FileEntry struct {
	Path    string // absolute path
	Name    string // base name
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// MatchOrigin identifies which attribute of a file produced a match.
type MatchOrigin int

const (
	OriginAll MatchOrigin = iota // empty query, everything matches
	OriginContent
	OriginPath
	OriginFilename
)

// String returns the origin label shown in the UI.
func (o MatchOrigin) String() string {
	switch o {
	case OriginFilename:
		return "filename"
	case OriginPath:
		return "path"
	case OriginContent:
		return "content"
	default:
		return "all"
	}
}

// Priority orders origins for ranking: filename beats path beats content.
func (o MatchOrigin) Priority() int {
	return int(o)
}

// MatchResult is one entry that matched the current query.
// Score is only meaningful in fuzzy mode (0-100 scale).
type MatchResult struct {
	Entry  *FileEntry
	Origin MatchOrigin
	Score  float64
}

// SearchMode selects the matching strategy.
type SearchMode int

const (
	ModeExact SearchMode = iota
	ModeFuzzy
)

func (m SearchMode) String() string {
	if m == ModeFuzzy {
		return "fancy"
	}
	return "normal"
}

// ScanProgress reports the current scanning state.
type ScanProgress struct {
	FilesFound  int
	CurrentPath string
}
