package views

import (
	"path/filepath"
	"strings"

	"findt/internal/domain"
)

// extIcons maps file extensions to the icon shown next to each result.
var extIcons = map[string]string{
	".py":   "🐍",
	".js":   "💛",
	".ts":   "💛",
	".json": "⚙️",
	".yaml": "⚙️",
	".yml":  "⚙️",
	".toml": "⚙️",
	".md":   "📝",
	".rst":  "📝",
	".txt":  "📄",
	".log":  "📄",
	".html": "🌐",
	".css":  "🌐",
	".sh":   "🔧",
	".bash": "🔧",
	".zsh":  "🔧",
}

// Icon returns the icon for a file entry, derived from its type and
// extension.
func Icon(entry *domain.FileEntry) string {
	if entry.IsDir {
		return "📁"
	}
	if icon, ok := extIcons[strings.ToLower(filepath.Ext(entry.Name))]; ok {
		return icon
	}
	return "📄"
}
