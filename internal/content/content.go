// Package content reads bounded chunks of file content for matching,
// previews and clipboard copying. Every read failure is recoverable:
// callers get a placeholder or an empty result, never an aborted pass.
package content

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// textExtensions are the file types whose content is searched and previewed.
var textExtensions = map[string]struct{}{
	".txt":  {},
	".md":   {},
	".py":   {},
	".go":   {},
	".js":   {},
	".ts":   {},
	".json": {},
	".yaml": {},
	".yml":  {},
	".toml": {},
	".ini":  {},
	".cfg":  {},
	".conf": {},
	".sh":   {},
	".bash": {},
	".zsh":  {},
	".html": {},
	".css":  {},
	".xml":  {},
	".csv":  {},
	".log":  {},
	".rst":  {},
	".tex":  {},
}

// IsText reports whether a file's extension marks it as searchable text.
func IsText(path string) bool {
	_, ok := textExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// ReadHead returns up to limit bytes from the start of the file.
// A read error is reported so callers can treat it as "no content".
func ReadHead(path string, limit int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, limit)
	n, err := f.Read(buf)
	if n == 0 && err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(buf[:n]), nil
}

// Preview returns the first lines of a text file for the inline preview
// block. Non-text files get a placeholder instead of raw bytes.
func Preview(path string, lines int) []string {
	if !IsText(path) {
		return []string{fmt.Sprintf("Binary file (%s)", filepath.Ext(path))}
	}

	f, err := os.Open(path)
	if err != nil {
		return []string{"Unable to preview file"}
	}
	defer f.Close()

	var out []string
	scanner := bufio.NewScanner(f)
	for len(out) < lines && scanner.Scan() {
		out = append(out, strings.TrimRight(scanner.Text(), "\r\n"))
	}
	if scanner.Err() != nil && len(out) == 0 {
		return []string{"Unable to preview file"}
	}
	if len(out) == 0 {
		return []string{"Empty file"}
	}
	return out
}

// Full returns the whole file for clipboard copying. Binary files are
// refused with a message rather than copied.
func Full(path string) (string, error) {
	if !IsText(path) {
		return "", fmt.Errorf("cannot copy binary file: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
