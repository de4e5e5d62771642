package scan

import (
	"context"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"findt/internal/domain"
)

// ignoredDirs are never descended into, regardless of the hidden setting.
// Version control, dependency caches and build output.
var ignoredDirs = map[string]struct{}{
	".git":          {},
	".svn":          {},
	".hg":           {},
	"node_modules":  {},
	"vendor":        {},
	"dist":          {},
	"build":         {},
	"target":        {},
	"__pycache__":   {},
	".pytest_cache": {},
	".mypy_cache":   {},
	".tox":          {},
	".venv":         {},
	"venv":          {},
	".cache":        {},
	".gradle":       {},
}

// Options controls a single scan pass.
type Options struct {
	// IncludeHidden also lists dot-prefixed files and descends into
	// dot-prefixed directories (the ignore set still applies).
	IncludeHidden bool

	// Progress, when set, is called during the walk with the number of
	// files found so far and the directory currently being scanned.
	Progress func(count int, dir string)
}

// Scanner walks a directory tree once and produces the entry list that
// all searching operates on.
type Scanner struct {
	opts Options
}

// New creates a scanner with the given options.
func New(opts Options) *Scanner {
	return &Scanner{opts: opts}
}

// Scan walks root and returns every file that passes the inclusion rules,
// in lexical walk order. Unreadable subtrees are skipped, not fatal:
// a scan over a partially readable tree returns the entries it could see.
func (s *Scanner) Scan(ctx context.Context, root string) ([]domain.FileEntry, error) {
	var entries []domain.FileEntry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			log.Printf("skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		name := d.Name()

		if d.IsDir() {
			if path == root {
				return nil
			}
			if !s.includeDir(name) {
				return fs.SkipDir
			}
			if s.opts.Progress != nil {
				s.opts.Progress(len(entries), path)
			}
			return nil
		}

		if !s.includeFile(name) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			log.Printf("skipping %s: %v", path, err)
			return nil
		}

		entries = append(entries, domain.FileEntry{
			Path:    path,
			Name:    name,
			IsDir:   false,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})

		if s.opts.Progress != nil && len(entries)%50 == 0 {
			s.opts.Progress(len(entries), filepath.Dir(path))
		}
		return nil
	})

	if err != nil && err != context.Canceled {
		return entries, err
	}
	return entries, nil
}

// includeDir reports whether a directory should be descended into.
func (s *Scanner) includeDir(name string) bool {
	if _, ignored := ignoredDirs[name]; ignored {
		return false
	}
	if !s.opts.IncludeHidden && strings.HasPrefix(name, ".") {
		return false
	}
	return true
}

// includeFile reports whether a file should appear in the entry list.
func (s *Scanner) includeFile(name string) bool {
	if !s.opts.IncludeHidden && strings.HasPrefix(name, ".") {
		return false
	}
	return true
}
