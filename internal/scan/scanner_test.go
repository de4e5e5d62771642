package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildTree lays out a small directory tree covering the inclusion rules.
func buildTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := []string{
		"alpha.txt",
		"beta.md",
		".hidden.txt",
		filepath.Join("sub", "gamma.go"),
		filepath.Join("sub", ".secret", "deep.txt"),
		filepath.Join(".git", "config"),
		filepath.Join("node_modules", "pkg.js"),
		filepath.Join("__pycache__", "mod.pyc"),
	}
	for _, f := range files {
		path := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("content\n"), 0o644))
	}
	return root
}

func entryNames(t *testing.T, root string, opts Options) []string {
	t.Helper()
	entries, err := New(opts).Scan(context.Background(), root)
	require.NoError(t, err)
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestScanSkipsHiddenAndIgnored(t *testing.T) {
	root := buildTree(t)

	got := entryNames(t, root, Options{})
	require.Equal(t, []string{"alpha.txt", "beta.md", "gamma.go"}, got)
}

func TestScanIncludeHidden(t *testing.T) {
	root := buildTree(t)

	got := entryNames(t, root, Options{IncludeHidden: true})
	// Hidden files and directories appear; the ignore set still applies.
	require.Contains(t, got, ".hidden.txt")
	require.Contains(t, got, "deep.txt")
	require.NotContains(t, got, "config")
	require.NotContains(t, got, "pkg.js")
	require.NotContains(t, got, "mod.pyc")
}

func TestScanDeterministicOrder(t *testing.T) {
	root := buildTree(t)

	first := entryNames(t, root, Options{})
	for i := 0; i < 3; i++ {
		require.Equal(t, first, entryNames(t, root, Options{}))
	}
}

func TestScanEntryMetadata(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	entries, err := New(Options{}).Scan(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, path, entries[0].Path)
	require.Equal(t, "file.txt", entries[0].Name)
	require.False(t, entries[0].IsDir)
	require.Equal(t, int64(5), entries[0].Size)
	require.False(t, entries[0].ModTime.IsZero())
}

func TestScanCanceledContext(t *testing.T) {
	root := buildTree(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	entries, err := New(Options{}).Scan(ctx, root)
	// Cancellation is an orderly stop, not a failure.
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestScanProgressCallback(t *testing.T) {
	root := buildTree(t)

	var calls int
	opts := Options{Progress: func(count int, dir string) {
		calls++
		require.GreaterOrEqual(t, count, 0)
		require.NotEmpty(t, dir)
	}}
	_, err := New(opts).Scan(context.Background(), root)
	require.NoError(t, err)
	require.Greater(t, calls, 0)
}

func TestScanUnreadableSubdirGivesPartialResults(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "alpha.txt"), []byte("a"), 0o644))
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Mkdir(locked, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(locked, "inside.txt"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "zeta.txt"), []byte("c"), 0o644))

	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	entries, err := New(Options{}).Scan(context.Background(), root)
	// The unreadable subtree is skipped; everything around it survives.
	require.NoError(t, err)
	got := make([]string, 0, len(entries))
	for _, e := range entries {
		got = append(got, e.Name)
	}
	require.Equal(t, []string{"alpha.txt", "zeta.txt"}, got)
}

func TestScanMissingRoot(t *testing.T) {
	entries, err := New(Options{}).Scan(context.Background(), filepath.Join(t.TempDir(), "nope"))
	// The root itself failing to read is reported via the error callback
	// path and yields an empty, non-fatal result.
	require.NoError(t, err)
	require.Empty(t, entries)
}
