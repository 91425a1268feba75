package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dropsync/internal/adapters/fs"
	"go.trai.ch/dropsync/internal/core/domain"
)

func newMerger(t *testing.T) (*fs.Merger, *recordingLogger) {
	t.Helper()
	log := &recordingLogger{}
	return fs.NewMerger(fs.NewEnumerator(), log), log
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestMerger_Merge_ReplacesAndPreserves(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	writeTree(t, src, map[string]string{
		"index.html":    "new index",
		"css/style.css": "new style",
	})
	writeTree(t, dst, map[string]string{
		"index.html":      "old index",
		"css/style.css":   "old style",
		"images/logo.png": "logo bytes",
	})

	merger, log := newMerger(t)
	stats, err := merger.Merge(context.Background(), src, dst)
	require.NoError(t, err)

	// Matching files take the source's content.
	assert.Equal(t, "new index", readFile(t, filepath.Join(dst, "index.html")))
	assert.Equal(t, "new style", readFile(t, filepath.Join(dst, "css", "style.css")))

	// Destination-only files are untouched: the gentle merge never deletes.
	assert.Equal(t, "logo bytes", readFile(t, filepath.Join(dst, "images", "logo.png")))

	assert.Equal(t, 2, stats.FilesReplaced)
	assert.Equal(t, 0, stats.FilesCopied)
	assert.Equal(t, 0, stats.Skipped)
	assert.Equal(t, 0, log.errorCount())
}

func TestMerger_Merge_CreatesMissingDirectories(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	writeTree(t, src, map[string]string{
		"js/vendor/lib.js": "lib",
		"js/app.js":        "app",
	})

	merger, _ := newMerger(t)
	stats, err := merger.Merge(context.Background(), src, dst)
	require.NoError(t, err)

	assert.Equal(t, "lib", readFile(t, filepath.Join(dst, "js", "vendor", "lib.js")))
	assert.Equal(t, "app", readFile(t, filepath.Join(dst, "js", "app.js")))
	assert.Equal(t, 2, stats.FilesCopied)
	assert.Equal(t, 2, stats.DirsCreated)
}

func TestMerger_Merge_Idempotent(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	writeTree(t, src, map[string]string{
		"index.html":    "index",
		"css/style.css": "style",
	})
	writeTree(t, dst, map[string]string{
		"keep.txt": "keep",
	})

	merger, _ := newMerger(t)

	_, err := merger.Merge(context.Background(), src, dst)
	require.NoError(t, err)
	second, err := merger.Merge(context.Background(), src, dst)
	require.NoError(t, err)

	// The second pass replaces in place; the destination state is identical.
	assert.Equal(t, "index", readFile(t, filepath.Join(dst, "index.html")))
	assert.Equal(t, "style", readFile(t, filepath.Join(dst, "css", "style.css")))
	assert.Equal(t, "keep", readFile(t, filepath.Join(dst, "keep.txt")))
	assert.Equal(t, 2, second.FilesReplaced)
	assert.Equal(t, 0, second.FilesCopied)
	assert.Equal(t, 0, second.DirsCreated)
}

func TestMerger_Merge_SkipsHiddenEntries(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	writeTree(t, src, map[string]string{
		".DS_Store":        "junk",
		".git/config":      "gitconfig",
		"visible/data.txt": "data",
	})

	merger, _ := newMerger(t)
	_, err := merger.Merge(context.Background(), src, dst)
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(dst, ".DS_Store"))
	assert.NoDirExists(t, filepath.Join(dst, ".git"))
	assert.Equal(t, "data", readFile(t, filepath.Join(dst, "visible", "data.txt")))
}

func TestMerger_Merge_FileOverDirectoryConflictSkipped(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	// Source has a file where the destination has a directory, and vice
	// versa. Both conflicts are skipped; the sibling still merges.
	writeTree(t, src, map[string]string{
		"assets":       "file in source",
		"config/a.txt": "a",
		"ok.txt":       "ok",
	})
	writeTree(t, dst, map[string]string{
		"assets/inner.txt": "inner",
	})
	require.NoError(t, os.WriteFile(filepath.Join(dst, "config"), []byte("file in dest"), 0o600))

	merger, log := newMerger(t)
	stats, err := merger.Merge(context.Background(), src, dst)
	require.NoError(t, err)

	// The conflicting entries are untouched.
	assert.Equal(t, "inner", readFile(t, filepath.Join(dst, "assets", "inner.txt")))
	assert.Equal(t, "file in dest", readFile(t, filepath.Join(dst, "config")))

	// The sibling merged despite the failures.
	assert.Equal(t, "ok", readFile(t, filepath.Join(dst, "ok.txt")))
	assert.Equal(t, 2, stats.Skipped)
	assert.Equal(t, 2, log.errorCount())
}

func TestMerger_Merge_MissingSource(t *testing.T) {
	merger, _ := newMerger(t)

	_, err := merger.Merge(context.Background(), filepath.Join(t.TempDir(), "nope"), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEnumerateFailed)
}

func TestMerger_Merge_SourceIsFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o600))

	merger, _ := newMerger(t)
	_, err := merger.Merge(context.Background(), src, t.TempDir())
	assert.ErrorIs(t, err, domain.ErrNotADirectory)
}

func TestMerger_Merge_SymlinkedDirectoryNotFollowed(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	// A symlink back to the parent must not send the merge into a loop.
	// Symlinks are classified by the link itself, so the entry is treated
	// as a file; copying it fails and is skipped.
	require.NoError(t, os.Symlink(src, filepath.Join(src, "loop")))
	writeTree(t, src, map[string]string{"ok.txt": "ok"})

	merger, log := newMerger(t)
	stats, err := merger.Merge(context.Background(), src, dst)
	require.NoError(t, err)

	assert.NoDirExists(t, filepath.Join(dst, "loop"))
	assert.Equal(t, "ok", readFile(t, filepath.Join(dst, "ok.txt")))
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 1, log.errorCount())
}

func TestMerger_Merge_DepthBounded(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	deep := src
	for range 70 {
		deep = filepath.Join(deep, "d")
	}
	require.NoError(t, os.MkdirAll(deep, 0o750))

	merger, log := newMerger(t)
	stats, err := merger.Merge(context.Background(), src, dst)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 1, log.errorCount())
	assert.ErrorIs(t, log.lastError(), domain.ErrMergeDepthExceeded)
}

func TestMerger_Merge_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	merger, _ := newMerger(t)
	_, err := merger.Merge(ctx, t.TempDir(), t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMerger_Merge_NoTempFileLeftBehind(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	writeTree(t, src, map[string]string{"a.txt": "a"})

	merger, _ := newMerger(t)
	_, err := merger.Merge(context.Background(), src, dst)
	require.NoError(t, err)

	entries, err := os.ReadDir(dst)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.txt", entries[0].Name())
}
