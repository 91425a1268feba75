package fs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/dropsync/internal/core/domain"
	"go.trai.ch/dropsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Merger = (*Merger)(nil)

// maxMergeDepth bounds recursion against pathological symlink loops in the
// source tree. Web app bundles are nowhere near this deep.
const maxMergeDepth = 64

// Merger implements the gentle merge-copy policy: replace matching files,
// add new files and directories, never delete destination-only content.
type Merger struct {
	lister ports.Enumerator
	log    ports.Logger
}

// NewMerger creates a new Merger.
func NewMerger(lister ports.Enumerator, log ports.Logger) *Merger {
	return &Merger{lister: lister, log: log}
}

// Merge recursively copies from into to. Per-entry failures are logged and
// skipped so siblings still get processed. The context is consulted only
// before the merge starts; a started merge runs to completion.
func (m *Merger) Merge(ctx context.Context, from, to string) (domain.MergeStats, error) {
	if err := ctx.Err(); err != nil {
		return domain.MergeStats{}, err
	}

	info, err := os.Stat(from)
	if err != nil {
		return domain.MergeStats{}, zerr.With(zerr.Wrap(domain.ErrEnumerateFailed, err.Error()), "dir", from)
	}
	if !info.IsDir() {
		return domain.MergeStats{}, zerr.With(zerr.Wrap(domain.ErrNotADirectory, from), "path", from)
	}

	return m.mergeDir(from, to, 0)
}

func (m *Merger) mergeDir(from, to string, depth int) (domain.MergeStats, error) {
	var stats domain.MergeStats

	if depth >= maxMergeDepth {
		m.log.Error(zerr.With(zerr.Wrap(domain.ErrMergeDepthExceeded, from), "dir", from))
		stats.Skipped++
		return stats, nil
	}

	children, err := m.lister.List(from)
	if err != nil {
		if depth == 0 {
			return stats, err
		}
		m.log.Error(err)
		stats.Skipped++
		return stats, nil
	}

	for child := range children {
		dest := filepath.Join(to, child.Name)

		if child.IsDir {
			if _, statErr := os.Stat(dest); statErr != nil {
				if err := os.MkdirAll(dest, domain.DirPerm); err != nil {
					// The whole branch is skipped but siblings continue.
					m.log.Error(zerr.With(zerr.Wrap(err, "failed to create directory"), "dir", dest))
					stats.Skipped++
					continue
				}
				stats.DirsCreated++
			}

			sub, err := m.mergeDir(child.Path, dest, depth+1)
			stats.Add(sub)
			if err != nil {
				m.log.Error(err)
			}
			continue
		}

		replaced, err := m.copyFile(child.Path, dest)
		if err != nil {
			m.log.Error(zerr.With(zerr.Wrap(err, "failed to copy file"), "file", child.Path))
			stats.Skipped++
			continue
		}
		if replaced {
			stats.FilesReplaced++
			m.log.Debug(fmt.Sprintf("replaced %s", dest))
		} else {
			stats.FilesCopied++
			m.log.Debug(fmt.Sprintf("copied %s", dest))
		}
	}

	return stats, nil
}

// copyFile writes src's content to a temporary file in dest's directory and
// renames it over dest, so readers never observe a partially written file.
// It reports whether an existing destination entry was replaced.
func (m *Merger) copyFile(src, dest string) (replaced bool, err error) {
	_, statErr := os.Lstat(dest)
	replaced = statErr == nil

	in, err := os.Open(src)
	if err != nil {
		return false, err
	}
	defer func() {
		_ = in.Close()
	}()

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".dropsync-*")
	if err != nil {
		return false, err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = io.Copy(tmp, in); err != nil {
		return false, err
	}
	if err = tmp.Chmod(domain.FilePerm); err != nil {
		return false, err
	}
	if err = tmp.Close(); err != nil {
		return false, err
	}

	if err = os.Rename(tmpName, dest); err != nil {
		return false, err
	}
	return replaced, nil
}
