// Package fs implements directory enumeration and the merge-copy engine.
package fs

import (
	"iter"
	"os"
	"path/filepath"

	"go.trai.ch/dropsync/internal/core/domain"
	"go.trai.ch/dropsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Enumerator = (*Enumerator)(nil)

// Enumerator lists the immediate children of a directory, skipping hidden
// entries and never descending into subdirectories.
type Enumerator struct{}

// NewEnumerator creates a new Enumerator.
func NewEnumerator() *Enumerator {
	return &Enumerator{}
}

// List returns the visible immediate children of dir.
// Symlinks are classified by the link itself, not its target.
func (e *Enumerator) List(dir string) (iter.Seq[ports.Entry], error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrEnumerateFailed, err.Error()), "dir", dir)
	}

	return func(yield func(ports.Entry) bool) {
		for _, entry := range entries {
			if domain.Hidden(entry.Name()) {
				continue
			}
			child := ports.Entry{
				Name:  entry.Name(),
				Path:  filepath.Join(dir, entry.Name()),
				IsDir: entry.IsDir(),
			}
			if !yield(child) {
				return
			}
		}
	}, nil
}
