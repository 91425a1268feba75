// Package storage resolves the watched drop root and loaded app storage
// locations on disk.
package storage

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/dropsync/internal/core/domain"
	"go.trai.ch/dropsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StorageResolver = (*Resolver)(nil)

// Resolver implements ports.StorageResolver over a configured drop root and
// app storage root. It never creates the directories it resolves: an app
// storage location must already exist from a prior load of that app.
type Resolver struct {
	dropRoot    string
	storageRoot string
}

// NewResolver creates a new Resolver from the resolved configuration.
func NewResolver(cfg ports.Config) *Resolver {
	return &Resolver{
		dropRoot:    cfg.DropRoot,
		storageRoot: cfg.StorageRoot,
	}
}

// UserStorageRoot returns the watched drop directory.
func (r *Resolver) UserStorageRoot() (string, error) {
	info, err := os.Stat(r.dropRoot)
	if err != nil || !info.IsDir() {
		return "", zerr.With(zerr.Wrap(domain.ErrRootNotFound, r.dropRoot), "path", r.dropRoot)
	}
	return r.dropRoot, nil
}

// LoadedAppPath returns the storage directory of the loaded app with the
// given name.
func (r *Resolver) LoadedAppPath(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.ContainsRune(name, os.PathSeparator) || domain.Hidden(name) {
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidAppName, name), "name", name)
	}

	path := filepath.Join(r.storageRoot, name)
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return "", zerr.With(zerr.Wrap(domain.ErrAppNotLoaded, name), "app", name)
	}
	return path, nil
}
