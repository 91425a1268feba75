package ports

import "iter"

// Entry is a single immediate child of an enumerated directory.
type Entry struct {
	// Name is the base name of the entry.
	Name string
	// Path is the full path of the entry.
	Path string
	// IsDir reports whether the entry is a directory. Symlinks are
	// classified by the link itself, not its target.
	IsDir bool
}

// Enumerator lists the immediate children of a directory.
//
//go:generate mockgen -source=enumerator.go -destination=mocks/mock_enumerator.go -package=mocks
type Enumerator interface {
	// List returns the visible immediate children of dir. Hidden entries are
	// filtered out and subdirectories are not descended into.
	List(dir string) (iter.Seq[Entry], error)
}
