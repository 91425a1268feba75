package domain

import "path/filepath"

const (
	// DropsyncDirName is the name of the default dropsync root directory.
	DropsyncDirName = ".dropsync"

	// DropDirName is the name of the watched drop directory.
	DropDirName = "drop"

	// AppsDirName is the name of the directory holding loaded app storage.
	AppsDirName = "apps"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "dropsync.yaml"

	// HiddenPrefix marks directory entries that are never merged.
	HiddenPrefix = "."

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// EnvDevelopment and EnvProduction are the recognized environment names.
// Watching and syncing are refused under EnvProduction.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// EnvOverrideVar is the environment variable that overrides the configured
// environment name.
const EnvOverrideVar = "DROPSYNC_ENV"

// DefaultDropPath returns the default watched drop directory under home.
func DefaultDropPath(home string) string {
	return filepath.Join(home, DropsyncDirName, DropDirName)
}

// DefaultStoragePath returns the default app storage root under home.
func DefaultStoragePath(home string) string {
	return filepath.Join(home, DropsyncDirName, AppsDirName)
}

// Hidden reports whether a directory entry name is hidden by convention.
func Hidden(name string) bool {
	return len(name) > 0 && name[:1] == HiddenPrefix
}
