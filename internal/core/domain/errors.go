package domain

import "go.trai.ch/zerr"

var (
	// ErrRootNotFound is returned when the watched drop root does not exist.
	ErrRootNotFound = zerr.New("drop root not found")

	// ErrAppNotLoaded is returned when no loaded app matches a drop folder name.
	ErrAppNotLoaded = zerr.New("no loaded app with that name")

	// ErrInvalidAppName is returned when an app name contains path separators
	// or is otherwise unusable as a directory name.
	ErrInvalidAppName = zerr.New("invalid app name")

	// ErrEnumerateFailed is returned when a directory listing fails.
	ErrEnumerateFailed = zerr.New("failed to list directory")

	// ErrNotADirectory is returned when a merge source or destination is not a directory.
	ErrNotADirectory = zerr.New("not a directory")

	// ErrMergeDepthExceeded is returned when a merge recurses past the depth
	// bound, usually because of a symlink loop in the source tree.
	ErrMergeDepthExceeded = zerr.New("merge depth exceeded")

	// ErrWatchFailed is returned when the filesystem watch cannot be established.
	ErrWatchFailed = zerr.New("failed to establish filesystem watch")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidEnvironment is returned when the configured environment name
	// is neither development nor production.
	ErrInvalidEnvironment = zerr.New("invalid environment, expected 'development' or 'production'")

	// ErrProductionDisabled is returned when watching or syncing is attempted
	// with the environment set to production.
	ErrProductionDisabled = zerr.New("dropsync is a development tool and is disabled in production")
)
