package ports

import "time"

// Config is the resolved dropsync configuration.
type Config struct {
	// Environment is either development or production.
	Environment string
	// DropRoot is the watched drop directory.
	DropRoot string
	// StorageRoot is the directory holding loaded app storage.
	StorageRoot string
	// DebounceWindow is how long the notifier waits for writes to settle
	// before emitting a change signal.
	DebounceWindow time.Duration
}

// ConfigLoader defines the interface for loading the dropsync configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration starting from the given working
	// directory, walking up to find a config file, and applies defaults
	// and environment overrides. A missing config file is not an error;
	// defaults are returned.
	Load(cwd string) (Config, error)
}
