// Package config provides the configuration loader for dropsync.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"go.trai.ch/dropsync/internal/core/domain"
	"go.trai.ch/dropsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// DefaultDebounceWindow is used when the config file does not set one.
const DefaultDebounceWindow = 300 * time.Millisecond

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration starting from cwd. The config file is found
// by walking up the directory tree; when none exists, defaults under the
// user's home directory are used. DROPSYNC_ENV overrides the configured
// environment name.
func (l *Loader) Load(cwd string) (ports.Config, error) {
	cfg := ports.Config{
		Environment:    domain.EnvDevelopment,
		DebounceWindow: DefaultDebounceWindow,
	}

	if configPath := l.findConfiguration(cwd); configPath != "" {
		file, err := l.readFile(configPath)
		if err != nil {
			return ports.Config{}, err
		}
		applyFile(&cfg, file, filepath.Dir(configPath))
	}

	if env := os.Getenv(domain.EnvOverrideVar); env != "" {
		cfg.Environment = env
	}
	if cfg.Environment != domain.EnvDevelopment && cfg.Environment != domain.EnvProduction {
		return ports.Config{}, zerr.With(zerr.Wrap(domain.ErrInvalidEnvironment, cfg.Environment), "environment", cfg.Environment)
	}

	if cfg.DropRoot == "" || cfg.StorageRoot == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ports.Config{}, zerr.Wrap(err, "failed to locate home directory")
		}
		if cfg.DropRoot == "" {
			cfg.DropRoot = domain.DefaultDropPath(home)
		}
		if cfg.StorageRoot == "" {
			cfg.StorageRoot = domain.DefaultStoragePath(home)
		}
	}

	return cfg, nil
}

func (l *Loader) findConfiguration(cwd string) string {
	currentDir := cwd

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return ""
		}
		currentDir = parentDir
	}
}

func (l *Loader) readFile(path string) (File, error) {
	//nolint:gosec // Path comes from the directory walk, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return File{}, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}
	return file, nil
}

// applyFile copies the file values onto cfg. Relative paths are resolved
// against the directory holding the config file.
func applyFile(cfg *ports.Config, file File, baseDir string) {
	if file.Environment != "" {
		cfg.Environment = file.Environment
	}
	if file.DropRoot != "" {
		cfg.DropRoot = resolvePath(file.DropRoot, baseDir)
	}
	if file.StorageRoot != "" {
		cfg.StorageRoot = resolvePath(file.StorageRoot, baseDir)
	}
	if file.DebounceMs > 0 {
		cfg.DebounceWindow = time.Duration(file.DebounceMs) * time.Millisecond
	}
}

func resolvePath(path, baseDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
