package config

// File represents the structure of the dropsync.yaml configuration file.
type File struct {
	Version     string `yaml:"version"`
	Environment string `yaml:"environment"`
	DropRoot    string `yaml:"dropRoot"`
	StorageRoot string `yaml:"storageRoot"`
	DebounceMs  int    `yaml:"debounceMs"`
}
