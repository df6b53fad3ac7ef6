package domain

// Config holds the manview settings.
type Config struct {
	// ManPath lists the directories scanned when building the index.
	ManPath []string `toml:"manpath"`

	// DataDir is where the index database lives.
	// Empty means the default under the config directory.
	DataDir string `toml:"data_dir"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		ManPath: []string{"/usr/share/man", "/usr/local/share/man"},
	}
}
