// Package file provides a TOML file-based implementation of the
// ConfigStore driven port. Configuration lives in the manview config
// directory, by default ~/.manview/config.toml.
package file
