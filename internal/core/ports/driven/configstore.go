package driven

import "github.com/custodia-labs/manview-cli/internal/core/domain"

// ConfigStore persists application configuration.
type ConfigStore interface {
	// Config returns the current settings.
	Config() domain.Config

	// Save persists cfg and makes it current.
	Save(cfg domain.Config) error
}
