package tui

import (
	"errors"

	"github.com/custodia-labs/manview-cli/internal/core/ports/driving"
)

// Ports bundles the driving ports the TUI needs.
type Ports struct {
	// Page opens manual pages for viewing.
	Page driving.PageService
}

// Validate checks that the required ports are present.
func (p *Ports) Validate() error {
	if p == nil || p.Page == nil {
		return errors.New("page service is required")
	}
	return nil
}
