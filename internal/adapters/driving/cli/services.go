package cli

import (
	"fmt"

	"github.com/custodia-labs/manview-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/manview-cli/internal/adapters/driven/loader"
	"github.com/custodia-labs/manview-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/manview-cli/internal/core/domain"
	"github.com/custodia-labs/manview-cli/internal/core/ports/driven"
	"github.com/custodia-labs/manview-cli/internal/core/ports/driving"
	"github.com/custodia-labs/manview-cli/internal/core/services"
	"github.com/custodia-labs/manview-cli/internal/normalisers/troff"
)

// Services used by the commands. Tests may replace these directly.
var (
	pageService  driving.PageService
	indexService driving.IndexService
	configStore  driven.ConfigStore

	indexStore *sqlite.Store
)

// initServices builds the default page pipeline. The index store is
// opened lazily by ensureIndexService, so viewing a page by path never
// touches the database.
func initServices() error {
	if pageService != nil {
		return nil
	}

	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	configStore = store

	pageService = services.NewPageService(loader.New(), troff.New())
	return nil
}

// ensureIndexService opens the index store on first use.
func ensureIndexService() error {
	if indexService != nil {
		return nil
	}
	if pageService == nil {
		return fmt.Errorf("page service not configured")
	}

	cfg := domain.DefaultConfig()
	if configStore != nil {
		cfg = configStore.Config()
	}

	store, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening index store: %w", err)
	}
	indexStore = store
	indexService = services.NewIndexService(pageService, store, cfg.ManPath)
	return nil
}

func closeServices() {
	if indexStore != nil {
		indexStore.Close()
		indexStore = nil
		indexService = nil
	}
}
