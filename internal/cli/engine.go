package cli

import (
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/config"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/startup/catalog"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/startup/control"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/startup/delay"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/startup/scanner"
)

// engine bundles the services every mutating/read command needs, wired
// against the on-disk catalogs shared across CLI invocations.
type engine struct {
	scanner *scanner.Scanner
	control *control.Service
	delay   *delay.Service
	backups *catalog.BackupCatalog
	plans   *catalog.DelayPlanCatalog
}

func newEngine() (*engine, error) {
	if err := config.EnsureCatalogDirectory(); err != nil {
		return nil, err
	}

	backups := catalog.GlobalBackupCatalog(config.BackupCatalogPath())
	plans := catalog.GlobalDelayPlanCatalog(config.DelayPlanCatalogPath())

	controlSvc := control.NewService(backups)

	return &engine{
		scanner: scanner.NewScanner(plans),
		control: controlSvc,
		delay:   delay.NewService(plans, controlSvc),
		backups: backups,
		plans:   plans,
	}, nil
}
