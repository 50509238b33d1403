package common

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/onflow/flow-governance/module/metrics"
	"github.com/onflow/flow-governance/storage"
	badgerstorage "github.com/onflow/flow-governance/storage/badger"
)

// InitStorages opens the database described by cfg and returns the
// governance stores on top of it. The caller must close the database.
func InitStorages(cfg badgerstorage.Config) (*badger.DB, *storage.All, error) {
	db, err := badgerstorage.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open database: %w", err)
	}

	storages := badgerstorage.InitAll(metrics.NewNoopCollector(), db, cfg.CacheSize)
	return db, storages, nil
}
