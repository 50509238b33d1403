package cmd

import (
	"github.com/dgraph-io/badger/v2"
	"github.com/rs/zerolog/log"

	"github.com/onflow/flow-governance/cmd/util/cmd/common"
	"github.com/onflow/flow-governance/storage"
)

func InitStorages() (*badger.DB, *storage.All) {
	db, storages, err := common.InitStorages(common.StorageConfig())
	if err != nil {
		log.Fatal().Err(err).Msg("could not initialize storages")
	}
	return db, storages
}
