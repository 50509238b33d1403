package badger

import (
	"errors"
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-governance/model/governance"
	"github.com/onflow/flow-governance/module/metrics"
	"github.com/onflow/flow-governance/storage"
	"github.com/onflow/flow-governance/storage/badger/transaction"
	"github.com/onflow/flow-governance/utils/unittest"
)

// Entries become cached only once the transaction that stored or read them
// committed.
func TestCache_InsertOnCommit(t *testing.T) {
	unittest.RunWithInMemoryBadgerDB(t, func(db *badger.DB) {
		infos := NewProposalInfos(metrics.NewNoopCollector(), db, 10)
		cache := infos.cache

		stored := proposalKey{votingMachine: unittest.AddressFixture(), proposalID: unittest.HashFixture()}
		discarded := proposalKey{votingMachine: unittest.AddressFixture(), proposalID: unittest.HashFixture()}
		abort := errors.New("abort")

		err := transaction.Update(db, func(tx *transaction.Tx) error {
			err := cache.PutTx(stored, unittest.ProposalInfoFixture())(tx)
			require.NoError(t, err)
			assert.False(t, cache.IsCached(stored))
			return nil
		})
		require.NoError(t, err)
		assert.True(t, cache.IsCached(stored))

		err = transaction.Update(db, func(tx *transaction.Tx) error {
			err := cache.PutTx(discarded, unittest.ProposalInfoFixture())(tx)
			require.NoError(t, err)
			return abort
		})
		require.ErrorIs(t, err, abort)
		assert.False(t, cache.IsCached(discarded))

		// unknown keys are not cached
		_, err = infos.ByID(discarded.votingMachine, discarded.proposalID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.False(t, cache.IsCached(discarded))
	})
}

// A cold cache reads through to the database and keeps the record afterwards.
func TestCache_ReadThrough(t *testing.T) {
	unittest.RunWithInMemoryBadgerDB(t, func(db *badger.DB) {
		collector := metrics.NewNoopCollector()
		key := proposalKey{votingMachine: unittest.AddressFixture(), proposalID: unittest.HashFixture()}
		expected := unittest.ProposalInfoFixture()

		writer := NewProposalInfos(collector, db, 10)
		err := transaction.Update(db, writer.StoreTx(key.votingMachine, key.proposalID, expected))
		require.NoError(t, err)

		reader := NewProposalInfos(collector, db, 10)
		assert.False(t, reader.cache.IsCached(key))

		var actual *governance.ProposalInfo
		actual, err = reader.ByID(key.votingMachine, key.proposalID)
		require.NoError(t, err)
		assert.Equal(t, expected, actual)
		assert.True(t, reader.cache.IsCached(key))
	})
}
