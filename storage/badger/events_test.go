package badger_test

import (
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-governance/model/governance"
	badgerstorage "github.com/onflow/flow-governance/storage/badger"
	"github.com/onflow/flow-governance/storage/badger/transaction"
	"github.com/onflow/flow-governance/utils/unittest"
)

func TestEventsAppend(t *testing.T) {
	unittest.RunWithInMemoryBadgerDB(t, func(db *badger.DB) {
		events := badgerstorage.NewEvents(db)

		first := unittest.HashFixture()
		second := unittest.HashFixture()

		err := transaction.Update(db, func(tx *transaction.Tx) error {
			for _, event := range []*governance.Event{
				governance.NewVoteProposalEvent(&governance.NewVoteProposal{ProposalID: first, ChosenOption: 1}),
				governance.NewVoteProposalEvent(&governance.NewVoteProposal{ProposalID: second, ChosenOption: 2}),
				governance.ProposalDeletedEvent(&governance.ProposalDeleted{ProposalID: first}),
				governance.ProposalExecutedEvent(&governance.ProposalExecuted{ProposalID: first, Decision: 2}),
			} {
				err := events.AppendTx(event)(tx)
				if err != nil {
					return err
				}
			}
			return nil
		})
		require.NoError(t, err)

		all, err := events.All()
		require.NoError(t, err)
		require.Len(t, all, 4)
		for i, event := range all {
			assert.Equal(t, uint64(i), event.Index)
		}

		byFirst, err := events.ByProposal(first)
		require.NoError(t, err)
		require.Len(t, byFirst, 3)
		assert.Equal(t, governance.EventNewVoteProposal, byFirst[0].Type)
		assert.Equal(t, governance.EventProposalDeleted, byFirst[1].Type)
		assert.Equal(t, governance.EventProposalExecuted, byFirst[2].Type)
		assert.Equal(t, int64(2), byFirst[2].ProposalExecuted.Decision)

		bySecond, err := events.ByProposal(second)
		require.NoError(t, err)
		require.Len(t, bySecond, 1)
		assert.Equal(t, uint64(2), bySecond[0].NewVoteProposal.ChosenOption)

		none, err := events.ByProposal(unittest.HashFixture())
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}
