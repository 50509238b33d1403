package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-governance/cmd/util/cmd/common"
	"github.com/onflow/flow-governance/model/governance"
	badgerstorage "github.com/onflow/flow-governance/storage/badger"
	"github.com/onflow/flow-governance/storage/badger/transaction"
	"github.com/onflow/flow-governance/utils/unittest"
)

func TestReadGovernance(t *testing.T) {
	unittest.RunWithTempDir(t, func(dir string) {
		votingMachine := unittest.AddressFixture()
		proposalID := unittest.HashFixture()

		db, storages, err := common.InitStorages(badgerstorage.Config{Dir: dir, CacheSize: 10})
		require.NoError(t, err)
		err = transaction.Update(db, func(tx *transaction.Tx) error {
			err := storages.VoteProposals.StoreTx(proposalID, unittest.VoteProposalFixture())(tx)
			if err != nil {
				return err
			}
			err = storages.ProposalInfos.StoreTx(votingMachine, proposalID, unittest.ProposalInfoFixture())(tx)
			if err != nil {
				return err
			}
			return storages.Events.AppendTx(governance.NewVoteProposalEvent(&governance.NewVoteProposal{ProposalID: proposalID}))(tx)
		})
		require.NoError(t, err)
		require.NoError(t, db.Close())

		for _, args := range [][]string{
			{"proposals", "--data-dir", dir},
			{"proposals", "--data-dir", dir, "--id", proposalID.Hex()},
			{"infos", "--data-dir", dir, "--voting-machine", votingMachine.Hex(), "--id", proposalID.Hex()},
			{"events", "--data-dir", dir},
			{"events", "--data-dir", dir, "--id", proposalID.Hex(), "--type", string(governance.EventNewVoteProposal)},
		} {
			rootCmd.SetArgs(args)
			require.NoError(t, rootCmd.Execute(), "args: %v", args)
		}
	})
}
