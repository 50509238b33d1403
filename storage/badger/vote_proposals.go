package badger

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"
	"github.com/ethereum/go-ethereum/common"

	"github.com/onflow/flow-governance/model/governance"
	"github.com/onflow/flow-governance/storage"
	"github.com/onflow/flow-governance/storage/badger/operation"
	"github.com/onflow/flow-governance/storage/badger/transaction"
)

// VoteProposals implements persistent storage for live vote proposals. The
// records are removed on execution, so they are not cached.
type VoteProposals struct {
	db *badger.DB
}

var _ storage.VoteProposals = (*VoteProposals)(nil)

func NewVoteProposals(db *badger.DB) *VoteProposals {
	return &VoteProposals{db: db}
}

func (vp *VoteProposals) StoreTx(proposalID common.Hash, proposal *governance.VoteProposal) func(*transaction.Tx) error {
	return transaction.WithTx(operation.InsertVoteProposal(proposalID, proposal))
}

func (vp *VoteProposals) ByIDTx(proposalID common.Hash) func(*transaction.Tx) (*governance.VoteProposal, error) {
	return func(tx *transaction.Tx) (*governance.VoteProposal, error) {
		var proposal governance.VoteProposal
		err := operation.RetrieveVoteProposal(proposalID, &proposal)(tx.DBTxn)
		if err != nil {
			return nil, fmt.Errorf("could not retrieve vote proposal %s: %w", proposalID.Hex(), err)
		}
		return &proposal, nil
	}
}

func (vp *VoteProposals) RemoveTx(proposalID common.Hash) func(*transaction.Tx) error {
	return func(tx *transaction.Tx) error {
		err := operation.RemoveVoteProposal(proposalID)(tx.DBTxn)
		if err != nil {
			return fmt.Errorf("could not remove vote proposal %s: %w", proposalID.Hex(), err)
		}
		return nil
	}
}

func (vp *VoteProposals) PendingIDsTx() func(*transaction.Tx) ([]common.Hash, error) {
	return func(tx *transaction.Tx) ([]common.Hash, error) {
		var proposalIDs []common.Hash
		err := operation.LookupVoteProposals(&proposalIDs)(tx.DBTxn)
		if err != nil {
			return nil, fmt.Errorf("could not look up pending proposals: %w", err)
		}
		return proposalIDs, nil
	}
}

func (vp *VoteProposals) ByID(proposalID common.Hash) (*governance.VoteProposal, error) {
	var proposal *governance.VoteProposal
	err := transaction.View(vp.db, func(tx *transaction.Tx) error {
		var err error
		proposal, err = vp.ByIDTx(proposalID)(tx)
		return err
	})
	return proposal, err
}

func (vp *VoteProposals) PendingIDs() ([]common.Hash, error) {
	var proposalIDs []common.Hash
	err := transaction.View(vp.db, func(tx *transaction.Tx) error {
		var err error
		proposalIDs, err = vp.PendingIDsTx()(tx)
		return err
	})
	return proposalIDs, err
}
