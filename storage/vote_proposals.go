package storage

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/onflow/flow-governance/model/governance"
	"github.com/onflow/flow-governance/storage/badger/transaction"
)

// VoteProposals represents persistent storage for live vote proposals.
// A proposal is live from its creation until it is executed; executed
// proposals are removed and their IDs are never stored again.
type VoteProposals interface {

	// StoreTx inserts a live vote proposal under its local proposal ID.
	// Expected errors of the returned anonymous function:
	//   - storage.ErrAlreadyExists if a proposal with the given ID was already stored.
	StoreTx(proposalID common.Hash, proposal *governance.VoteProposal) func(*transaction.Tx) error

	// ByIDTx retrieves the live vote proposal with the given ID.
	// Expected errors of the returned anonymous function:
	//   - storage.ErrNotFound if no live proposal with the given ID exists.
	ByIDTx(proposalID common.Hash) func(*transaction.Tx) (*governance.VoteProposal, error)

	// RemoveTx removes the live vote proposal with the given ID.
	// Expected errors of the returned anonymous function:
	//   - storage.ErrNotFound if no live proposal with the given ID exists.
	RemoveTx(proposalID common.Hash) func(*transaction.Tx) error

	// PendingIDsTx returns the IDs of all live proposals as seen by the transaction.
	PendingIDsTx() func(*transaction.Tx) ([]common.Hash, error)

	// ByID retrieves a committed live vote proposal.
	// Expected errors during normal operations:
	//   - storage.ErrNotFound if no live proposal with the given ID exists.
	ByID(proposalID common.Hash) (*governance.VoteProposal, error)

	// PendingIDs returns the IDs of all committed live proposals.
	PendingIDs() ([]common.Hash, error)
}
